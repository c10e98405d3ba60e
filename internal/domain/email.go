package domain

import "time"

// Email is a single sent email, used only in historical mode as a
// correlation source for broadcasts lacking inline html.
type Email struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
