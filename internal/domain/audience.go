package domain

import "time"

// Audience is a named subscriber segment in the upstream provider.
// Immutable once created upstream; mirrored verbatim into storage.
type Audience struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
