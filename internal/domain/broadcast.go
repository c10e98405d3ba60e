package domain

import "time"

// Broadcast is a single newsletter send, scoped to one audience.
// The list endpoint returns only the summary fields; html and text
// are filled in from the detail endpoint (or, in historical mode,
// from a correlated email).
type Broadcast struct {
	ID          string     `json:"id"`
	AudienceID  string     `json:"audience_id"`
	Name        string     `json:"name,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	From        string     `json:"from,omitempty"`
	ReplyTo     string     `json:"reply_to,omitempty"`
	PreviewText string     `json:"preview_text,omitempty"`
	Status      string     `json:"status,omitempty"`
	HTML        string     `json:"html,omitempty"`
	Text        string     `json:"text,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// PublishedAt is the feed publication date: sent_at when the
// broadcast has been sent, created_at otherwise.
func (b Broadcast) PublishedAt() time.Time {
	if b.SentAt != nil {
		return *b.SentAt
	}
	return b.CreatedAt
}

// RenderedBroadcast is a derived artifact: the broadcast plus its
// markdown content. Never a source of truth; regenerable from the
// stored html at any time.
type RenderedBroadcast struct {
	Broadcast
	Content string `json:"content"`
}
