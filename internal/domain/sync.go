package domain

import "time"

// SyncStats holds statistics about a sync run.
type SyncStats struct {
	RunID       string        `json:"run_id"`
	Audiences   int           `json:"audiences"`
	Broadcasts  int           `json:"broadcasts"`
	NewEmails   int           `json:"newEmails,omitempty"`
	TotalEmails int           `json:"totalEmails,omitempty"`
	Enriched    int           `json:"enriched"`
	Skipped     int           `json:"skipped"`
	Published   int           `json:"published,omitempty"`
	Duration    time.Duration `json:"-"`
}

type EnrichmentStatus string

const (
	EnrichmentEnriched EnrichmentStatus = "enriched"
	EnrichmentSkipped  EnrichmentStatus = "skipped"
)

// Enrichment is the per-broadcast outcome of the enrichment phase.
// A skipped item carries the reason (upstream error, correlation
// miss, missing html) and never fails the run.
type Enrichment struct {
	BroadcastID string
	Status      EnrichmentStatus
	Reason      string
}

func Enriched(id string) Enrichment {
	return Enrichment{BroadcastID: id, Status: EnrichmentEnriched}
}

func Skipped(id, reason string) Enrichment {
	return Enrichment{BroadcastID: id, Status: EnrichmentSkipped, Reason: reason}
}
