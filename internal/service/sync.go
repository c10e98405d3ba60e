package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"newsletter_sync/internal/config"
	"newsletter_sync/internal/domain"
	"newsletter_sync/internal/storage"
)

// SyncService orchestrates one sync run: audiences, broadcasts
// (filtered to the configured audience), the incremental email sync in
// correlate mode, and per-broadcast enrichment. Steps run sequentially;
// all upstream calls go through the same rate-limited client.
type SyncService struct {
	source    Source
	records   RecordStore
	renderer  Renderer
	publisher Publisher
	matcher   Matcher
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	source Source,
	records RecordStore,
	renderer Renderer,
	publisher Publisher,
	matcher Matcher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	if matcher == nil {
		matcher = SubjectFromMatch
	}
	return &SyncService{
		source:    source,
		records:   records,
		renderer:  renderer,
		publisher: publisher,
		matcher:   matcher,
		logger:    logger.With("component", "sync"),
		config:    cfg,
	}
}

func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	logger.Info("starting sync",
		"mode", s.config.Mode,
		"audience_id", s.config.AudienceID,
	)

	stats := &domain.SyncStats{RunID: runID}

	if err := s.syncAudiences(ctx, logger, stats); err != nil {
		return nil, fmt.Errorf("sync audiences: %w", err)
	}

	broadcasts, err := s.syncBroadcasts(ctx, logger, runID, stats)
	if err != nil {
		return nil, fmt.Errorf("sync broadcasts: %w", err)
	}

	var emails []domain.Email
	if s.config.Mode == config.ModeCorrelate {
		emails, err = s.syncEmails(ctx, logger, stats)
		if err != nil {
			return nil, fmt.Errorf("sync emails: %w", err)
		}
	}

	for _, b := range broadcasts {
		result := s.enrich(ctx, b, emails)
		switch result.Status {
		case domain.EnrichmentEnriched:
			stats.Enriched++
		case domain.EnrichmentSkipped:
			stats.Skipped++
			logger.Info("broadcast not enriched",
				"broadcast_id", result.BroadcastID,
				"reason", result.Reason,
			)
		}
	}

	stats.Duration = time.Since(startTime)

	logger.Info("sync completed",
		"audiences", stats.Audiences,
		"broadcasts", stats.Broadcasts,
		"new_emails", stats.NewEmails,
		"total_emails", stats.TotalEmails,
		"enriched", stats.Enriched,
		"skipped", stats.Skipped,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) syncAudiences(ctx context.Context, logger *slog.Logger, stats *domain.SyncStats) error {
	audiences, err := s.source.Audiences(ctx)
	if err != nil {
		return err
	}

	if err := s.records.PutAudiences(ctx, audiences); err != nil {
		return err
	}
	for _, a := range audiences {
		if err := s.records.PutAudience(ctx, a); err != nil {
			return err
		}
	}

	stats.Audiences = len(audiences)
	logger.Debug("audiences synced", "count", len(audiences))
	return nil
}

func (s *SyncService) syncBroadcasts(ctx context.Context, logger *slog.Logger, runID string, stats *domain.SyncStats) ([]domain.Broadcast, error) {
	all, err := s.source.Broadcasts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Broadcast, 0, len(all))
	for _, b := range all {
		if b.AudienceID == s.config.AudienceID {
			filtered = append(filtered, b)
		}
	}

	// The previous collection is read before the overwrite to detect
	// newly-seen broadcasts.
	previous, err := s.records.Broadcasts(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if err := s.records.PutBroadcasts(ctx, filtered); err != nil {
		return nil, err
	}
	for _, b := range filtered {
		if err := s.records.PutBroadcast(ctx, b); err != nil {
			return nil, err
		}
	}

	stats.Broadcasts = len(filtered)
	stats.Published = s.publishNew(ctx, logger, runID, previous, filtered)

	logger.Debug("broadcasts synced", "fetched", len(all), "filtered", len(filtered))
	return filtered, nil
}

// publishNew emits one event per broadcast id absent from the previous
// collection. Publish failures are logged and never fail the run;
// delivery is at-least-once.
func (s *SyncService) publishNew(ctx context.Context, logger *slog.Logger, runID string, previous, current []domain.Broadcast) int {
	if s.publisher == nil {
		return 0
	}

	seen := make(map[string]bool, len(previous))
	for _, b := range previous {
		seen[b.ID] = true
	}

	published := 0
	for i := range current {
		if seen[current[i].ID] {
			continue
		}
		if err := s.publisher.Publish(ctx, &current[i], runID); err != nil {
			logger.Warn("publish broadcast failed", "broadcast_id", current[i].ID, "error", err)
			continue
		}
		published++
	}
	return published
}

// syncEmails runs the historical incremental email fetch: the prior
// collection and cursor are loaded (absence means first run), new
// emails are fetched in one anchored page when a cursor exists, and the
// merge prepends new emails to the existing set, preserving newest-first
// order on both sides.
func (s *SyncService) syncEmails(ctx context.Context, logger *slog.Logger, stats *domain.SyncStats) ([]domain.Email, error) {
	existing, err := s.records.Emails(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("read stored emails: %w", err)
	}

	cursor, err := s.records.Cursor(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("read cursor: %w", err)
	}

	newEmails, err := s.source.Emails(ctx, cursor)
	if err != nil {
		return nil, err
	}

	// The list endpoint returns summaries; the detail call supplies the
	// html needed for correlation. A failed detail fetch leaves that
	// email without html rather than failing the run.
	for i := range newEmails {
		detail, err := s.source.Email(ctx, newEmails[i].ID)
		if err != nil {
			logger.Warn("email detail fetch failed", "email_id", newEmails[i].ID, "error", err)
			continue
		}
		newEmails[i] = *detail
	}

	merged := make([]domain.Email, 0, len(newEmails)+len(existing))
	merged = append(merged, newEmails...)
	merged = append(merged, existing...)

	if err := s.records.PutEmails(ctx, merged); err != nil {
		return nil, err
	}
	for _, e := range newEmails {
		if err := s.records.PutEmail(ctx, e); err != nil {
			return nil, err
		}
	}
	if len(merged) > 0 {
		if err := s.records.PutCursor(ctx, merged[0].ID); err != nil {
			return nil, err
		}
	}

	stats.NewEmails = len(newEmails)
	stats.TotalEmails = len(merged)

	logger.Debug("emails synced", "new", len(newEmails), "total", len(merged))
	return merged, nil
}

// enrich resolves one broadcast's html and persists the detail and
// markdown records. Every failure is a per-item skip, never a run
// failure.
func (s *SyncService) enrich(ctx context.Context, broadcast domain.Broadcast, emails []domain.Email) domain.Enrichment {
	enriched := broadcast

	if s.config.Mode == config.ModeCorrelate {
		match := FirstMatch(broadcast, emails, s.matcher)
		if match == nil {
			return domain.Skipped(broadcast.ID, "no matching email")
		}
		enriched.HTML = match.HTML
	} else {
		detail, err := s.source.Broadcast(ctx, broadcast.ID)
		if err != nil {
			return domain.Skipped(broadcast.ID, fmt.Sprintf("detail fetch failed: %v", err))
		}
		enriched = *detail
	}

	if enriched.HTML == "" {
		return domain.Skipped(broadcast.ID, "no html available")
	}

	if err := s.records.PutBroadcastInfo(ctx, enriched); err != nil {
		return domain.Skipped(broadcast.ID, fmt.Sprintf("persist detail failed: %v", err))
	}

	content, err := s.renderer.Render(enriched.HTML)
	if err != nil {
		return domain.Skipped(broadcast.ID, fmt.Sprintf("render markdown failed: %v", err))
	}

	rendered := domain.RenderedBroadcast{Broadcast: enriched, Content: content}
	if err := s.records.PutBroadcastMarkdown(ctx, rendered); err != nil {
		return domain.Skipped(broadcast.ID, fmt.Sprintf("persist markdown failed: %v", err))
	}

	return domain.Enriched(broadcast.ID)
}
