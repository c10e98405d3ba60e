package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsletter_sync/internal/domain"
)

type Source interface {
	Audiences(ctx context.Context) ([]domain.Audience, error)
	Broadcasts(ctx context.Context) ([]domain.Broadcast, error)
	Broadcast(ctx context.Context, id string) (*domain.Broadcast, error)
	Emails(ctx context.Context, sinceCursor string) ([]domain.Email, error)
	Email(ctx context.Context, id string) (*domain.Email, error)
}

type RecordStore interface {
	PutAudiences(ctx context.Context, audiences []domain.Audience) error
	PutAudience(ctx context.Context, audience domain.Audience) error
	PutBroadcasts(ctx context.Context, broadcasts []domain.Broadcast) error
	Broadcasts(ctx context.Context) ([]domain.Broadcast, error)
	PutBroadcast(ctx context.Context, broadcast domain.Broadcast) error
	PutBroadcastInfo(ctx context.Context, broadcast domain.Broadcast) error
	PutBroadcastMarkdown(ctx context.Context, rendered domain.RenderedBroadcast) error
	PutEmails(ctx context.Context, emails []domain.Email) error
	Emails(ctx context.Context) ([]domain.Email, error)
	PutEmail(ctx context.Context, email domain.Email) error
	Cursor(ctx context.Context) (string, error)
	PutCursor(ctx context.Context, id string) error
}

type Renderer interface {
	Render(html string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, broadcast *domain.Broadcast, runID string) error
	Close() error
}
