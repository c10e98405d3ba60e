package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"newsletter_sync/internal/domain"
)

// Records is the typed persistence adapter over a Blob backend.
// Entities are stored as JSON; the incremental cursor is stored as a
// raw string.
type Records struct {
	blob Blob
}

func NewRecords(blob Blob) *Records {
	return &Records{blob: blob}
}

func (r *Records) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.blob.Put(ctx, key, data, ContentTypeJSON); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (r *Records) getJSON(ctx context.Context, key string, v any) error {
	data, err := r.blob.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (r *Records) PutAudiences(ctx context.Context, audiences []domain.Audience) error {
	return r.putJSON(ctx, KeyAudiences, audiences)
}

func (r *Records) PutAudience(ctx context.Context, audience domain.Audience) error {
	return r.putJSON(ctx, AudienceKey(audience.ID), audience)
}

func (r *Records) Audiences(ctx context.Context) ([]domain.Audience, error) {
	var audiences []domain.Audience
	if err := r.getJSON(ctx, KeyAudiences, &audiences); err != nil {
		return nil, err
	}
	return audiences, nil
}

func (r *Records) PutBroadcasts(ctx context.Context, broadcasts []domain.Broadcast) error {
	return r.putJSON(ctx, KeyBroadcasts, broadcasts)
}

func (r *Records) Broadcasts(ctx context.Context) ([]domain.Broadcast, error) {
	var broadcasts []domain.Broadcast
	if err := r.getJSON(ctx, KeyBroadcasts, &broadcasts); err != nil {
		return nil, err
	}
	return broadcasts, nil
}

func (r *Records) PutBroadcast(ctx context.Context, broadcast domain.Broadcast) error {
	return r.putJSON(ctx, BroadcastKey(broadcast.ID), broadcast)
}

func (r *Records) PutBroadcastInfo(ctx context.Context, broadcast domain.Broadcast) error {
	return r.putJSON(ctx, BroadcastInfoKey(broadcast.ID), broadcast)
}

func (r *Records) BroadcastInfo(ctx context.Context, id string) (*domain.Broadcast, error) {
	var broadcast domain.Broadcast
	if err := r.getJSON(ctx, BroadcastInfoKey(id), &broadcast); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

func (r *Records) PutBroadcastMarkdown(ctx context.Context, rendered domain.RenderedBroadcast) error {
	return r.putJSON(ctx, BroadcastMarkdownKey(rendered.ID), rendered)
}

func (r *Records) PutEmails(ctx context.Context, emails []domain.Email) error {
	return r.putJSON(ctx, KeyEmails, emails)
}

func (r *Records) Emails(ctx context.Context) ([]domain.Email, error) {
	var emails []domain.Email
	if err := r.getJSON(ctx, KeyEmails, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

func (r *Records) PutEmail(ctx context.Context, email domain.Email) error {
	return r.putJSON(ctx, EmailKey(email.ID), email)
}

func (r *Records) Cursor(ctx context.Context) (string, error) {
	data, err := r.blob.Get(ctx, KeyCursor)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Records) PutCursor(ctx context.Context, id string) error {
	if err := r.blob.Put(ctx, KeyCursor, []byte(id), ContentTypeText); err != nil {
		return fmt.Errorf("put %s: %w", KeyCursor, err)
	}
	return nil
}
