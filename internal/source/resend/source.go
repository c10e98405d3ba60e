// Package resend fetches audiences, broadcasts and emails from the
// upstream email provider's REST API.
package resend

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"newsletter_sync/internal/domain"
)

type Config struct {
	BaseURL     string
	APIKey      string
	PageSize    int
	Timeout     time.Duration
	MinInterval time.Duration
}

type Source struct {
	client   *Client
	pageSize int
	logger   *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	log := logger.With("source", "resend")
	return &Source{
		client: NewClient(ClientConfig{
			BaseURL:     cfg.BaseURL,
			APIKey:      cfg.APIKey,
			Timeout:     cfg.Timeout,
			MinInterval: cfg.MinInterval,
		}, log),
		pageSize: cfg.PageSize,
		logger:   log,
	}
}

// Audiences fetches the full audience collection. A single page is
// expected, but pagination is driven to completion regardless.
func (s *Source) Audiences(ctx context.Context) ([]domain.Audience, error) {
	items, err := FetchAll(ctx, func(ctx context.Context, before string) (Page[apiAudience], error) {
		var env listEnvelope[apiAudience]
		if err := s.client.call(ctx, "GET", s.listPath("/audiences", before), &env); err != nil {
			return Page[apiAudience]{}, err
		}
		return envelopePage(env), nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch audiences: %w", err)
	}

	audiences := make([]domain.Audience, 0, len(items))
	for _, a := range items {
		audiences = append(audiences, domain.Audience{
			ID:        a.ID,
			Name:      a.Name,
			CreatedAt: s.parseTime(a.ID, a.CreatedAt),
		})
	}
	return audiences, nil
}

// Broadcasts fetches the full broadcast collection, newest first.
func (s *Source) Broadcasts(ctx context.Context) ([]domain.Broadcast, error) {
	items, err := FetchAll(ctx, func(ctx context.Context, before string) (Page[apiBroadcast], error) {
		var env listEnvelope[apiBroadcast]
		if err := s.client.call(ctx, "GET", s.listPath("/broadcasts", before), &env); err != nil {
			return Page[apiBroadcast]{}, err
		}
		return envelopePage(env), nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch broadcasts: %w", err)
	}

	broadcasts := make([]domain.Broadcast, 0, len(items))
	for _, b := range items {
		broadcasts = append(broadcasts, s.transformBroadcast(b))
	}
	return broadcasts, nil
}

// Broadcast fetches one broadcast's detail, which carries html/text.
func (s *Source) Broadcast(ctx context.Context, id string) (*domain.Broadcast, error) {
	var b apiBroadcast
	if err := s.client.call(ctx, "GET", "/broadcasts/"+url.PathEscape(id), &b); err != nil {
		return nil, fmt.Errorf("fetch broadcast %s: %w", id, err)
	}
	broadcast := s.transformBroadcast(b)
	return &broadcast, nil
}

// Emails fetches sent emails. With an empty cursor the full collection
// is paginated to completion; with a stored cursor exactly one page
// anchored at it is fetched.
func (s *Source) Emails(ctx context.Context, sinceCursor string) ([]domain.Email, error) {
	fn := func(ctx context.Context, before string) (Page[apiEmail], error) {
		var env listEnvelope[apiEmail]
		if err := s.client.call(ctx, "GET", s.listPath("/emails", before), &env); err != nil {
			return Page[apiEmail]{}, err
		}
		return envelopePage(env), nil
	}

	var items []apiEmail
	var err error
	if sinceCursor == "" {
		items, err = FetchAll(ctx, fn)
	} else {
		items, err = FetchSince(ctx, fn, sinceCursor)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch emails: %w", err)
	}

	emails := make([]domain.Email, 0, len(items))
	for _, e := range items {
		emails = append(emails, domain.Email{
			ID:        e.ID,
			From:      e.From,
			Subject:   e.Subject,
			HTML:      e.HTML,
			CreatedAt: s.parseTime(e.ID, e.CreatedAt),
		})
	}
	return emails, nil
}

// Email fetches one email's detail, which carries its html.
func (s *Source) Email(ctx context.Context, id string) (*domain.Email, error) {
	var e apiEmail
	if err := s.client.call(ctx, "GET", "/emails/"+url.PathEscape(id), &e); err != nil {
		return nil, fmt.Errorf("fetch email %s: %w", id, err)
	}
	return &domain.Email{
		ID:        e.ID,
		From:      e.From,
		Subject:   e.Subject,
		HTML:      e.HTML,
		CreatedAt: s.parseTime(e.ID, e.CreatedAt),
	}, nil
}

func (s *Source) listPath(path, before string) string {
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", s.pageSize))
	if before != "" {
		q.Set("before", before)
	}
	return path + "?" + q.Encode()
}

type hasID interface{ id() string }

func (a apiAudience) id() string  { return a.ID }
func (b apiBroadcast) id() string { return b.ID }
func (e apiEmail) id() string     { return e.ID }

func envelopePage[T hasID](env listEnvelope[T]) Page[T] {
	p := Page[T]{Items: env.Data, HasMore: env.HasMore}
	if len(env.Data) > 0 {
		p.NextCursor = env.Data[len(env.Data)-1].id()
	}
	return p
}

func (s *Source) transformBroadcast(b apiBroadcast) domain.Broadcast {
	return domain.Broadcast{
		ID:          b.ID,
		AudienceID:  b.AudienceID,
		Name:        b.Name,
		Subject:     b.Subject,
		From:        b.From,
		ReplyTo:     b.ReplyTo,
		PreviewText: b.PreviewText,
		Status:      b.Status,
		HTML:        b.HTML,
		Text:        b.Text,
		CreatedAt:   s.parseTime(b.ID, b.CreatedAt),
		SentAt:      s.parseTimePtr(b.ID, b.SentAt),
		ScheduledAt: s.parseTimePtr(b.ID, b.ScheduledAt),
	}
}

func (s *Source) parseTime(id, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		s.logger.Warn("failed to parse timestamp", "id", id, "value", value)
		return time.Time{}
	}
	return t
}

func (s *Source) parseTimePtr(id string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t := s.parseTime(id, *value)
	if t.IsZero() {
		return nil
	}
	return &t
}
