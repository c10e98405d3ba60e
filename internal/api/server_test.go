package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter_sync/internal/config"
	"newsletter_sync/internal/domain"
	"newsletter_sync/internal/storage"
)

type stubSyncer struct {
	stats *domain.SyncStats
	err   error
	calls int
}

func (s *stubSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	s.calls++
	return s.stats, s.err
}

type stubStore struct {
	broadcasts    []domain.Broadcast
	broadcastsErr error
	infos         map[string]*domain.Broadcast
}

func (s *stubStore) Broadcasts(ctx context.Context) ([]domain.Broadcast, error) {
	if s.broadcastsErr != nil {
		return nil, s.broadcastsErr
	}
	return s.broadcasts, nil
}

func (s *stubStore) BroadcastInfo(ctx context.Context, id string) (*domain.Broadcast, error) {
	info, ok := s.infos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return info, nil
}

func newTestServer(syncer Syncer, store FeedStore) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	feedCfg := config.FeedConfig{
		Title:       "Test Feed",
		Description: "Testing",
		BaseURL:     "https://example.com",
	}
	return NewServer(syncer, store, feedCfg, "s3cret", logger).Routes()
}

func doRequest(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleSync_RejectsBadToken(t *testing.T) {
	syncer := &stubSyncer{}
	handler := newTestServer(syncer, &stubStore{})

	for _, token := range []string{"", "wrong"} {
		rec := doRequest(handler, http.MethodGet, "/api/sync", token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		// No sync runs and no upstream work happens on auth failure.
		assert.Equal(t, 0, syncer.calls)
	}
}

func TestHandleSync_Success(t *testing.T) {
	syncer := &stubSyncer{stats: &domain.SyncStats{
		RunID:       "run-1",
		Audiences:   2,
		Broadcasts:  5,
		NewEmails:   1,
		TotalEmails: 9,
		Enriched:    4,
		Skipped:     1,
	}}
	handler := newTestServer(syncer, &stubStore{})

	rec := doRequest(handler, http.MethodGet, "/api/sync", "s3cret")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 2, resp["audiences"])
	assert.EqualValues(t, 5, resp["broadcasts"])
	assert.EqualValues(t, 1, resp["newEmails"])
	assert.EqualValues(t, 9, resp["totalEmails"])
}

func TestHandleSync_InternalError(t *testing.T) {
	syncer := &stubSyncer{err: errors.New("sync broadcasts: upstream status 500")}
	handler := newTestServer(syncer, &stubStore{})

	rec := doRequest(handler, http.MethodGet, "/api/sync", "s3cret")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sync failed", resp["error"])
	assert.Contains(t, resp["details"], "upstream status 500")
}

func TestHandleFeed_BeforeFirstSync(t *testing.T) {
	handler := newTestServer(&stubSyncer{}, &stubStore{broadcastsErr: storage.ErrNotFound})

	rec := doRequest(handler, http.MethodGet, "/feed.xml", "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no broadcasts synced yet", resp["error"])
}

func TestHandleFeed_RendersStoredBroadcasts(t *testing.T) {
	sent := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	store := &stubStore{
		broadcasts: []domain.Broadcast{
			{ID: "b1", Subject: "Hi", SentAt: &sent},
			{ID: "b2", Subject: "No detail yet"},
		},
		infos: map[string]*domain.Broadcast{
			"b1": {ID: "b1", Subject: "Hi", HTML: "<p>Hi</p>"},
		},
	}
	handler := newTestServer(&stubSyncer{}, store)

	rec := doRequest(handler, http.MethodGet, "/feed.xml", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Hi</title>")
	assert.Contains(t, body, "<![CDATA[<p>Hi</p>]]>")
	// b2 appears without a description rather than being dropped.
	assert.Contains(t, body, "<title>No detail yet</title>")
}

func TestHandleBroadcast_ServesStoredHTML(t *testing.T) {
	store := &stubStore{
		infos: map[string]*domain.Broadcast{
			"b1": {ID: "b1", HTML: "<html><body>Hi</body></html>"},
		},
	}
	handler := newTestServer(&stubSyncer{}, store)

	rec := doRequest(handler, http.MethodGet, "/broadcasts/b1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<html><body>Hi</body></html>", rec.Body.String())
}

func TestHandleBroadcast_NotFound(t *testing.T) {
	handler := newTestServer(&stubSyncer{}, &stubStore{})

	rec := doRequest(handler, http.MethodGet, "/broadcasts/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
