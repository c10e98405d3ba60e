// Package api exposes the sync trigger and the read-side feed/detail
// endpoints.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"newsletter_sync/internal/config"
	"newsletter_sync/internal/domain"
	"newsletter_sync/internal/feed"
	"newsletter_sync/internal/storage"
)

type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// FeedStore is the read side of the record store.
type FeedStore interface {
	Broadcasts(ctx context.Context) ([]domain.Broadcast, error)
	BroadcastInfo(ctx context.Context, id string) (*domain.Broadcast, error)
}

type Server struct {
	syncer  Syncer
	store   FeedStore
	feedCfg config.FeedConfig
	secret  string
	logger  *slog.Logger
}

func NewServer(syncer Syncer, store FeedStore, feedCfg config.FeedConfig, triggerSecret string, logger *slog.Logger) *Server {
	return &Server{
		syncer:  syncer,
		store:   store,
		feedCfg: feedCfg,
		secret:  triggerSecret,
		logger:  logger.With("component", "api"),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/sync", s.handleSync)
	r.Get("/feed.xml", s.handleFeed)
	r.Get("/broadcasts/{id}", s.handleBroadcast)

	return r
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		respondError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	stats, err := s.syncer.Sync(r.Context())
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		respondError(w, http.StatusInternalServerError, "sync failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, syncResponse{
		Success:     true,
		RunID:       stats.RunID,
		Audiences:   stats.Audiences,
		Broadcasts:  stats.Broadcasts,
		NewEmails:   stats.NewEmails,
		TotalEmails: stats.TotalEmails,
		Enriched:    stats.Enriched,
		Skipped:     stats.Skipped,
	})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	broadcasts, err := s.store.Broadcasts(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no broadcasts synced yet", "trigger a sync first")
		return
	}
	if err != nil {
		s.logger.Error("read broadcasts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read feed data", err.Error())
		return
	}

	// Missing enrichment degrades to an item without a description.
	htmlByID := make(map[string]string, len(broadcasts))
	for _, b := range broadcasts {
		info, err := s.store.BroadcastInfo(ctx, b.ID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Warn("read broadcast detail failed", "broadcast_id", b.ID, "error", err)
			continue
		}
		htmlByID[b.ID] = info.HTML
	}

	out, err := feed.Build(feed.Config{
		Title:       s.feedCfg.Title,
		Description: s.feedCfg.Description,
		BaseURL:     s.feedCfg.BaseURL,
	}, broadcasts, htmlByID)
	if err != nil {
		s.logger.Error("build feed failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build feed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := s.store.BroadcastInfo(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "broadcast not found", "")
		return
	}
	if err != nil {
		s.logger.Error("read broadcast detail failed", "broadcast_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read broadcast", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(info.HTML))
}

func (s *Server) authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) == 1
}

type syncResponse struct {
	Success     bool   `json:"success"`
	RunID       string `json:"run_id"`
	Audiences   int    `json:"audiences"`
	Broadcasts  int    `json:"broadcasts"`
	NewEmails   int    `json:"newEmails,omitempty"`
	TotalEmails int    `json:"totalEmails,omitempty"`
	Enriched    int    `json:"enriched"`
	Skipped     int    `json:"skipped"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, errorResponse{Error: message, Details: details})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}
