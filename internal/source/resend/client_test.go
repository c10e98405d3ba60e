package resend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSource(t *testing.T, handler http.Handler, minInterval time.Duration) *Source {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL:     server.URL,
		APIKey:      "re_test_key",
		PageSize:    2,
		Timeout:     5 * time.Second,
		MinInterval: minInterval,
	}, testLogger())
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[],"has_more":false}`))
	}), 0)

	_, err := src.Audiences(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
}

func TestClient_NonOKStatusIsUpstreamError(t *testing.T) {
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rate limited"}`, http.StatusTooManyRequests)
	}), 0)

	_, err := src.Broadcasts(context.Background())

	require.Error(t, err)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
}

func TestClient_SpacesConsecutiveCalls(t *testing.T) {
	const interval = 50 * time.Millisecond

	var calls atomic.Int32
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n < 3 {
			w.Write([]byte(`{"data":[{"id":"a"},{"id":"b"}],"has_more":true}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"c"}],"has_more":false}`))
	}), interval)

	start := time.Now()
	emails, err := src.Emails(context.Background(), "")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, emails, 5)
	assert.EqualValues(t, 3, calls.Load())
	// N calls take at least (N-1) spacing intervals.
	assert.GreaterOrEqual(t, elapsed, 2*interval)
}

func TestClient_FailedCallStillConsumesQuota(t *testing.T) {
	const interval = 50 * time.Millisecond

	var calls atomic.Int32
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data":[],"has_more":false}`))
	}), interval)

	ctx := context.Background()
	start := time.Now()

	_, err := src.Audiences(ctx)
	require.Error(t, err)

	_, err = src.Audiences(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestClient_ThrottleHonorsContextCancellation(t *testing.T) {
	src := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"has_more":false}`))
	}), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())

	_, err := src.Audiences(ctx)
	require.NoError(t, err)

	// The second call would wait a minute; cancellation releases it.
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = src.Audiences(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
