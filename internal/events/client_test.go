package events

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", append([]Option{WithLogger(log.NopLogger{})}, opts...)...)
}

func TestFetchEvents_Success(t *testing.T) {
	body := `[
		{"event_type":"merge","author":"carol","from_branch":"dev","to_branch":"main","timestamp":"2024-01-23T15:04:05Z"},
		{"event_type":"push","author":"alice","from_branch":null,"to_branch":"main","timestamp":"2024-01-23T15:00:00Z"},
		{"event_type":"release","author":"dave","to_branch":"main","timestamp":"x"}
	]`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	got, err := c.FetchEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, domain.EventMerge, got[0].Type)
	require.Equal(t, "carol", got[0].Author)
	require.Equal(t, "dev", got[0].FromBranch)
	require.Equal(t, "", got[1].FromBranch)
	require.Equal(t, domain.EventType("release"), got[2].Type)
	require.Equal(t, "x", got[2].Timestamp)
}

func TestFetchEvents_EmptyArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	got, err := c.FetchEvents(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFetchEvents_Headers(t *testing.T) {
	var gotID, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}, WithUserAgent("hookwatch/test"))

	_, err := c.FetchEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, gotID, 36)
	require.Equal(t, "hookwatch/test", gotUA)
}

func TestFetchEvents_ResponseErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Failed to fetch events"}`, wantStatus: 500},
		{name: "not found", status: http.StatusNotFound, body: "nope", wantStatus: 404},
		{name: "not json", status: http.StatusOK, body: "<html></html>", wantStatus: 200},
		{name: "object instead of array", status: http.StatusOK, body: `{"events":[]}`, wantStatus: 200},
		{name: "null body", status: http.StatusOK, body: `null`, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := c.FetchEvents(context.Background())
			require.Nil(t, got)

			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			require.Equal(t, tt.wantStatus, respErr.StatusCode)
			require.Contains(t, respErr.URL, "/api/events")
		})
	}
}

func TestFetchEvents_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, WithLogger(log.NopLogger{}))
	got, err := c.FetchEvents(context.Background())
	require.Nil(t, got)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, url+"/api/events", transportErr.URL)
}

func TestFetchEvents_Cancelled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchEvents(ctx)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestFetchEvents_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := c.FetchEvents(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestCheckHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2024-01-23T15:04:05.123456","db":"ok"}`))
	})

	h, err := c.CheckHealth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", h.Status)
	require.Equal(t, "2024-01-23T15:04:05.123456", h.Timestamp)
	require.Equal(t, "ok", h.Fields["db"])
	require.Equal(t, h.Fields, h.Raw)
}

func TestCheckHealth_NonObjectPayload(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus string
		wantRaw    any
	}{
		{name: "string", body: `"ok"`, wantStatus: "ok", wantRaw: "ok"},
		{name: "bool", body: `true`, wantRaw: true},
		{name: "number", body: `1`, wantRaw: float64(1)},
		{name: "array", body: `["db","cache"]`, wantRaw: []any{"db", "cache"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			h, err := c.CheckHealth(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, h.Status)
			require.Equal(t, tt.wantRaw, h.Raw)
			require.Nil(t, h.Fields)
		})
	}
}

func TestCheckHealth_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>up</html>`))
	})

	_, err := c.CheckHealth(context.Background())
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
}

func TestCheckHealth_Unhealthy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.CheckHealth(context.Background())
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusServiceUnavailable, respErr.StatusCode)
	require.Contains(t, err.Error(), "unexpected status 503")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	require.Equal(t, "http://example.com", New("http://example.com///").BaseURL())
}
