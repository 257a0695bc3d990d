package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-client/internal/biddingerrors"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c, srv
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		expectedURL string
		expectErr   bool
	}{
		{name: "adds_trailing_slash", baseURL: "http://localhost:3000", expectedURL: "http://localhost:3000/"},
		{name: "keeps_path_prefix", baseURL: "https://api.example.com/v1", expectedURL: "https://api.example.com/v1/"},
		{name: "relative_url", baseURL: "/auctions", expectErr: true},
		{name: "unsupported_scheme", baseURL: "ftp://example.com/", expectErr: true},
		{name: "missing_host", baseURL: "http:///path", expectErr: true},
		{name: "unparsable", baseURL: "http://[::1", expectErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(Config{BaseURL: tc.baseURL})
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedURL, c.BaseURL())
		})
	}
}

func TestClient_Get(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/items", r.URL.Path)
		require.Equal(t, "lamp", r.URL.Query().Get("search"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		require.True(t, strings.HasPrefix(r.Header.Get("X-Request-ID"), "req-"))
		require.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","price":9.5},{"id":"2","price":3}]`)
	})

	var items []item
	err := c.Get(context.Background(), "/items", url.Values{"search": []string{"lamp"}}, &items)

	require.NoError(t, err)
	require.Equal(t, []item{{ID: "1", Price: 9.5}, {ID: "2", Price: 3}}, items)
}

func TestClient_PostAndPatchSendJSON(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.JSONEq(t, `{"id":"7","price":12}`, string(body))
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"7","price":12}`)
	})

	var created item
	require.NoError(t, c.Post(context.Background(), "items", item{ID: "7", Price: 12}, &created))
	require.Equal(t, "7", created.ID)

	require.NoError(t, c.Patch(context.Background(), "items/7", item{ID: "7", Price: 12}, nil))
	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"POST /items", "PATCH /items/7"}, seen)
}

func TestClient_Delete(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/items/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{}`)
	})

	require.NoError(t, c.Delete(context.Background(), "items/9"))
}

func TestClient_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusMultipleChoices} {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = io.WriteString(w, ` {"error":"nope"} `)
			})

			var out item
			err := c.Get(context.Background(), "items/1", nil, &out)

			require.ErrorIs(t, err, biddingerrors.ErrUnexpectedStatus)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, status, statusErr.StatusCode)
			require.Equal(t, `{"error":"nope"}`, statusErr.Body)
			require.Equal(t, http.MethodGet, statusErr.Method)
		})
	}
}

func TestClient_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"id":`},
		{name: "wrong_shape", body: `{"id":"1"}`},
		{name: "empty", body: ``},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			})

			var items []item
			err := c.Get(context.Background(), "items", nil, &items)
			require.ErrorIs(t, err, biddingerrors.ErrDecode)
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("server_down", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		c, err := New(Config{BaseURL: base, Timeout: time.Second})
		require.NoError(t, err)

		err = c.Get(context.Background(), "items", nil, nil)
		require.ErrorIs(t, err, biddingerrors.ErrTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		c, err := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
		require.NoError(t, err)

		err = c.Get(context.Background(), "slow", nil, nil)
		require.ErrorIs(t, err, biddingerrors.ErrTransport)
	})

	t.Run("canceled_context", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.Get(ctx, "items", nil, nil)
		require.ErrorIs(t, err, biddingerrors.ErrTransport)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_ResolveKeepsBasePath(t *testing.T) {
	c, err := New(Config{BaseURL: "http://example.com/api"})
	require.NoError(t, err)

	require.Equal(t, "http://example.com/api/bids?auction_id=a+1", c.resolve("/bids", url.Values{"auction_id": []string{"a 1"}}))
	require.Equal(t, "http://example.com/api/auctions/42/result", c.resolve("auctions/42/result", nil))
}
