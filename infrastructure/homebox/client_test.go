package homebox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/homeboxlabs/labelgen/domain/assetlist"
)

// fakeHomeboxServer mimics the two Homebox endpoints the client uses. It
// tracks how many label requests it received via the counter.
func fakeHomeboxServer(t *testing.T, counter *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("username") != "tester" || r.PostForm.Get("password") != "hunter2" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.PostForm.Get("stayLoggedIn") != "false" {
			http.Error(w, "unexpected stayLoggedIn", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":           "Bearer test-token",
			"attachmentToken": "attach-token",
			"expiresAt":       "2026-01-01T00:00:00Z",
		})
	})
	mux.HandleFunc("GET /api/v1/labelmaker/asset/{id}", func(w http.ResponseWriter, r *http.Request) {
		counter.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.PathValue("id") == "404-404" {
			http.Error(w, "no such asset", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png:" + r.PathValue("id")))
	})

	return httptest.NewServer(mux)
}

func testID(t *testing.T, major, minor int) assetlist.AssetID {
	t.Helper()
	id, err := assetlist.NewAssetID(major, minor)
	require.NoError(t, err)
	return id
}

func TestClient_Login(t *testing.T) {
	var counter atomic.Int64
	srv := fakeHomeboxServer(t, &counter)
	defer srv.Close()

	client := NewClient(srv.URL)
	session, err := client.Login(context.Background(), "tester", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", session.Token())
	require.Equal(t, "attach-token", session.AttachmentToken())
	require.Equal(t, "2026-01-01T00:00:00Z", session.ExpiresAt())
}

func TestClient_Login_BadCredentials(t *testing.T) {
	var counter atomic.Int64
	srv := fakeHomeboxServer(t, &counter)
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "tester", "wrong")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	require.Equal(t, http.StatusUnauthorized, clientErr.StatusCode())
	require.Equal(t, "login", clientErr.Operation())
}

func TestClient_AssetLabel(t *testing.T) {
	var counter atomic.Int64
	srv := fakeHomeboxServer(t, &counter)
	defer srv.Close()

	client := NewClient(srv.URL)
	session, err := client.Login(context.Background(), "tester", "hunter2")
	require.NoError(t, err)

	label, err := client.AssetLabel(context.Background(), session, testID(t, 12, 7))
	require.NoError(t, err)
	require.Equal(t, []byte("png:012-007"), label)
	require.Equal(t, int64(1), counter.Load())
}

func TestClient_AssetLabel_NotFound(t *testing.T) {
	var counter atomic.Int64
	srv := fakeHomeboxServer(t, &counter)
	defer srv.Close()

	client := NewClient(srv.URL)
	session, err := client.Login(context.Background(), "tester", "hunter2")
	require.NoError(t, err)

	_, err = client.AssetLabel(context.Background(), session, testID(t, 404, 404))
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	require.Equal(t, http.StatusNotFound, clientErr.StatusCode())
	// 404 is not retryable; exactly one request must have been made.
	require.Equal(t, int64(1), counter.Load())
}

func TestClient_AssetLabel_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, "flaky", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("png"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL,
		WithMaxRetries(5),
		WithInitialDelay(time.Millisecond),
		WithBackoffFactor(1.0),
	)

	label, err := client.AssetLabel(context.Background(), Session{token: "t"}, testID(t, 0, 1))
	require.NoError(t, err)
	require.Equal(t, []byte("png"), label)
	require.Equal(t, int64(3), attempts.Load())
}

func TestClient_AssetLabel_RetriesExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL,
		WithMaxRetries(1),
		WithInitialDelay(time.Millisecond),
	)

	_, err := client.AssetLabel(context.Background(), Session{token: "t"}, testID(t, 0, 1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "max retries exceeded")
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL,
		WithMaxRetries(10),
		WithInitialDelay(time.Hour),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.AssetLabel(ctx, Session{token: "t"}, testID(t, 0, 1))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_BaseURL(t *testing.T) {
	require.Equal(t, "https://box.example.com/api", NewClient("https://box.example.com/").BaseURL())
	require.Equal(t, "https://box.example.com/api", NewClient("https://box.example.com").BaseURL())
}
