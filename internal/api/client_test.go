package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toxctl/toxctl/internal/common"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	client, err := NewClient(Config{BaseURL: serverURL, Timeout: 5 * time.Second}, &staticTokens{token: token})
	require.NoError(t, err)
	client.retryOpts = common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid http", config: Config{BaseURL: "http://localhost:5000"}, wantErr: false},
		{name: "valid https", config: Config{BaseURL: "https://example.com"}, wantErr: false},
		{name: "missing URL", config: Config{}, wantErr: true},
		{name: "bad scheme", config: Config{BaseURL: "ftp://example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Call_AttachesBearerOnlyWhenPresent(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{name: "authenticated", token: "tok-123", wantHeader: "Bearer tok-123"},
		{name: "guest", token: "", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			var gotContentType string
			var gotRequestID string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotContentType = r.Header.Get("Content-Type")
				gotRequestID = r.Header.Get("X-Request-ID")
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, tt.token)
			require.NoError(t, client.Call(context.Background(), http.MethodGet, "/api/health", nil, nil))
			assert.Equal(t, tt.wantHeader, gotAuth)
			assert.Equal(t, "application/json", gotContentType)
			assert.NotEmpty(t, gotRequestID)
		})
	}
}

func TestClient_Call_UnauthorizedWithTokenForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token has expired"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "stale-token")
	loggedOut := false
	client.OnUnauthorized(func() { loggedOut = true })

	err := client.Call(context.Background(), http.MethodGet, "/api/history", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSessionExpired)
	assert.True(t, loggedOut)
	assert.Contains(t, err.Error(), "Session expired")
}

func TestClient_Call_UnauthorizedWithoutTokenDoesNotForceLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Authentication required. Please login to view history."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	loggedOut := false
	client.OnUnauthorized(func() { loggedOut = true })

	err := client.Call(context.Background(), http.MethodGet, "/api/history", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.False(t, loggedOut)
	assert.Contains(t, err.Error(), "Authentication required")
}

func TestClient_Call_NormalizesMalformedBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "malformed success body",
			status:  http.StatusOK,
			body:    "<html>not json</html>",
			wantMsg: "Invalid server response",
		},
		{
			name:    "malformed error body falls back to generic message",
			status:  http.StatusInternalServerError,
			body:    "<html>boom</html>",
			wantMsg: "Request failed",
		},
		{
			name:    "server error message surfaces",
			status:  http.StatusBadRequest,
			body:    `{"error":"Text exceeds maximum length of 5000 characters"}`,
			wantMsg: "Text exceeds maximum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, "")
			var out map[string]any
			err := client.Call(context.Background(), http.MethodGet, "/api/health", nil, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Call_RetriesRateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	require.NoError(t, client.Call(context.Background(), http.MethodGet, "/api/health", nil, nil))
	assert.Equal(t, 3, attempts)
}

func TestClient_Call_ApplicationErrorsFailOnce(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Text cannot be empty"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	err := client.Call(context.Background(), http.MethodPost, "/api/analyze", map[string]string{"text": ""}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestClient_Analyze_SendsExactText(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success":true,"is_toxic":false,"original_text":"you are lovely","record_id":"rec-1"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	result, err := client.Analyze(context.Background(), "you are lovely")
	require.NoError(t, err)
	assert.Equal(t, "you are lovely", gotBody["text"])
	assert.Equal(t, "rec-1", result.RecordID)
	assert.False(t, result.IsToxic)
}
