package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_History_FilterQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		wantFilter string
		wantInURL  bool
	}{
		{name: "all omits the parameter", filter: "all", wantInURL: false},
		{name: "empty omits the parameter", filter: "", wantInURL: false},
		{name: "toxic", filter: "toxic", wantFilter: "toxic", wantInURL: true},
		{name: "favorites", filter: "favorites", wantFilter: "favorites", wantInURL: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				_, _ = w.Write([]byte(`{"success":true,"history":[{"id":"r1","original_text":"hey","is_toxic":false}],"count":1}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, "tok")
			records, err := client.History(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "r1", records[0].ID)

			if tt.wantInURL {
				assert.Equal(t, "filter="+tt.wantFilter, gotQuery)
			} else {
				assert.Empty(t, gotQuery)
			}
		})
	}
}

func TestClient_Login(t *testing.T) {
	t.Run("returns token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/auth/login", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"access_token":"tok-abc"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")
		token, err := client.Login(context.Background(), "user@example.com", "hunter2!")
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", token)
	})

	t.Run("missing token is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "")
		_, err := client.Login(context.Background(), "user@example.com", "hunter2!")
		assert.Error(t, err)
	})
}

func TestClient_ToggleFavorite(t *testing.T) {
	t.Run("server reports resulting state", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/history/rec-1/favorite", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"favorite":true,"is_favorite":true}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "tok")
		state, err := client.ToggleFavorite(context.Background(), "rec-1")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.True(t, *state)
	})

	t.Run("server silent about state", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, "tok")
		state, err := client.ToggleFavorite(context.Background(), "rec-1")
		require.NoError(t, err)
		assert.Nil(t, state)
	})
}

func TestClient_DeleteRecord(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true,"message":"Record deleted successfully"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	require.NoError(t, client.DeleteRecord(context.Background(), "rec-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/history/rec-1", gotPath)
}

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "batch.txt", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two\n", string(content))

		_, _ = w.Write([]byte(`{
			"filename": "batch.txt",
			"analyzed_lines": 2,
			"toxic_count": 1,
			"results": [
				{"line_number": 1, "text": "line one", "toxicity_score": 0.91, "is_toxic": true},
				{"line_number": 2, "text": "line two", "toxicity_score": 0.02, "is_toxic": false}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	result, err := client.Upload(context.Background(), "batch.txt", strings.NewReader("line one\nline two\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.AnalyzedLines)
	assert.Equal(t, 1, result.ToxicCount)
	assert.Equal(t, 1, result.SafeCount())
	assert.InDelta(t, 50.0, result.ToxicPercent(), 0.001)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].IsToxic)
}

func TestClient_Upload_StreamsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A streamed body arrives chunked, without a pre-computed length.
		assert.Equal(t, int64(-1), r.ContentLength)

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Len(t, content, 1<<16)

		_, _ = w.Write([]byte(`{"filename":"big.txt","analyzed_lines":1,"toxic_count":0,"results":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "")
	result, err := client.Upload(context.Background(), "big.txt", strings.NewReader(strings.Repeat("a", 1<<16)))
	require.NoError(t, err)
	assert.Equal(t, 1, result.AnalyzedLines)
}

func TestClient_Upload_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Only .txt files are supported"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "tok")
	_, err := client.Upload(context.Background(), "batch.bin", strings.NewReader("xx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only .txt files are supported")
}
