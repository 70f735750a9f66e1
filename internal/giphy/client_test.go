package giphy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gifdex/gifdex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{
	"data": [
		{
			"id": "abc123",
			"title": "Grumpy Cat",
			"url": "https://giphy.example/gifs/abc123",
			"rating": "g",
			"images": {
				"fixed_width": {"url": "https://media.example/abc123/200w.gif", "width": "200", "height": "150"},
				"original": {"url": "https://media.example/abc123/orig.gif", "width": "480", "height": "360"}
			}
		},
		{
			"id": "def456",
			"title": "",
			"url": "https://giphy.example/gifs/def456",
			"rating": "pg",
			"images": {
				"original": {"url": "https://media.example/def456/orig.gif", "width": "320", "height": "bogus"}
			}
		}
	],
	"pagination": {"total_count": 2, "count": 2, "offset": 0},
	"meta": {"status": 200, "msg": "OK"}
}`

func TestClient_Search_ParsesResults(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/v1/gifs/search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", nil)
	gifs, err := c.Search(context.Background(), "cats", 10)
	require.NoError(t, err)

	assert.Equal(t, "cats", gotQuery.Get("q"))
	assert.Equal(t, "10", gotQuery.Get("limit"))
	assert.Equal(t, "test-key", gotQuery.Get("api_key"))

	require.Len(t, gifs, 2)
	assert.Equal(t, "abc123", gifs[0].ID)
	assert.Equal(t, "Grumpy Cat", gifs[0].Title)
	assert.Equal(t, "https://media.example/abc123/200w.gif", gifs[0].PreviewURL)
	assert.Equal(t, 200, gifs[0].Width)
	assert.Equal(t, 150, gifs[0].Height)

	// Missing fixed_width falls back to original; bad dimension maps to zero
	assert.Equal(t, "https://media.example/def456/orig.gif", gifs[1].PreviewURL)
	assert.Equal(t, 320, gifs[1].Width)
	assert.Equal(t, 0, gifs[1].Height)
	assert.Equal(t, "def456", gifs[1].DisplayTitle())
}

func TestClient_Search_DefaultsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	gifs, err := c.Search(context.Background(), "dogs", 0)
	require.NoError(t, err)
	assert.Empty(t, gifs)
}

func TestClient_Search_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"meta":{"status":403,"msg":"Invalid API Key"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", nil)
	_, err := c.Search(context.Background(), "cats", 10)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", nil)
	_, err := c.Search(context.Background(), "cats", 10)
	assert.Error(t, err)
}

func TestClient_Search_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient(srv.URL, "k", nil)
	_, err := c.Search(context.Background(), "cats", 10)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}
