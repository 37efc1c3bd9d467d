package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Trending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/all/week", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[
			{"id":1,"title":"The Matrix","media_type":"movie","poster_path":"/m.jpg","vote_average":8.2,"genre_ids":[28,878]},
			{"id":2,"name":"Breaking Bad","media_type":"tv","poster_path":null,"first_air_date":"2008-01-20"}
		]}`))
	}))
	defer server.Close()

	client := New("tok", WithBaseURL(server.URL))

	page, err := client.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "The Matrix", page.Results[0].Title)
	assert.Equal(t, []int{28, 878}, page.Results[0].GenreIDs)
	require.NotNil(t, page.Results[0].PosterPath)
	assert.Equal(t, "/m.jpg", *page.Results[0].PosterPath)
	assert.Equal(t, "Breaking Bad", page.Results[1].Name)
	assert.Nil(t, page.Results[1].PosterPath)
	assert.Equal(t, "tv", page.Results[1].MediaType)
}

func TestClient_QueryParameters(t *testing.T) {
	tests := []struct {
		name  string
		call  func(*Client) error
		path  string
		query map[string]string
	}{
		{
			name:  "discover by genre",
			call:  func(c *Client) error { _, err := c.DiscoverByGenre(context.Background(), 16); return err },
			path:  "/discover/movie",
			query: map[string]string{"with_genres": "16", "sort_by": "popularity.desc"},
		},
		{
			name:  "multi search",
			call:  func(c *Client) error { _, err := c.SearchMulti(context.Background(), "bat man"); return err },
			path:  "/search/multi",
			query: map[string]string{"query": "bat man"},
		},
		{
			name:  "details with credits",
			call:  func(c *Client) error { _, err := c.Details(context.Background(), "tv", 42); return err },
			path:  "/tv/42",
			query: map[string]string{"append_to_response": "credits"},
		},
		{
			name: "similar",
			call: func(c *Client) error { _, err := c.Similar(context.Background(), "movie", 7); return err },
			path: "/movie/7/similar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				for k, v := range tt.query {
					assert.Equal(t, v, r.URL.Query().Get(k), k)
				}
				_, _ = w.Write([]byte(`{"results":[]}`))
			}))
			defer server.Close()

			require.NoError(t, tt.call(New("tok", WithBaseURL(server.URL))))
		})
	}
}

func TestClient_GenreListAndVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genre/movie/list":
			_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"}]}`))
		case "/movie/603/videos":
			_, _ = w.Write([]byte(`{"id":603,"results":[{"key":"abc","site":"YouTube","type":"Trailer"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := New("tok", WithBaseURL(server.URL))

	genres, err := client.GenreList(context.Background(), "movie")
	require.NoError(t, err)
	assert.Equal(t, []Genre{{ID: 28, Name: "Action"}}, genres)

	videos, err := client.Videos(context.Background(), "movie", 603)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc", videos[0].Key)
}

func TestClient_Details(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","runtime":136,
			"genres":[{"id":28,"name":"Action"}],
			"credits":{"cast":[{"name":"Keanu Reeves","character":"Neo","profile_path":"/k.jpg"}]}}`))
	}))
	defer server.Close()

	d, err := New("tok", WithBaseURL(server.URL)).Details(context.Background(), "movie", 603)
	require.NoError(t, err)
	assert.Equal(t, 603, d.ID)
	assert.Equal(t, "The Matrix", d.Title)
	assert.Equal(t, 136, d.Runtime)
	require.NotNil(t, d.Credits)
	assert.Equal(t, "Neo", d.Credits.Cast[0].Character)
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	d, err := New("tok", WithBaseURL(server.URL)).Details(context.Background(), "movie", 99999999)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := New("bad", WithBaseURL(server.URL)).Popular(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_InvalidKind(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := New("tok", WithBaseURL(server.URL)).Videos(context.Background(), "person", 1)
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.Zero(t, calls)
}

func TestClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("tok", WithBaseURL(server.URL), WithRateLimit(1, 1)).TopRated(ctx)
	assert.Error(t, err)
}

func TestClient_TimeoutDoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Second}

	c := New("tok", WithHTTPClient(shared), WithTimeout(5*time.Second))
	assert.Equal(t, time.Second, shared.Timeout)
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.NotSame(t, shared, c.httpClient)
}

func TestClient_NilHTTPClientKeepsDefault(t *testing.T) {
	var c *Client
	require.NotPanics(t, func() {
		c = New("tok", WithHTTPClient(nil), WithTimeout(3*time.Second))
	})
	require.NotNil(t, c.httpClient)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
}

func TestWithRateLimit_NonPositiveDisables(t *testing.T) {
	assert.Nil(t, New("tok", WithRateLimit(0, 20)).limiter)
	assert.NotNil(t, New("tok", WithRateLimit(40, 20)).limiter)
}
