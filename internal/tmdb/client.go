package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("tmdb: resource not found")

// ErrInvalidKind is returned for media kinds other than "movie" and "tv".
var ErrInvalidKind = errors.New("tmdb: media kind must be movie or tv")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb api error: %s (%s)", e.Status, e.Endpoint)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logrus.FieldLogger
}

type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient uses hc for requests. A nil client keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on a copy of the HTTP client, leaving
// a client passed to WithHTTPClient untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithRateLimit caps outgoing requests to perSecond with the given burst.
// A non-positive rate disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger enables debug logging of every request.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Trending(ctx context.Context) (*Page, error) {
	return c.page(ctx, "/trending/all/week", nil)
}

func (c *Client) Popular(ctx context.Context) (*Page, error) {
	return c.page(ctx, "/movie/popular", nil)
}

func (c *Client) TopRated(ctx context.Context) (*Page, error) {
	return c.page(ctx, "/movie/top_rated", nil)
}

func (c *Client) NowPlaying(ctx context.Context) (*Page, error) {
	return c.page(ctx, "/movie/now_playing", nil)
}

func (c *Client) PopularTV(ctx context.Context) (*Page, error) {
	return c.page(ctx, "/tv/popular", nil)
}

func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) (*Page, error) {
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	q.Set("sort_by", "popularity.desc")
	return c.page(ctx, "/discover/movie", q)
}

func (c *Client) SearchMulti(ctx context.Context, query string) (*Page, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.page(ctx, "/search/multi", q)
}

func (c *Client) GenreList(ctx context.Context, kind string) ([]Genre, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var gl GenreList
	if err := c.get(ctx, "/genre/"+kind+"/list", nil, &gl); err != nil {
		return nil, err
	}
	return gl.Genres, nil
}

func (c *Client) Details(ctx context.Context, kind string, id int) (*Details, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("append_to_response", "credits")
	var d Details
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), q, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) Similar(ctx context.Context, kind string, id int) (*Page, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return c.page(ctx, fmt.Sprintf("/%s/%d/similar", kind, id), nil)
}

func (c *Client) Videos(ctx context.Context, kind string, id int) ([]Video, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var vl VideoList
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/videos", kind, id), nil, &vl); err != nil {
		return nil, err
	}
	return vl.Results, nil
}

func checkKind(kind string) error {
	if kind != "movie" && kind != "tv" {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return nil
}

func (c *Client) page(ctx context.Context, endpoint string, q url.Values) (*Page, error) {
	var p Page
	if err := c.get(ctx, endpoint, q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	u := c.baseURL + endpoint
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"elapsed":  time.Since(start).Round(time.Millisecond),
		}).Debug("tmdb request")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
