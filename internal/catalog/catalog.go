package catalog

//go:generate mockgen -source=catalog.go -destination=mocks/source_mock.go -package=mocks

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/tmdb"
)

// Source is the raw catalog API. *tmdb.Client implements it.
type Source interface {
	Trending(ctx context.Context) (*tmdb.Page, error)
	Popular(ctx context.Context) (*tmdb.Page, error)
	TopRated(ctx context.Context) (*tmdb.Page, error)
	NowPlaying(ctx context.Context) (*tmdb.Page, error)
	PopularTV(ctx context.Context) (*tmdb.Page, error)
	DiscoverByGenre(ctx context.Context, genreID int) (*tmdb.Page, error)
	SearchMulti(ctx context.Context, query string) (*tmdb.Page, error)
	Details(ctx context.Context, kind string, id int) (*tmdb.Details, error)
	Similar(ctx context.Context, kind string, id int) (*tmdb.Page, error)
	Videos(ctx context.Context, kind string, id int) ([]tmdb.Video, error)
}

// Catalog never returns errors. Failures are logged and answered with samples
// or empty values. Each call is a single attempt.
type Catalog struct {
	src Source
	log logrus.FieldLogger
}

func New(src Source, log logrus.FieldLogger) *Catalog {
	log = logging.OrDiscard(log)
	return &Catalog{src: src, log: log.WithField("component", "catalog")}
}

func (c *Catalog) fail(op string, err error) {
	c.log.WithField("op", op).WithError(err).Warn("catalog request failed, using fallback")
}

func (c *Catalog) list(ctx context.Context, op string, fetch func(context.Context) (*tmdb.Page, error), fallback func() []Item) []Item {
	p, err := fetch(ctx)
	if err != nil {
		c.fail(op, err)
		return fallback()
	}
	return fromPage(p)
}

func (c *Catalog) Trending(ctx context.Context) []Item {
	return c.list(ctx, "trending", c.src.Trending, Samples)
}

func (c *Catalog) Popular(ctx context.Context) []Item {
	return withKind(c.list(ctx, "popular", c.src.Popular, Samples), Movie)
}

func (c *Catalog) TopRated(ctx context.Context) []Item {
	return withKind(c.list(ctx, "top_rated", c.src.TopRated, Samples), Movie)
}

func (c *Catalog) NowPlaying(ctx context.Context) []Item {
	return withKind(c.list(ctx, "now_playing", c.src.NowPlaying, Samples), Movie)
}

func (c *Catalog) TVPopular(ctx context.Context) []Item {
	items := c.list(ctx, "tv_popular", c.src.PopularTV, func() []Item {
		return filterSamples(func(it Item) bool { return it.Kind == TV })
	})
	return withKind(items, TV)
}

// ByGenre lists movies of the genre, most popular first.
func (c *Catalog) ByGenre(ctx context.Context, genreID int) []Item {
	items := c.list(ctx, "by_genre", func(ctx context.Context) (*tmdb.Page, error) {
		return c.src.DiscoverByGenre(ctx, genreID)
	}, func() []Item {
		return filterSamples(func(it Item) bool { return it.HasGenre(genreID) })
	})
	return withKind(items, Movie)
}

// Search runs a multi search. A blank query returns an empty list without a request.
func (c *Catalog) Search(ctx context.Context, query string) []Item {
	if strings.TrimSpace(query) == "" {
		return []Item{}
	}
	return c.list(ctx, "search", func(ctx context.Context) (*tmdb.Page, error) {
		return c.src.SearchMulti(ctx, query)
	}, func() []Item {
		return matchSamples(query)
	})
}

func (c *Catalog) Videos(ctx context.Context, kind string, id int) []Video {
	vs, err := c.src.Videos(ctx, kind, id)
	if err != nil {
		c.fail("videos", err)
		return []Video{}
	}
	out := make([]Video, 0, len(vs))
	for _, v := range vs {
		out = append(out, Video{ID: v.ID, Key: v.Key, Name: v.Name, Site: v.Site, Type: v.Type})
	}
	return out
}

// Detail returns nil when the record cannot be fetched.
func (c *Catalog) Detail(ctx context.Context, kind string, id int) *Detail {
	d, err := c.src.Details(ctx, kind, id)
	if err != nil {
		c.fail("detail", err)
		return nil
	}
	if d == nil {
		return nil
	}
	return fromDetails(d, kind)
}

func (c *Catalog) Similar(ctx context.Context, kind string, id int) []Item {
	items := c.list(ctx, "similar", func(ctx context.Context) (*tmdb.Page, error) {
		return c.src.Similar(ctx, kind, id)
	}, func() []Item { return []Item{} })
	return withKind(items, kind)
}
