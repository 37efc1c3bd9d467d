// Package genres merges the movie and TV genre lists and resolves genre names.
package genres

import (
	"context"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/tmdb"
)

type Genre = catalog.Genre

// Lister fetches the genre list of one media kind. *tmdb.Client implements it.
type Lister interface {
	GenreList(ctx context.Context, kind string) ([]tmdb.Genre, error)
}

// Fallback is served when either genre list cannot be fetched.
var Fallback = []Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 14, Name: "Fantasy"},
	{ID: 36, Name: "History"},
	{ID: 27, Name: "Horror"},
	{ID: 10402, Name: "Music"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
	{ID: 37, Name: "Western"},
}

// Named are the genre rows of the home section, in display order.
var Named = []Genre{
	{ID: 16, Name: "Animation"},
	{ID: 12, Name: "Adventure"},
	{ID: 35, Name: "Comedy"},
	{ID: 18, Name: "Drama"},
	{ID: 27, Name: "Horror"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
}

// MinSimilarity is the Jaro-Winkler score a fuzzy Lookup must reach.
const MinSimilarity = 0.8

type Catalog struct {
	src Lister
	log logrus.FieldLogger
}

func New(src Lister, log logrus.FieldLogger) *Catalog {
	log = logging.OrDiscard(log)
	return &Catalog{src: src, log: log.WithField("component", "genres")}
}

// All returns the union of movie and TV genres. Both lists are fetched
// concurrently; if either fails the fixed Fallback list is returned.
func (c *Catalog) All(ctx context.Context) []Genre {
	var movie, tv []tmdb.Genre

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movie, err = c.src.GenreList(gctx, catalog.Movie)
		return err
	})
	g.Go(func() error {
		var err error
		tv, err = c.src.GenreList(gctx, catalog.TV)
		return err
	})
	if err := g.Wait(); err != nil {
		c.log.WithField("op", "genres").WithError(err).Warn("genre lists unavailable, using fallback")
		return append([]Genre(nil), Fallback...)
	}
	return union(movie, tv)
}

// union keeps the first-seen order; a later entry with the same ID replaces the name.
func union(lists ...[]tmdb.Genre) []Genre {
	out := []Genre{}
	index := map[int]int{}
	for _, list := range lists {
		for _, g := range list {
			if i, ok := index[g.ID]; ok {
				out[i].Name = g.Name
				continue
			}
			index[g.ID] = len(out)
			out = append(out, Genre{ID: g.ID, Name: g.Name})
		}
	}
	return out
}

// Name returns the display name of id, or "Genre" when it is unknown.
func Name(list []Genre, id int) string {
	for _, g := range list {
		if g.ID == id {
			return g.Name
		}
	}
	return "Genre"
}

// Lookup resolves a typed genre name. An exact case-insensitive match wins,
// otherwise the closest name scoring at least MinSimilarity.
func Lookup(list []Genre, name string) (Genre, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Genre{}, false
	}
	for _, g := range list {
		if strings.ToLower(g.Name) == needle {
			return g, true
		}
	}

	var best Genre
	var bestScore float32
	for _, g := range list {
		score := edlib.JaroWinklerSimilarity(needle, strings.ToLower(g.Name))
		if score > bestScore {
			best, bestScore = g, score
		}
	}
	if bestScore >= MinSimilarity {
		return best, true
	}
	return Genre{}, false
}
