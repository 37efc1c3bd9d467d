// Package catalog is the fail-open face of the TMDB client. Every operation
// returns usable data: on transport or API failure it logs and answers from a
// small built-in sample set.
package catalog

import "github.com/Waddenn/filmoria/internal/tmdb"

const (
	Movie = "movie"
	TV    = "tv"
)

// Item is a movie or a show as listed in rows, search results and history.
type Item struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  *string `json:"release_date"`
	Kind         string  `json:"media_type,omitempty"`
	GenreIDs     []int   `json:"genre_ids"`
}

// KindOr returns the item's media kind, or fallback when the API omitted it.
func (i Item) KindOr(fallback string) string {
	if i.Kind == "" {
		return fallback
	}
	return i.Kind
}

// Year is the first four characters of the release date, or "".
func (i Item) Year() string {
	if i.ReleaseDate == nil || len(*i.ReleaseDate) < 4 {
		return ""
	}
	return (*i.ReleaseDate)[:4]
}

func (i Item) HasGenre(id int) bool {
	for _, g := range i.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// Detail is the full record shown on the detail screen.
type Detail struct {
	Item
	Genres   []Genre      `json:"genres"`
	Tagline  string       `json:"tagline,omitempty"`
	Status   string       `json:"status,omitempty"`
	Runtime  int          `json:"runtime,omitempty"` // minutes; first episode runtime for shows
	Seasons  int          `json:"seasons,omitempty"`
	Episodes int          `json:"episodes,omitempty"`
	Cast     []CastMember `json:"cast,omitempty"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

func fromResult(r tmdb.Result) Item {
	it := Item{
		ID:           r.ID,
		Title:        r.Title,
		Overview:     r.Overview,
		PosterPath:   nonEmpty(r.PosterPath),
		BackdropPath: nonEmpty(r.BackdropPath),
		VoteAverage:  r.VoteAverage,
		Kind:         r.MediaType,
		GenreIDs:     r.GenreIDs,
	}
	if it.Title == "" {
		it.Title = r.Name
	}
	switch {
	case r.ReleaseDate != "":
		d := r.ReleaseDate
		it.ReleaseDate = &d
	case r.FirstAirDate != "":
		d := r.FirstAirDate
		it.ReleaseDate = &d
	}
	return it
}

func fromPage(p *tmdb.Page) []Item {
	if p == nil || len(p.Results) == 0 {
		return []Item{}
	}
	items := make([]Item, 0, len(p.Results))
	for _, r := range p.Results {
		items = append(items, fromResult(r))
	}
	return items
}

// withKind fills in the kind for endpoints that never report media_type.
func withKind(items []Item, kind string) []Item {
	for i := range items {
		if items[i].Kind == "" {
			items[i].Kind = kind
		}
	}
	return items
}

func fromDetails(d *tmdb.Details, kind string) *Detail {
	out := &Detail{
		Item:     fromResult(d.Result),
		Tagline:  d.Tagline,
		Status:   d.Status,
		Runtime:  d.Runtime,
		Seasons:  d.NumberOfSeasons,
		Episodes: d.NumberOfEpisodes,
	}
	out.Kind = kind
	if out.Runtime == 0 && len(d.EpisodeRunTime) > 0 {
		out.Runtime = d.EpisodeRunTime[0]
	}
	for _, g := range d.Genres {
		out.Genres = append(out.Genres, Genre{ID: g.ID, Name: g.Name})
		out.GenreIDs = append(out.GenreIDs, g.ID)
	}
	if d.Credits != nil {
		for _, c := range d.Credits.Cast {
			out.Cast = append(out.Cast, CastMember{
				Name:        c.Name,
				Character:   c.Character,
				ProfilePath: nonEmpty(c.ProfilePath),
			})
		}
	}
	return out
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
