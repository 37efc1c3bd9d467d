// Package tmdb is a thin client for The Movie Database v3 API.
package tmdb

// Result is one entry of a paged list response. Movies carry Title and
// ReleaseDate, shows carry Name and FirstAirDate.
type Result struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	GenreIDs     []int   `json:"genre_ids"`
	MediaType    string  `json:"media_type,omitempty"` // only set by trending and multi search
}

type Page struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Details is the full record for a single movie or show, with credits appended.
type Details struct {
	Result
	Genres           []Genre  `json:"genres"`
	Tagline          string   `json:"tagline"`
	Status           string   `json:"status"`
	Runtime          int      `json:"runtime"`
	EpisodeRunTime   []int    `json:"episode_run_time"`
	NumberOfSeasons  int      `json:"number_of_seasons"`
	NumberOfEpisodes int      `json:"number_of_episodes"`
	Credits          *Credits `json:"credits"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}
