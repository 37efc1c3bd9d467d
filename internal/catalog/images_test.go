package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	p := "/abc.jpg"
	empty := ""

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", ImageURL(&p, PosterSize))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/abc.jpg", ImageURL(&p, BackdropSize))
	assert.Equal(t, FallbackImage, ImageURL(nil, PosterSize))
	assert.Equal(t, FallbackImage, ImageURL(&empty, BackdropSize))
	assert.True(t, IsFallback(FallbackImage))
}

func TestTrailerURL(t *testing.T) {
	videos := []Video{
		{Key: "teaser", Site: "YouTube", Type: "Teaser"},
		{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
		{Key: "yt1", Site: "YouTube", Type: "Trailer"},
		{Key: "yt2", Site: "YouTube", Type: "Trailer"},
	}
	assert.Equal(t, "https://www.youtube.com/embed/yt1", TrailerURL(videos))
	assert.Equal(t, "", TrailerURL(nil))
}

func TestFold(t *testing.T) {
	assert.Equal(t, fold("amelie"), fold("AMÉLIE"))
	assert.Equal(t, "strasse", fold("STRASSE"))
}

func TestItemKindOr(t *testing.T) {
	assert.Equal(t, "movie", Item{}.KindOr(Movie))
	assert.Equal(t, "tv", Item{Kind: TV}.KindOr(Movie))
}
