package catalog

import (
	"fmt"
	"strings"
)

const (
	ImageBaseURL = "https://image.tmdb.org/t/p"
	PosterSize   = "w500"
	BackdropSize = "original"
	ProfileSize  = "w185"
)

// FallbackImage is an inline "No Image" placeholder used for missing or broken artwork.
const FallbackImage = `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="500" height="750" viewBox="0 0 500 750"%3E%3Crect width="500" height="750" fill="%23111111"/%3E%3Ctext x="50%25" y="50%25" font-family="Arial" font-size="24" fill="%23666666" text-anchor="middle" dominant-baseline="middle"%3ENo Image%3C/text%3E%3C/svg%3E`

// ImageURL builds the artwork URL for path at the given size.
func ImageURL(path *string, size string) string {
	if path == nil || *path == "" {
		return FallbackImage
	}
	if size == "" {
		size = PosterSize
	}
	return ImageBaseURL + "/" + size + *path
}

func IsFallback(url string) bool {
	return strings.HasPrefix(url, "data:")
}

// TrailerURL returns the embed URL of the first YouTube trailer, or "".
func TrailerURL(videos []Video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" && v.Key != "" {
			return fmt.Sprintf("https://www.youtube.com/embed/%s", v.Key)
		}
	}
	return ""
}
