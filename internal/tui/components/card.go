package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

const (
	CardWidth      = 22
	SmallCardWidth = 16
)

// Card renders one catalog item. Selection is purely visual.
type Card struct {
	Item     catalog.Item
	Art      ArtState
	Selected bool
	Small    bool
}

func (c Card) Width() int {
	if c.Small {
		return SmallCardWidth
	}
	return CardWidth
}

// ArtURL is the poster URL, or the placeholder once loading failed.
func (c Card) ArtURL() string {
	if c.Art == ArtFailed {
		return catalog.FallbackImage
	}
	return catalog.ImageURL(c.Item.PosterPath, catalog.PosterSize)
}

// Rating formats the vote average with one decimal, N/A when unrated.
func Rating(vote float64) string {
	if vote <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", vote)
}

func (c Card) View() string {
	inner := c.Width() - 4 // border + padding

	var art string
	switch c.Art {
	case ArtLoaded:
		art = shared.StyleSecondary.Render("▣ poster")
	case ArtFailed:
		art = shared.StyleDim.Render("No Image")
	default:
		art = shared.StyleDim.Render("░░░░░░░░")
	}

	title := c.Item.Title
	if title == "" {
		title = "Untitled"
	}

	meta := shared.StyleRating.Render("★ " + Rating(c.Item.VoteAverage))
	if y := c.Item.Year(); y != "" && !c.Small {
		meta += shared.StyleDim.Render("  " + y)
	}

	style := shared.StyleCard
	if c.Selected {
		style = shared.StyleCardSelected
		title = lipgloss.NewStyle().Bold(true).Render(shared.Truncate(title, inner))
	} else {
		title = shared.Truncate(title, inner)
	}

	return style.Copy().Width(c.Width() - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		shared.Truncate(art, inner),
		title,
		shared.Truncate(meta, inner),
	))
}
