package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/tui/shared"
)

const Brand = "FILMORIA"

// Section is one of the three top-level browse sections.
type Section string

const (
	SectionHome   Section = "home"
	SectionTV     Section = "tv"
	SectionMovies Section = "movies"
)

var Sections = []struct {
	Section Section
	Label   string
}{
	{SectionHome, "Home"},
	{SectionTV, "TV Shows"},
	{SectionMovies, "Movies"},
}

type Navbar struct {
	Current Section
	// Search is the rendered search input; empty shows the search hint.
	Search string
	Width  int
}

func (n Navbar) View() string {
	width := shared.ClampMin(n.Width, 40)

	parts := []string{shared.StyleBrand.Render(Brand), "  "}
	for _, s := range Sections {
		style := shared.StyleTab
		if s.Section == n.Current {
			style = shared.StyleTabActive
		}
		parts = append(parts, style.Render(s.Label))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	right := n.Search
	if right == "" {
		right = shared.StyleDim.Render("[/] Search")
	}

	space := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if space < 1 {
		space = 1
	}
	return shared.RenderHeader(left+strings.Repeat(" ", space)+right, width)
}
