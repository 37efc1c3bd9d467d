package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

const heroOverviewLines = 3

// Hero is the featured item at the top of the home section.
type Hero struct {
	Item    *catalog.Item
	Focused bool
	Width   int
}

func KindLabel(kind string) string {
	if kind == catalog.TV {
		return "TV Show"
	}
	return "Movie"
}

func (h Hero) View() string {
	width := shared.ClampMin(h.Width, 30)
	if h.Item == nil {
		return shared.StyleHero.Copy().Width(width - 2).Render(shared.StyleDim.Render("Loading..."))
	}
	it := h.Item
	inner := width - 6

	title := it.Title
	if title == "" {
		title = "Untitled"
	}

	badges := []string{shared.StyleBadgePurple.Render("★ " + Rating(it.VoteAverage))}
	if y := it.Year(); y != "" {
		badges = append(badges, shared.StyleSecondary.Render(y)+" ")
	}
	badges = append(badges, shared.StyleBadge.Render(KindLabel(it.Kind)))

	overview := it.Overview
	if shared.IsBlankVisible(overview) {
		overview = "No description available."
	}
	overview = lipgloss.NewStyle().Width(inner).MaxHeight(heroOverviewLines).Render(overview)

	actions := shared.StyleDim.Render("[enter] Details")
	if h.Focused {
		actions = shared.StyleHighlight.Render("▶ [enter] Details")
	}

	style := shared.StyleHero.Copy().Width(width - 2)
	if !h.Focused {
		style = style.BorderForeground(shared.ColorDarkGrey)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(shared.Truncate(title, inner)),
		lipgloss.JoinHorizontal(lipgloss.Center, badges...),
		"",
		overview,
		"",
		actions,
	))
}
