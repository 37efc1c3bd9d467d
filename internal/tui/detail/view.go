package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

func (m *Model) title() string {
	if m.detail == nil || shared.IsBlankVisible(m.detail.Title) {
		return "Details"
	}
	return m.detail.Title
}

func (m *Model) header() string {
	brand := shared.StyleBrand.Render(components.Brand)
	return shared.RenderHeader(brand+"  "+shared.Truncate(m.title(), m.width-len(components.Brand)-6), m.width)
}

func (m *Model) footer() string {
	keys := "[p] Play • [t] Trailer • [tab] Similar • [esc] Back"
	return shared.RenderFooter(m.status, keys, m.width)
}

func (m *Model) similarView() string {
	r := m.similar
	r.Focused = m.similarFocused
	return r.View(m.art)
}

func (m *Model) chromeHeight() int {
	h := lipgloss.Height(m.header()) + 1
	if v := m.similarView(); v != "" {
		h += lipgloss.Height(v)
	}
	return h
}

// body is the scrollable part: facts, overview and genres, with the cast
// beside them on wide terminals and below them otherwise.
func (m *Model) body() string {
	d := m.detail
	if d == nil {
		return shared.StyleError.Render("This title could not be loaded.")
	}
	width := shared.ClampMin(m.width, 20)

	split := m.width >= shared.SplitThreshold && len(d.Cast) > 0
	leftWidth, rightWidth := width, width
	if split {
		leftWidth, rightWidth = shared.SplitWidths(width, shared.SplitLeftRatio, shared.SplitMinLeft, shared.SplitMinRight)
	}

	info := m.info(leftWidth - 2)
	cast := castBlock(d.Cast, rightWidth-2)
	if cast == "" {
		return info
	}
	if split {
		return lipgloss.JoinHorizontal(lipgloss.Top, info, cast)
	}
	return lipgloss.JoinVertical(lipgloss.Left, info, "", cast)
}

// info renders the facts panel in width cells plus padding.
func (m *Model) info(width int) string {
	d := m.detail
	inner := shared.ClampMin(width, 10)

	var facts []string
	facts = append(facts, shared.StyleBadgePurple.Render("★ "+components.Rating(d.VoteAverage)))
	if y := d.Year(); y != "" {
		facts = append(facts, shared.StyleSecondary.Render(" "+y+" "))
	}
	facts = append(facts, shared.StyleBadge.Render(components.KindLabel(m.route.Kind)))
	if d.Runtime > 0 {
		facts = append(facts, shared.StyleSecondary.Render(fmt.Sprintf(" %d min", d.Runtime)))
	}
	if d.Seasons > 0 {
		facts = append(facts, shared.StyleSecondary.Render(fmt.Sprintf(" %d seasons, %d episodes", d.Seasons, d.Episodes)))
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(shared.Truncate(d.Title, inner)),
	}
	if !shared.IsBlankVisible(d.Tagline) {
		lines = append(lines, shared.StyleDim.Italic(true).Render(d.Tagline))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, facts...), "")

	overview := d.Overview
	if shared.IsBlankVisible(overview) {
		overview = "No description available."
	}
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render(overview), "")

	if len(d.Genres) > 0 {
		names := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			names = append(names, g.Name)
		}
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(
			shared.StyleMetadataKey.Render("Genres: ")+shared.StyleMetadataValue.Render(strings.Join(names, ", "))))
	}
	if d.Status != "" {
		lines = append(lines, shared.StyleMetadataKey.Render("Status: ")+shared.StyleMetadataValue.Render(d.Status))
	}
	return lipgloss.NewStyle().Width(inner+2).Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func castBlock(cast []catalog.CastMember, width int) string {
	if len(cast) == 0 {
		return ""
	}
	if len(cast) > MaxCast {
		cast = cast[:MaxCast]
	}
	inner := shared.ClampMin(width, 10)
	lines := []string{shared.StyleTitle.Render("Cast")}
	for _, c := range cast {
		lines = append(lines, shared.Truncate(castLine(c), inner))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m *Model) View() string {
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.header(),
			"",
			"  "+m.spinner.View()+" Loading...",
		)
	}

	parts := []string{m.header(), m.viewport.View()}
	if v := m.similarView(); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
