package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/genres"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

const (
	TitleContinueWatching = "Continue Watching"
	TitleTrending         = "Trending Now"
	TitlePopularHome      = "Popular on Filmoria"
	TitleTV               = "TV Shows"
	TitlePopularMovies    = "Popular Movies"
	TitleTopRated         = "Top Rated Movies"
	TitleNowPlaying       = "Now Playing"
)

// SearchTitle is the heading of the results row.
func SearchTitle(q string) string {
	return `Search Results for "` + q + `"`
}

// rows lists the non-empty rows for the current state, cursor positions applied.
func (m *Model) rows() []components.Row {
	var out []components.Row
	add := func(title string, items []catalog.Item, small bool) {
		if len(items) == 0 {
			return
		}
		r := components.NewRow(title, items)
		r.Small = small
		r.Width = m.width
		if p, ok := m.pos[title]; ok {
			r.Cursor, r.Offset = p.cursor, p.offset
			r.SetItems(items)
		}
		out = append(out, r)
	}

	if m.state.Searching {
		add(SearchTitle(m.query), m.results, false)
		return m.markFocus(out)
	}

	add(TitleContinueWatching, m.continueWatching, true)

	switch m.state.Section {
	case components.SectionHome:
		if m.state.SelectedGenre != nil {
			add(genres.Name(m.data.Genres, *m.state.SelectedGenre), m.genreItems, false)
		}
		add(TitleTrending, m.data.Trending, false)
		add(TitlePopularHome, m.data.Popular, false)
		for i, g := range genres.Named {
			if i < len(m.data.Buckets) {
				add(g.Name, m.data.Buckets[i], false)
			}
		}
	case components.SectionTV:
		add(TitleTV, m.data.TV, false)
	case components.SectionMovies:
		add(TitlePopularMovies, m.data.Popular, false)
		add(TitleTopRated, m.data.TopRated, false)
		add(TitleNowPlaying, m.data.NowPlaying, false)
	}
	return m.markFocus(out)
}

func (m *Model) markFocus(rows []components.Row) []components.Row {
	for i := range rows {
		rows[i].Focused = i == m.focus
	}
	return rows
}

func (m *Model) chips() components.GenreChips {
	return components.GenreChips{
		Genres:   m.data.Genres,
		Selected: m.state.SelectedGenre,
		Width:    m.width,
	}
}

// RowTitles is the titles of the rows on screen, top to bottom.
func (m *Model) RowTitles() []string {
	var out []string
	for _, r := range m.rows() {
		out = append(out, r.Title)
	}
	return out
}

// Message is the text shown instead of rows while searching with no results.
// Nothing is shown while the first results are on their way.
func (m *Model) Message() string {
	if !m.state.Searching || len(m.results) > 0 {
		return ""
	}
	if m.results != nil {
		return `No movies found matching "` + m.query + `".`
	}
	if len([]rune(strings.TrimSpace(m.state.SearchText))) < m.deps.MinSearchLen {
		return fmt.Sprintf("Type at least %d letters to search.", m.deps.MinSearchLen)
	}
	return ""
}

func (m *Model) View() string {
	width := shared.ClampMin(m.width, 40)
	height := shared.ClampMin(m.height, 10)

	if m.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+shared.StyleHighlight.Render("Loading Filmoria..."))
	}

	search := ""
	if m.inputFocused || m.input.Value() != "" {
		search = m.input.View()
	}
	header := components.Navbar{Current: m.state.Section, Search: search, Width: width}.View()

	help := "[/] Search • [1-3] Sections • [[/]] Genre • [↑↓←→] Move • [Enter] Open • [Q] Quit"
	if m.inputFocused {
		help = "[Esc] Done"
	}
	footer := shared.RenderFooter(m.status, help, width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var blocks []string
	focusBlock := 0
	if m.heroVisible() {
		blocks = append(blocks, components.Hero{Item: m.state.Hero, Focused: m.focus < 0, Width: width}.View())
	}
	if !m.state.Searching {
		blocks = append(blocks, m.chips().View())
	}
	if msg := m.Message(); msg != "" {
		blocks = append(blocks, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Padding(2, 0).
			Render(shared.StyleSecondary.Render(msg)))
	}
	for i, r := range m.rows() {
		if i == m.focus {
			focusBlock = len(blocks)
		}
		blocks = append(blocks, r.View(m.art))
	}

	body := fitBlocks(blocks, focusBlock, bodyHeight)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// fitBlocks drops leading blocks until the focused one fits in height.
func fitBlocks(blocks []string, focus, height int) string {
	start := 0
	for start < focus {
		used := 0
		for i := start; i <= focus && i < len(blocks); i++ {
			used += lipgloss.Height(blocks[i])
		}
		if used <= height {
			break
		}
		start++
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks[start:]...)
}
