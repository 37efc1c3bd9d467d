package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/debounce"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.probeVisible()

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case MsgLoaded:
		m.data = msg.Data
		m.loading = false
		m.state.Hero = nil
		if len(msg.Data.Trending) > 0 {
			hero := msg.Data.Trending[0]
			m.state.Hero = &hero
		}
		m.scrollTo(m.state.ScrollTarget)
		return m.probeVisible()

	case MsgHistoryLoaded:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn("could not load watch history")
			return nil
		}
		m.continueWatching = msg.Items
		m.clampFocus()
		return m.probeVisible()

	case shared.MsgHistoryChanged:
		return m.loadHistory()

	case MsgGenreResults:
		if m.state.SelectedGenre == nil || *m.state.SelectedGenre != msg.GenreID {
			return nil // selection moved on
		}
		m.genreItems = msg.Items
		m.clampFocus()
		return m.probeVisible()

	case debounce.FiredMsg:
		if !m.timer.Live(msg) {
			return nil
		}
		return m.applySearch(msg.Value)

	case MsgSearchResults:
		if !m.state.Searching || msg.Query != m.query {
			return nil // superseded
		}
		m.results = msg.Items
		if m.results == nil {
			m.results = []catalog.Item{}
		}
		m.focus = 0
		m.clampFocus()
		return m.probeVisible()

	case components.MsgArtwork:
		m.art.Update(msg)
		return nil

	case shared.MsgStatus:
		m.status = msg.Text
		if msg.Err != nil {
			m.status = msg.Err.Error()
		}
		return nil

	case tea.KeyMsg:
		if m.loading {
			return nil
		}
		if m.inputFocused {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "down":
		m.inputFocused = false
		m.input.Blur()
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.SetSearchText(after))
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		m.inputFocused = true
		return m.input.Focus()
	case "1":
		return m.Navigate(components.SectionHome)
	case "2":
		return m.Navigate(components.SectionTV)
	case "3":
		return m.Navigate(components.SectionMovies)
	case "g":
		return m.LogoClick()
	case "up", "k":
		m.focus--
		m.clampFocus()
	case "down", "j":
		m.focus++
		m.clampFocus()
	case "left", "h":
		m.moveCursor(-1)
		return m.probeVisible()
	case "right", "l":
		m.moveCursor(1)
		return m.probeVisible()
	case "<", "pgup":
		m.pageRow(-1)
		return m.probeVisible()
	case ">", "pgdown":
		m.pageRow(1)
		return m.probeVisible()
	case "[":
		if !m.state.Searching {
			return m.SelectGenre(m.chips().Step(-1))
		}
	case "]":
		if !m.state.Searching {
			return m.SelectGenre(m.chips().Step(1))
		}
	case "enter":
		if m.focus < 0 && m.heroVisible() {
			return m.SelectItem(*m.state.Hero)
		}
		rows := m.rows()
		if m.focus >= 0 && m.focus < len(rows) {
			if it, ok := rows[m.focus].Selected(); ok {
				return m.SelectItem(it)
			}
		}
	}
	return nil
}

// SelectGenre filters by a genre; nil clears the filter without fetching.
func (m *Model) SelectGenre(id *int) tea.Cmd {
	m.genreItems = nil
	if id == nil {
		m.state.SelectedGenre = nil
		m.clampFocus()
		return nil
	}
	g := *id
	m.state.SelectedGenre = &g
	return m.fetchGenre(g)
}

// SetSearchText records the text and restarts the debounce period.
func (m *Model) SetSearchText(text string) tea.Cmd {
	m.state.SearchText = text
	if m.input.Value() != text {
		m.input.SetValue(text)
	}
	return m.timer.Arm(text)
}

// applySearch runs once the debounce period has passed.
func (m *Model) applySearch(text string) tea.Cmd {
	q := strings.TrimSpace(text)
	switch {
	case len([]rune(q)) >= m.deps.MinSearchLen:
		m.state.Searching = true
		m.query = q
		m.focus = 0
		return m.fetchSearch(q)
	case q == "":
		m.state.Searching = false
		m.results = nil
		m.query = ""
		m.state.Section = components.SectionHome
		m.clampFocus()
	}
	return nil
}

// Navigate switches section and abandons any search.
func (m *Model) Navigate(section components.Section) tea.Cmd {
	m.state.Section = section
	m.resetSearch()
	m.scrollTo(string(section))
	return m.probeVisible()
}

// LogoClick returns to the top of the home section.
func (m *Model) LogoClick() tea.Cmd {
	m.state.Section = components.SectionHome
	m.resetSearch()
	m.scrollTo(ScrollTop)
	return m.probeVisible()
}

func (m *Model) resetSearch() {
	m.timer.Cancel()
	m.state.Searching = false
	m.state.SearchText = ""
	m.results = nil
	m.query = ""
	m.input.SetValue("")
	m.input.Blur()
	m.inputFocused = false
}

// SelectItem opens the detail screen; items without a kind open as movies.
func (m *Model) SelectItem(it catalog.Item) tea.Cmd {
	route := shared.Route{Kind: it.KindOr(catalog.Movie), ID: it.ID}
	return func() tea.Msg { return shared.MsgOpenDetail{Route: route} }
}

func (m *Model) scrollTo(target string) {
	m.state.ScrollTarget = target
	switch target {
	case ScrollTop, string(components.SectionHome):
		m.focus = -1
	default:
		// first row of the section, after Continue Watching
		m.focus = 0
		if len(m.continueWatching) > 0 {
			m.focus = 1
		}
	}
	m.clampFocus()
}

func (m *Model) heroVisible() bool {
	return !m.state.Searching && m.state.Hero != nil
}

func (m *Model) clampFocus() {
	n := len(m.rows())
	if m.focus > n-1 {
		m.focus = n - 1
	}
	lo := 0
	if m.heroVisible() {
		lo = -1
	}
	if m.focus < lo {
		m.focus = lo
	}
}

func (m *Model) moveCursor(delta int) {
	rows := m.rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return
	}
	r := rows[m.focus]
	r.Move(delta)
	m.pos[r.Title] = rowPos{cursor: r.Cursor, offset: r.Offset}
}

func (m *Model) pageRow(dir int) {
	rows := m.rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return
	}
	r := rows[m.focus]
	r.Page(dir)
	m.pos[r.Title] = rowPos{cursor: r.Cursor, offset: r.Offset}
}

// probeVisible checks artwork of the cards currently on screen.
func (m *Model) probeVisible() tea.Cmd {
	var urls []string
	for _, r := range m.rows() {
		for _, it := range r.VisibleItems() {
			urls = append(urls, catalog.ImageURL(it.PosterPath, catalog.PosterSize))
		}
	}
	return m.art.Probe(urls...)
}
