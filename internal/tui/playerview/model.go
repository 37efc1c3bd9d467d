// Package playerview is the full-screen player. Playback happens in the
// system browser; this screen owns the URL and the window chrome.
package playerview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

// Launcher opens and copies player URLs. *player.Player implements it.
type Launcher interface {
	Open(url string) error
	Copy(url string) error
}

// MsgOpened reports the result of handing the URL to the system opener.
type MsgOpened struct {
	URL string
	Err error
}

type Model struct {
	launcher Launcher
	log      logrus.FieldLogger

	route shared.Route
	title string
	url   string

	fullscreen bool
	opened     bool
	status     string

	width  int
	height int
}

func New(l Launcher, play shared.MsgPlay, log logrus.FieldLogger) *Model {
	log = logging.OrDiscard(log)
	return &Model{
		launcher: l,
		log:      log.WithFields(logrus.Fields{"component": "player", "route": play.Route.Path()}),
		route:    play.Route,
		title:    play.Title,
		url:      play.URL,
		status:   "Opening player...",
		width:    80,
		height:   24,
	}
}

func (m *Model) URL() string { return m.url }

func (m *Model) Route() shared.Route { return m.route }

func (m *Model) Fullscreen() bool { return m.fullscreen }

func (m *Model) Init() tea.Cmd {
	return m.open()
}

func (m *Model) open() tea.Cmd {
	l, url := m.launcher, m.url
	return func() tea.Msg {
		return MsgOpened{URL: url, Err: l.Open(url)}
	}
}

func (m *Model) copy() tea.Cmd {
	l, url := m.launcher, m.url
	return func() tea.Msg {
		if err := l.Copy(url); err != nil {
			return shared.MsgStatus{Err: err}
		}
		return shared.MsgStatus{Text: "Link copied to clipboard."}
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case MsgOpened:
		if msg.URL != m.url {
			return nil
		}
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn("could not open player")
			m.status = "Could not open the player: " + msg.Err.Error() + ". Press c to copy the link."
			return nil
		}
		m.opened = true
		m.status = "Playing in your browser."

	case shared.MsgStatus:
		m.status = msg.Text
		if msg.Err != nil {
			m.status = msg.Err.Error()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return shared.MsgClosePlayer{} }
		case "f":
			m.fullscreen = !m.fullscreen
		case "c":
			return m.copy()
		case "o", "enter":
			m.status = "Opening player..."
			return m.open()
		}
	}
	return nil
}

func (m *Model) View() string {
	width := shared.ClampMin(m.width, 40)
	height := shared.ClampMin(m.height, 10)

	screen := lipgloss.JoinVertical(lipgloss.Center,
		shared.StyleTitle.Render("▶ "+m.title),
		"",
		shared.StyleSecondary.Render(shared.Truncate(m.url, width-8)),
		"",
		m.statusLine(),
	)

	if m.fullscreen {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, screen)
	}

	header := shared.RenderHeader(shared.StyleBrand.Render("Now Playing")+"  "+shared.Truncate(m.title, width-20), width)
	footer := shared.RenderFooter(m.route.Path(), "[f] Fullscreen • [c] Copy link • [o] Reopen • [esc] Close", width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, shared.StyleBorder.Render(screen))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) statusLine() string {
	if !m.opened && m.status != "Opening player..." {
		return shared.StyleError.Render(m.status)
	}
	return shared.StyleDim.Render(m.status)
}
