// Package tui is the root model. It routes between the home screen, a stack
// of detail pages and the player.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Waddenn/filmoria/internal/tui/detail"
	"github.com/Waddenn/filmoria/internal/tui/home"
	"github.com/Waddenn/filmoria/internal/tui/playerview"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

type Deps struct {
	Home     home.Deps
	Detail   detail.Deps
	Launcher playerview.Launcher
	Log      logrus.FieldLogger
}

type MainModel struct {
	deps Deps

	width  int
	height int

	home    *home.Model
	details []*detail.Model
	player  *playerview.Model
}

func NewModel(deps Deps) *MainModel {
	return &MainModel{
		deps: deps,
		home: home.NewModel(deps.Home),
	}
}

func (m *MainModel) Init() tea.Cmd {
	return m.home.Init()
}

// Path is the current route in URL form; "/" for home.
func (m *MainModel) Path() string {
	switch {
	case m.player != nil:
		return "/player" + m.player.Route().Path()
	case len(m.details) > 0:
		return m.top().Route().Path()
	}
	return "/"
}

func (m *MainModel) top() *detail.Model {
	if len(m.details) == 0 {
		return nil
	}
	return m.details[len(m.details)-1]
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds := []tea.Cmd{m.home.Update(msg)}
		for _, d := range m.details {
			d.SetSize(msg.Width, msg.Height)
		}
		if m.player != nil {
			m.player.SetSize(msg.Width, msg.Height)
		}
		return m, tea.Batch(cmds...)

	case shared.MsgOpenDetail:
		d := detail.New(m.deps.Detail, msg.Route)
		if m.width > 0 {
			d.SetSize(m.width, m.height)
		}
		m.details = append(m.details, d)
		return m, d.Init()

	case shared.MsgBack:
		if len(m.details) > 0 {
			m.details = m.details[:len(m.details)-1]
		}
		return m, nil

	case shared.MsgPlay:
		m.player = playerview.New(m.deps.Launcher, msg, m.deps.Log)
		if m.width > 0 {
			m.player.SetSize(m.width, m.height)
		}
		return m, tea.Batch(m.player.Init(), m.home.Update(shared.MsgHistoryChanged{}))

	case shared.MsgClosePlayer:
		m.player = nil
		return m, nil

	case shared.MsgStatus:
		return m, m.updateActive(msg)
	}

	// Async results go to every screen; each one ignores what is not its own.
	cmds := []tea.Cmd{m.home.Update(msg)}
	for _, d := range m.details {
		cmds = append(cmds, d.Update(msg))
	}
	if m.player != nil {
		cmds = append(cmds, m.player.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *MainModel) updateActive(msg tea.Msg) tea.Cmd {
	switch {
	case m.player != nil:
		return m.player.Update(msg)
	case len(m.details) > 0:
		return m.top().Update(msg)
	}
	return m.home.Update(msg)
}

func (m *MainModel) View() string {
	var view string
	switch {
	case m.player != nil:
		view = m.player.View()
	case len(m.details) > 0:
		view = m.top().View()
	default:
		view = m.home.View()
	}
	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, view)
}
