// Package detail is the title page: metadata, cast, similar titles and play.
package detail

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/history"
	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

const (
	MaxCast    = 12
	MaxSimilar = 12
)

type Catalog interface {
	Detail(ctx context.Context, kind string, id int) *catalog.Detail
	Similar(ctx context.Context, kind string, id int) []catalog.Item
	Videos(ctx context.Context, kind string, id int) []catalog.Video
}

type HistoryAppender interface {
	Append(e history.Entry) (bool, error)
}

// Player is the part of *player.Player the page needs.
type Player interface {
	EmbedURL(kind string, id int) string
	Open(url string) error
}

type Deps struct {
	Catalog    Catalog
	History    HistoryAppender
	Player     Player
	Log        logrus.FieldLogger
	HTTPClient *http.Client
}

// MsgLoaded carries the detail record and its similar titles.
type MsgLoaded struct {
	Route   shared.Route
	Detail  *catalog.Detail
	Similar []catalog.Item
}

type MsgTrailer struct {
	Route shared.Route
	URL   string
}

type Model struct {
	deps  Deps
	log   logrus.FieldLogger
	route shared.Route

	detail  *catalog.Detail
	similar components.Row
	loading bool

	// similarFocused moves arrow keys from the body to the similar row.
	similarFocused bool

	viewport viewport.Model
	spinner  spinner.Model
	art      *components.Artwork
	status   string

	width  int
	height int
}

func New(deps Deps, route shared.Route) *Model {
	log := logging.OrDiscard(deps.Log)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = shared.StyleHighlight

	m := &Model{
		deps:     deps,
		log:      log.WithFields(logrus.Fields{"component": "detail", "route": route.Path()}),
		route:    route,
		loading:  true,
		similar:  components.NewRow("More Like This", nil),
		viewport: viewport.New(80, 10),
		spinner:  sp,
		art:      components.NewArtwork(deps.HTTPClient),
		width:    80,
		height:   24,
	}
	m.similar.Small = true
	return m
}

func (m *Model) Route() shared.Route { return m.route }

func (m *Model) Loading() bool { return m.loading }

// Detail is nil until loaded, and stays nil when the title could not be fetched.
func (m *Model) Detail() *catalog.Detail { return m.detail }

func (m *Model) Similar() []catalog.Item { return m.similar.Items }

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.load())
}

// load fetches the record and the similar list side by side.
func (m *Model) load() tea.Cmd {
	cat, route := m.deps.Catalog, m.route
	return func() tea.Msg {
		ctx := context.Background()
		var (
			d   *catalog.Detail
			sim []catalog.Item
		)
		p := pool.New()
		p.Go(func() { d = cat.Detail(ctx, route.Kind, route.ID) })
		p.Go(func() { sim = cat.Similar(ctx, route.Kind, route.ID) })
		p.Wait()

		if len(sim) > MaxSimilar {
			sim = sim[:MaxSimilar]
		}
		return MsgLoaded{Route: route, Detail: d, Similar: sim}
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case MsgLoaded:
		if msg.Route != m.route || !m.loading {
			return nil
		}
		m.loading = false
		m.detail = msg.Detail
		m.similar.SetItems(msg.Similar)
		if m.detail == nil {
			m.log.Warn("title could not be loaded")
		}
		m.refresh()
		return m.probe()

	case MsgTrailer:
		if msg.Route != m.route {
			return nil
		}
		if msg.URL == "" {
			m.status = "No trailer available."
			return nil
		}
		return m.open(msg.URL, "Trailer opened in your browser.")

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
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace":
		return func() tea.Msg { return shared.MsgBack{} }
	}
	if m.loading {
		return nil
	}

	switch msg.String() {
	case "p":
		return m.Play()
	case "enter":
		if m.similarFocused {
			if it, ok := m.similar.Selected(); ok {
				return m.OpenSimilar(it)
			}
			return nil
		}
		return m.Play()
	case "t":
		return m.Trailer()
	case "tab":
		if !m.similar.Empty() {
			m.similarFocused = !m.similarFocused
		}
	case "down", "j":
		if !m.similarFocused && m.viewport.AtBottom() && !m.similar.Empty() {
			m.similarFocused = true
			return nil
		}
		if !m.similarFocused {
			m.viewport.LineDown(1)
		}
	case "up", "k":
		if m.similarFocused {
			m.similarFocused = false
			return nil
		}
		m.viewport.LineUp(1)
	case "pgdown":
		m.viewport.HalfViewDown()
	case "pgup":
		m.viewport.HalfViewUp()
	case "left", "h":
		if m.similarFocused {
			m.similar.Move(-1)
			return m.probe()
		}
	case "right", "l":
		if m.similarFocused {
			m.similar.Move(1)
			return m.probe()
		}
	}
	return nil
}

// Play records the title in the watch history and asks for the player screen.
// A failed history write is logged; playback still starts.
func (m *Model) Play() tea.Cmd {
	if m.detail == nil {
		m.status = "This title is unavailable."
		return nil
	}
	route := m.route
	entry := history.FromItem(m.detail.Item, route.Kind)
	url := m.deps.Player.EmbedURL(route.Kind, route.ID)
	title := m.detail.Title
	repo, log := m.deps.History, m.log
	return func() tea.Msg {
		if repo != nil {
			if _, err := repo.Append(entry); err != nil {
				log.WithError(err).Warn("could not record watch history")
			}
		}
		return shared.MsgPlay{Route: route, Title: title, URL: url}
	}
}

// Trailer looks up the first YouTube trailer.
func (m *Model) Trailer() tea.Cmd {
	cat, route := m.deps.Catalog, m.route
	m.status = "Looking for a trailer..."
	return func() tea.Msg {
		videos := cat.Videos(context.Background(), route.Kind, route.ID)
		return MsgTrailer{Route: route, URL: catalog.TrailerURL(videos)}
	}
}

// OpenSimilar opens a similar title; without a kind of its own it inherits this page's.
func (m *Model) OpenSimilar(it catalog.Item) tea.Cmd {
	route := shared.Route{Kind: it.KindOr(m.route.Kind), ID: it.ID}
	return func() tea.Msg { return shared.MsgOpenDetail{Route: route} }
}

func (m *Model) open(url, done string) tea.Cmd {
	p := m.deps.Player
	return func() tea.Msg {
		if err := p.Open(url); err != nil {
			return shared.MsgStatus{Err: err}
		}
		return shared.MsgStatus{Text: done}
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}

// refresh lays out the viewport around the header, similar row and footer.
func (m *Model) refresh() {
	m.similar.Width = m.width
	m.viewport.Width = m.width
	h := m.height - m.chromeHeight()
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
	m.viewport.SetContent(m.body())
}

func (m *Model) probe() tea.Cmd {
	var urls []string
	if m.detail != nil {
		urls = append(urls, catalog.ImageURL(m.detail.PosterPath, catalog.PosterSize))
	}
	for _, it := range m.similar.VisibleItems() {
		urls = append(urls, catalog.ImageURL(it.PosterPath, catalog.PosterSize))
	}
	return m.art.Probe(urls...)
}

func castLine(c catalog.CastMember) string {
	if strings.TrimSpace(c.Character) == "" {
		return c.Name
	}
	return c.Name + " as " + c.Character
}
