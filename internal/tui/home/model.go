// Package home is the browse screen: hero, genre chips, category rows and search.
package home

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/debounce"
	"github.com/Waddenn/filmoria/internal/genres"
	"github.com/Waddenn/filmoria/internal/history"
	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

// Catalog is the subset of *catalog.Catalog the home screen reads.
type Catalog interface {
	Trending(ctx context.Context) []catalog.Item
	Popular(ctx context.Context) []catalog.Item
	TopRated(ctx context.Context) []catalog.Item
	NowPlaying(ctx context.Context) []catalog.Item
	TVPopular(ctx context.Context) []catalog.Item
	ByGenre(ctx context.Context, genreID int) []catalog.Item
	Search(ctx context.Context, query string) []catalog.Item
}

type GenreSource interface {
	All(ctx context.Context) []catalog.Genre
}

type HistoryLoader interface {
	Load() ([]history.Entry, error)
}

type Deps struct {
	Catalog      Catalog
	Genres       GenreSource
	History      HistoryLoader
	Log          logrus.FieldLogger
	HTTPClient   *http.Client // artwork probes; nil disables them
	Debounce     time.Duration
	MinSearchLen int
}

// Scroll anchors.
const (
	ScrollTop = "top"
)

// ViewState is the orchestrator state the screen is rendered from.
type ViewState struct {
	Section       components.Section
	SelectedGenre *int
	SearchText    string
	Searching     bool
	Hero          *catalog.Item
	ScrollTarget  string
}

// Data is everything fetched on startup.
type Data struct {
	Trending   []catalog.Item
	Popular    []catalog.Item
	TopRated   []catalog.Item
	NowPlaying []catalog.Item
	TV         []catalog.Item
	Genres     []catalog.Genre
	// Buckets line up with genres.Named.
	Buckets [][]catalog.Item
}

// MsgLoaded carries both startup batches.
type MsgLoaded struct {
	Data Data
}

type MsgHistoryLoaded struct {
	Items []catalog.Item
	Err   error
}

type MsgGenreResults struct {
	GenreID int
	Items   []catalog.Item
}

type MsgSearchResults struct {
	Query string
	Items []catalog.Item
}

type rowPos struct {
	cursor, offset int
}

type Model struct {
	deps Deps
	log  logrus.FieldLogger

	state   ViewState
	data    Data
	loading bool

	genreItems       []catalog.Item
	results          []catalog.Item
	// query is the last search sent; only its results are applied.
	query string
	continueWatching []catalog.Item

	timer        *debounce.Timer
	input        textinput.Model
	inputFocused bool
	spinner      spinner.Model
	art          *components.Artwork

	// focus is the index into rows(); -1 is the hero.
	focus int
	pos   map[string]rowPos

	status string

	width  int
	height int
}

func NewModel(deps Deps) *Model {
	if deps.Debounce <= 0 {
		deps.Debounce = 400 * time.Millisecond
	}
	if deps.MinSearchLen <= 0 {
		deps.MinSearchLen = 3
	}
	log := logging.OrDiscard(deps.Log)

	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = shared.StyleHighlight

	return &Model{
		deps:    deps,
		log:     log.WithField("component", "home"),
		state:   ViewState{Section: components.SectionHome, ScrollTarget: ScrollTop},
		loading: true,
		timer:   debounce.New("home.search", deps.Debounce),
		input:   ti,
		spinner: sp,
		art:     components.NewArtwork(deps.HTTPClient),
		pos:     map[string]rowPos{},
		width:   80,
		height:  24,
	}
}

// State returns a copy of the current view state.
func (m *Model) State() ViewState {
	return m.state
}

func (m *Model) Loading() bool {
	return m.loading
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.loadAll(), m.loadHistory())
}

// loadAll runs the first batch concurrently, then the genre buckets concurrently.
func (m *Model) loadAll() tea.Cmd {
	cat, src := m.deps.Catalog, m.deps.Genres
	return func() tea.Msg {
		ctx := context.Background()
		var d Data

		var wg conc.WaitGroup
		wg.Go(func() { d.Trending = cat.Trending(ctx) })
		wg.Go(func() { d.Popular = cat.Popular(ctx) })
		wg.Go(func() { d.TopRated = cat.TopRated(ctx) })
		wg.Go(func() { d.NowPlaying = cat.NowPlaying(ctx) })
		wg.Go(func() { d.TV = cat.TVPopular(ctx) })
		wg.Go(func() { d.Genres = src.All(ctx) })
		wg.Wait()

		d.Buckets = iter.Map(genres.Named, func(g *catalog.Genre) []catalog.Item {
			return cat.ByGenre(ctx, g.ID)
		})
		return MsgLoaded{Data: d}
	}
}

func (m *Model) loadHistory() tea.Cmd {
	repo := m.deps.History
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := repo.Load()
		if err != nil {
			return MsgHistoryLoaded{Err: err}
		}
		items := make([]catalog.Item, 0, len(entries))
		for _, e := range entries {
			items = append(items, e.Item())
		}
		return MsgHistoryLoaded{Items: items}
	}
}

func (m *Model) fetchGenre(id int) tea.Cmd {
	cat := m.deps.Catalog
	return func() tea.Msg {
		return MsgGenreResults{GenreID: id, Items: cat.ByGenre(context.Background(), id)}
	}
}

func (m *Model) fetchSearch(query string) tea.Cmd {
	cat := m.deps.Catalog
	return func() tea.Msg {
		return MsgSearchResults{Query: query, Items: cat.Search(context.Background(), query)}
	}
}
