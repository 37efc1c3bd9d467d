package home

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/catalog/mocks"
	"github.com/Waddenn/filmoria/internal/debounce"
	"github.com/Waddenn/filmoria/internal/genres"
	"github.com/Waddenn/filmoria/internal/history"
	"github.com/Waddenn/filmoria/internal/tui/components"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

type fakeCatalog struct {
	mu       sync.Mutex
	byGenre  []int
	searches []string
}

func list(titles ...string) []catalog.Item {
	out := make([]catalog.Item, 0, len(titles))
	for i, t := range titles {
		out = append(out, catalog.Item{ID: i + 1, Title: t, Kind: catalog.Movie})
	}
	return out
}

func (f *fakeCatalog) Trending(context.Context) []catalog.Item {
	return list("Dune", "Alien")
}
func (f *fakeCatalog) Popular(context.Context) []catalog.Item    { return list("Popular") }
func (f *fakeCatalog) TopRated(context.Context) []catalog.Item   { return list("Top") }
func (f *fakeCatalog) NowPlaying(context.Context) []catalog.Item { return list("Now") }
func (f *fakeCatalog) TVPopular(context.Context) []catalog.Item {
	return []catalog.Item{{ID: 42, Title: "Show", Kind: catalog.TV}}
}

func (f *fakeCatalog) ByGenre(_ context.Context, id int) []catalog.Item {
	f.mu.Lock()
	f.byGenre = append(f.byGenre, id)
	f.mu.Unlock()
	return list(genres.Name(genres.Fallback, id) + " pick")
}

func (f *fakeCatalog) Search(_ context.Context, q string) []catalog.Item {
	f.mu.Lock()
	f.searches = append(f.searches, q)
	f.mu.Unlock()
	return list("Result for " + q)
}

type fakeGenres struct{}

func (fakeGenres) All(context.Context) []catalog.Genre { return genres.Fallback }

type fakeHistory struct {
	entries []history.Entry
	err     error
}

func (f fakeHistory) Load() ([]history.Entry, error) { return f.entries, f.err }

func newModel(t *testing.T, cat Catalog) *Model {
	t.Helper()
	return NewModel(Deps{
		Catalog:  cat,
		Genres:   fakeGenres{},
		History:  fakeHistory{},
		Debounce: time.Millisecond,
	})
}

func loaded(t *testing.T, cat Catalog) *Model {
	t.Helper()
	m := newModel(t, cat)
	msg := m.loadAll()()
	m.Update(msg)
	require.False(t, m.Loading())
	return m
}

// typeAndWait arms the debounce for each text and delivers every tick, oldest first.
func typeAndWait(t *testing.T, m *Model, texts ...string) tea.Cmd {
	t.Helper()
	var fired []tea.Msg
	for _, text := range texts {
		fired = append(fired, m.SetSearchText(text)())
	}
	var last tea.Cmd
	for _, msg := range fired {
		_, ok := msg.(debounce.FiredMsg)
		require.True(t, ok)
		if cmd := m.Update(msg); cmd != nil {
			last = cmd
		}
	}
	return last
}

func TestLoad_HeroAndNamedBuckets(t *testing.T) {
	cat := &fakeCatalog{}
	m := newModel(t, cat)
	assert.True(t, m.Loading())

	msg, ok := m.loadAll()().(MsgLoaded)
	require.True(t, ok)
	require.Len(t, msg.Data.Buckets, 7)

	got := append([]int(nil), cat.byGenre...)
	sort.Ints(got)
	assert.Equal(t, []int{12, 16, 18, 27, 35, 80, 99}, got)

	m.Update(msg)
	assert.False(t, m.Loading())
	require.NotNil(t, m.State().Hero)
	assert.Equal(t, "Dune", m.State().Hero.Title)

	assert.Equal(t, []string{
		TitleTrending, TitlePopularHome,
		"Animation", "Adventure", "Comedy", "Drama", "Horror", "Crime", "Documentary",
	}, m.RowTitles())
}

func TestLoad_NoTrendingMeansNoHero(t *testing.T) {
	m := newModel(t, &fakeCatalog{})
	m.Update(MsgLoaded{})
	assert.Nil(t, m.State().Hero)
}

func TestSearch_DebouncedToOneCall(t *testing.T) {
	cat := &fakeCatalog{}
	m := loaded(t, cat)

	cmd := typeAndWait(t, m, "b", "ba", "bat")
	require.NotNil(t, cmd)
	assert.True(t, m.State().Searching)

	m.Update(cmd())
	assert.Equal(t, []string{"bat"}, cat.searches)
	assert.Equal(t, []string{SearchTitle("bat")}, m.RowTitles())
}

func TestSearch_ShortQueryIsNoop(t *testing.T) {
	cat := &fakeCatalog{}
	m := loaded(t, cat)

	cmd := typeAndWait(t, m, "ba")
	assert.Nil(t, cmd)
	assert.False(t, m.State().Searching)
	assert.Empty(t, cat.searches)
}

func TestSearch_ClearingReturnsHome(t *testing.T) {
	m := loaded(t, &fakeCatalog{})
	m.Navigate(components.SectionTV)

	m.Update(typeAndWait(t, m, "bat")())
	require.True(t, m.State().Searching)
	assert.Equal(t, components.SectionTV, m.State().Section)

	assert.Nil(t, typeAndWait(t, m, "   "))
	st := m.State()
	assert.False(t, st.Searching)
	assert.Equal(t, components.SectionHome, st.Section)
	assert.Empty(t, m.results)
}

func TestSearch_StaleResultsDropped(t *testing.T) {
	m := loaded(t, &fakeCatalog{})
	m.Update(typeAndWait(t, m, "bat")())

	m.Update(MsgSearchResults{Query: "batman", Items: list("Wrong")})
	require.Len(t, m.results, 1)
	assert.Equal(t, "Result for bat", m.results[0].Title)
}

func TestSearch_Messages(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	m.Update(typeAndWait(t, m, "zzz")())
	m.Update(MsgSearchResults{Query: "zzz"})
	assert.Equal(t, `No movies found matching "zzz".`, m.Message())

	m.results = nil
	m.state.SearchText = "zz"
	assert.Equal(t, "Type at least 3 letters to search.", m.Message())
}

func TestSearch_NoMessageWhileWaiting(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	require.NotNil(t, typeAndWait(t, m, "zzz"))
	assert.True(t, m.State().Searching)
	assert.Empty(t, m.Message())
}

func TestSearch_ShortEditKeepsResults(t *testing.T) {
	cat := &fakeCatalog{}
	m := loaded(t, cat)
	m.Update(typeAndWait(t, m, "bat")())
	require.Len(t, m.results, 1)

	assert.Nil(t, typeAndWait(t, m, "ba"))
	assert.True(t, m.State().Searching)
	require.Len(t, m.results, 1)
	assert.Equal(t, "Result for bat", m.results[0].Title)
	assert.Equal(t, []string{SearchTitle("bat")}, m.RowTitles())
	assert.Empty(t, m.Message())
	assert.Equal(t, []string{"bat"}, cat.searches)
}

func TestSearch_InFlightResultsSurviveShortEdit(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	inFlight := typeAndWait(t, m, "bat")
	require.NotNil(t, inFlight)
	assert.Nil(t, typeAndWait(t, m, "ba"))

	m.Update(inFlight())
	assert.True(t, m.State().Searching)
	require.Len(t, m.results, 1)
	assert.Equal(t, "Result for bat", m.results[0].Title)
	assert.Equal(t, []string{SearchTitle("bat")}, m.RowTitles())
}

func TestSearch_NewerQuerySupersedesInFlight(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	older := typeAndWait(t, m, "bat")
	newer := typeAndWait(t, m, "batman")

	m.Update(newer())
	m.Update(older())
	require.Len(t, m.results, 1)
	assert.Equal(t, "Result for batman", m.results[0].Title)
}

func TestSearch_FallbackSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().SearchMulti(gomock.Any(), "bat").Return(nil, errors.New("offline"))

	m := newModel(t, catalog.New(src, nil))
	m.loading = false

	m.Update(typeAndWait(t, m, "bat")())
	require.Len(t, m.results, 1)
	assert.Equal(t, "The Dark Knight", m.results[0].Title)
}

func TestSearch_TypingArmsTimer(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	for _, r := range "bat" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "bat", m.State().SearchText)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.inputFocused)
	assert.Equal(t, "bat", m.State().SearchText)
}

func TestSelectGenre(t *testing.T) {
	cat := &fakeCatalog{}
	m := loaded(t, cat)
	before := len(cat.byGenre)

	assert.Nil(t, m.SelectGenre(nil))
	assert.Len(t, cat.byGenre, before, "clearing must not fetch")

	id := 80
	cmd := m.SelectGenre(&id)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 80, cat.byGenre[len(cat.byGenre)-1])
	assert.Equal(t, "Crime", m.RowTitles()[0])

	m.SelectGenre(nil)
	assert.NotContains(t, m.RowTitles()[:1], "Crime")
	assert.Empty(t, m.genreItems)
}

func TestSelectGenre_StaleResultDropped(t *testing.T) {
	m := loaded(t, &fakeCatalog{})
	crime, horror := 80, 27

	slow := m.SelectGenre(&crime)
	m.SelectGenre(&horror)
	m.Update(slow())

	assert.Empty(t, m.genreItems)
}

func TestSelectGenre_Keys(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	require.NotNil(t, cmd)
	require.NotNil(t, m.State().SelectedGenre)
	assert.Equal(t, genres.Fallback[0].ID, *m.State().SelectedGenre)

	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")}))
	assert.Nil(t, m.State().SelectedGenre)
}

func TestSections(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	m.Navigate(components.SectionTV)
	assert.Equal(t, []string{TitleTV}, m.RowTitles())
	assert.Equal(t, "tv", m.State().ScrollTarget)

	m.Navigate(components.SectionMovies)
	assert.Equal(t, []string{TitlePopularMovies, TitleTopRated, TitleNowPlaying}, m.RowTitles())

	m.LogoClick()
	st := m.State()
	assert.Equal(t, components.SectionHome, st.Section)
	assert.Equal(t, ScrollTop, st.ScrollTarget)
	assert.False(t, st.Searching)
	assert.Empty(t, st.SearchText)
}

func TestNavigate_CancelsPendingSearch(t *testing.T) {
	cat := &fakeCatalog{}
	m := loaded(t, cat)

	pending := m.SetSearchText("bat")()
	m.Navigate(components.SectionMovies)

	assert.Nil(t, m.Update(pending))
	assert.False(t, m.State().Searching)
	assert.Empty(t, m.State().SearchText)
	assert.Empty(t, cat.searches)
}

func TestContinueWatching(t *testing.T) {
	m := NewModel(Deps{
		Catalog: &fakeCatalog{},
		Genres:  fakeGenres{},
		History: fakeHistory{entries: []history.Entry{{ID: 7, Title: "Seven", MediaType: "movie"}}},
	})
	m.Update(m.loadAll()())
	m.Update(m.loadHistory()())

	assert.Equal(t, TitleContinueWatching, m.RowTitles()[0])

	m.Navigate(components.SectionTV)
	assert.Equal(t, []string{TitleContinueWatching, TitleTV}, m.RowTitles())
}

func TestSelectItem(t *testing.T) {
	m := loaded(t, &fakeCatalog{})

	msg := m.SelectItem(catalog.Item{ID: 42, Kind: catalog.TV})()
	open, ok := msg.(shared.MsgOpenDetail)
	require.True(t, ok)
	assert.Equal(t, shared.Route{Kind: "tv", ID: 42}, open.Route)
	assert.Equal(t, "/details/tv/42", open.Route.Path())

	open = m.SelectItem(catalog.Item{ID: 9})().(shared.MsgOpenDetail)
	assert.Equal(t, "movie", open.Route.Kind)
}

func TestEnterOnHeroOpensDetail(t *testing.T) {
	m := loaded(t, &fakeCatalog{})
	require.Equal(t, -1, m.focus)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	open := cmd().(shared.MsgOpenDetail)
	assert.Equal(t, 1, open.Route.ID)
}

func TestView(t *testing.T) {
	m := loaded(t, &fakeCatalog{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})

	out := m.View()
	assert.Contains(t, out, components.Brand)
	assert.Contains(t, out, "Dune")
}
