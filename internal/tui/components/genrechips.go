package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

// GenreChips is the "All" chip followed by one chip per genre.
type GenreChips struct {
	Genres   []catalog.Genre
	Selected *int
	Width    int
}

// Index is the position of the selected chip, 0 being "All".
func (g GenreChips) Index() int {
	if g.Selected == nil {
		return 0
	}
	for i, genre := range g.Genres {
		if genre.ID == *g.Selected {
			return i + 1
		}
	}
	return 0
}

// Step returns the genre selected after moving dir chips, nil for "All".
// Movement stops at both ends.
func (g GenreChips) Step(dir int) *int {
	idx := g.Index() + dir
	if idx < 0 {
		idx = 0
	}
	if idx > len(g.Genres) {
		idx = len(g.Genres)
	}
	if idx == 0 {
		return nil
	}
	id := g.Genres[idx-1].ID
	return &id
}

func (g GenreChips) labels() []string {
	out := []string{"All"}
	for _, genre := range g.Genres {
		out = append(out, genre.Name)
	}
	return out
}

// window returns the [start, end) range of chips shown so the selected one fits.
func (g GenreChips) window() (int, int) {
	labels := g.labels()
	avail := shared.ClampMin(g.Width, 20) - 2*arrowWidth
	sel := g.Index()

	chipWidth := func(i int) int { return lipgloss.Width(labels[i]) + 3 }

	start := 0
	for {
		used, end := 0, start
		for end < len(labels) && used+chipWidth(end) <= avail {
			used += chipWidth(end)
			end++
		}
		if sel < end || end == start {
			if end == start {
				end = start + 1
			}
			return start, end
		}
		start++
	}
}

func (g GenreChips) CanScrollLeft() bool {
	start, _ := g.window()
	return start > 0
}

func (g GenreChips) CanScrollRight() bool {
	_, end := g.window()
	return end < len(g.labels())
}

func (g GenreChips) View() string {
	labels := g.labels()
	start, end := g.window()
	sel := g.Index()

	var chips []string
	for i := start; i < end; i++ {
		style := shared.StyleChip
		if i == sel {
			style = shared.StyleChipActive
		}
		chips = append(chips, style.Render(labels[i]))
	}

	left, right := strings.Repeat(" ", arrowWidth), strings.Repeat(" ", arrowWidth)
	if start > 0 {
		left = shared.StyleArrow.Render("‹") + " "
	}
	if end < len(labels) {
		right = " " + shared.StyleArrow.Render("›")
	}
	return left + lipgloss.JoinHorizontal(lipgloss.Top, chips...) + right
}
