package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/tui/shared"
)

// arrowWidth is the room kept on each side for the ‹ › affordances.
const arrowWidth = 2

// Row is a titled, horizontally scrolling strip of cards.
type Row struct {
	Title   string
	Items   []catalog.Item
	Small   bool
	Focused bool

	Cursor int
	Offset int
	Width  int
}

func NewRow(title string, items []catalog.Item) Row {
	return Row{Title: title, Items: items}
}

func (r Row) Empty() bool { return len(r.Items) == 0 }

func (r Row) cardWidth() int {
	if r.Small {
		return SmallCardWidth
	}
	return CardWidth
}

// Visible is how many cards fit in width.
func (r Row) Visible(width int) int {
	n := (width - 2*arrowWidth) / r.cardWidth()
	if n < 1 {
		n = 1
	}
	return n
}

func (r Row) CanScrollLeft() bool {
	return r.Offset > 0
}

func (r Row) CanScrollRight() bool {
	return r.Offset+r.Visible(r.Width) < len(r.Items)
}

// Selected returns the item under the cursor.
func (r Row) Selected() (catalog.Item, bool) {
	if r.Cursor < 0 || r.Cursor >= len(r.Items) {
		return catalog.Item{}, false
	}
	return r.Items[r.Cursor], true
}

// Move shifts the cursor by delta, clamped to the ends, and keeps it on screen.
func (r *Row) Move(delta int) {
	if len(r.Items) == 0 {
		return
	}
	r.Cursor += delta
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Cursor > len(r.Items)-1 {
		r.Cursor = len(r.Items) - 1
	}
	vis := r.Visible(r.Width)
	if r.Cursor < r.Offset {
		r.Offset = r.Cursor
	}
	if r.Cursor >= r.Offset+vis {
		r.Offset = r.Cursor - vis + 1
	}
}

// Page scrolls by one screenful in dir (-1 or 1) without wrapping.
func (r *Row) Page(dir int) {
	vis := r.Visible(r.Width)
	maxOffset := len(r.Items) - vis
	if maxOffset < 0 {
		maxOffset = 0
	}
	r.Offset += dir * vis
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.Offset > maxOffset {
		r.Offset = maxOffset
	}
	if r.Cursor < r.Offset {
		r.Cursor = r.Offset
	}
	if r.Cursor >= r.Offset+vis {
		r.Cursor = r.Offset + vis - 1
	}
}

// SetItems replaces the items and clamps cursor and offset.
func (r *Row) SetItems(items []catalog.Item) {
	r.Items = items
	if r.Cursor >= len(items) {
		r.Cursor = 0
		r.Offset = 0
	}
	r.Move(0)
}

// VisibleItems returns the items currently on screen.
func (r Row) VisibleItems() []catalog.Item {
	if len(r.Items) == 0 {
		return nil
	}
	end := r.Offset + r.Visible(r.Width)
	if end > len(r.Items) {
		end = len(r.Items)
	}
	return r.Items[r.Offset:end]
}

// View renders the row; an empty row renders nothing.
func (r Row) View(art *Artwork) string {
	if r.Empty() {
		return ""
	}

	titleStyle := shared.StyleTitle
	if r.Focused {
		titleStyle = titleStyle.Copy().Foreground(shared.ColorPurple)
	}

	var cards []string
	for i, it := range r.VisibleItems() {
		idx := r.Offset + i
		state := ArtLoading
		if art != nil {
			state = art.State(catalog.ImageURL(it.PosterPath, catalog.PosterSize))
		}
		cards = append(cards, Card{
			Item:     it,
			Art:      state,
			Selected: r.Focused && idx == r.Cursor,
			Small:    r.Small,
		}.View())
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	h := lipgloss.Height(strip)

	left := arrowColumn("‹", r.CanScrollLeft(), h)
	right := arrowColumn("›", r.CanScrollRight(), h)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(r.Title),
		lipgloss.JoinHorizontal(lipgloss.Center, left, strip, right),
	)
}

func arrowColumn(glyph string, show bool, height int) string {
	mark := " "
	if show {
		mark = glyph
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", arrowWidth)
	}
	lines[height/2] = shared.StyleArrow.Render(mark) + " "
	return strings.Join(lines, "\n")
}
