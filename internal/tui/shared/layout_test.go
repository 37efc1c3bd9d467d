package shared

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSplitWidths(t *testing.T) {
	left, right := SplitWidths(100, 0.6, 30, 24)
	assert.Equal(t, 60, left)
	assert.Equal(t, 40, right)

	left, right = SplitWidths(60, 0.6, 30, 24)
	assert.Equal(t, 36, left)
	assert.Equal(t, 24, right)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, 5, lipgloss.Width(Truncate("a long title", 5)))
	assert.Equal(t, "", Truncate("x", 0))
}

func TestRenderFooter_SingleLine(t *testing.T) {
	out := RenderFooter("left side with a lot of text", "[q] Quit", 30)
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/details/tv/42", Route{Kind: "tv", ID: 42}.Path())
}

func TestIsBlankVisible(t *testing.T) {
	assert.True(t, IsBlankVisible("  "))
	assert.True(t, IsBlankVisible(StyleDim.Render(" ")))
	assert.False(t, IsBlankVisible("x"))
}
