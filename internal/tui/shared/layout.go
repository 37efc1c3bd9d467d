package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ClampMin returns min if value is lower, otherwise value.
func ClampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

const (
	SplitThreshold = 80
	SplitLeftRatio = 0.60
	SplitMinLeft   = 30
	SplitMinRight  = 24
)

// SplitWidths returns left/right widths for a two-panel layout.
func SplitWidths(total int, leftRatio float64, minLeft, minRight int) (int, int) {
	left := int(float64(total) * leftRatio)
	if left < minLeft {
		left = minLeft
	}

	right := total - left
	if right < minRight {
		right = minRight
		left = total - right
		if left < minLeft {
			left = minLeft
		}
	}

	return left, right
}

// Truncate shortens s to width cells, ANSI-aware, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// RenderHeader renders a standard header using the shared header style.
func RenderHeader(content string, width int) string {
	return StyleHeader.Copy().Width(width).Render(content)
}

// RenderFooter renders a single-line footer; right is right-aligned.
func RenderFooter(left, right string, width int) string {
	safeWidth := ClampMin(width, 20)
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	avail := safeWidth - 2
	if left != "" && right != "" {
		if lipgloss.Width(right) > avail {
			right = Truncate(right, avail)
			left = ""
		} else if lipgloss.Width(left) > avail-lipgloss.Width(right)-2 {
			left = Truncate(left, avail-lipgloss.Width(right)-2)
		}
	} else {
		left = Truncate(left, avail)
		right = Truncate(right, avail)
	}

	content := left
	if right != "" {
		space := avail - lipgloss.Width(left) - lipgloss.Width(right)
		if space < 1 {
			space = 1
		}
		content = left + strings.Repeat(" ", space) + right
	}

	return StyleFooter.Copy().Width(safeWidth).MaxHeight(1).Render(content)
}

// IsBlankVisible returns true if s is empty or only whitespace after stripping ANSI codes.
func IsBlankVisible(s string) bool {
	return strings.TrimSpace(ansi.Strip(s)) == ""
}
