package shared

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPurple     = lipgloss.Color("#9333ea")
	ColorPink       = lipgloss.Color("#db2777")
	ColorGold       = lipgloss.Color("#facc15")
	ColorDarkGrey   = lipgloss.Color("#282a2e")
	ColorBlack      = lipgloss.Color("#000000")
	ColorWhite      = lipgloss.Color("#ffffff")
	ColorLightGrey  = lipgloss.Color("#b2b2b2")
	ColorRed        = lipgloss.Color("#dc2626")
	ColorBackground = lipgloss.Color("#0f0f0f")

	// Styles
	StyleBase = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StyleBrand = lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorPurple).
			Padding(0, 1)

	StyleFooter = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Padding(0, 1)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	StyleTab = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Padding(0, 1)

	StyleTabActive = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDarkGrey).
			Padding(0, 1)

	StyleCardSelected = StyleCard.Copy().
				BorderForeground(ColorPurple)

	StyleChip = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorDarkGrey).
			Padding(0, 1).
			MarginRight(1)

	StyleChipActive = StyleChip.Copy().
			Background(ColorPurple).
			Bold(true)

	StyleArrow = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleMetadataKey = lipgloss.NewStyle().
				Foreground(ColorLightGrey)

	StyleMetadataValue = lipgloss.NewStyle().
				Foreground(ColorWhite)

	StyleHero = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple)

	StyleSecondary = lipgloss.NewStyle().
			Foreground(ColorLightGrey)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorPurple).
			Bold(true)

	StyleRating = lipgloss.NewStyle().
			Foreground(ColorGold)

	StyleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	StyleError = lipgloss.NewStyle().
			Foreground(ColorRed)

	StyleBadge = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorDarkGrey).
			Padding(0, 1).
			MarginRight(1).
			Bold(true)

	StyleBadgePurple = StyleBadge.Copy().
				Background(ColorPurple)

	StyleRole = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Italic(true)
)
