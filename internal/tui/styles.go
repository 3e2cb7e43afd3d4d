package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every view.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorBorder    = lipgloss.Color("238")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
)

// Icons.
const (
	IconArrowRight = "→"
	IconCursor     = "▌"
	IconSelected   = "●"
	IconUnselected = "○"
)

//nolint:gochecknoglobals // Immutable style definitions.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	SectionStyle  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	FocusedStyle  = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SavingStyle   = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	LossStyle     = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical)
)
