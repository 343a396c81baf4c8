package ui

import "charm.land/lipgloss/v2"

// Color palette - Indigo + Emerald theme
var (
	ColorPrimary     = lipgloss.Color("#6366F1") // Indigo
	ColorSecondary   = lipgloss.Color("#10B981") // Emerald
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#6366F1") // Indigo when focused
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorOwn         = lipgloss.Color("#34D399") // Light emerald for own messages
	ColorOther       = lipgloss.Color("#A5B4FC") // Light indigo for other messages
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Lobby styles
var (
	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(lipgloss.Color("#312E81")).
				Bold(true).
				Padding(0, 1)

	ListIDStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Chat styles
var (
	ChatOwnNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOwn)

	ChatOtherNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOther)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Padding(0, 1)
)

// Status styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	StatusWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)
)
