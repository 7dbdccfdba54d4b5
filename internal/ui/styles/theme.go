// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the widget.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Accent is the operator's brand color from the config.
	Accent lipgloss.Color

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	HeaderTagline lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble  lipgloss.Style
	BotBubble   lipgloss.Style
	ErrorBubble lipgloss.Style
	Timestamp   lipgloss.Style

	// ==========================================================================
	// SUGGESTION CHIP STYLES
	// ==========================================================================

	Chip       lipgloss.Style
	ChipNumber lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar        lipgloss.Style
	StatusOnline     lipgloss.Style
	StatusOffline    lipgloss.Style
	StatusRestricted lipgloss.Style
	StatusUnknown    lipgloss.Style
	StatusMeta       lipgloss.Style

	// ==========================================================================
	// SPINNER AND HINT STYLES
	// ==========================================================================

	Spinner       lipgloss.Style
	ComposingText lipgloss.Style
	HintText      lipgloss.Style
}

// NewTheme creates a theme from the configured preference ("dark", "light"
// or "auto") and the operator's accent color ("#RRGGBB").
func NewTheme(preference, accentColor string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch preference {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Accent:       lipgloss.Color(accentColor),
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(t.Accent).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse)

	t.HeaderTagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 1).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(Rose).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Rose).
		PaddingLeft(1)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Suggestion chips
	t.Chip = lipgloss.NewStyle().
		Foreground(Teal).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 1)

	t.ChipNumber = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusOnline = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.StatusOffline = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.StatusRestricted = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	t.StatusUnknown = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner and hints
	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.ComposingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HintText = lipgloss.NewStyle().
		Foreground(TextMuted)
}
