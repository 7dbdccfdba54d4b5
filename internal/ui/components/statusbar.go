// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/helmdesk-tui/internal/conn"
	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/ui/styles"
	"github.com/morganforge/helmdesk-tui/internal/util"
)

// StatusBar renders the bottom status line: connection badge, language and
// a session hint, fitted to the given width.
type StatusBar struct {
	Theme *styles.Theme
}

// statusDot marks the connection badge; the color carries the state for
// sighted users, the label for everyone else.
const statusDot = "●"

// Render draws the status bar for the current connection state.
func (s StatusBar) Render(width int, state conn.State, label string, lang locale.Language, sessionID string) string {
	if width <= 0 {
		return ""
	}

	var badge string
	switch state {
	case conn.StateOnline:
		badge = s.Theme.StatusOnline.Render(statusDot + " " + label)
	case conn.StateOffline:
		badge = s.Theme.StatusOffline.Render(statusDot + " " + label)
	case conn.StateRestricted:
		badge = s.Theme.StatusRestricted.Render(statusDot + " " + label)
	default:
		badge = s.Theme.StatusUnknown.Render(statusDot + " " + label)
	}

	meta := string(lang)
	if sessionID != "" {
		// Only the short suffix; the full UUID is noise on screen.
		short := sessionID
		if len(short) > 8 {
			short = short[len(short)-8:]
		}
		meta += " · " + short
	}

	left := badge
	right := s.Theme.StatusMeta.Render(meta)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return s.Theme.StatusBar.Width(width).Render(util.TruncateWidth(left, width-2))
	}
	return s.Theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
