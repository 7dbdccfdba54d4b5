// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/session"
	"github.com/morganforge/helmdesk-tui/internal/storage"
	"github.com/morganforge/helmdesk-tui/internal/ui/components"
	"github.com/morganforge/helmdesk-tui/internal/ui/styles"
)

// =============================================================================
// WIDGET MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat widget.
type Model struct {
	// Conversation
	ctrl *session.Controller

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	statusBar components.StatusBar
	chips     components.Suggestions

	// Markdown rendering for bot replies; nil falls back to plain text.
	renderer *glamour.TermRenderer

	// waiting is true while a turn is in flight; input is ignored until
	// the TurnCompleteMsg arrives so turns cannot interleave.
	waiting bool

	// archive receives the transcript on quit; nil disables archival.
	archive *storage.Archive

	ready bool
}

// New creates the widget model around a started controller.
// The archive may be nil.
func New(ctrl *session.Controller, theme *styles.Theme, archive *storage.Archive) Model {
	strs := locale.For(ctrl.Language())

	ti := textinput.New()
	ti.Placeholder = strs.Placeholder
	ti.CharLimit = 500
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		ctrl:      ctrl,
		theme:     theme,
		input:     ti,
		spinner:   sp,
		statusBar: components.StatusBar{Theme: theme},
		chips:     components.Suggestions{Theme: theme},
		archive:   archive,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TurnCompleteMsg:
		m.waiting = false
		m.syncViewportHeight()
		m.refreshViewport()
		m.input.Focus()
		return m, textinput.Blink

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize recomputes the layout and rebuilds the markdown renderer
// for the new wrap width.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	wrap := m.width - 8
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		m.renderer = renderer
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, 1)
		m.ready = true
	} else {
		m.viewport.Width = m.width
	}
	m.syncViewportHeight()
	m.input.Width = m.width - 4

	m.refreshViewport()
	return m, nil
}

// handleKey routes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.saveTranscript()
		return m, tea.Quit

	case "enter":
		return m.submit(m.input.Value())

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Number keys pick suggestion chips when the input line is empty.
	if m.input.Value() == "" && len(msg.String()) == 1 {
		if n, err := strconv.Atoi(msg.String()); err == nil {
			if picked := components.Pick(m.ctrl.Suggestions(), n); picked != "" {
				return m.submit(picked)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a turn for the given text.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	if m.waiting || strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.waiting = true
	m.input.Reset()
	m.input.Blur()
	return m, tea.Batch(submitTurn(m.ctrl, text), m.spinner.Tick)
}

// saveTranscript archives the session best-effort before quitting.
func (m Model) saveTranscript() {
	if m.archive == nil {
		return
	}
	//nolint:errcheck // quitting either way
	m.archive.SaveSession(m.ctrl.SessionID(), m.ctrl.Language(), m.ctrl.Messages())
}

// syncViewportHeight gives the viewport whatever the chrome leaves over.
// Called on resize and after each turn, since the chip row appearing or
// clearing changes the chrome height.
func (m *Model) syncViewportHeight() {
	if !m.ready {
		return
	}
	h := m.height - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	m.viewport.Height = h
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
