// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/model"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View implements tea.Model.
// Layout: header + transcript viewport + composing line + chips + input + status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderComposing())
	b.WriteString(m.renderChips())
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// chromeHeight is the number of lines everything but the viewport takes.
// Keep in sync with View. The input row is two lines because of its top
// border; the chip allowance is gated on the rendered row, which collapses
// to nothing at narrow widths.
func (m Model) chromeHeight() int {
	h := 1 + 1 + 2 + 1 // header, composing line, bordered input, status
	if m.renderChips() != "" {
		h += 3 // bordered chip row
	}
	return h
}

// =============================================================================
// COMPONENTS
// =============================================================================

func (m Model) renderHeader() string {
	return m.theme.Header.Width(m.width).Render("⛵ Morgan Forge Regattas")
}

func (m Model) renderComposing() string {
	if !m.waiting {
		return "\n"
	}
	hint := locale.For(m.ctrl.Language()).ComposingHint
	return m.spinner.View() + " " + m.theme.ComposingText.Render(hint) + "\n"
}

func (m Model) renderChips() string {
	row := m.chips.Render(m.width, m.ctrl.Suggestions())
	if row == "" {
		return ""
	}
	return row + "\n"
}

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.width).Render(m.input.View())
}

func (m Model) renderStatus() string {
	lang := m.ctrl.Language()
	return m.statusBar.Render(
		m.width,
		m.ctrl.Conn().State(),
		m.ctrl.Conn().StatusLabel(lang),
		lang,
		m.ctrl.SessionID(),
	)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript draws every message as an aligned bubble.
func (m Model) renderTranscript() string {
	msgs := m.ctrl.Messages()
	parts := make([]string, 0, len(msgs))

	bubbleWidth := m.width - 8
	if bubbleWidth < 16 {
		bubbleWidth = 16
	}

	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg, bubbleWidth))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderMessage(msg *model.Message, bubbleWidth int) string {
	ts := m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))

	if msg.Sender == model.SenderUser {
		bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		block := lipgloss.JoinVertical(lipgloss.Right, bubble, ts)
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, block)
	}

	text := msg.Text
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(msg.Text); err == nil {
			text = strings.TrimRight(rendered, "\n")
		}
	}
	bubble := m.theme.BotBubble.MaxWidth(bubbleWidth).Render(text)
	return lipgloss.JoinVertical(lipgloss.Left, bubble, ts)
}
