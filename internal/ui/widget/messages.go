// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/helmdesk-tui/internal/model"
	"github.com/morganforge/helmdesk-tui/internal/session"
)

// =============================================================================
// MESSAGES
// =============================================================================

// TurnCompleteMsg reports a finished conversation turn.
type TurnCompleteMsg struct {
	// Appended holds the messages the turn added, in order.
	Appended []*model.Message
}

// =============================================================================
// COMMANDS
// =============================================================================

// turnTimeout bounds a whole turn, covering both log attempts.
const turnTimeout = 15 * time.Second

// submitTurn runs one controller turn off the UI goroutine.
func submitTurn(ctrl *session.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()
		return TurnCompleteMsg{Appended: ctrl.Submit(ctx, text)}
	}
}
