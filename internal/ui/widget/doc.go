// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget provides the Bubble Tea model for the helmdesk chat
// widget: transcript viewport, input line, suggestion chips and status bar.
//
// The model stays thin: all conversation semantics live in the session
// controller, and a turn runs off the UI goroutine as a tea.Cmd that
// reports back with a TurnCompleteMsg.
package widget
