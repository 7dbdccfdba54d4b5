// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable render pieces of the widget:
// the status bar and the suggestion chip row. Each component is a pure
// function from state to a string, so they are trivially testable and the
// bubbletea model stays thin.
package components
