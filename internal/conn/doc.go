// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conn tracks whether the remote log sink is worth talking to.
//
// The state machine is deliberately pessimistic and sticky: the link starts
// optimistic, and the first timeout or blocked transport permanently
// downgrades it for the rest of the session. There is no recovery probe; a
// chat session is short, and silently flapping between states would cost
// more latency than it saves records.
package conn
