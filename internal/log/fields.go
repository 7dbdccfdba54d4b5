// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldSessionID = "session_id"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Conversation fields
	FieldTopic    = "topic"
	FieldLanguage = "language"
	FieldSender   = "sender"

	// Connection fields
	FieldErrorKind = "error_kind"
	FieldOldState  = "old_state"
	FieldNewState  = "new_state"
)
