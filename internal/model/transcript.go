// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered message history of one session. It is strictly
// append-only: insertion order is display order, and no message is ever
// mutated or removed once appended.
type Transcript struct {
	messages []*Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{messages: make([]*Message, 0, 16)}
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg *Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns the transcript in append order. The returned slice is a
// copy so callers cannot reorder or drop history.
func (t *Transcript) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message, or nil if the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}
