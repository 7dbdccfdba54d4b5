// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/util"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in a session transcript. Messages are immutable
// once appended; the transient composing indicator the UI shows between a
// user message and the bot reply is UI state, not a Message.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Text     string          `json:"text"`
	Language locale.Language `json:"language"`

	// Suggestions carries the quick-reply chips attached to a bot message.
	// nil means the message carries none; the distinction matters because a
	// suggestion-less bot turn clears the displayed chip row.
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewUserMessage creates a user message with a generated ID.
func NewUserMessage(text string, lang locale.Language) *Message {
	return &Message{
		ID:        generateID(),
		Sender:    SenderUser,
		Timestamp: time.Now(),
		Text:      text,
		Language:  lang,
	}
}

// NewBotMessage creates a bot message with a generated ID and optional
// suggestions.
func NewBotMessage(text string, suggestions []string, lang locale.Language) *Message {
	return &Message{
		ID:          generateID(),
		Sender:      SenderBot,
		Timestamp:   time.Now(),
		Text:        text,
		Language:    lang,
		Suggestions: suggestions,
	}
}

// HasSuggestions reports whether the message carries quick replies.
func (m *Message) HasSuggestions() bool {
	return len(m.Suggestions) > 0
}

// Preview returns a truncated preview of the message text.
// Rune-based truncation keeps Cyrillic and accented text intact.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Text, maxLen)
}

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
