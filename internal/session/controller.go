// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/morganforge/helmdesk-tui/internal/conn"
	"github.com/morganforge/helmdesk-tui/internal/intent"
	"github.com/morganforge/helmdesk-tui/internal/locale"
	hlog "github.com/morganforge/helmdesk-tui/internal/log"
	"github.com/morganforge/helmdesk-tui/internal/model"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Config holds what the controller needs to start a conversation.
type Config struct {
	// Language the conversation runs in. Falls back to English if
	// unsupported.
	Language locale.Language

	// RemoteEndpoint and RemoteKey configure the log sink. Either empty
	// disables remote logging for the session.
	RemoteEndpoint string
	RemoteKey      string
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller drives one conversation. Safe for concurrent use: turns are
// serialized so the transcript order always matches the user's view, while
// accessors stay responsive during a turn.
type Controller struct {
	// turnMu serializes Submit; mu guards the fields below and is never
	// held across network calls.
	turnMu sync.Mutex
	mu     sync.Mutex

	id          string
	language    locale.Language
	transcript  *model.Transcript
	conn        *conn.Manager
	suggestions []string
	composing   bool
	logger      zerolog.Logger

	// respond is swapped out only by tests that need the engine to fail.
	respond func(string, locale.Language) intent.Response
}

// NewController creates an idle controller. Call Start before Submit.
func NewController() *Controller {
	return &Controller{
		transcript: model.NewTranscript(),
		conn:       conn.NewManager(),
		respond:    intent.Respond,
	}
}

// Start begins the conversation: assigns a session ID, resolves the
// connection state from the remote config, and seeds the localized welcome
// message. The welcome message itself carries no suggestions; the starter
// chip row is session UI state, seeded separately. Returns the seeded
// message.
func (c *Controller) Start(cfg Config) *model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	lang := cfg.Language
	if !lang.Valid() {
		lang = locale.DefaultLanguage
	}

	c.id = uuid.NewString()
	c.language = lang
	c.logger = hlog.WithComponent("session").With().
		Str(hlog.FieldSessionID, c.id).
		Logger()

	c.conn.Initialize(cfg.RemoteEndpoint, cfg.RemoteKey)

	welcome := model.NewBotMessage(locale.For(lang).Welcome, nil, lang)
	c.transcript.Append(welcome)
	c.suggestions = locale.DefaultSuggestions(lang)

	c.logger.Info().
		Str(hlog.FieldLanguage, string(lang)).
		Str(hlog.FieldEvent, "session started").
		Msg("conversation started")
	return welcome
}

// =============================================================================
// SUBMIT PATH
// =============================================================================

// Submit runs one conversation turn: append the user's message, mirror it
// to the log sink, compute the reply, append it, and replace the suggestion
// row with whatever the reply carries. Returns the messages appended this
// turn, in order. Blank input is a no-op returning nil.
//
// Any panic during the turn is converted into a localized error reply and
// the remote link is forced offline; the conversation itself survives.
func (c *Controller) Submit(ctx context.Context, text string) (appended []*model.Message) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	c.setComposing(true)
	defer c.setComposing(false)

	c.mu.Lock()
	id, lang, logger := c.id, c.language, c.logger
	c.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Msg("submit path panicked")
			c.conn.ForceOffline()
			errMsg := model.NewBotMessage(locale.For(lang).ErrorReply, nil, lang)
			c.transcript.Append(errMsg)
			c.setSuggestions(nil)
			appended = append(appended, errMsg)
		}
	}()

	userMsg := model.NewUserMessage(trimmed, lang)
	c.transcript.Append(userMsg)
	appended = append(appended, userMsg)

	c.conn.LogOutbound(ctx, userMsg.Text, id, string(userMsg.Sender), lang)

	resp := c.respond(trimmed, lang)
	botMsg := model.NewBotMessage(resp.Text, resp.Suggestions, lang)
	c.transcript.Append(botMsg)
	appended = append(appended, botMsg)

	// A reply without suggestions clears the row rather than keeping a
	// stale one on screen.
	c.setSuggestions(resp.Suggestions)

	c.conn.LogOutbound(ctx, botMsg.Text, id, string(botMsg.Sender), lang)

	logger.Debug().
		Str(hlog.FieldTopic, resp.Topic.String()).
		Msg("turn completed")
	return appended
}

func (c *Controller) setComposing(v bool) {
	c.mu.Lock()
	c.composing = v
	c.mu.Unlock()
}

func (c *Controller) setSuggestions(s []string) {
	c.mu.Lock()
	c.suggestions = s
	c.mu.Unlock()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// SessionID returns the session identifier assigned by Start.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Language returns the conversation language.
func (c *Controller) Language() locale.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// Messages returns a copy of the transcript so far.
func (c *Controller) Messages() []*model.Message {
	return c.transcript.Messages()
}

// Suggestions returns the current quick-reply row, nil when cleared.
func (c *Controller) Suggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.suggestions...)
}

// Composing reports whether a turn is in flight.
func (c *Controller) Composing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composing
}

// Conn exposes the connection manager for status rendering.
func (c *Controller) Conn() *conn.Manager {
	return c.conn
}
