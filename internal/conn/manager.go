// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conn

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/morganforge/helmdesk-tui/internal/locale"
	hlog "github.com/morganforge/helmdesk-tui/internal/log"
	"github.com/morganforge/helmdesk-tui/internal/remote"
)

// =============================================================================
// STATE TYPE
// =============================================================================

// State is the current assessment of the remote log link.
type State int

const (
	// StateUnknown means no attempt has been made and no config was seen yet.
	StateUnknown State = iota

	// StateOnline means logging is configured and no disqualifying failure
	// has occurred.
	StateOnline

	// StateOffline means logging is unconfigured or the link timed out.
	// Terminal for the session.
	StateOffline

	// StateRestricted means the environment blocked the endpoint outright
	// (DNS, refused connection, TLS rejection). Terminal for the session.
	StateRestricted
)

// String returns the state name used in log fields.
func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	case StateRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager owns the link state and funnels every outbound log attempt
// through it. Safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	state  State
	client *remote.Client
	logger zerolog.Logger
}

// NewManager creates a manager in StateUnknown.
func NewManager() *Manager {
	return &Manager{
		state:  StateUnknown,
		logger: hlog.WithComponent("conn"),
	}
}

// Initialize resolves the initial state from configuration. With both an
// endpoint and a key the link starts optimistic; with either missing,
// logging is off for good and no attempt will ever be made.
func (m *Manager) Initialize(endpoint, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if endpoint == "" || key == "" {
		m.transitionLocked(StateOffline, "remote logging unconfigured")
		return
	}
	m.client = remote.NewClient(endpoint, key)
	m.transitionLocked(StateOnline, "remote logging configured")
}

// InitializeWithClient is Initialize with an injected client, for tests.
func (m *Manager) InitializeWithClient(c *remote.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c == nil {
		m.transitionLocked(StateOffline, "remote logging unconfigured")
		return
	}
	m.client = c
	m.transitionLocked(StateOnline, "remote logging configured")
}

// State returns the current link state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ForceOffline downgrades the link unconditionally. Used when the submit
// path has already gone wrong and further attempts are pointless.
func (m *Manager) ForceOffline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateOffline {
		m.transitionLocked(StateOffline, "forced offline")
	}
}

// LogOutbound mirrors one chat message to the remote sink if, and only if,
// the link is online. Failures are absorbed here: the caller gets nothing
// back because nothing about the conversation depends on delivery. A
// timeout downgrades the link to offline, a blocked transport to
// restricted; 4xx, 5xx and unclassified failures leave it online.
func (m *Manager) LogOutbound(ctx context.Context, text, sessionID, sender string, lang locale.Language) {
	m.mu.Lock()
	if m.state != StateOnline || m.client == nil {
		m.mu.Unlock()
		return
	}
	client := m.client
	m.mu.Unlock()

	err := client.Log(ctx, remote.Record{
		Text:      text,
		SessionID: sessionID,
		Sender:    sender,
		Language:  lang,
	})
	if err == nil {
		return
	}

	kind := remote.KindOf(err)
	m.mu.Lock()
	defer m.mu.Unlock()

	switch kind {
	case remote.KindTimeout:
		if m.state == StateOnline {
			m.transitionLocked(StateOffline, "log attempt timed out")
		}
	case remote.KindBlocked:
		if m.state == StateOnline {
			m.transitionLocked(StateRestricted, "log endpoint blocked")
		}
	default:
		// The link itself works; keep trying on later messages.
		m.logger.Debug().
			Str(hlog.FieldErrorKind, kind.String()).
			Str(hlog.FieldSessionID, sessionID).
			Msg("log attempt failed, staying online")
	}
}

// StatusLabel renders the state for the status bar in the given language.
func (m *Manager) StatusLabel(lang locale.Language) string {
	s := locale.For(lang)
	switch m.State() {
	case StateOnline:
		return s.StatusOnline
	case StateOffline:
		return s.StatusOffline
	case StateRestricted:
		return s.StatusOffline + " " + s.RestrictedHint
	default:
		return s.StatusUnknown
	}
}

// transitionLocked records a state change. Caller holds m.mu.
func (m *Manager) transitionLocked(to State, reason string) {
	from := m.state
	m.state = to
	m.logger.Info().
		Str(hlog.FieldOldState, from.String()).
		Str(hlog.FieldNewState, to.String()).
		Str(hlog.FieldEvent, reason).
		Msg("connection state changed")
}
