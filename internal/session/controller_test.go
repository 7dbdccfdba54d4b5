// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/morganforge/helmdesk-tui/internal/conn"
	"github.com/morganforge/helmdesk-tui/internal/intent"
	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/model"
	"github.com/morganforge/helmdesk-tui/internal/remote"
)

func startOffline(t *testing.T, lang locale.Language) *Controller {
	t.Helper()
	c := NewController()
	c.Start(Config{Language: lang})
	return c
}

// =============================================================================
// START
// =============================================================================

func TestStart(t *testing.T) {
	c := NewController()
	welcome := c.Start(Config{Language: locale.Spanish})

	if c.SessionID() == "" {
		t.Error("session ID should be assigned")
	}
	if c.Language() != locale.Spanish {
		t.Errorf("language = %q, want es", c.Language())
	}
	if welcome.Sender != model.SenderBot {
		t.Errorf("welcome sender = %q, want bot", welcome.Sender)
	}
	if welcome.Text != locale.For(locale.Spanish).Welcome {
		t.Errorf("welcome text = %q", welcome.Text)
	}
	if len(c.Messages()) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(c.Messages()))
	}
	// The welcome message carries no suggestions of its own; the starter
	// chip row is session UI state seeded alongside it.
	if welcome.Suggestions != nil {
		t.Errorf("welcome.Suggestions = %v, want nil", welcome.Suggestions)
	}
	want := locale.DefaultSuggestions(locale.Spanish)
	got := c.Suggestions()
	if len(got) != len(want) {
		t.Fatalf("starter suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("starter suggestions = %v, want %v", got, want)
		}
	}
	// No remote config: logging is off for the whole session.
	if c.Conn().State() != conn.StateOffline {
		t.Errorf("state = %v, want offline", c.Conn().State())
	}
}

func TestStart_UnsupportedLanguageFallsBack(t *testing.T) {
	c := NewController()
	c.Start(Config{Language: locale.Language("ja")})
	if c.Language() != locale.English {
		t.Errorf("language = %q, want fallback to en", c.Language())
	}
}

// =============================================================================
// SUBMIT
// =============================================================================

func TestSubmit_BlankInputIsNoOp(t *testing.T) {
	c := startOffline(t, locale.English)

	for _, input := range []string{"", "   ", "\t\n"} {
		if got := c.Submit(context.Background(), input); got != nil {
			t.Errorf("Submit(%q) = %v, want nil", input, got)
		}
	}
	if len(c.Messages()) != 1 {
		t.Errorf("transcript length = %d, want welcome only", len(c.Messages()))
	}
}

func TestSubmit_PriceTurn(t *testing.T) {
	c := startOffline(t, locale.English)

	appended := c.Submit(context.Background(), "How much does a tour cost?")
	if len(appended) != 2 {
		t.Fatalf("appended %d messages, want 2", len(appended))
	}
	if appended[0].Sender != model.SenderUser || appended[1].Sender != model.SenderBot {
		t.Errorf("turn order = %q, %q, want user then bot", appended[0].Sender, appended[1].Sender)
	}
	if appended[1].Text != locale.Reply(locale.TopicPrice, locale.English) {
		t.Errorf("bot reply = %q, want price reply", appended[1].Text)
	}
	if len(c.Messages()) != 3 {
		t.Errorf("transcript length = %d, want 3", len(c.Messages()))
	}

	// Topic turns replace the suggestion row with the topic's list.
	want := intent.Respond("price", locale.English).Suggestions
	got := c.Suggestions()
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestions = %v, want %v", got, want)
		}
	}
}

func TestSubmit_RussianOffline(t *testing.T) {
	c := startOffline(t, locale.Russian)

	appended := c.Submit(context.Background(), "сколько стоит?")
	if len(appended) != 2 {
		t.Fatalf("appended %d messages, want 2", len(appended))
	}
	if appended[1].Text != locale.Reply(locale.TopicPrice, locale.Russian) {
		t.Errorf("bot reply = %q, want russian price reply", appended[1].Text)
	}
	if c.Conn().State() != conn.StateOffline {
		t.Errorf("state = %v, want offline untouched", c.Conn().State())
	}
}

func TestSubmit_MirrorsBothSidesOfTurn(t *testing.T) {
	var mu sync.Mutex
	var senders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rec remote.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			t.Errorf("decode: %v", err)
		}
		mu.Lock()
		senders = append(senders, rec.Sender)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewController()
	c.Start(Config{Language: locale.English, RemoteEndpoint: srv.URL, RemoteKey: "k"})

	c.Submit(context.Background(), "what is included?")

	mu.Lock()
	defer mu.Unlock()
	if len(senders) != 2 || senders[0] != "user" || senders[1] != "bot" {
		t.Errorf("mirrored senders = %v, want [user bot]", senders)
	}
}

func TestSubmit_ServerErrorKeepsLinkOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewController()
	c.Start(Config{Language: locale.English, RemoteEndpoint: srv.URL, RemoteKey: "k"})

	appended := c.Submit(context.Background(), "do I need experience?")
	if len(appended) != 2 {
		t.Fatalf("turn should complete despite 5xx, got %d messages", len(appended))
	}
	if c.Conn().State() != conn.StateOnline {
		t.Errorf("state = %v, want online after 5xx", c.Conn().State())
	}
}

func TestSubmit_RefusedEndpointGoesRestricted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewController()
	c.Start(Config{Language: locale.English, RemoteEndpoint: url, RemoteKey: "k"})

	appended := c.Submit(context.Background(), "hello")
	if len(appended) != 2 {
		t.Fatalf("turn should complete despite blocked sink, got %d messages", len(appended))
	}
	if c.Conn().State() != conn.StateRestricted {
		t.Errorf("state = %v, want restricted", c.Conn().State())
	}
}

// =============================================================================
// PANIC RECOVERY
// =============================================================================

func TestSubmit_PanicYieldsErrorReply(t *testing.T) {
	c := startOffline(t, locale.German)
	c.respond = func(string, locale.Language) intent.Response {
		panic("engine blew up")
	}

	appended := c.Submit(context.Background(), "was kostet das?")
	if len(appended) != 2 {
		t.Fatalf("appended %d messages, want user + error reply", len(appended))
	}
	if appended[1].Text != locale.For(locale.German).ErrorReply {
		t.Errorf("reply = %q, want localized error reply", appended[1].Text)
	}
	if len(c.Suggestions()) != 0 {
		t.Errorf("suggestions = %v, want cleared", c.Suggestions())
	}
	if c.Composing() {
		t.Error("composing should be cleared after a panic")
	}

	// The conversation survives: restore the engine and keep chatting.
	c.respond = intent.Respond
	next := c.Submit(context.Background(), "was kostet das?")
	if len(next) != 2 || next[1].Text != locale.Reply(locale.TopicPrice, locale.German) {
		t.Error("controller should recover and answer the next turn")
	}
}

// =============================================================================
// COMPOSING STATE
// =============================================================================

func TestComposing_VisibleDuringTurn(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewController()
	c.Start(Config{Language: locale.English, RemoteEndpoint: srv.URL, RemoteKey: "k"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Submit(context.Background(), "price")
	}()

	deadline := time.After(2 * time.Second)
	for !c.Composing() {
		select {
		case <-deadline:
			t.Fatal("composing never became visible during the turn")
		case <-time.After(5 * time.Millisecond):
		}
	}

	close(release)
	<-done
	if c.Composing() {
		t.Error("composing should clear once the turn finishes")
	}
}
