// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/helmdesk-tui/internal/locale"
	"github.com/morganforge/helmdesk-tui/internal/session"
	"github.com/morganforge/helmdesk-tui/internal/ui/styles"
)

func testModel(t *testing.T, lang locale.Language) Model {
	t.Helper()
	ctrl := session.NewController()
	ctrl.Start(session.Config{Language: lang})
	return New(ctrl, styles.NewTheme("dark", "#1E3A8A"), nil)
}

func resized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func keyPress(m Model, s string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runTurn drives a submit command to completion synchronously.
func runTurn(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a turn command")
	}
	msg := findTurnComplete(t, cmd())
	next, _ := m.Update(msg)
	return next.(Model)
}

// findTurnComplete unwraps batched commands down to the TurnCompleteMsg.
func findTurnComplete(t *testing.T, msg tea.Msg) TurnCompleteMsg {
	t.Helper()
	switch v := msg.(type) {
	case TurnCompleteMsg:
		return v
	case tea.BatchMsg:
		for _, c := range v {
			if c == nil {
				continue
			}
			if tc, ok := c().(TurnCompleteMsg); ok {
				return tc
			}
		}
	}
	t.Fatalf("no TurnCompleteMsg in %T", msg)
	return TurnCompleteMsg{}
}

// =============================================================================
// LAYOUT
// =============================================================================

func TestView_BeforeResize(t *testing.T) {
	m := testModel(t, locale.English)
	if m.View() != "Loading..." {
		t.Errorf("View before resize = %q, want Loading...", m.View())
	}
}

func TestView_AfterResize(t *testing.T) {
	m := resized(t, testModel(t, locale.English))

	out := m.View()
	if !strings.Contains(out, "Morgan Forge") {
		t.Error("view missing header")
	}
	if !strings.Contains(out, locale.For(locale.English).Welcome) {
		t.Error("view missing welcome message")
	}
	// Starter chips visible.
	if !strings.Contains(out, "View prices") {
		t.Error("view missing starter suggestions")
	}
}

// TestView_FillsTerminalExactly locks the chrome accounting to the rendered
// output: the composed view must occupy exactly the terminal height, with
// the bordered input counted at two lines.
func TestView_FillsTerminalExactly(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	if got := lipgloss.Height(m.View()); got != 24 {
		t.Errorf("view height = %d, want 24", got)
	}

	// A completed turn swaps the chip row; the total must not drift.
	m, _ = keyPress(m, "price")
	m, cmd := keyPress(m, "enter")
	m = runTurn(t, m, cmd)
	if got := lipgloss.Height(m.View()); got != 24 {
		t.Errorf("view height after turn = %d, want 24", got)
	}
}

func TestChromeHeight_TracksRenderedChips(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	if got := m.chromeHeight(); got != 8 {
		t.Errorf("chrome height with chips = %d, want 8", got)
	}

	// Too narrow for any chip: the row renders empty and takes no lines.
	m.width = 10
	if got := m.chromeHeight(); got != 5 {
		t.Errorf("chrome height with collapsed chip row = %d, want 5", got)
	}
}

func TestView_LocalizedChrome(t *testing.T) {
	m := resized(t, testModel(t, locale.Russian))
	if !strings.Contains(m.View(), locale.For(locale.Russian).Welcome) {
		t.Error("view missing russian welcome")
	}
}

// =============================================================================
// TURNS
// =============================================================================

func TestSubmit_ByTypingAndEnter(t *testing.T) {
	m := resized(t, testModel(t, locale.English))

	m, _ = keyPress(m, "price")
	m, cmd := keyPress(m, "enter")
	if !m.waiting {
		t.Fatal("model should be waiting after enter")
	}

	m = runTurn(t, m, cmd)
	if m.waiting {
		t.Error("waiting should clear after TurnCompleteMsg")
	}
	out := m.View()
	if !strings.Contains(out, "€450") {
		t.Errorf("view missing price reply:\n%s", out)
	}
}

func TestSubmit_EmptyEnterIsNoOp(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	m, cmd := keyPress(m, "enter")
	if cmd != nil {
		t.Error("enter on empty input should not start a turn")
	}
	if m.waiting {
		t.Error("model should not be waiting")
	}
}

func TestSubmit_IgnoredWhileWaiting(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	m, _ = keyPress(m, "price")
	m, cmd := keyPress(m, "enter")
	if cmd == nil {
		t.Fatal("first enter should start a turn")
	}

	m, cmd2 := keyPress(m, "enter")
	if cmd2 != nil {
		t.Error("second enter should be ignored while waiting")
	}
	_ = m
}

// =============================================================================
// SUGGESTION CHIPS
// =============================================================================

func TestNumberKey_PicksChip(t *testing.T) {
	m := resized(t, testModel(t, locale.English))

	// Chip 1 of the starter row is "View prices".
	m, cmd := keyPress(m, "1")
	if !m.waiting {
		t.Fatal("number key on empty input should start a turn")
	}

	m = runTurn(t, m, cmd)
	msgs := m.ctrl.Messages()
	if msgs[len(msgs)-2].Text != "View prices" {
		t.Errorf("picked chip text = %q, want View prices", msgs[len(msgs)-2].Text)
	}
	if msgs[len(msgs)-1].Text != locale.Reply(locale.TopicPrice, locale.English) {
		t.Error("chip pick should resolve to the price reply")
	}
}

func TestNumberKey_TypesWhenInputNotEmpty(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	m, _ = keyPress(m, "tour ")
	m, cmd := keyPress(m, "1")
	if cmd != nil {
		// textinput.Update may return a cmd; the key point is no turn started.
		if _, ok := cmd().(TurnCompleteMsg); ok {
			t.Fatal("number key should type, not pick, when input has text")
		}
	}
	if m.waiting {
		t.Error("no turn should start")
	}
	if m.input.Value() != "tour 1" {
		t.Errorf("input = %q, want %q", m.input.Value(), "tour 1")
	}
}

func TestNumberKey_OutOfRangeTypes(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	m, _ = keyPress(m, "9") // starter row has fewer than 9 chips
	if m.waiting {
		t.Error("out-of-range chip number should not start a turn")
	}
	if m.input.Value() != "9" {
		t.Errorf("input = %q, want 9", m.input.Value())
	}
}

// =============================================================================
// QUIT
// =============================================================================

func TestEsc_Quits(t *testing.T) {
	m := resized(t, testModel(t, locale.English))
	_, cmd := keyPress(m, "esc")
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}
