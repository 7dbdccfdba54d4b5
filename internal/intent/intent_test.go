// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"testing"

	"github.com/morganforge/helmdesk-tui/internal/locale"
)

// =============================================================================
// TOPIC MATCHING TESTS
// =============================================================================

func TestRespond_TopicMatching(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang locale.Language
		want Topic
	}{
		{name: "english price", text: "How much does a tour cost?", lang: locale.English, want: TopicPrice},
		{name: "russian price", text: "сколько стоит?", lang: locale.Russian, want: TopicPrice},
		{name: "german price", text: "Was kostet die Tour?", lang: locale.German, want: TopicPrice},
		{name: "french price", text: "C'est combien ?", lang: locale.French, want: TopicPrice},
		{name: "english experience", text: "Do I need sailing experience?", lang: locale.English, want: TopicExperience},
		{name: "russian experience", text: "нужен ли опыт?", lang: locale.Russian, want: TopicExperience},
		{name: "english booking", text: "How do I book a tour?", lang: locale.English, want: TopicBooking},
		{name: "italian booking", text: "Vorrei prenotare", lang: locale.Italian, want: TopicBooking},
		{name: "english inclusions", text: "What is included?", lang: locale.English, want: TopicInclusions},
		{name: "russian inclusions", text: "что входит в тур?", lang: locale.Russian, want: TopicInclusions},
		{name: "english weather", text: "What happens in bad weather?", lang: locale.English, want: TopicWeather},
		{name: "spanish weather", text: "¿Y si hay mucho viento?", lang: locale.Spanish, want: TopicWeather},
		{name: "no match", text: "hello there", lang: locale.English, want: TopicDefault},
		{name: "empty input", text: "", lang: locale.English, want: TopicDefault},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Respond(tc.text, tc.lang)
			if got.Topic != tc.want {
				t.Errorf("Respond(%q).Topic = %v, want %v", tc.text, got.Topic, tc.want)
			}
			if got.Text != locale.Reply(tc.want.Key(), tc.lang) {
				t.Errorf("Respond(%q).Text = %q, want canonical %s reply", tc.text, got.Text, tc.want)
			}
			if got.Language != tc.lang {
				t.Errorf("Respond(%q).Language = %q, want %q", tc.text, got.Language, tc.lang)
			}
		})
	}
}

// TestRespond_EveryKeywordHitsItsTopic feeds every declared keyword back into
// the engine in every supported language and asserts it resolves to its own
// topic with the canonical localized body. This doubles as a cross-topic
// collision check: an earlier topic's keyword hiding inside a later topic's
// keyword would fail here.
func TestRespond_EveryKeywordHitsItsTopic(t *testing.T) {
	for _, topic := range Topics() {
		if topic == TopicDefault {
			continue
		}
		for _, kw := range Keywords(topic) {
			for _, lang := range locale.Supported() {
				got := Respond(kw, lang)
				if got.Topic != topic {
					t.Errorf("Respond(%q, %s).Topic = %v, want %v", kw, lang, got.Topic, topic)
				}
				if got.Text != locale.Reply(topic.Key(), lang) {
					t.Errorf("Respond(%q, %s) returned wrong body", kw, lang)
				}
			}
		}
	}
}

// TestRespond_LanguageAgnosticMatching verifies a keyword from one language
// matches regardless of the session language; only the reply is localized.
func TestRespond_LanguageAgnosticMatching(t *testing.T) {
	got := Respond("combien ça coûte ?", locale.Russian)
	if got.Topic != TopicPrice {
		t.Fatalf("french keyword should match price, got %v", got.Topic)
	}
	if got.Text != locale.Reply(locale.TopicPrice, locale.Russian) {
		t.Errorf("reply should be localized to russian, got %q", got.Text)
	}
}

// TestRespond_PriorityOrder verifies that input matching two topics resolves
// to the earlier one in the declared priority order.
func TestRespond_PriorityOrder(t *testing.T) {
	// "how much to book" matches both price and booking; price is declared first.
	got := Respond("how much to book a tour?", locale.English)
	if got.Topic != TopicPrice {
		t.Errorf("price should win over booking, got %v", got.Topic)
	}
}

// TestRespond_QuickRepliesMatchTheirTopic feeds the widget's own quick-reply
// chips back through the engine: every localized default chip and every fixed
// topic chip must land on a real topic, never the fallback reply. A user who
// taps a chip the widget itself offered should always get a direct answer.
func TestRespond_QuickRepliesMatchTheirTopic(t *testing.T) {
	// Default chips are ordered prices, booking, experience, inclusions in
	// every language.
	wantByIndex := []Topic{TopicPrice, TopicBooking, TopicExperience, TopicInclusions}

	for _, lang := range locale.Supported() {
		chips := locale.DefaultSuggestions(lang)
		if len(chips) != len(wantByIndex) {
			t.Fatalf("default suggestions for %s: got %d chips, want %d", lang, len(chips), len(wantByIndex))
		}
		for i, chip := range chips {
			got := Respond(chip, lang)
			if got.Topic != wantByIndex[i] {
				t.Errorf("Respond(%q, %s).Topic = %v, want %v", chip, lang, got.Topic, wantByIndex[i])
			}
		}
	}

	// Fixed topic chips are English-authored but must round-trip too.
	for _, topic := range Topics() {
		if topic == TopicDefault {
			continue
		}
		for _, chip := range Respond(Keywords(topic)[0], locale.English).Suggestions {
			if got := Respond(chip, locale.English); got.Topic == TopicDefault {
				t.Errorf("topic chip %q fell through to the default reply", chip)
			}
		}
	}
}

// =============================================================================
// SUGGESTION TESTS
// =============================================================================

func TestRespond_TopicSuggestionsAreFixed(t *testing.T) {
	// Topic suggestions are English-authored and identical across languages.
	en := Respond("price", locale.English)
	ru := Respond("цена", locale.Russian)

	if len(en.Suggestions) == 0 {
		t.Fatal("price response should carry suggestions")
	}
	if len(en.Suggestions) != len(ru.Suggestions) {
		t.Fatalf("suggestion lists differ in length: %v vs %v", en.Suggestions, ru.Suggestions)
	}
	for i := range en.Suggestions {
		if en.Suggestions[i] != ru.Suggestions[i] {
			t.Errorf("topic suggestions should not localize: %q vs %q", en.Suggestions[i], ru.Suggestions[i])
		}
	}
}

func TestRespond_DefaultSuggestionsLocalize(t *testing.T) {
	for _, lang := range locale.Supported() {
		got := Respond("xyzzy", lang)
		want := locale.DefaultSuggestions(lang)
		if len(got.Suggestions) != len(want) {
			t.Fatalf("default suggestions length mismatch for %s", lang)
		}
		for i := range want {
			if got.Suggestions[i] != want[i] {
				t.Errorf("default suggestions for %s = %v, want %v", lang, got.Suggestions, want)
			}
		}
	}
}

// =============================================================================
// PURITY TESTS
// =============================================================================

func TestRespond_Deterministic(t *testing.T) {
	first := Respond("how much does it cost?", locale.English)
	for i := 0; i < 10; i++ {
		again := Respond("how much does it cost?", locale.English)
		if again.Topic != first.Topic || again.Text != first.Text {
			t.Fatal("Respond is not deterministic")
		}
	}
}

func TestRespond_SuggestionsAreCopies(t *testing.T) {
	first := Respond("price", locale.English)
	first.Suggestions[0] = "mutated"
	if Respond("price", locale.English).Suggestions[0] == "mutated" {
		t.Error("mutating a response's suggestions must not affect later responses")
	}
}
