// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"strings"

	"github.com/morganforge/helmdesk-tui/internal/locale"
)

// =============================================================================
// TOPIC TYPE
// =============================================================================

// Topic is a matched conversation topic.
type Topic int

const (
	TopicPrice Topic = iota
	TopicExperience
	TopicBooking
	TopicInclusions
	TopicWeather
	TopicDefault
)

// Key returns the localization-table key for the topic.
func (t Topic) Key() locale.TopicKey {
	switch t {
	case TopicPrice:
		return locale.TopicPrice
	case TopicExperience:
		return locale.TopicExperience
	case TopicBooking:
		return locale.TopicBooking
	case TopicInclusions:
		return locale.TopicInclusions
	case TopicWeather:
		return locale.TopicWeather
	default:
		return locale.TopicDefault
	}
}

// String returns the topic name.
func (t Topic) String() string {
	return string(t.Key())
}

// =============================================================================
// RESPONSE TYPE
// =============================================================================

// Response is the transient result of one Respond call. It exists only long
// enough to be wrapped into a bot message.
type Response struct {
	// Topic that matched (TopicDefault when nothing did).
	Topic Topic

	// Text is the localized reply body.
	Text string

	// Suggestions is the quick-reply list to display after this turn.
	// Topic replies carry a fixed English-authored list; only the default
	// path localizes its suggestions.
	Suggestions []string

	// Language the reply is localized to.
	Language locale.Language
}

// =============================================================================
// KEYWORD RULES
// =============================================================================

// topicRule binds one topic to its keyword pool and fixed suggestion list.
// Keywords are lowercase and pooled across all supported languages: matching
// is language-agnostic, only the reply body is localized. Word stems are used
// where a language inflects ("заброниров" covers "забронировать" and
// "забронируйте").
type topicRule struct {
	topic       Topic
	keywords    []string
	suggestions []string
}

// rules is the ordered topic list. First match wins; the order below is the
// declared priority (price → experience → booking → inclusions → weather).
// Keyword pools are intended to be disjoint across topics, but nothing
// enforces that: an overlapping keyword resolves silently to the earlier
// topic.
var rules = []topicRule{
	{
		topic: TopicPrice,
		keywords: []string{
			"price", "cost", "how much",
			"precio", "cuesta", "cuánto", "cuanto cuesta",
			"prix", "tarif", "combien", "coût", "cout",
			"preis", "kostet", "kosten",
			"prezz", "quanto costa", "costo",
			"цен", "стоит", "сколько", "стоимость",
		},
		suggestions: []string{"How do I book?", "What's included?"},
	},
	{
		topic: TopicExperience,
		keywords: []string{
			"experience", "beginner", "prerequisite", "first time", "never sailed",
			"experiencia",
			"expérience", "débutant", "debutant",
			"erfahrung", "anfänger", "anfanger",
			"esperienza", "principiant",
			"опыт", "новичок", "новичк",
		},
		suggestions: []string{"View prices", "How do I book?"},
	},
	{
		topic: TopicBooking,
		keywords: []string{
			"book", "reserv", "réserv",
			"buch", "prenot",
			"бронь", "заброниров", "бронир",
		},
		suggestions: []string{"View prices", "What's included?"},
	},
	{
		topic: TopicInclusions,
		keywords: []string{
			"includ",
			"incluido", "incluye",
			"inclus", "compris",
			"inbegriffen", "enthalten",
			"incluso", "compreso",
			"включ", "входит",
		},
		suggestions: []string{"View prices", "How do I book?"},
	},
	{
		topic: TopicWeather,
		keywords: []string{
			"weather", "wind", "storm", "rain",
			"tiempo", "clima", "viento", "lluvia",
			"météo", "meteo", "vent", "pluie",
			"wetter", "sturm", "regen",
			"tempo", "vento", "pioggia",
			"погода", "ветер", "шторм", "дожд",
		},
		suggestions: []string{"How do I book?", "Do I need experience?"},
	},
}

// =============================================================================
// RESPONSE ENGINE
// =============================================================================

// Respond maps free-text input to a canned reply in the given language.
// It is pure and total: every input, including the empty string, yields a
// Response, and identical inputs always yield identical output.
func Respond(text string, lang locale.Language) Response {
	q := strings.ToLower(text)

	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return Response{
					Topic:       rule.topic,
					Text:        locale.Reply(rule.topic.Key(), lang),
					Suggestions: append([]string(nil), rule.suggestions...),
					Language:    lang,
				}
			}
		}
	}

	return Response{
		Topic:       TopicDefault,
		Text:        locale.Reply(locale.TopicDefault, lang),
		Suggestions: locale.DefaultSuggestions(lang),
		Language:    lang,
	}
}

// Topics returns the topics in declared priority order, default last.
// Exposed for tests and diagnostics.
func Topics() []Topic {
	out := make([]Topic, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.topic)
	}
	return append(out, TopicDefault)
}

// Keywords returns the keyword pool for a topic, or nil for TopicDefault.
// Exposed for tests and diagnostics.
func Keywords(t Topic) []string {
	for _, r := range rules {
		if r.topic == t {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}
