// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"golang.org/x/text/language"
)

// =============================================================================
// LANGUAGE TYPE
// =============================================================================

// Language is a supported widget language code (ISO 639-1).
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
	Italian Language = "it"
	Russian Language = "ru"
)

// DefaultLanguage is the fallback for unset or unsupported language codes.
const DefaultLanguage = English

// supported lists the languages in matcher preference order. English first:
// it is the fallback for every lookup.
var supported = []Language{English, Spanish, French, German, Italian, Russian}

// matcher resolves arbitrary BCP-47 tags ("en-GB", "ru-RU", "pt") against the
// supported set.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Italian,
	language.Russian,
})

// Supported returns the supported languages in a fixed order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Valid reports whether l is one of the supported language codes.
func (l Language) Valid() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Match resolves a configured language tag to a supported Language.
// Unparseable, empty, or unmatchable tags fall back to English; regional
// variants ("es-MX", "de-AT") resolve to their base language.
func Match(tag string) Language {
	if tag == "" {
		return DefaultLanguage
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

// =============================================================================
// UI STRINGS
// =============================================================================

// Strings holds the localized UI strings for one language.
type Strings struct {
	// Welcome is the bot message that seeds every new session.
	Welcome string

	// ErrorReply is the generic bot message appended when the submit
	// pipeline fails unexpectedly.
	ErrorReply string

	// Placeholder is the input field placeholder text.
	Placeholder string

	// ComposingHint is shown next to the spinner while a reply is pending.
	ComposingHint string

	// Status labels for the connection badge.
	StatusOnline   string
	StatusOffline  string
	StatusUnknown  string
	// RestrictedHint annotates the offline label when the sink was blocked
	// at the network/origin level rather than merely unreachable.
	RestrictedHint string
}

// uiStrings is the per-language UI string table.
var uiStrings = map[Language]Strings{
	English: {
		Welcome:        "Welcome aboard! I'm the tour assistant. Ask me anything about our yacht-racing tours: prices, booking, experience requirements, what's included, or our weather policy.",
		ErrorReply:     "Sorry, something went wrong on my end. Please try again, or email us at crew@helmdesk.example.",
		Placeholder:    "Type a message...",
		ComposingHint:  "typing",
		StatusOnline:   "connected",
		StatusOffline:  "offline",
		StatusUnknown:  "connecting",
		RestrictedHint: "(network blocked)",
	},
	Spanish: {
		Welcome:        "¡Bienvenido a bordo! Soy el asistente de tours. Pregúntame lo que quieras sobre nuestros tours de regata: precios, reservas, experiencia necesaria, qué está incluido o nuestra política meteorológica.",
		ErrorReply:     "Lo siento, algo ha fallado por mi parte. Inténtalo de nuevo o escríbenos a crew@helmdesk.example.",
		Placeholder:    "Escribe un mensaje...",
		ComposingHint:  "escribiendo",
		StatusOnline:   "conectado",
		StatusOffline:  "sin conexión",
		StatusUnknown:  "conectando",
		RestrictedHint: "(red bloqueada)",
	},
	French: {
		Welcome:        "Bienvenue à bord ! Je suis l'assistant des croisières. Posez-moi vos questions sur nos tours de régate : prix, réservation, expérience requise, prestations incluses ou politique météo.",
		ErrorReply:     "Désolé, une erreur est survenue de mon côté. Réessayez ou écrivez-nous à crew@helmdesk.example.",
		Placeholder:    "Écrivez un message...",
		ComposingHint:  "en train d'écrire",
		StatusOnline:   "connecté",
		StatusOffline:  "hors ligne",
		StatusUnknown:  "connexion",
		RestrictedHint: "(réseau bloqué)",
	},
	German: {
		Welcome:        "Willkommen an Bord! Ich bin der Touren-Assistent. Fragen Sie mich alles über unsere Regatta-Touren: Preise, Buchung, nötige Erfahrung, Leistungen oder unsere Wetterregelung.",
		ErrorReply:     "Entschuldigung, bei mir ist etwas schiefgelaufen. Bitte versuchen Sie es erneut oder schreiben Sie an crew@helmdesk.example.",
		Placeholder:    "Nachricht eingeben...",
		ComposingHint:  "schreibt",
		StatusOnline:   "verbunden",
		StatusOffline:  "offline",
		StatusUnknown:  "verbinde",
		RestrictedHint: "(Netzwerk blockiert)",
	},
	Italian: {
		Welcome:        "Benvenuto a bordo! Sono l'assistente dei tour. Chiedimi qualsiasi cosa sui nostri tour di regata: prezzi, prenotazioni, esperienza richiesta, cosa è incluso o la nostra politica meteo.",
		ErrorReply:     "Mi dispiace, qualcosa è andato storto da parte mia. Riprova oppure scrivici a crew@helmdesk.example.",
		Placeholder:    "Scrivi un messaggio...",
		ComposingHint:  "sta scrivendo",
		StatusOnline:   "connesso",
		StatusOffline:  "offline",
		StatusUnknown:  "connessione",
		RestrictedHint: "(rete bloccata)",
	},
	Russian: {
		Welcome:        "Добро пожаловать на борт! Я помощник по турам. Спросите меня о наших парусных регатах: цены, бронирование, требуемый опыт, что включено и погодные условия.",
		ErrorReply:     "Извините, что-то пошло не так. Попробуйте ещё раз или напишите нам на crew@helmdesk.example.",
		Placeholder:    "Введите сообщение...",
		ComposingHint:  "печатает",
		StatusOnline:   "на связи",
		StatusOffline:  "офлайн",
		StatusUnknown:  "подключение",
		RestrictedHint: "(сеть заблокирована)",
	},
}

// For returns the UI strings for a language, falling back to English for
// anything outside the supported set.
func For(l Language) Strings {
	if s, ok := uiStrings[l]; ok {
		return s
	}
	return uiStrings[English]
}
