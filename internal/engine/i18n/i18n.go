// Package i18n holds the two interface languages used for user-visible text.
// Switching the language never changes classification, only templates.
package i18n

import "strings"

// Lang is a two-value interface language.
type Lang string

const (
	DE Lang = "de"
	EN Lang = "en"
)

// Parse maps free-form input to a Lang. Anything that is not recognisably
// English falls back to def.
func Parse(s string, def Lang) Lang {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "de", "de-de", "german", "deutsch":
		return DE
	case "en", "en-us", "en-gb", "english", "englisch":
		return EN
	}
	return def
}

// Pick returns de for German and en otherwise.
func (l Lang) Pick(de, en string) string {
	if l == DE {
		return de
	}
	return en
}

// Text is a bilingual string pair.
type Text struct {
	DE string
	EN string
}

// In renders t for l.
func (t Text) In(l Lang) string {
	return l.Pick(t.DE, t.EN)
}
