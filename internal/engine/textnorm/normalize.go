// Package textnorm cleans free text (CVs, job ads) before keyword analysis
// and provides the label and whole-word primitives shared by the extractors.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	urlRe      = regexp.MustCompile(`(?i)https?://\S+`)
	emailRe    = regexp.MustCompile(`[^\s,;]+@[^\s,;]+`)
	dateFullRe = regexp.MustCompile(`\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}`)
	dateFragRe = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,4}`)
	yearRe     = regexp.MustCompile(`\b\d{4}\b`)
	wsRe       = regexp.MustCompile(`\s+`)

	// symbolRe matches everything that is not a letter, digit, underscore,
	// whitespace or one of the list separators used in CV skill blocks.
	symbolRe = regexp.MustCompile(`[^\p{L}\p{N}_\s,;•·/\-–|()]`)

	// techTokenRe finds technology names whose punctuation would otherwise be
	// stripped. Group 1 is the token itself; a token ending in a letter must
	// also end a word, which protectTechTokens checks.
	techTokenRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(c\+\+|c#|f#|[\p{L}\p{N}]*\.net|[\p{L}\p{N}]+\.js)`)

	// Placeholders are letters wrapped in underscores: they survive the date
	// and symbol passes, and the closing underscore keeps adjacent words out.
	placeholderRe = regexp.MustCompile(`_tok([a-z]+)_`)
)

// Normalize strips dates, URLs, e-mail addresses, emoji and other symbols from text while
// keeping technology tokens such as "c++", "c#" and "node.js" intact.
// Whitespace is collapsed and the result trimmed. It never fails.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := norm.NFC.String(text)
	s = strings.ReplaceAll(s, "\r", "")
	s = urlRe.ReplaceAllString(s, " ")
	s = emailRe.ReplaceAllString(s, " ")

	s, protected := protectTechTokens(s)

	s = dateFullRe.ReplaceAllString(s, " ")
	s = dateFragRe.ReplaceAllString(s, " ")
	s = yearRe.ReplaceAllString(s, " ")
	s = symbolRe.ReplaceAllString(s, " ")
	s = CollapseSpaces(s)

	return restoreTechTokens(s, protected)
}

// CollapseSpaces turns every whitespace run into a single space and trims.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

func protectTechTokens(s string) (string, []string) {
	matches := techTokenRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}
	var b strings.Builder
	var protected []string
	last := 0
	for _, m := range matches {
		start, end := m[2], m[3]
		if endsMidWord(s, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(placeholder(len(protected)))
		protected = append(protected, s[start:end])
		last = end
	}
	b.WriteString(s[last:])
	return b.String(), protected
}

func restoreTechTokens(s string, protected []string) string {
	if len(protected) == 0 {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		idx := placeholderIndex(placeholderRe.FindStringSubmatch(m)[1])
		if idx < 0 || idx >= len(protected) {
			return m
		}
		return protected[idx]
	})
}

// endsMidWord reports whether a token ending in a letter or digit at end
// runs on into a longer word, as ".net" does in "asp.network".
func endsMidWord(s string, end int) bool {
	if end >= len(s) {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s[:end])
	next, _ := utf8.DecodeRuneInString(s[end:])
	return isWordRune(last) && isWordRune(next)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// placeholder encodes i with letters only so that neither the date patterns
// nor the symbol strip can touch it.
func placeholder(i int) string {
	var b []byte
	for {
		b = append(b, byte('a'+i%26))
		i /= 26
		if i == 0 {
			break
		}
	}
	return "_tok" + string(b) + "_"
}

func placeholderIndex(code string) int {
	idx, mul := 0, 1
	for i := 0; i < len(code); i++ {
		idx += int(code[i]-'a') * mul
		mul *= 26
	}
	return idx
}
