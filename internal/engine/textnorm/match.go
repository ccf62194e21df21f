package textnorm

import (
	"regexp"
	"strings"
	"sync"
)

var splitRe = regexp.MustCompile(`[,;•·/\-–|()]+`)

// SplitTokens splits a normalized line on list separators and returns the
// non-empty, space-collapsed pieces.
func SplitTokens(s string) []string {
	parts := splitRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = CollapseSpaces(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WordMatcher tests for a case-insensitive whole-word occurrence of a term.
// A boundary is only enforced on an edge where the term itself starts or ends
// with a word character, so "c++", "c#" and ".net" still match.
type WordMatcher struct {
	term string
	re   *regexp.Regexp
}

// NewWordMatcher compiles a matcher for term. An empty term never matches.
func NewWordMatcher(term string) *WordMatcher {
	term = strings.TrimSpace(term)
	m := &WordMatcher{term: term}
	if term == "" {
		return m
	}
	var b strings.Builder
	b.WriteString(`(?i)`)
	if isWordByte(term[0]) {
		b.WriteString(`(?:^|[^A-Za-z0-9_])`)
	}
	b.WriteString(regexp.QuoteMeta(term))
	if isWordByte(term[len(term)-1]) {
		b.WriteString(`(?:[^A-Za-z0-9_]|$)`)
	}
	m.re = regexp.MustCompile(b.String())
	return m
}

// Term returns the term the matcher was built for.
func (m *WordMatcher) Term() string { return m.term }

// Match reports whether text contains the term as a whole word.
func (m *WordMatcher) Match(text string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

var matchers sync.Map // term (lowercase) -> *WordMatcher

// ContainsWord is a memoized NewWordMatcher(term).Match(text).
func ContainsWord(text, term string) bool {
	key := strings.ToLower(strings.TrimSpace(term))
	if v, ok := matchers.Load(key); ok {
		return v.(*WordMatcher).Match(text)
	}
	m := NewWordMatcher(key)
	v, _ := matchers.LoadOrStore(key, m)
	return v.(*WordMatcher).Match(text)
}

// ContainsAnyWord reports whether any of terms occurs in text as a whole word.
func ContainsAnyWord(text string, terms ...string) bool {
	for _, t := range terms {
		if ContainsWord(text, t) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether s contains any of the substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
