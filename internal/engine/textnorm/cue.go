package textnorm

import "regexp"

// Cue is a keyword predicate over lowercase text. Subs match as substrings,
// Words as whole words and Re, when set, as a regular expression. Any hit
// satisfies the cue.
type Cue struct {
	Subs  []string
	Words []string
	Re    *regexp.Regexp
}

// Match reports whether lower satisfies the cue.
func (c Cue) Match(lower string) bool {
	if ContainsAny(lower, c.Subs...) || ContainsAnyWord(lower, c.Words...) {
		return true
	}
	return c.Re != nil && c.Re.MatchString(lower)
}
