package match

import (
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// stackExpansions append the components of a stack acronym to the corpus.
var stackExpansions = []struct {
	cue        textnorm.Cue
	components string
}{
	{textnorm.Cue{Subs: []string{"mern"}}, " mongodb express react node.js nodejs"},
	{textnorm.Cue{Subs: []string{"mean stack", "mean-stack", "meanstack"}, Words: []string{"mean"}}, " mongodb express angular node.js"},
	{textnorm.Cue{Subs: []string{"mevn"}}, " mongodb express vue node.js"},
}

// programmingSignal marks a CV with general programming experience.
var programmingSignal = textnorm.Cue{
	Subs: []string{"programmierer", "programmierung", "developer", "programming", "software", "code", "entwickler", "entwicklung"},
}

// corpus is the lowercase text everything in a profile is matched against.
type corpus struct {
	lower string
}

func newCorpus(cvText string, p cv.Profile) corpus {
	var b strings.Builder
	b.WriteString(cvText)
	b.WriteByte(' ')
	b.WriteString(strings.Join(p.Skills, " "))
	b.WriteByte(' ')
	b.WriteString(strings.Join(p.Titles, " "))
	lower := strings.ToLower(b.String())

	expanded := lower
	for _, e := range stackExpansions {
		if e.cue.Match(lower) {
			expanded += e.components
		}
	}
	return corpus{lower: expanded}
}

// mentions tests a single lowercase pattern as a plain substring, so "java"
// is found inside "javascript" and "ui" inside "build".
func (c corpus) mentions(pattern string) bool {
	return strings.Contains(c.lower, pattern)
}

// provesAny reports whether any pattern, or one of its equivalents, is in
// the corpus.
func (c corpus) provesAny(patterns []string, equivalents map[string][]string) bool {
	for _, p := range patterns {
		if c.mentions(p) || textnorm.ContainsAny(c.lower, equivalents[p]...) {
			return true
		}
	}
	return false
}

func (c corpus) showsProgramming() bool {
	return programmingSignal.Match(c.lower)
}
