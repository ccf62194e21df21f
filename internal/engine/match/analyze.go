// Package match compares a job ad against a candidate profile and reports
// the overlapping and missing requirements, a fit percentage, a qualitative
// tier and a bilingual recommendation.
package match

import (
	"math"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// Level is the qualitative match tier.
type Level string

const (
	Poor      Level = "Poor"
	Limited   Level = "Limited"
	Partial   Level = "Partial"
	Good      Level = "Good"
	Excellent Level = "Excellent"
)

// Result is the outcome of one ad/profile comparison.
type Result struct {
	MatchPercent   int               `json:"matchPercent"`
	Labels         []string          `json:"labels"`
	Overlap        []string          `json:"overlap"`
	Missing        []string          `json:"missing"`
	Directions     []cv.DirectionTag `json:"directions"`
	MatchLevel     Level             `json:"matchLevel"`
	LevelLabel     string            `json:"levelLabel"`
	Recommendation string            `json:"recommendation"`
	Message        string            `json:"message"`
}

// Analyze scores adText against the profile and the raw CV text. It is a
// pure function: malformed or empty input yields a zero score, never an error.
func Analyze(adText string, p cv.Profile, lang i18n.Lang, cvText string) Result {
	adLower := strings.ToLower(adText)
	c := newCorpus(cvText, p)

	var part textnorm.Partition
	covered := make(map[string]bool)

	for _, def := range Definitions {
		if !firesIn(adText, def.Patterns) {
			continue
		}
		label := textnorm.NewLabel(def.Label)
		part.Record(label, c.provesAny(def.Patterns, definitionEquivalents))
		covered[label.Key()] = true
		for _, pat := range def.Patterns {
			covered[textnorm.LabelKey(pat)] = true
		}
	}

	for _, tok := range ExtractTokens(adText) {
		label := textnorm.NewLabel(tok.Label)
		if covered[textnorm.LabelKey(tok.Key)] || covered[label.Key()] {
			continue
		}
		present := c.provesAny([]string{tok.Key}, tokenEquivalents) ||
			textnorm.ContainsWord(c.lower, strings.ToLower(tok.Label))
		part.Record(label, present)
	}

	// Role concepts alone are not concrete enough to score or itemize: an ad
	// without technical labels is 0% and gets the no-keywords message.
	if part.Total() == 0 {
		return Result{
			MatchPercent:   0,
			Labels:         []string{},
			Overlap:        []string{},
			Missing:        []string{},
			Directions:     adDirectionTags(adLower),
			MatchLevel:     Poor,
			LevelLabel:     tiers[Poor].label.In(lang),
			Recommendation: tiers[Poor].recommendation.In(lang),
			Message:        noKeywordsMessage(adLower, c, lang),
		}
	}

	programming := c.showsProgramming()
	for _, rc := range roleConcepts {
		if rc.cue.Match(adLower) {
			part.Record(textnorm.NewLabel(rc.label.In(lang)), programming)
		}
	}

	pct := Percent(len(part.Overlap()), part.Total())
	level := LevelFor(pct)
	res := Result{
		MatchPercent:   pct,
		Labels:         part.All(),
		Overlap:        part.Overlap(),
		Missing:        part.Missing(),
		Directions:     adDirectionTags(adLower),
		MatchLevel:     level,
		LevelLabel:     tiers[level].label.In(lang),
		Recommendation: tiers[level].recommendation.In(lang),
	}
	res.Message = composeMessage(res, lang, strings.TrimSpace(cvText) != "")
	return res
}

func firesIn(adText string, patterns []string) bool {
	for _, p := range patterns {
		if textnorm.ContainsWord(adText, p) {
			return true
		}
	}
	return false
}

// Percent is round(100 * overlap / total), 0 when total is 0.
func Percent(overlap, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(overlap) / float64(total) * 100))
}

// LevelFor maps a percentage to its tier.
func LevelFor(pct int) Level {
	switch {
	case pct >= 80:
		return Excellent
	case pct >= 60:
		return Good
	case pct >= 40:
		return Partial
	case pct >= 20:
		return Limited
	default:
		return Poor
	}
}
