package cv

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// MaxTitles caps Profile.Titles produced by Classify.
const MaxTitles = 15

var (
	yearsRe    = regexp.MustCompile(`(?i)(\d+)\+?\s*(years?|jahre)`)
	locationRe = regexp.MustCompile(`(?:in|at|from|based in|located in)\s+([A-ZÄÖÜ][A-Za-zÄÖÜäöüß]+(?:\s+[A-ZÄÖÜ][A-Za-zÄÖÜäöüß]+)?)`)
	bareCRe    = regexp.MustCompile(`\bc\b`)
)

var languagePatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)english|englisch`), "English"},
	{regexp.MustCompile(`(?i)german|deutsch`), "German"},
	{regexp.MustCompile(`(?i)spanish|spanisch`), "Spanish"},
	{regexp.MustCompile(`(?i)french|französisch`), "French"},
}

var (
	juniorWords = []string{"junior", "entry", "trainee", "praktikant", "praktikum", "intern", "bootcamp", "student"}
	seniorWords = []string{"senior", "lead", "principal", "architect"}
	remoteWords = []string{"remote", "homeoffice", "home office", "work from home"}
)

// inTrainingPhrases mark knowledge that is still being acquired; they veto
// ML and AI signals so an ongoing course is not read as job experience.
var inTrainingPhrases = []string{"in weiterbildung", "in training", "aktuell in"}

// mobileCommunicationPhrases veto the "iot" embedded signal, which otherwise
// fires on telecom degrees.
var mobileCommunicationPhrases = []string{"mobile communication", "mobile-kommunikation"}

// Classify infers experience level, languages, remote preference, location,
// titles and directions from raw CV text. Skills are left empty; use
// ExtractSkills for those. Titles and Directions are never empty.
func Classify(cvText string) Profile {
	lower := strings.ToLower(textnorm.CollapseSpaces(cvText))
	sig := detectSignals(lower)

	level := experienceLevel(cvText, lower)
	sig.junior = level == Junior

	var rs roleSet
	for _, r := range roleRules {
		if r.when(sig) {
			r.apply(sig, &rs)
		}
	}

	if len(rs.titles) == 0 {
		rs.titles = []string{"Web Developer", "Software Developer"}
	}
	if len(rs.directions) == 0 {
		rs.directions = []DirectionTag{Frontend}
	}

	titles := AppendUnique(slices.Clone(rs.titles), rs.alts...)
	if len(titles) > MaxTitles {
		titles = titles[:MaxTitles]
	}

	return Profile{
		Skills:            []Skill{},
		Titles:            titles,
		AlternativeTitles: append([]string{}, rs.alts...),
		Directions:        rs.directions,
		ExperienceLevel:   level,
		Languages:         spokenLanguages(cvText),
		PrefersRemote:     textnorm.ContainsAny(lower, remoteWords...),
		Location:          locationHint(cvText),
	}
}

// experienceLevel applies keyword signals first and falls back to the first
// "<N> years" mention.
func experienceLevel(cvText, lower string) ExperienceLevel {
	if textnorm.ContainsAny(lower, juniorWords...) {
		return Junior
	}
	if textnorm.ContainsAny(lower, seniorWords...) {
		return Senior
	}
	if m := yearsRe.FindStringSubmatch(cvText); m != nil {
		years, _ := strconv.Atoi(m[1])
		switch {
		case years >= 5:
			return Senior
		case years <= 2:
			return Junior
		}
	}
	return Mid
}

func spokenLanguages(cvText string) []string {
	var langs []string
	for _, lp := range languagePatterns {
		if lp.re.MatchString(cvText) {
			langs = append(langs, lp.name)
		}
	}
	if len(langs) == 0 {
		return []string{"German", "English"}
	}
	return langs
}

// locationHint returns the city of the last preposition+capitalized match,
// which in a chronological CV is usually the current one.
func locationHint(cvText string) string {
	all := locationRe.FindAllStringSubmatch(cvText, -1)
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1][1]
}

// roleSet accumulates rule output in insertion order without duplicates.
type roleSet struct {
	titles     []string
	alts       []string
	directions []DirectionTag
}

func (r *roleSet) title(t ...string)           { r.titles = AppendUnique(r.titles, t...) }
func (r *roleSet) alt(t ...string)             { r.alts = AppendUnique(r.alts, t...) }
func (r *roleSet) direction(d ...DirectionTag) { r.directions = AppendUnique(r.directions, d...) }
