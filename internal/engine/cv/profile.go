// Package cv turns résumé text into a job-seeker profile: skill keywords,
// likely job titles, experience level, spoken languages and direction tags.
package cv

import "slices"

// ExperienceLevel is the seniority inferred from a CV.
type ExperienceLevel string

const (
	Junior ExperienceLevel = "Junior"
	Mid    ExperienceLevel = "Mid-level"
	Senior ExperienceLevel = "Senior"
)

// DirectionTag is a coarse occupational cluster. A profile or ad may carry several.
type DirectionTag string

const (
	Frontend   DirectionTag = "frontend-heavy"
	Backend    DirectionTag = "backend-heavy"
	Fullstack  DirectionTag = "fullstack"
	DevOps     DirectionTag = "devops-heavy"
	Data       DirectionTag = "data-heavy"
	Design     DirectionTag = "design-heavy"
	AI         DirectionTag = "ai-heavy"
	Security   DirectionTag = "security-heavy"
	Mobile     DirectionTag = "mobile-heavy"
	QA         DirectionTag = "qa-heavy"
	GameDev    DirectionTag = "gamedev-heavy"
	Blockchain DirectionTag = "blockchain-heavy"
	Embedded   DirectionTag = "embedded-heavy"
	ERP        DirectionTag = "erp-heavy"
)

// Skill is a canonical skill label.
type Skill = string

// Profile is the inferred job-seeker profile.
type Profile struct {
	Skills            []Skill         `json:"skills"`
	Titles            []string        `json:"titles"`
	AlternativeTitles []string        `json:"alternativeTitles"`
	Directions        []DirectionTag  `json:"directions"`
	ExperienceLevel   ExperienceLevel `json:"experienceLevel"`
	Languages         []string        `json:"languages"`
	PrefersRemote     bool            `json:"prefersRemote"`
	Location          string          `json:"location"`
}

// HasContent reports whether the profile carries any skills or titles.
func (p Profile) HasContent() bool {
	return len(p.Skills) > 0 || len(p.Titles) > 0
}

// Clone returns a deep copy so callers can mutate slices freely.
func (p Profile) Clone() Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Titles = slices.Clone(p.Titles)
	p.AlternativeTitles = slices.Clone(p.AlternativeTitles)
	p.Directions = slices.Clone(p.Directions)
	p.Languages = slices.Clone(p.Languages)
	return p
}

// WithTitles returns a copy whose titles are extended by extra, skipping
// entries already present.
func (p Profile) WithTitles(extra ...string) Profile {
	out := p.Clone()
	out.Titles = AppendUnique(out.Titles, extra...)
	return out
}

// MergeAnalysis replaces the inferred fields of p with those of a fresh
// classification. Skills are kept; location falls back to the previous
// value when the CV carries no hint.
func (p Profile) MergeAnalysis(c Profile) Profile {
	out := p.Clone()
	out.Titles = slices.Clone(c.Titles)
	out.AlternativeTitles = slices.Clone(c.AlternativeTitles)
	out.Directions = slices.Clone(c.Directions)
	out.ExperienceLevel = c.ExperienceLevel
	out.Languages = slices.Clone(c.Languages)
	out.PrefersRemote = c.PrefersRemote
	if c.Location != "" {
		out.Location = c.Location
	}
	return out
}

// AppendUnique appends items not yet in list, preserving order.
func AppendUnique[T comparable](list []T, items ...T) []T {
	for _, it := range items {
		if !slices.Contains(list, it) {
			list = append(list, it)
		}
	}
	return list
}
