package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalLabel is a display label paired with the normalized key used for
// equality. Two labels are the same skill when their keys are equal.
type CanonicalLabel struct {
	display string
	key     string
}

// NewLabel builds a label from its display form.
func NewLabel(display string) CanonicalLabel {
	display = CollapseSpaces(display)
	return CanonicalLabel{display: display, key: LabelKey(display)}
}

func (l CanonicalLabel) String() string { return l.display }

// Key returns the normalized comparison key.
func (l CanonicalLabel) Key() string { return l.key }

// Equal reports whether both labels share a key.
func (l CanonicalLabel) Equal(o CanonicalLabel) bool { return l.key == o.key }

// LabelKey lowercases s, turns "/" and "-" into spaces and collapses
// whitespace.
func LabelKey(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("/", " ", "-", " ").Replace(s)
	return CollapseSpaces(s)
}

// LabelSet is an insertion-ordered set of labels deduplicated by key.
type LabelSet struct {
	items []CanonicalLabel
	index map[string]int
}

// Add inserts l unless a label with the same key exists. It reports whether
// the set changed.
func (s *LabelSet) Add(l CanonicalLabel) bool {
	if l.key == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[l.key]; ok {
		return false
	}
	s.index[l.key] = len(s.items)
	s.items = append(s.items, l)
	return true
}

// Has reports whether a label with key is present.
func (s *LabelSet) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Get returns the stored label for key.
func (s *LabelSet) Get(key string) (CanonicalLabel, bool) {
	i, ok := s.index[key]
	if !ok {
		return CanonicalLabel{}, false
	}
	return s.items[i], true
}

// Remove deletes the label with key, keeping the order of the rest.
func (s *LabelSet) Remove(key string) bool {
	i, ok := s.index[key]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, key)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].key] = j
	}
	return true
}

// Len returns the number of labels.
func (s *LabelSet) Len() int { return len(s.items) }

// Labels returns the display forms in insertion order.
func (s *LabelSet) Labels() []string {
	out := make([]string, len(s.items))
	for i, l := range s.items {
		out[i] = l.display
	}
	return out
}

// Partition splits every recorded label into overlap (present in the
// candidate's corpus) or missing. A label first recorded missing is promoted
// to overlap when it is recorded again as present; the reverse never happens.
type Partition struct {
	all     LabelSet
	overlap LabelSet
	missing LabelSet
}

// Record files l according to present.
func (p *Partition) Record(l CanonicalLabel, present bool) {
	if p.all.Add(l) {
		if present {
			p.overlap.Add(l)
		} else {
			p.missing.Add(l)
		}
		return
	}
	if !present || p.overlap.Has(l.key) {
		return
	}
	stored, _ := p.all.Get(l.key)
	p.overlap.Add(stored)
	p.missing.Remove(l.key)
}

// Has reports whether a label with key was recorded.
func (p *Partition) Has(key string) bool { return p.all.Has(key) }

// Total is the number of distinct labels recorded.
func (p *Partition) Total() int { return p.all.Len() }

// All returns every recorded label in recording order.
func (p *Partition) All() []string { return p.all.Labels() }

// Overlap returns the present labels in recording order.
func (p *Partition) Overlap() []string { return p.overlap.Labels() }

// Missing returns the absent labels in recording order.
func (p *Partition) Missing() []string { return p.missing.Labels() }

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TitleWord upper-cases the first letter and lower-cases the rest.
func TitleWord(s string) string {
	return cases.Title(language.Und).String(s)
}

// TitleSegments title-cases each dot-separated segment: "next.js" -> "Next.Js".
func TitleSegments(s string) string {
	segs := strings.Split(s, ".")
	caser := cases.Title(language.Und)
	for i, seg := range segs {
		segs[i] = caser.String(seg)
	}
	return strings.Join(segs, ".")
}

// IsLower reports whether s has no upper-case letters.
func IsLower(s string) bool {
	return s == strings.ToLower(s)
}
