package jobs

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultLocation is used when a profile carries no usable location.
var DefaultLocation = "Deutschland"

// Portal is a user-defined job board. URL may contain the placeholders
// {query}, {title} and {location}.
type Portal struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// PortalLink is one rendered custom-portal URL.
type PortalLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SearchLinks is the set of search URLs for one title.
type SearchLinks struct {
	Title     string       `json:"title"`
	Indeed    string       `json:"indeed"`
	StepStone string       `json:"stepstone"`
	LinkedIn  string       `json:"linkedin"`
	Custom    []PortalLink `json:"custom,omitempty"`
}

// CompanyLinks points to research pages about an employer.
type CompanyLinks struct {
	Company   string `json:"company"`
	LinkedIn  string `json:"linkedin"`
	Glassdoor string `json:"glassdoor"`
}

var (
	workModeRe    = regexp.MustCompile(`(?i)\s*(oder|or)\s+(remote|hybrid)`)
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// LoadPortals reads custom portals from a YAML file: a list of {name, url}.
func LoadPortals(path string) ([]Portal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load portals: %w", err)
	}
	var portals []Portal
	if err := yaml.Unmarshal(data, &portals); err != nil {
		return nil, fmt.Errorf("load portals: parse %s: %w", path, err)
	}
	out := portals[:0]
	for _, p := range portals {
		p.Name = strings.TrimSpace(p.Name)
		p.URL = strings.TrimSpace(p.URL)
		if p.Name != "" && p.URL != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// ParseTitles splits raw title input on newlines and commas.
func ParseTitles(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		for _, part := range strings.Split(line, ",") {
			if t := strings.TrimSpace(part); t != "" {
				titles = append(titles, t)
			}
		}
	}
	return titles
}

// BuildSearchLinks renders one link set per title. Skills feed LinkedIn and
// custom portals only; at most the first two are used.
func BuildSearchLinks(titles []string, location string, skills []string, portals []Portal) ([]SearchLinks, error) {
	var clean []string
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("search_links: %w: at least one job title is required", ErrValidation)
	}

	loc := CleanLocation(location)
	out := make([]SearchLinks, 0, len(clean))
	for _, t := range clean {
		l := SearchLinks{
			Title:     t,
			Indeed:    indeedURL(t, loc),
			StepStone: stepStoneURL(t, loc),
			LinkedIn:  linkedInURL(t, loc, skills),
		}
		for _, p := range portals {
			l.Custom = append(l.Custom, PortalLink{Name: p.Name, URL: portalURL(p, t, loc, skills)})
		}
		out = append(out, l)
	}
	return out, nil
}

// BuildCompanyLinks renders company research links.
func BuildCompanyLinks(company string) (*CompanyLinks, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, fmt.Errorf("company_research_links: %w: company name is required", ErrValidation)
	}
	q := url.QueryEscape(company)
	return &CompanyLinks{
		Company:   company,
		LinkedIn:  "https://www.linkedin.com/search/results/companies/?keywords=" + q,
		Glassdoor: "https://www.glassdoor.com/Search/results.htm?keyword=" + q,
	}, nil
}

// CleanLocation drops "oder Remote"/"or Hybrid" suffixes and falls back to
// DefaultLocation.
func CleanLocation(loc string) string {
	loc = strings.TrimSpace(workModeRe.ReplaceAllString(loc, ""))
	if loc == "" {
		return DefaultLocation
	}
	return loc
}

func stripChars(s, chars string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return ' '
		}
		return r
	}, s))
}

// Slugify lowercases s, removes accents and joins alphanumeric runs with "-".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = slugInvalidRe.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(folded, "-")
}

func indeedURL(title, loc string) string {
	v := url.Values{}
	v.Set("q", stripChars(title, "/,"))
	v.Set("l", loc)
	return "https://de.indeed.com/jobs?" + v.Encode()
}

func stepStoneURL(title, loc string) string {
	t := stripChars(title, "/,")
	if t == "" {
		t = "developer"
	}
	return fmt.Sprintf("https://www.stepstone.de/jobs/%s/in-%s",
		url.PathEscape(Slugify(t)), url.PathEscape(Slugify(loc)))
}

// keywords joins the title with up to two skills.
func keywords(title string, skills []string) string {
	parts := []string{stripChars(title, "/")}
	for i, s := range skills {
		if i == 2 {
			break
		}
		if s = stripChars(s, "/"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func linkedInURL(title, loc string, skills []string) string {
	v := url.Values{}
	v.Set("keywords", keywords(title, skills))
	v.Set("location", loc)
	return "https://www.linkedin.com/jobs/search/?" + v.Encode()
}

func portalURL(p Portal, title, loc string, skills []string) string {
	return strings.NewReplacer(
		"{query}", url.QueryEscape(keywords(title, skills)),
		"{title}", url.QueryEscape(stripChars(title, "/")),
		"{location}", url.QueryEscape(loc),
	).Replace(p.URL)
}
