package cv

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// MaxSkills caps the number of skills returned by ExtractSkills.
const MaxSkills = 20

var (
	skillsHeadingRe = regexp.MustCompile(`(?i)(skills|kenntnisse|kompetenzen|tech stack|technologien|fähigkeiten)`)
	capsHeadingRe   = regexp.MustCompile(`^[A-ZÄÖÜ][A-ZÄÖÜ\s\-]{4,}$`)

	techSkillRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(html|html5|css|css3|javascript|js|typescript|ts|react|vue|angular|svelte|node\.js|nodejs|mongodb|express|bootstrap|tailwind|sass|scss|python|java|php|ruby|go|golang|rust|c#|c\+\+|sql|mysql|postgresql|redis|docker|kubernetes|aws|azure|gcp|git|github|gitlab|figma|adobe|photoshop|illustrator|wordpress|mern|mean|mevn|fullstack|frontend|backend|api|rest|graphql|ux|ui|ux/ui)\b`),
		regexp.MustCompile(`(?i)\b(agile|scrum|tdd|bdd|devops|ci/cd|microservices)\b`),
	}

	digitsOnlyRe  = regexp.MustCompile(`^\d+$`)
	dateLeadRe    = regexp.MustCompile(`^\d{1,2}[/\-.]`)
	numberLeadRe  = regexp.MustCompile(`^\d+[/\-.]`)
	contactRe     = regexp.MustCompile(`[@:]`)
	nameWordRe    = regexp.MustCompile(`^[A-ZÄÖÜ][a-zäöü]{2,}$`)
	singleNameRe  = regexp.MustCompile(`^[A-ZÄÖÜ][a-zäöü]{3,}$`)
	twoWordTechRe = regexp.MustCompile(`(?i)^(react native|full stack|mean stack|mern stack|mevn stack)$`)
	singleTechRe  = regexp.MustCompile(`(?i)^(react|vue|angular|python|java|html|css|javascript|typescript|mongodb|express|node|bootstrap|tailwind|figma|adobe|wordpress|git|docker|aws|azure|gcp)$`)
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9]`)
)

var skillStopwords = toSet(
	"and", "or", "the", "a", "an", "of", "with", "in", "im", "am", "zu", "zum", "zur",
	"von", "vom", "und", "oder", "mit", "für", "auf", "bei", "als", "der", "die", "das",
	"den", "dem", "ein", "eine", "einer", "einem",
	"berufserfahrung", "experience", "education", "ausbildung", "projects", "projekte",
	"languages", "sprachen", "skills", "kenntnisse", "kompetenzen",
	"webentwicklerin", "entwicklerin", "developer", "entwickler", "sinnvolle", "tech",
	"technologien", "sinn",
)

// knownTechKeywords drive whole-document extraction when no skills section exists.
var knownTechKeywords = []string{
	"html", "html5", "css", "css3", "javascript", "js", "typescript", "ts",
	"react", "vue", "angular", "svelte", "next.js", "nextjs", "nuxt",
	"node.js", "nodejs", "node js", "express", "nestjs", "django", "flask", "fastapi",
	"mongodb", "mongo db", "mysql", "postgresql", "postgres", "redis", "sql",
	"bootstrap", "tailwind", "tailwindcss", "sass", "scss",
	"python", "java", "php", "ruby", "go", "golang", "rust", "c#", "csharp", "c++", "cpp",
	"docker", "kubernetes", "k8s", "aws", "azure", "gcp", "git", "github", "gitlab",
	"wordpress", "word press", "wp", "mern", "mern-stack", "mernstack", "mean", "mevn",
	"fullstack", "full-stack", "full stack", "frontend", "front-end", "backend", "back-end",
	"api", "rest", "rest api", "graphql",
	"ux", "ui", "ux/ui", "ui/ux", "figma", "adobe", "photoshop", "illustrator",
	"agile", "scrum", "tdd", "bdd", "devops", "ci/cd", "cicd",
}

// skillAliases maps lowercase tokens to their display label.
var skillAliases = map[string]string{
	"mern":        "MERN Stack",
	"mern-stack":  "MERN Stack",
	"mernstack":   "MERN Stack",
	"mean":        "MEAN Stack",
	"mevn":        "MEVN Stack",
	"wordpress":   "WordPress",
	"word press":  "WordPress",
	"wp":          "WordPress",
	"nodejs":      "Node.js",
	"node js":     "Node.js",
	"node.js":     "Node.js",
	"javascript":  "JavaScript",
	"js":          "JavaScript",
	"typescript":  "TypeScript",
	"ts":          "TypeScript",
	"html5":       "HTML5",
	"html":        "HTML5",
	"css3":        "CSS3",
	"css":         "CSS3",
	"fullstack":   "Full Stack",
	"full stack":  "Full Stack",
	"full-stack":  "Full Stack",
	"frontend":    "Frontend",
	"front-end":   "Frontend",
	"backend":     "Backend",
	"back-end":    "Backend",
	"ux":          "UX",
	"ui":          "UI",
	"ux/ui":       "UX/UI",
	"ui/ux":       "UX/UI",
	"api":         "API",
	"rest api":    "REST API",
	"sql":         "SQL",
	"aws":         "AWS",
	"gcp":         "GCP",
	"csharp":      "C#",
	"c#":          "C#",
	"cpp":         "C++",
	"c++":         "C++",
	"ci/cd":       "CI/CD",
	"cicd":        "CI/CD",
	"tdd":         "TDD",
	"bdd":         "BDD",
	"k8s":         "Kubernetes",
	"mongodb":     "MongoDB",
	"mongo db":    "MongoDB",
	"postgresql":  "PostgreSQL",
	"postgres":    "PostgreSQL",
	"mysql":       "MySQL",
	"graphql":     "GraphQL",
	"github":      "GitHub",
	"gitlab":      "GitLab",
	"nextjs":      "Next.js",
	"next.js":     "Next.js",
	"nestjs":      "NestJS",
	"fastapi":     "FastAPI",
	"tailwindcss": "Tailwind",
	"devops":      "DevOps",
}

// ExtractSkills returns up to MaxSkills canonical skill labels found in
// cvText. A recognized skills section is tokenized line by line; otherwise
// the whole document is scanned for known technology keywords. Labels are
// unique by lowercase key. Empty input yields an empty result.
func ExtractSkills(cvText string) []Skill {
	text := strings.ReplaceAll(cvText, "\r", "")
	if strings.TrimSpace(text) == "" {
		return []Skill{}
	}

	var raw []string
	if block, ok := skillsSection(text); ok {
		raw = textnorm.SplitTokens(textnorm.Normalize(block))
	} else {
		raw = scanKnownKeywords(text)
	}

	skills := make([]Skill, 0, MaxSkills)
	seen := make(map[string]bool)
	for _, tok := range raw {
		tok = textnorm.CollapseSpaces(tok)
		if !keepRawToken(tok) || !keepSkillToken(tok) {
			continue
		}
		low := strings.ToLower(tok)
		label := canonicalSkill(tok)
		key := textnorm.LabelKey(label)
		if seen[low] || seen[key] {
			continue
		}
		seen[low] = true
		seen[key] = true
		skills = append(skills, label)
		if len(skills) >= MaxSkills {
			break
		}
	}
	return skills
}

// skillsSection returns the lines that follow the first skills heading, up to
// a blank line or the next all-caps heading. Content after a colon on the
// heading line itself is included.
func skillsSection(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	start := -1
	for i, l := range lines {
		if skillsHeadingRe.MatchString(l) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var collected []string
	if _, rest, ok := strings.Cut(lines[start], ":"); ok && strings.TrimSpace(rest) != "" {
		collected = append(collected, strings.TrimSpace(rest))
	}
	for _, l := range lines[start+1:] {
		l = strings.TrimSpace(l)
		if l == "" || capsHeadingRe.MatchString(l) {
			break
		}
		collected = append(collected, l)
	}
	return strings.Join(collected, " "), true
}

func scanKnownKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range knownTechKeywords {
		if textnorm.ContainsWord(text, kw) || compoundMatch(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// compoundMatch finds keywords glued into larger words, e.g. "MERNStack".
func compoundMatch(lower, kw string) bool {
	clean := nonAlnumRe.ReplaceAllString(strings.ToLower(kw), "")
	if len(clean) < 3 {
		return false
	}
	for _, v := range []string{clean, clean + "stack", clean + "-stack"} {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

func isTechSkill(s string) bool {
	for _, re := range techSkillRes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// keepRawToken drops numbers, date fragments, odd lengths, stopwords,
// OCR debris and contact data.
func keepRawToken(s string) bool {
	if s == "" || digitsOnlyRe.MatchString(s) || dateLeadRe.MatchString(s) {
		return false
	}
	if n := len([]rune(s)); n < 2 || n > 30 {
		return false
	}
	low := strings.ToLower(s)
	if skillStopwords[low] && !isTechSkill(s) {
		return false
	}
	single := 0
	for _, w := range strings.Fields(s) {
		if len([]rune(w)) == 1 {
			single++
		}
	}
	if single > 2 {
		return false
	}
	return !contactRe.MatchString(s)
}

// keepSkillToken applies the name heuristics on top of keepRawToken.
func keepSkillToken(s string) bool {
	if numberLeadRe.MatchString(s) || skillStopwords[strings.ToLower(s)] {
		return false
	}
	parts := strings.Fields(s)
	if len(parts) > 1 {
		for _, p := range parts {
			if len([]rune(p)) == 1 {
				return false
			}
		}
	}
	if len(parts) == 2 && nameWordRe.MatchString(parts[0]) && nameWordRe.MatchString(parts[1]) {
		if !isTechSkill(s) && !twoWordTechRe.MatchString(s) {
			return false
		}
	}
	if len(parts) == 1 && singleNameRe.MatchString(s) {
		if !isTechSkill(s) && !singleTechRe.MatchString(s) && len([]rune(s)) > 4 {
			return false
		}
	}
	if len(parts) >= 2 && skillStopwords[strings.ToLower(parts[0])] {
		return false
	}
	return true
}

func canonicalSkill(tok string) string {
	if label, ok := skillAliases[strings.ToLower(tok)]; ok {
		return label
	}
	if textnorm.IsLower(tok) {
		return textnorm.Capitalize(tok)
	}
	return tok
}

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
