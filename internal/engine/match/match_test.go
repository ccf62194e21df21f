package match

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

func TestAnalyze_MissingBackendStack(t *testing.T) {
	ad := "We need a Python developer with PostgreSQL and Docker experience"
	res := Analyze(ad, cv.Profile{}, i18n.EN, "React, CSS, HTML")

	assert.Equal(t, 0, res.MatchPercent)
	assert.Equal(t, Poor, res.MatchLevel)
	assert.Empty(t, res.Overlap)
	for _, want := range []string{"Python", "PostgreSQL", "Docker"} {
		assert.Contains(t, res.Missing, want)
	}
	assert.Equal(t, "Poor Match", res.LevelLabel)
}

func TestAnalyze_StackExpansion(t *testing.T) {
	res := Analyze("Experience with MongoDB and Express required", cv.Profile{}, i18n.EN, "MERN Stack")

	assert.Contains(t, res.Overlap, "MongoDB")
	assert.Contains(t, res.Overlap, "Express")
	assert.NotContains(t, res.Missing, "MongoDB")
	assert.NotContains(t, res.Missing, "Express")
	assert.Equal(t, 100, res.MatchPercent)
	assert.Equal(t, Excellent, res.MatchLevel)
}

func TestAnalyze_ProfileSkillsCount(t *testing.T) {
	p := cv.Profile{Skills: []string{"Docker"}, Titles: []string{"DevOps Engineer"}}
	res := Analyze("Docker and Terraform", p, i18n.EN, "")

	assert.Equal(t, []string{"Docker"}, res.Overlap)
	assert.Equal(t, []string{"Terraform"}, res.Missing)
	assert.Equal(t, 50, res.MatchPercent)
}

func TestAnalyze_EmptyAd(t *testing.T) {
	res := Analyze("", cv.Profile{}, i18n.EN, "Software developer")

	assert.Equal(t, 0, res.MatchPercent)
	assert.Equal(t, Poor, res.MatchLevel)
	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Overlap)
	assert.Empty(t, res.Missing)
	assert.Equal(t, msgNoKeywords.In(i18n.EN), res.Message)
}

func TestAnalyze_GenericDeveloperAd(t *testing.T) {
	ad := "We are hiring a developer"

	withCode := Analyze(ad, cv.Profile{}, i18n.EN, "Software developer, 5 years of writing code")
	assert.Equal(t, msgGenericWithProgramming.In(i18n.EN), withCode.Message)
	assert.Equal(t, 0, withCode.MatchPercent)
	assert.Equal(t, Poor, withCode.MatchLevel)
	assert.Empty(t, withCode.Labels)
	assert.Empty(t, withCode.Overlap)
	assert.Empty(t, withCode.Missing)

	without := Analyze(ad, cv.Profile{}, i18n.EN, "Retail sales, cashier")
	assert.Equal(t, msgGenericWithoutProgramming.In(i18n.EN), without.Message)
	assert.Equal(t, 0, without.MatchPercent)
	assert.Equal(t, Poor, without.MatchLevel)
	assert.NotEqual(t, withCode.Message, without.Message)
}

func TestAnalyze_ConceptsCountNextToTechnicalLabels(t *testing.T) {
	res := Analyze("We are hiring a developer with Python", cv.Profile{}, i18n.EN, "Python, writing code")

	assert.Equal(t, []string{"Python", "Programming / Software Development"}, res.Labels)
	assert.Contains(t, res.Overlap, "Programming / Software Development")
	assert.Equal(t, 100, res.MatchPercent)
}

func TestAnalyze_ConceptLabelsFollowLanguage(t *testing.T) {
	res := Analyze("Wir suchen einen Entwickler mit Python", cv.Profile{}, i18n.DE, "Python Entwickler")
	assert.Contains(t, res.Labels, "Programmierung / Softwareentwicklung")
}

func TestAnalyze_CVPresenceIsSubstring(t *testing.T) {
	res := Analyze("Java and Git required", cv.Profile{}, i18n.EN, "JavaScript, GitHub Actions")

	assert.Equal(t, []string{"Java", "Git"}, res.Labels)
	assert.Equal(t, []string{"Java", "Git"}, res.Overlap)
	assert.Equal(t, 100, res.MatchPercent)
}

func TestAnalyze_CSSCollapsesToOneLabel(t *testing.T) {
	res := Analyze("Strong CSS and CSS3 skills", cv.Profile{}, i18n.EN, "css")

	assert.Equal(t, []string{"CSS / CSS3"}, res.Labels)
	assert.Equal(t, []string{"CSS / CSS3"}, res.Overlap)
	assert.Equal(t, 100, res.MatchPercent)
}

func TestAnalyze_LabelsArePartitioned(t *testing.T) {
	ad := "Fullstack: React, TypeScript, Node.js, PostgreSQL, Docker, Kubernetes, AWS, Git"
	res := Analyze(ad, cv.Profile{}, i18n.EN, "React, TypeScript, Git, Docker")

	assert.Len(t, res.Labels, len(res.Overlap)+len(res.Missing))
	for _, l := range res.Overlap {
		assert.NotContains(t, res.Missing, l)
	}
	seen := make(map[string]bool)
	for _, l := range res.Labels {
		assert.False(t, seen[strings.ToLower(l)], "duplicate label %q", l)
		seen[strings.ToLower(l)] = true
	}
	assert.Equal(t, Percent(len(res.Overlap), len(res.Labels)), res.MatchPercent)
}

func TestAnalyze_GermanMessage(t *testing.T) {
	res := Analyze("Wir suchen Python Kenntnisse", cv.Profile{}, i18n.DE, "Python")

	require.Equal(t, 100, res.MatchPercent)
	assert.True(t, strings.HasPrefix(res.Message, "📊 **Analyse: Sehr gute Übereinstimmung (100%)**"))
	assert.Contains(t, res.Message, "Deine Stärken")
	assert.Contains(t, res.Message, "💡 **Tipp:**")
	assert.Contains(t, res.Message, "Meine Empfehlung")
	assert.NotContains(t, res.Message, "Tipps für deine Bewerbung")
}

func TestAnalyze_ApplicationTips(t *testing.T) {
	res := Analyze("Python and Docker", cv.Profile{}, i18n.EN, "python")

	require.Equal(t, 50, res.MatchPercent)
	assert.Equal(t, Partial, res.MatchLevel)
	assert.Contains(t, res.Message, "**Match:** 50% of the required tech skills")
	assert.Contains(t, res.Message, "Missing Skills")
	assert.Contains(t, res.Message, "Tips for your application")
}

func TestAnalyze_NoCVTipWithoutCVText(t *testing.T) {
	p := cv.Profile{Skills: []string{"Python"}}
	res := Analyze("Python and Docker", p, i18n.EN, "")

	assert.Contains(t, res.Overlap, "Python")
	assert.NotContains(t, res.Message, "💡 **Tip:**")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))

	for total := 1; total <= 12; total++ {
		prev := -1
		for overlap := 0; overlap <= total; overlap++ {
			p := Percent(overlap, total)
			assert.GreaterOrEqual(t, p, prev)
			assert.True(t, p >= 0 && p <= 100)
			prev = p
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		pct  int
		want Level
	}{
		{0, Poor}, {19, Poor}, {20, Limited}, {39, Limited}, {40, Partial},
		{59, Partial}, {60, Good}, {79, Good}, {80, Excellent}, {100, Excellent},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.pct), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.pct))
		})
	}
}

func TestExtractTokens(t *testing.T) {
	tokens := ExtractTokens("We use C# and Python, plus some Git")

	labels := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		labels = append(labels, tok.Label)
	}
	assert.Equal(t, []string{"Python", "C#", "Git"}, labels)
	assert.NotContains(t, labels, "C")
}

func TestExtractTokens_Empty(t *testing.T) {
	tokens := ExtractTokens("   ")
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestExtractTokens_UniqueByLabel(t *testing.T) {
	tokens := ExtractTokens("golang and go, k8s and kubernetes")
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Label]++
	}
	assert.Equal(t, 1, counts["Go"])
	assert.Equal(t, 1, counts["Kubernetes"])
}

func TestTokenLabel(t *testing.T) {
	assert.Equal(t, "JavaScript", tokenLabel("js"))
	assert.Equal(t, "Next.Js", tokenLabel("next.js"))
	assert.Equal(t, "SVN", tokenLabel("svn"))
	assert.Equal(t, "Docker", tokenLabel("docker"))
}

func TestAdDirectionTags(t *testing.T) {
	tags := adDirectionTags("fullstack role: react frontend and node.js backend")
	assert.Equal(t, []cv.DirectionTag{cv.Frontend, cv.Backend, cv.Fullstack}, tags)

	assert.Equal(t, []cv.DirectionTag{cv.Backend}, adDirectionTags("we are hiring a developer"))
	assert.Equal(t, []cv.DirectionTag{}, adDirectionTags("we sell furniture"))
}

func TestDirectionLabel(t *testing.T) {
	assert.Equal(t, "Softwareentwicklung (allgemein)", DirectionLabel(nil, i18n.DE))
	assert.Equal(t, "Software Development (general)", DirectionLabel(nil, i18n.EN))
	assert.Equal(t, "Frontend, Backend / Software Development",
		DirectionLabel([]cv.DirectionTag{cv.Frontend, cv.Backend}, i18n.EN))
}

func TestWriteBulletsCapsList(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("Skill%d", i)
	}
	var b strings.Builder
	writeBullets(&b, items)
	assert.Equal(t, maxListed, strings.Count(b.String(), "   • "))
}
