package match

import (
	"regexp"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// roleConcept is a soft requirement not tied to a specific technology.
type roleConcept struct {
	label i18n.Text
	cue   textnorm.Cue
}

var roleConcepts = []roleConcept{
	{
		label: i18n.Text{DE: "Programmierung / Softwareentwicklung", EN: "Programming / Software Development"},
		cue: textnorm.Cue{Subs: []string{"programmierer", "programmierung", "softwareentwicklung",
			"anwendungsentwicklung", "software entwickler", "entwickler", "developer", "programming",
			"software development"}},
	},
	{
		label: i18n.Text{DE: "Datenbanken", EN: "Databases"},
		cue:   textnorm.Cue{Subs: []string{"datenbank", "database", "sql"}, Words: []string{"db"}},
	},
	{
		label: i18n.Text{DE: "ERP / Warenwirtschaftssysteme", EN: "ERP / Business Systems"},
		cue: textnorm.Cue{Subs: []string{"warenwirtschaft", "wawi", "business software", "business system",
			"wirtschaftssystem"}, Words: []string{"erp"}},
	},
	{
		label: i18n.Text{DE: "Individualsoftware", EN: "Custom Software"},
		cue: textnorm.Cue{Subs: []string{"individualsoftware", "custom software", "custom solution"},
			Re: regexp.MustCompile(`individuell(e\s+)?(lösung|software|anwendung)`)},
	},
	{
		label: i18n.Text{DE: "Schnittstellen / Integration", EN: "Interfaces / Integration"},
		cue:   textnorm.Cue{Subs: []string{"schnittstelle", "interface", "integration"}, Words: []string{"api"}},
	},
	{
		label: i18n.Text{DE: "Testing / Qualitätssicherung", EN: "Testing / Quality Assurance"},
		cue: textnorm.Cue{Subs: []string{"testing", "qualitätssicherung", "quality assurance"},
			Words: []string{"qa"}, Re: regexp.MustCompile(`\btest`)},
	},
	{
		label: i18n.Text{DE: "Dokumentation", EN: "Documentation"},
		cue:   textnorm.Cue{Subs: []string{"dokumentation", "documentation", "dokumentieren"}},
	},
	{
		label: i18n.Text{DE: "Projektarbeit", EN: "Project Work"},
		cue: textnorm.Cue{Subs: []string{"projekt", "project", "eigenverantwortlich", "autonomous"},
			Re: regexp.MustCompile(`self.*responsible`)},
	},
}

// genericDeveloperRole detects ads that ask for a developer without naming
// technologies.
var genericDeveloperRole = textnorm.Cue{
	Subs: []string{"programmierer", "programmierung", "softwareentwicklung", "entwickler", "developer",
		"programming", "software development", "anwendungsentwicklung"},
}

// adDirection maps ad wording to a direction tag.
type adDirection struct {
	tag cv.DirectionTag
	cue textnorm.Cue
}

var adDirections = []adDirection{
	{cv.ERP, textnorm.Cue{Subs: []string{"warenwirtschaft", "wawi", "business software", "business system",
		"wirtschaftssystem", "individualsoftware", "custom software"}, Words: []string{"erp"}}},
	{cv.Frontend, textnorm.Cue{Subs: []string{"frontend", "front-end", "react", "javascript", "typescript",
		"vue", "angular", "svelte", "html", "css"}}},
	{cv.Backend, textnorm.Cue{Subs: []string{"backend", "back-end", "node.js", "nodejs", "server", "python",
		".net", "php", "ruby", "scala", "kotlin", "programmierer", "programmierung", "softwareentwicklung"},
		Words: []string{"api", "java", "go", "golang", "rust", "c#"}}},
	{cv.DevOps, textnorm.Cue{Subs: []string{"devops", "docker", "kubernetes", "terraform", "azure", "jenkins",
		"ci/cd", "infrastructure"}, Words: []string{"sre", "k8s", "aws", "gcp"}}},
	{cv.Data, textnorm.Cue{Subs: []string{"data science", "data scientist", "machine learning", "ml engineer",
		"tensorflow", "pytorch", "pandas", "numpy", "data engineer", "big data", "spark", "hadoop"}}},
	{cv.Design, textnorm.Cue{Subs: []string{"design", "figma", "adobe", "sketch"}, Words: []string{"ux", "ui"}}},
	{cv.AI, textnorm.Cue{Subs: []string{"künstliche intelligenz", "prompt engineer", "chatgpt", "gpt",
		"generative ai"}, Words: []string{"ai", "llm"}}},
	{cv.Security, textnorm.Cue{Subs: []string{"security", "penetration", "pentest", "infosec"}}},
	{cv.Mobile, textnorm.Cue{Subs: []string{"mobile", "android", "react native", "flutter", "swift", "kotlin"},
		Words: []string{"ios"}}},
	{cv.QA, textnorm.Cue{Subs: []string{"quality assurance", "test automation", "testing", "selenium",
		"cypress"}, Words: []string{"qa", "jest"}}},
	{cv.GameDev, textnorm.Cue{Subs: []string{"gamedev", "unreal", "game developer", "game development"},
		Words: []string{"game", "games", "unity"}}},
	{cv.Blockchain, textnorm.Cue{Subs: []string{"blockchain", "ethereum", "solidity", "web3"}}},
	{cv.Embedded, textnorm.Cue{Subs: []string{"embedded", "internet of things", "arduino", "c++"},
		Words: []string{"iot", "cpp"}}},
}

var fullstackWording = textnorm.Cue{Subs: []string{"fullstack", "full-stack", "full stack"}}

// directionOrder is the order tags are reported in.
var directionOrder = []cv.DirectionTag{
	cv.ERP, cv.Frontend, cv.Backend, cv.Fullstack, cv.DevOps, cv.Data, cv.Design,
	cv.AI, cv.Security, cv.Mobile, cv.QA, cv.GameDev, cv.Blockchain, cv.Embedded,
}

// adDirectionTags derives direction tags for an ad. Fullstack is added when
// both frontend and backend fire; backend is the fallback for generic
// developer wording.
func adDirectionTags(lower string) []cv.DirectionTag {
	hit := make(map[cv.DirectionTag]bool)
	for _, d := range adDirections {
		if d.cue.Match(lower) {
			hit[d.tag] = true
		}
	}
	if fullstackWording.Match(lower) || (hit[cv.Frontend] && hit[cv.Backend]) {
		hit[cv.Fullstack] = true
	}
	if len(hit) == 0 && genericDeveloperRole.Match(lower) {
		hit[cv.Backend] = true
	}

	tags := []cv.DirectionTag{}
	for _, t := range directionOrder {
		if hit[t] {
			tags = append(tags, t)
		}
	}
	return tags
}

var directionLabels = map[cv.DirectionTag]i18n.Text{
	cv.ERP:        {DE: "ERP / Business Software", EN: "ERP / Business Software"},
	cv.Frontend:   {DE: "Frontend", EN: "Frontend"},
	cv.Backend:    {DE: "Backend / Softwareentwicklung", EN: "Backend / Software Development"},
	cv.Fullstack:  {DE: "Fullstack", EN: "Fullstack"},
	cv.DevOps:     {DE: "DevOps / Cloud", EN: "DevOps / Cloud"},
	cv.Data:       {DE: "Data Science / ML", EN: "Data Science / ML"},
	cv.Design:     {DE: "Design", EN: "Design"},
	cv.AI:         {DE: "AI", EN: "AI"},
	cv.Security:   {DE: "Security", EN: "Security"},
	cv.Mobile:     {DE: "Mobile", EN: "Mobile"},
	cv.QA:         {DE: "QA / Testing", EN: "QA / Testing"},
	cv.GameDev:    {DE: "Game Development", EN: "Game Development"},
	cv.Blockchain: {DE: "Blockchain", EN: "Blockchain"},
	cv.Embedded:   {DE: "Embedded / IoT", EN: "Embedded / IoT"},
}

// DirectionLabel renders tags as a readable, comma-separated list.
func DirectionLabel(tags []cv.DirectionTag, lang i18n.Lang) string {
	if len(tags) == 0 {
		return lang.Pick("Softwareentwicklung (allgemein)", "Software Development (general)")
	}
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		if l, ok := directionLabels[t]; ok {
			out += l.In(lang)
		} else {
			out += string(t)
		}
	}
	return out
}
