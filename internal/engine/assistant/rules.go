package assistant

import (
	"regexp"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// jobAdSignal matches wording typical of pasted job ads.
var jobAdSignal = regexp.MustCompile(`(?i)\b(m/w/d|w/m/d|aufgaben|deine aufgaben|wir bieten|wir bieten dir|dein profil|anforderungen|qualifikationen|requirements|responsibilities|what you will do|what you'll do|your profile|stellenbeschreibung|job description|we are looking for|wir suchen)\b`)

// jobAdMinLen is the length above which any message is treated as an ad.
const jobAdMinLen = 300

// alternativesRequest asks for other roles. "passen" alone is too common
// ("welche Rollen passen...") and only counts next to a qualifying word.
var alternativesRequest = textnorm.Cue{
	Subs: []string{"alternative", "andere", "was sonst", "was könnte"},
	Re:   regexp.MustCompile(`passen.*(alternative|andere|rollen|skills)|(alternative|andere|rollen|skills).*passen`),
}

// suitabilityQuestion asks whether the user fits a job without pasting one.
// Messages naming alternatives never reach it, so a bare "pass" is enough.
var suitabilityQuestion = textnorm.Cue{
	Subs: []string{"match", "geeignet", "qualifiziert", "passe ich", "soll ich mich bewerben",
		"should i apply", "do i match", "qualify", "pass"},
}

// altRoleRule adds alternate titles when the CV corpus shows a cluster.
type altRoleRule struct {
	name   string
	when   *regexp.Regexp
	titles []string
	note   i18n.Text
}

var altRoleRules = []altRoleRule{
	{
		name:   "frontend",
		when:   regexp.MustCompile(`(?i)\b(react|javascript|typescript|js|ts|frontend|vue|angular|html|css)\b`),
		titles: []string{"UX Engineer", "Technical Writer", "Product Designer", "Frontend Architect", "UI Developer"},
		note:   i18n.Text{DE: "• UX/UI Rollen (wegen deiner Frontend-Skills)", EN: "• UX/UI roles (because of your frontend skills)"},
	},
	{
		name:   "content",
		when:   regexp.MustCompile(`(?i)\b(wordpress|design|figma|adobe|photoshop|illustrator)\b`),
		titles: []string{"Content Manager", "Web Content Specialist", "No-Code Web Builder", "CMS Specialist"},
		note:   i18n.Text{DE: "• Content & CMS Rollen (wegen Design/WordPress)", EN: "• Content & CMS roles (because of design/WordPress)"},
	},
	{
		name:   "ai",
		when:   regexp.MustCompile(`(?i)\b(ai|artificial intelligence|machine learning|ml|prompt|chatgpt|gpt)\b`),
		titles: []string{"AI Content Strategist", "Prompt Engineer", "AI Product Manager"},
		note:   i18n.Text{DE: "• AI-Rollen (wegen deiner KI-Erfahrung)", EN: "• AI roles (because of your AI experience)"},
	},
	{
		name:   "architecture",
		when:   regexp.MustCompile(`(?i)\b(backend|node|python|java|api|server|fullstack|full stack)\b`),
		titles: []string{"API Developer", "Backend Architect", "Integration Specialist", "Solutions Architect"},
		note:   i18n.Text{DE: "• Architektur-Rollen (wegen Backend-Skills)", EN: "• Architecture roles (because of backend skills)"},
	},
	{
		name:   "data",
		when:   regexp.MustCompile(`(?i)\b(data|analytics|sql|database|datenbank)\b`),
		titles: []string{"Data Analyst", "Business Intelligence Developer", "Data Engineer"},
		note:   i18n.Text{DE: "• Data-Rollen (wegen Datenbank-Skills)", EN: "• Data roles (because of database skills)"},
	},
	{
		name:   "cloud",
		when:   regexp.MustCompile(`(?i)\b(devops|docker|kubernetes|aws|azure|gcp|cloud|terraform)\b`),
		titles: []string{"Cloud Architect", "Platform Engineer", "SRE (Site Reliability Engineer)"},
		note:   i18n.Text{DE: "• Cloud/Infrastructure-Rollen", EN: "• Cloud/Infrastructure roles"},
	},
	{
		name:   "testing",
		when:   regexp.MustCompile(`(?i)\b(testing|qa|quality|selenium|cypress|jest|automation)\b`),
		titles: []string{"Test Automation Engineer", "Quality Assurance Lead", "QA Architect"},
		note:   i18n.Text{DE: "• Testing-Rollen (wegen QA-Erfahrung)", EN: "• Testing roles (because of QA experience)"},
	},
	{
		name:   "lead",
		when:   regexp.MustCompile(`(?i)\b(programmierer|programming|developer|entwickler|software)\b`),
		titles: []string{"Technical Lead", "Software Architect", "Consultant"},
		note:   i18n.Text{DE: "• Lead/Architektur-Rollen (wegen Programmiererfahrung)", EN: "• Lead/Architecture roles (because of programming experience)"},
	},
}

// preferenceRule reacts to a stated preference. Rules are independent and
// several may fire for one message.
type preferenceRule struct {
	name    string
	when    func(lower string) bool
	titles  []string
	message i18n.Text
}

var preferenceRules = []preferenceRule{
	{
		name: "less-coding",
		when: func(lower string) bool {
			return textnorm.ContainsAny(lower, "weniger", "less") &&
				textnorm.ContainsAny(lower, "coding", "programmieren", "code")
		},
		titles: []string{"UX/UI Designer", "Digital Designer", "Product Designer", "Webdesigner", "Visual Designer"},
		message: i18n.Text{
			DE: "Ich habe dir Design-orientierte Rollen hinzugefügt. Diese könnten weniger Coding und mehr kreative Arbeit beinhalten.",
			EN: "I've added design-oriented roles. These might involve less coding and more creative work.",
		},
	},
	{
		name: "remote",
		when: func(lower string) bool {
			return textnorm.ContainsAny(lower, "remote", "homeoffice")
		},
		message: i18n.Text{
			DE: "Für Remote oder Homeoffice kannst du später direkt in den Filtern von Indeed, Stepstone oder LinkedIn auswählen. Hier konzentrieren wir uns nur auf gute Titel und Keywords.",
			EN: "For remote or homeoffice you can use the filters directly on Indeed, Stepstone or LinkedIn. Here we focus on good titles and keywords.",
		},
	},
	{
		name: "calmer",
		when: func(lower string) bool {
			return textnorm.ContainsAny(lower, "stress", "ruhiger", "kein kundenkontakt")
		},
		titles: []string{"Backend Developer", "Technical Writer", "QA Engineer", "DevOps Engineer"},
		message: i18n.Text{
			DE: "Ich habe dir Rollen vorgeschlagen, die typischerweise weniger Kundenkontakt und mehr Deep Work beinhalten.",
			EN: "I've suggested roles that typically involve less customer contact and more deep work.",
		},
	},
	{
		name: "creative",
		when: func(lower string) bool {
			return textnorm.ContainsAny(lower, "kreativ", "creative")
		},
		titles: []string{"Creative Technologist", "Digital Designer", "UX Designer", "Content Creator"},
		message: i18n.Text{
			DE: "Ich habe kreativere Rollen zu deinem Profil hinzugefügt!",
			EN: "I've added more creative roles to your profile!",
		},
	},
}
