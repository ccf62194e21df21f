package assistant

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

var greeting = i18n.Text{
	DE: "Hallo! 👋 Ich bin dein Job Search Companion.\n\nIch kann dir helfen:\n" +
		"• **Stellenanzeigen analysieren** – füge einfach eine Anzeige ein und ich prüfe, ob du dafür geeignet bist\n" +
		"• **Alternative Rollen finden** – frage z.B. 'Was für alternative Rollen passen zu meinen Skills?'\n" +
		"• **Dein Profil verfeinern** – z.B. 'Ich will weniger Coding, mehr Design'\n" +
		"• **Bewerbungstipps** – ich gebe dir konkrete Empfehlungen basierend auf deinem CV\n\n" +
		"Probiere es aus – füge eine Stellenanzeige ein oder stelle mir eine Frage!",
	EN: "Hello! 👋 I'm your Job Search Companion.\n\nI can help you with:\n" +
		"• **Analyzing job ads** – just paste an ad and I'll check if you're a good match\n" +
		"• **Finding alternative roles** – ask e.g. 'What alternative roles fit my skills?'\n" +
		"• **Refining your profile** – e.g. 'I want less coding, more design'\n" +
		"• **Application tips** – I'll give you concrete recommendations based on your CV\n\n" +
		"Try it out – paste a job ad or ask me a question!",
}

// Greeting is the first assistant message of a conversation.
func Greeting(lang i18n.Lang) string { return greeting.In(lang) }

var (
	msgNeedCV = i18n.Text{
		DE: "Um dir passende alternative Rollen vorzuschlagen, brauche ich dein CV oder deine Skills. Bitte füge zuerst dein CV ein oder analysiere es.",
		EN: "To suggest suitable alternative roles, I need your CV or your skills. Please add your CV first or analyze it.",
	}
	msgPasteAd = i18n.Text{
		DE: "Um zu sehen, ob du für eine Position geeignet bist, füge bitte den Text der Stellenanzeige ein. Ich analysiere dann die Übereinstimmung zwischen deinem CV und den Anforderungen.",
		EN: "To see if you match a position, please paste the job ad text. I'll then analyze the match between your CV and the requirements.",
	}
	msgAltHeader = i18n.Text{
		DE: "📋 **Alternative Rollen basierend auf deinem CV/Profil:**\n\n",
		EN: "📋 **Alternative Roles Based on Your CV/Profile:**\n\n",
	}
	msgAltSummary = i18n.Text{
		DE: "Ich habe dir **%d Jobtitel** vorgeschlagen, die zu deinen Skills passen könnten. Schau dir die aktualisierten Jobtitel im Profil-Bereich an!",
		EN: "I've suggested **%d job titles** that might fit your skills. Check out the updated job titles in the profile section!",
	}
	msgHelpIntro = i18n.Text{DE: "Ich kann dir in verschiedenen Bereichen helfen:\n\n", EN: "I can help you in several areas:\n\n"}
	msgHelpOutro = i18n.Text{
		DE: "\n\nEinfach loslegen – füge eine Anzeige ein oder stelle mir eine Frage!",
		EN: "\n\nJust get started – paste an ad or ask me a question!",
	}
	helpItems = []i18n.Text{
		{DE: "Füge eine Stellenanzeige ein, damit ich prüfen kann, ob du dafür geeignet bist", EN: "Paste a job ad and I'll check if you're a good match"},
		{DE: "Frage: 'Was für alternative Rollen passen zu meinen Skills?'", EN: "Ask: 'What alternative roles fit my skills?'"},
		{DE: "Sage: 'Ich will weniger Coding, mehr Design'", EN: "Say: 'I want less coding, more design'"},
		{DE: "Frage nach Remote-Optionen oder anderen Präferenzen", EN: "Ask about remote options or other preferences"},
		{DE: "Lass dich zu deinem Profil beraten: 'Was kann ich verbessern?'", EN: "Get advice on your profile: 'What can I improve?'"},
	}
)

func helpMenu(lang i18n.Lang) string {
	var b strings.Builder
	b.WriteString(msgHelpIntro.In(lang))
	for i, item := range helpItems {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item.In(lang))
	}
	b.WriteString(msgHelpOutro.In(lang))
	return b.String()
}
