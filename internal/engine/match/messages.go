package match

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

// maxListed caps the strengths and missing lists shown in a message.
const maxListed = 20

type tier struct {
	label          i18n.Text
	recommendation i18n.Text
}

var tiers = map[Level]tier{
	Excellent: {
		label: i18n.Text{DE: "Sehr gute Übereinstimmung", EN: "Excellent Match"},
		recommendation: i18n.Text{
			DE: "✅ Diese Position passt sehr gut zu deinem Profil! Du solltest dich unbedingt bewerben. Hebe die gemeinsamen Skills in deinem Anschreiben hervor und zeige Beispiele aus deiner Erfahrung.",
			EN: "✅ This position is an excellent match for your profile! You should definitely apply. Highlight the shared skills in your cover letter and showcase examples from your experience.",
		},
	},
	Good: {
		label: i18n.Text{DE: "Gute Übereinstimmung", EN: "Good Match"},
		recommendation: i18n.Text{
			DE: "✅ Gute Übereinstimmung! Du hast die meisten relevanten Skills. Betone in deiner Bewerbung deine Stärken und erwähne, dass du offen für neue Technologien bist, falls welche fehlen.",
			EN: "✅ Good match! You have most of the relevant skills. Emphasize your strengths in your application and mention that you're open to learning new technologies if any are missing.",
		},
	},
	Partial: {
		label: i18n.Text{DE: "Teilweise Übereinstimmung", EN: "Partial Match"},
		recommendation: i18n.Text{
			DE: "⚠️ Teilweise Übereinstimmung. Du hast einige relevante Skills, aber es fehlen wichtige Technologien. Überlege, ob du die fehlenden Skills schnell lernen könntest oder ob du sie durch verwandte Erfahrungen kompensieren kannst. Wenn ja, bewerbe dich und erkläre deine Lernbereitschaft.",
			EN: "⚠️ Partial match. You have some relevant skills, but important technologies are missing. Consider whether you could quickly learn the missing skills or compensate with related experience. If so, apply and explain your willingness to learn.",
		},
	},
	Limited: {
		label: i18n.Text{DE: "Wenige Übereinstimmungen", EN: "Limited Match"},
		recommendation: i18n.Text{
			DE: "❌ Nur wenige Übereinstimmungen. Diese Position könnte eine größere Herausforderung sein. Überlege dir, ob du wirklich Zeit investieren möchtest, um die fehlenden Skills zu lernen. Alternativ könntest du nach ähnlichen Rollen suchen, die besser zu deinem aktuellen Profil passen.",
			EN: "❌ Limited match. This position could be a bigger challenge. Consider whether you're willing to invest time to learn the missing skills. Alternatively, you could look for similar roles that better match your current profile.",
		},
	},
	Poor: {
		label: i18n.Text{DE: "Schlechte Übereinstimmung", EN: "Poor Match"},
		recommendation: i18n.Text{
			DE: "❌ Diese Position passt nicht gut zu deinem aktuellen Profil. Es fehlen zu viele grundlegende Skills. Suche besser nach Rollen, die besser zu deinen vorhandenen Fähigkeiten passen.",
			EN: "❌ This position doesn't match your current profile well. Too many fundamental skills are missing. It's better to look for roles that better match your existing skills.",
		},
	},
}

var (
	msgHeader    = i18n.Text{DE: "📊 **Analyse: %s (%d%%)**\n\n", EN: "📊 **Analysis: %s (%d%%)**\n\n"}
	msgPercent   = i18n.Text{DE: "**Übereinstimmung:** %d%% der geforderten Tech-Skills sind in deinem Profil vorhanden.\n\n", EN: "**Match:** %d%% of the required tech skills are present in your profile.\n\n"}
	msgStrengths = i18n.Text{DE: "✅ **Deine Stärken (in dieser Position relevant):**\n", EN: "✅ **Your Strengths (relevant for this position):**\n"}
	msgMissing   = i18n.Text{DE: "⚠️ **Fehlende Skills (in der Anzeige wichtig):**\n", EN: "⚠️ **Missing Skills (important in the ad):**\n"}
	msgCVTip     = i18n.Text{
		DE: "💡 **Tipp:** Falls du Skills hast, die hier nicht erscheinen, stelle sicher, dass sie klar in deinem CV erwähnt sind (z.B. im Skills-Bereich).\n\n",
		EN: "💡 **Tip:** If you have skills that don't appear here, make sure they're clearly mentioned in your CV (e.g., in the skills section).\n\n",
	}
	msgFocus    = i18n.Text{DE: "🎯 **Rolle fokussiert auf:** ", EN: "🎯 **Role focuses on:** "}
	msgVerdict  = i18n.Text{DE: "**💡 Meine Empfehlung:**\n", EN: "**💡 My Recommendation:**\n"}
	msgTipsHead = i18n.Text{DE: "**Tipps für deine Bewerbung:**\n", EN: "**Tips for your application:**\n"}
	msgTips     = i18n.Text{
		DE: "• Hebe die Skills hervor, die du bereits hast\n• Zeige konkrete Beispiele aus deiner Erfahrung\n• Erwähne deine Lernbereitschaft für die fehlenden Technologien\n• Falls du verwandte Skills hast, erkläre, wie sie übertragbar sind",
		EN: "• Highlight the skills you already have\n• Show concrete examples from your experience\n• Mention your willingness to learn the missing technologies\n• If you have related skills, explain how they're transferable",
	}

	msgGenericWithProgramming = i18n.Text{
		DE: "📊 **Analyse: Generische Softwareentwickler-Position**\n\n" +
			"Diese Anzeige beschreibt eine allgemeine Softwareentwickler-Position ohne spezifische Technologie-Anforderungen. Basierend auf deinem Profil:\n\n" +
			"✅ **Du hast Programmiererfahrung** – das ist ein gutes Zeichen!\n\n" +
			"**Empfehlung:**\n" +
			"Diese Position scheint flexibel bezüglich der Programmiersprache zu sein. " +
			"Wenn du generelle Programmierkenntnisse und die Bereitschaft hast, neue Sprachen zu lernen, " +
			"kannst du dich bewerben. Hebe in deinem Anschreiben hervor:\n" +
			"• Deine Programmiererfahrung\n" +
			"• Deine Fähigkeit, neue Technologien schnell zu erlernen\n" +
			"• Erfahrung mit Softwareentwicklung im Allgemeinen\n" +
			"• Erfahrung mit Datenbanken (falls vorhanden)",
		EN: "📊 **Analysis: Generic Software Developer Position**\n\n" +
			"This ad describes a general software developer position without specific technology requirements. Based on your profile:\n\n" +
			"✅ **You have programming experience** – that's a good sign!\n\n" +
			"**Recommendation:**\n" +
			"This position seems flexible regarding programming language. " +
			"If you have general programming skills and willingness to learn new languages, " +
			"you can apply. Highlight in your cover letter:\n" +
			"• Your programming experience\n" +
			"• Your ability to quickly learn new technologies\n" +
			"• General software development experience\n" +
			"• Database experience (if applicable)",
	}
	msgGenericWithoutProgramming = i18n.Text{
		DE: "📊 **Analyse: Softwareentwickler-Position**\n\n" +
			"Diese Anzeige beschreibt eine Softwareentwickler-Position, aber ich sehe keine klaren Programmierkenntnisse in deinem CV.\n\n" +
			"**Empfehlung:**\n" +
			"Wenn du Programmierkenntnisse hast, die nicht klar im CV sichtbar sind, " +
			"solltest du sie hinzufügen. Ansonsten könnte diese Position schwierig sein.",
		EN: "📊 **Analysis: Software Developer Position**\n\n" +
			"This ad describes a software developer position, but I don't see clear programming skills in your CV.\n\n" +
			"**Recommendation:**\n" +
			"If you have programming skills that aren't clearly visible in your CV, " +
			"you should add them. Otherwise, this position might be challenging.",
	}
	msgNoKeywords = i18n.Text{
		DE: "Ich sehe in dieser Anzeige keine klaren technischen Stichwörter, die ich automatisch vergleichen kann.\n\n" +
			"Du kannst mir gern eine andere Anzeige schicken oder mir konkret schreiben, welche Technologien darin wichtig sind.",
		EN: "I can't see any clear technical keywords in this ad that I can automatically compare.\n\n" +
			"You can paste another ad or tell me explicitly which technologies are important in it.",
	}
)

func composeMessage(r Result, lang i18n.Lang, hasCV bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, msgHeader.In(lang), r.LevelLabel, r.MatchPercent)
	fmt.Fprintf(&b, msgPercent.In(lang), r.MatchPercent)

	if len(r.Overlap) > 0 {
		b.WriteString(msgStrengths.In(lang))
		writeBullets(&b, r.Overlap)
	}
	if len(r.Missing) > 0 {
		b.WriteString(msgMissing.In(lang))
		writeBullets(&b, r.Missing)
	}
	if hasCV && len(r.Overlap) > 0 {
		b.WriteString(msgCVTip.In(lang))
	}

	b.WriteString(msgFocus.In(lang))
	b.WriteString(DirectionLabel(r.Directions, lang))
	b.WriteString("\n\n---\n\n")
	b.WriteString(msgVerdict.In(lang))
	b.WriteString(r.Recommendation)

	if r.MatchPercent >= 40 && r.MatchPercent < 100 && len(r.Missing) > 0 {
		b.WriteString("\n\n")
		b.WriteString(msgTipsHead.In(lang))
		b.WriteString(msgTips.In(lang))
	}
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	if len(items) > maxListed {
		items = items[:maxListed]
	}
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("   • ")
		b.WriteString(it)
	}
	b.WriteString("\n\n")
}

// noKeywordsMessage covers ads without any recognized requirement.
func noKeywordsMessage(adLower string, c corpus, lang i18n.Lang) string {
	if !genericDeveloperRole.Match(adLower) {
		return msgNoKeywords.In(lang)
	}
	if c.showsProgramming() {
		return msgGenericWithProgramming.In(lang)
	}
	return msgGenericWithoutProgramming.In(lang)
}
