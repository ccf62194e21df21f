// Package assistant routes free-text chat messages to the matching engine,
// to role suggestions or to preference rules, and returns a reply with an
// optional profile update.
package assistant

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/match"
)

// Reply is the outcome of one dispatched message. UpdatedProfile is nil when
// the message did not change the profile.
type Reply struct {
	Message        string      `json:"message"`
	UpdatedProfile *cv.Profile `json:"updatedProfile,omitempty"`
}

// Respond dispatches msg. Gates are checked in a fixed order and the first
// one that applies answers: pasted job ad, alternative roles, general
// suitability question. Otherwise every preference rule is evaluated and the
// help menu is the fallback when none fired. Respond is pure.
func Respond(msg string, p cv.Profile, cvText string, lang i18n.Lang) Reply {
	lower := strings.ToLower(msg)
	hasCV := strings.TrimSpace(cvText) != ""

	if looksLikeJobAd(msg) && (p.HasContent() || hasCV) {
		return Reply{Message: match.Analyze(msg, p, lang, cvText).Message}
	}

	if alternativesRequest.Match(lower) {
		if !hasCV && len(p.Skills) == 0 {
			return Reply{Message: msgNeedCV.In(lang)}
		}
		return suggestAlternatives(p, cvText, lang)
	}

	if suitabilityQuestion.Match(lower) && hasCV {
		return Reply{Message: msgPasteAd.In(lang)}
	}

	if r, ok := applyPreferences(lower, p, lang); ok {
		return r
	}
	return Reply{Message: helpMenu(lang)}
}

func looksLikeJobAd(msg string) bool {
	return len([]rune(msg)) > jobAdMinLen || jobAdSignal.MatchString(msg)
}

// suggestAlternatives runs every alternative-role rule against the CV text
// and the profile skills.
func suggestAlternatives(p cv.Profile, cvText string, lang i18n.Lang) Reply {
	blob := strings.ToLower(cvText + " " + strings.Join(p.Skills, " "))
	updated := p.Clone()
	var notes []string
	for _, r := range altRoleRules {
		if !r.when.MatchString(blob) {
			continue
		}
		updated.Titles = cv.AppendUnique(updated.Titles, r.titles...)
		notes = append(notes, r.note.In(lang))
	}

	var b strings.Builder
	b.WriteString(msgAltHeader.In(lang))
	if len(notes) > 0 {
		b.WriteString(strings.Join(notes, "\n"))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, msgAltSummary.In(lang), len(updated.Titles))
	return Reply{Message: b.String(), UpdatedProfile: &updated}
}

// applyPreferences evaluates all preference rules. Fired messages are joined
// with a space; title additions accumulate on one profile copy.
func applyPreferences(lower string, p cv.Profile, lang i18n.Lang) (Reply, bool) {
	var (
		messages []string
		updated  *cv.Profile
	)
	for _, r := range preferenceRules {
		if !r.when(lower) {
			continue
		}
		messages = append(messages, r.message.In(lang))
		if len(r.titles) == 0 {
			continue
		}
		base := p
		if updated != nil {
			base = *updated
		}
		next := base.WithTitles(r.titles...)
		updated = &next
	}
	if len(messages) == 0 {
		return Reply{}, false
	}
	return Reply{Message: strings.Join(messages, " "), UpdatedProfile: updated}, true
}
