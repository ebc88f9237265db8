package narrating

import (
	"regexp"
	"strings"

	"github.com/vfg2006/cashpulse-api/internal/domain"
)

const (
	keyHeroSummary          = "HERO_SUMMARY"
	keyNarrative            = "NARRATIVE"
	keyCashCycleExplanation = "CASH_CYCLE_EXPLANATION"
	keyAction1Title         = "ACTION_1_TITLE"
	keyAction1Desc          = "ACTION_1_DESC"
	keyAction2Title         = "ACTION_2_TITLE"
	keyAction2Desc          = "ACTION_2_DESC"
	keyAction3Title         = "ACTION_3_TITLE"
	keyAction3Desc          = "ACTION_3_DESC"
	keyMeetingSummary       = "MEETING_SUMMARY"
)

var responseKeys = []string{
	keyHeroSummary,
	keyNarrative,
	keyCashCycleExplanation,
	keyAction1Title,
	keyAction1Desc,
	keyAction2Title,
	keyAction2Desc,
	keyAction3Title,
	keyAction3Desc,
	keyMeetingSummary,
}

// keyPattern matches any response key followed by a colon. Keys are
// case-sensitive and must not be glued to a preceding word character.
var keyPattern = regexp.MustCompile(`\b(` + strings.Join(responseKeys, "|") + `):`)

// ParseResponse splits the model reply into fields. Each value runs from its
// key to the next recognised key or the end of the text. The boolean is false
// when any key is missing or empty.
func ParseResponse(text string) (domain.AnalysisResult, bool) {
	fields := extractFields(text)

	result := domain.AnalysisResult{
		HeroSummary:          fields[keyHeroSummary],
		Narrative:            fields[keyNarrative],
		CashCycleExplanation: fields[keyCashCycleExplanation],
		Action1Title:         fields[keyAction1Title],
		Action1Description:   fields[keyAction1Desc],
		Action2Title:         fields[keyAction2Title],
		Action2Description:   fields[keyAction2Desc],
		Action3Title:         fields[keyAction3Title],
		Action3Description:   fields[keyAction3Desc],
		MeetingSummary:       fields[keyMeetingSummary],
	}

	return result, result.Complete()
}

// extractFields keeps the first non-empty value of each key.
func extractFields(text string) map[string]string {
	fields := make(map[string]string, len(responseKeys))

	matches := keyPattern.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		key := text[m[2]:m[3]]
		if _, ok := fields[key]; ok {
			continue
		}

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		if value := cleanValue(text[m[1]:end]); value != "" {
			fields[key] = value
		}
	}

	return fields
}

// cleanValue trims whitespace and the markdown emphasis models like to wrap
// values in.
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, "*_")
	return strings.TrimSpace(v)
}
