package narrating

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const completeReply = `HERO_SUMMARY: You made a healthy profit this month.
NARRATIVE: Sales were strong and costs stayed under control.
Cash is fine for now.
CASH_CYCLE_EXPLANATION: Your cash is tied up for 11 days.
ACTION_1_TITLE: Review your prices
ACTION_1_DESC: Raise prices by 5% on your top 10 items.
ACTION_2_TITLE: Ask for longer supplier terms
ACTION_2_DESC: Ask for 30-day terms to keep 22 more days of cash.
ACTION_3_TITLE: Build a cash buffer
ACTION_3_DESC: Move AED 1,500 a month into savings.
MEETING_SUMMARY: This month we made AED 15,000 profit.`

func TestParseResponse_Complete(t *testing.T) {
	result, ok := ParseResponse(completeReply)

	assert.True(t, ok)
	assert.Equal(t, "You made a healthy profit this month.", result.HeroSummary)
	assert.Equal(t, "Sales were strong and costs stayed under control.\nCash is fine for now.", result.Narrative)
	assert.Equal(t, "Your cash is tied up for 11 days.", result.CashCycleExplanation)
	assert.Equal(t, "Review your prices", result.Action1Title)
	assert.Equal(t, "Raise prices by 5% on your top 10 items.", result.Action1Description)
	assert.Equal(t, "Ask for longer supplier terms", result.Action2Title)
	assert.Equal(t, "Ask for 30-day terms to keep 22 more days of cash.", result.Action2Description)
	assert.Equal(t, "Build a cash buffer", result.Action3Title)
	assert.Equal(t, "Move AED 1,500 a month into savings.", result.Action3Description)
	assert.Equal(t, "This month we made AED 15,000 profit.", result.MeetingSummary)
}

func TestParseResponse_Deviations(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{
			name:  "empty reply",
			reply: "",
		},
		{
			name:  "free text without keys",
			reply: "Your business is doing well. Keep going!",
		},
		{
			name:  "lowercase keys are not recognised",
			reply: "hero_summary: fine\nnarrative: fine",
		},
		{
			name:  "hero summary present but empty",
			reply: "HERO_SUMMARY:\n" + completeReply[len("HERO_SUMMARY: You made a healthy profit this month.\n"):],
		},
		{
			name:  "meeting summary missing",
			reply: completeReply[:len(completeReply)-len("MEETING_SUMMARY: This month we made AED 15,000 profit.")],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseResponse(tt.reply)
			assert.False(t, ok)
		})
	}
}

func TestParseResponse_TolerantOfNoise(t *testing.T) {
	reply := "Here is your analysis:\n\n**HERO_SUMMARY:** Good month.\n" + completeReply[len("HERO_SUMMARY: You made a healthy profit this month.\n"):]

	result, ok := ParseResponse(reply)

	assert.True(t, ok)
	assert.Equal(t, "Good month.", result.HeroSummary)
}

func TestParseResponse_FirstOccurrenceWins(t *testing.T) {
	reply := completeReply + "\nHERO_SUMMARY: A second summary."

	result, ok := ParseResponse(reply)

	assert.True(t, ok)
	assert.Equal(t, "You made a healthy profit this month.", result.HeroSummary)
	assert.Equal(t, "This month we made AED 15,000 profit.", result.MeetingSummary)
}

func TestParseResponse_EmptyFirstOccurrenceIsSkipped(t *testing.T) {
	reply := "HERO_SUMMARY:\nHERO_SUMMARY: Profit held up well.\n" +
		strings.Replace(completeReply, "HERO_SUMMARY: You made a healthy profit this month.\n", "", 1)

	result, ok := ParseResponse(reply)

	assert.True(t, ok)
	assert.Equal(t, "Profit held up well.", result.HeroSummary)
	assert.Equal(t, "Sales were strong and costs stayed under control.\nCash is fine for now.", result.Narrative)
}

func TestParseResponse_OnlyEmptyOccurrencesIsAbsent(t *testing.T) {
	reply := strings.Replace(completeReply, "HERO_SUMMARY: You made a healthy profit this month.", "HERO_SUMMARY: **\nHERO_SUMMARY:", 1)

	result, ok := ParseResponse(reply)

	assert.False(t, ok)
	assert.Empty(t, result.HeroSummary)
}
