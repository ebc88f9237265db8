package domain

import "time"

// AnalysisResult is the narrative shown to the user. Both the language model
// path and the template path produce all ten fields.
type AnalysisResult struct {
	HeroSummary          string `json:"heroSummary"`
	Narrative            string `json:"narrative"`
	CashCycleExplanation string `json:"cashCycleExplanation"`
	Action1Title         string `json:"action1Title"`
	Action1Description   string `json:"action1Description"`
	Action2Title         string `json:"action2Title"`
	Action2Description   string `json:"action2Description"`
	Action3Title         string `json:"action3Title"`
	Action3Description   string `json:"action3Description"`
	MeetingSummary       string `json:"meetingSummary"`
}

// Complete reports whether every field carries text.
func (a AnalysisResult) Complete() bool {
	for _, v := range []string{
		a.HeroSummary, a.Narrative, a.CashCycleExplanation,
		a.Action1Title, a.Action1Description,
		a.Action2Title, a.Action2Description,
		a.Action3Title, a.Action3Description,
		a.MeetingSummary,
	} {
		if v == "" {
			return false
		}
	}
	return true
}

type AnalyzeRequest struct {
	Company  *Company         `json:"company"`
	Current  *FinancialPeriod `json:"current"`
	Previous *FinancialPeriod `json:"previous,omitempty"`
}

type AnalyzeResponse struct {
	Company     Company           `json:"company"`
	Current     FinancialPeriod   `json:"current"`
	Previous    *FinancialPeriod  `json:"previous"`
	Metrics     MetricsResult     `json:"metrics"`
	Benchmarks  IndustryBenchmark `json:"benchmarks"`
	Analysis    AnalysisResult    `json:"analysis"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
