package narrating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

func promptInput(previous *domain.FinancialPeriod) Input {
	change := 25.0
	metrics := domain.MetricsResult{
		GrossProfit:  40000,
		GrossMargin:  40,
		NetMargin:    15,
		CurrentRatio: 6.67,
		DSO:          9,
		DIO:          10,
		DPO:          8,
	}
	if previous != nil {
		metrics.RevenueChange = &change
	}

	return Input{
		Company: domain.Company{
			Name:     "Falcon Trading",
			Industry: "product",
			Currency: "AED",
			Period:   domain.ReportingPeriod{Month: "March", Year: 2025},
		},
		Current: domain.FinancialPeriod{
			Revenue: 100000, COGS: 60000, Opex: 20000, NetProfit: 15000,
			Cash: 50000, Receivables: 30000, Inventory: 20000, Payables: 15000,
		},
		Previous: previous,
		Metrics:  metrics,
		Benchmark: domain.IndustryBenchmark{
			Industry:    "product",
			Label:       "Product and retail",
			GrossMargin: domain.Range{Min: 25, Max: 50, Ideal: 40},
		},
	}
}

func TestBuildPrompt_CurrentOnly(t *testing.T) {
	prompt := BuildPrompt(promptInput(nil))

	assert.Contains(t, prompt, "Name: Falcon Trading")
	assert.Contains(t, prompt, "Period: March 2025")
	assert.Contains(t, prompt, IndustryHint("product"))
	assert.Contains(t, prompt, "Revenue: AED 100,000")
	assert.Contains(t, prompt, "Gross margin: 40.0% (healthy range 25-50%, target 40%)")
	assert.Contains(t, prompt, "Current ratio: 6.67")
	assert.NotContains(t, prompt, "PREVIOUS PERIOD")
	assert.NotContains(t, prompt, "Revenue change")
	assert.NotContains(t, prompt, "VAT payable")
}

func TestBuildPrompt_WithPreviousPeriod(t *testing.T) {
	prompt := BuildPrompt(promptInput(&domain.FinancialPeriod{Revenue: 80000, NetProfit: -5000, Cash: 40000}))

	assert.Contains(t, prompt, "PREVIOUS PERIOD")
	assert.Contains(t, prompt, "Revenue: AED 80,000")
	assert.Contains(t, prompt, "Net profit: -AED 5,000")
	assert.Contains(t, prompt, "Revenue change vs previous period: +25.0%")
}

func TestIndustryHint_UnknownFallsBackToOther(t *testing.T) {
	assert.Equal(t, IndustryHint("other"), IndustryHint("aerospace"))
}

func TestSystemPrompt_ListsEveryKey(t *testing.T) {
	for _, key := range responseKeys {
		assert.Contains(t, SystemPrompt, key+":")
	}
}
