package narrating

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

func TestFallback_AlwaysComplete(t *testing.T) {
	tests := []struct {
		name    string
		period  domain.FinancialPeriod
		metrics domain.MetricsResult
	}{
		{
			name: "all zero",
		},
		{
			name:    "profitable",
			period:  domain.FinancialPeriod{Revenue: 100000, COGS: 60000, Opex: 20000, NetProfit: 15000, Cash: 50000, Receivables: 30000, Inventory: 20000, Payables: 15000},
			metrics: domain.MetricsResult{GrossMargin: 40, NetMargin: 15, CurrentRatio: 6.67, DSO: 9, DIO: 10, DPO: 8, CashConversionCycle: 11, CashRunwayMonths: 2.5},
		},
		{
			name:    "loss making with slow stock",
			period:  domain.FinancialPeriod{Revenue: 20000, COGS: 5000, Opex: 30000, NetProfit: -15000, Cash: 1000, Receivables: 9000, Inventory: 40000, Payables: 1000},
			metrics: domain.MetricsResult{GrossMargin: 75, NetMargin: -75, DSO: 14, DIO: 240, DPO: 6, CashConversionCycle: 248, CashRunwayMonths: 0},
		},
		{
			name:    "negative cycle",
			period:  domain.FinancialPeriod{Revenue: 1000, COGS: 1000, Payables: 5000, Cash: 10000, Opex: 100},
			metrics: domain.MetricsResult{DPO: 150, CashConversionCycle: -150, CashRunwayMonths: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(domain.Company{}, tt.period, tt.metrics)

			assert.True(t, result.Complete())
		})
	}
}

func TestFallback_ActionBranches(t *testing.T) {
	tests := []struct {
		name         string
		metrics      domain.MetricsResult
		action1Title string
		action2Title string
		action3Title string
	}{
		{
			name:         "short runway, quick payments, slow stock",
			metrics:      domain.MetricsResult{CashRunwayMonths: 2.5, DPO: 8, DIO: 45},
			action1Title: "Collect money owed to you",
			action2Title: "Ask suppliers for longer terms",
			action3Title: "Reduce slow-moving stock",
		},
		{
			name:         "thresholds are not triggers",
			metrics:      domain.MetricsResult{CashRunwayMonths: 3, DPO: 20, DIO: 30},
			action1Title: "Review your prices",
			action2Title: "Check your cash every week",
			action3Title: "Build a cash safety buffer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(domain.Company{Name: "Acme", Currency: "AED"}, domain.FinancialPeriod{Revenue: 1000}, tt.metrics)

			assert.Equal(t, tt.action1Title, result.Action1Title)
			assert.Equal(t, tt.action2Title, result.Action2Title)
			assert.Equal(t, tt.action3Title, result.Action3Title)
		})
	}
}

func TestFallback_Wording(t *testing.T) {
	t.Run("loss", func(t *testing.T) {
		p := domain.FinancialPeriod{Revenue: 20000, Opex: 30000, NetProfit: -12000}
		result := Fallback(domain.Company{Name: "Acme", Currency: "USD"}, p, domain.MetricsResult{NetMargin: -60})

		assert.Equal(t, "Acme brought in USD 20,000 in revenue but made a loss of USD 12,000 this period.", result.HeroSummary)
		assert.Contains(t, result.MeetingSummary, "a loss of USD 12,000")
	})

	t.Run("profit with period label", func(t *testing.T) {
		company := domain.Company{Name: "Acme", Currency: "AED", Period: domain.ReportingPeriod{Month: "March", Year: 2025}}
		p := domain.FinancialPeriod{Revenue: 100000, NetProfit: 15000, Cash: 50000}
		result := Fallback(company, p, domain.MetricsResult{NetMargin: 15, CashRunwayMonths: 2.5, CashConversionCycle: 11})

		assert.Equal(t, "Acme brought in AED 100,000 in revenue and kept AED 15,000 as profit, a 15.0% net margin.", result.HeroSummary)
		assert.True(t, strings.HasPrefix(result.MeetingSummary, "In March 2025, Acme made revenue of AED 100,000"))
		assert.Contains(t, result.CashCycleExplanation, "about 11 days")
	})

	t.Run("defaults for missing company details", func(t *testing.T) {
		result := Fallback(domain.Company{}, domain.FinancialPeriod{Revenue: 500}, domain.MetricsResult{})

		assert.True(t, strings.HasPrefix(result.HeroSummary, "Your business brought in AED 500"))
		assert.True(t, strings.HasPrefix(result.MeetingSummary, "This period, "))
	})
}

func TestFallback_NoContractions(t *testing.T) {
	change := 25.0
	p := domain.FinancialPeriod{Revenue: 100000, COGS: 60000, Opex: 20000, NetProfit: 15000, Cash: 50000, Receivables: 30000, Inventory: 20000, Payables: 15000}
	result := Fallback(domain.Company{Name: "Acme"}, p, domain.MetricsResult{GrossMargin: 40, RevenueChange: &change, CurrentRatio: 6.67})

	for _, text := range []string{result.HeroSummary, result.Narrative, result.CashCycleExplanation, result.MeetingSummary} {
		assert.NotContains(t, text, "n't")
	}
}
