package narrating

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/utils"
)

const (
	lowRunwayMonths   = 3
	shortPayableDays  = 20
	slowInventoryDays = 30
)

// Fallback builds the analysis from fixed templates. It is used whenever the
// text generation service cannot produce a complete answer and always fills
// every field.
func Fallback(company domain.Company, current domain.FinancialPeriod, m domain.MetricsResult) domain.AnalysisResult {
	cur := company.Currency
	if cur == "" {
		cur = domain.DefaultCurrency
	}
	money := func(v float64) string { return utils.FormatMoney(cur, v) }

	name := strings.TrimSpace(company.Name)
	if name == "" {
		name = "Your business"
	}

	result := domain.AnalysisResult{
		HeroSummary:          heroSummary(name, current, m, money),
		Narrative:            narrative(current, m, money),
		CashCycleExplanation: cashCycleExplanation(m),
		MeetingSummary:       meetingSummary(name, company.PeriodLabel(), current, m, money),
	}

	if m.CashRunwayMonths < lowRunwayMonths {
		target := current.Receivables / 2
		result.Action1Title = "Collect money owed to you"
		result.Action1Description = fmt.Sprintf(
			"Your cash covers %.1f months of costs. Call the customers who owe you the most this week and aim to collect %s, half of the %s outstanding, within 14 days.",
			m.CashRunwayMonths, money(target), money(current.Receivables))
	} else {
		result.Action1Title = "Review your prices"
		result.Action1Description = fmt.Sprintf(
			"Your gross margin is %.1f%%. Test a 5%% price rise on your best-selling items; on this period's revenue that would add about %s.",
			m.GrossMargin, money(current.Revenue*0.05))
	}

	if m.DPO < shortPayableDays {
		result.Action2Title = "Ask suppliers for longer terms"
		result.Action2Description = fmt.Sprintf(
			"You pay suppliers in about %.0f days. Ask your main suppliers for 30-day terms so you keep cash in the bank for %.0f more days.",
			m.DPO, 30-m.DPO)
	} else {
		result.Action2Title = "Check your cash every week"
		result.Action2Description = fmt.Sprintf(
			"You pay suppliers in about %.0f days, which helps your cash. Set a weekly 15-minute check of your bank balance against the %s you owe so no payment surprises you.",
			m.DPO, money(current.Payables))
	}

	if m.DIO > slowInventoryDays {
		result.Action3Title = "Reduce slow-moving stock"
		result.Action3Description = fmt.Sprintf(
			"Stock sits for %.0f days before it sells. Cutting that to 30 days would free about %s of cash; start with items that have not sold in 60 days.",
			m.DIO, money(inventoryRelease(current, m.DIO)))
	} else {
		result.Action3Title = "Build a cash safety buffer"
		result.Action3Description = fmt.Sprintf(
			"Move %s a month, 10%% of your net profit, into a separate account until it covers 3 months of operating costs (%s).",
			money(math.Max(current.NetProfit*0.1, 0)), money(current.Opex*3))
	}

	return result
}

func heroSummary(name string, p domain.FinancialPeriod, m domain.MetricsResult, money func(float64) string) string {
	if p.NetProfit < 0 {
		return fmt.Sprintf("%s brought in %s in revenue but made a loss of %s this period.",
			name, money(p.Revenue), money(-p.NetProfit))
	}
	return fmt.Sprintf("%s brought in %s in revenue and kept %s as profit, a %.1f%% net margin.",
		name, money(p.Revenue), money(p.NetProfit), m.NetMargin)
}

func narrative(p domain.FinancialPeriod, m domain.MetricsResult, money func(float64) string) string {
	var parts []string

	parts = append(parts, fmt.Sprintf(
		"After paying for the goods you sold, %s of every 100 in sales was left over, a gross margin of %.1f%%.",
		utils.FormatNumber(m.GrossMargin), m.GrossMargin))

	if p.NetProfit < 0 {
		parts = append(parts, fmt.Sprintf(
			"Once operating costs of %s were paid, the business lost %s.",
			money(p.Opex), money(-p.NetProfit)))
	} else {
		parts = append(parts, fmt.Sprintf(
			"Once operating costs of %s were paid, %s remained as profit.",
			money(p.Opex), money(p.NetProfit)))
	}

	if m.RevenueChange != nil {
		direction := "up"
		if *m.RevenueChange < 0 {
			direction = "down"
		}
		parts = append(parts, fmt.Sprintf("Revenue is %s %.1f%% on the previous period.", direction, math.Abs(*m.RevenueChange)))
	}

	parts = append(parts, fmt.Sprintf(
		"You have %s in the bank, enough to cover %.1f months of operating costs.",
		money(p.Cash), m.CashRunwayMonths))

	if m.CurrentRatio > 0 {
		parts = append(parts, fmt.Sprintf(
			"For every 1 you owe in the short term you hold %.2f in cash, customer debts and stock.",
			m.CurrentRatio))
	}

	return strings.Join(parts, " ")
}

func cashCycleExplanation(m domain.MetricsResult) string {
	explanation := fmt.Sprintf(
		"Customers take about %.0f days to pay you and stock waits about %.0f days to sell, while you pay suppliers after about %.0f days.",
		m.DSO, m.DIO, m.DPO)

	if m.CashConversionCycle <= 0 {
		return explanation + " Your suppliers are effectively funding your sales, which keeps cash in the business."
	}
	return explanation + fmt.Sprintf(
		" That means each sale ties up your cash for about %.0f days before it comes back.",
		m.CashConversionCycle)
}

func meetingSummary(name, period string, p domain.FinancialPeriod, m domain.MetricsResult, money func(float64) string) string {
	when := "This period"
	if period != "" {
		when = "In " + period
	}

	result := "profit of " + money(p.NetProfit)
	if p.NetProfit < 0 {
		result = "loss of " + money(-p.NetProfit)
	}

	return fmt.Sprintf(
		"%s, %s made revenue of %s and a %s. We hold %s in cash, which covers %.1f months of costs. Cash is tied up for %.0f days between paying for goods and being paid by customers. Our focus for next month is on the three actions above.",
		when, name, money(p.Revenue), result, money(p.Cash), m.CashRunwayMonths, m.CashConversionCycle)
}

// inventoryRelease estimates the cash freed by bringing stock days down to
// the 30-day threshold.
func inventoryRelease(p domain.FinancialPeriod, dio float64) float64 {
	if dio <= slowInventoryDays || dio == 0 {
		return 0
	}
	return p.Inventory * (dio - slowInventoryDays) / dio
}
