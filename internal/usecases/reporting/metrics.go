package reporting

import (
	"math"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/utils"
)

// daysInMonth converts monthly flows into day counts.
const daysInMonth = 30

// CalculateMetrics derives the indicators for current and, when previous is
// given, the period-over-period changes. It never fails: every ratio with a
// zero denominator is reported as 0.
func CalculateMetrics(current domain.FinancialPeriod, previous *domain.FinancialPeriod) domain.MetricsResult {
	grossProfit := current.Revenue - current.COGS

	totalCurrentAssets := current.Cash + current.Receivables + current.Inventory
	totalCurrentLiabilities := current.Payables + current.ShortTermLoans + current.OtherLiabilities

	// Day counts are rounded before the cycle is derived so that
	// cashConversionCycle == dso + dio - dpo holds on the rounded output.
	dso := utils.RoundToUnit(utils.SafeDivide(current.Receivables, current.Revenue) * daysInMonth)
	dio := utils.RoundToUnit(utils.SafeDivide(current.Inventory, current.COGS) * daysInMonth)
	dpo := utils.RoundToUnit(utils.SafeDivide(current.Payables, current.COGS) * daysInMonth)

	result := domain.MetricsResult{
		GrossProfit:             utils.RoundToUnit(grossProfit),
		GrossMargin:             utils.RoundWithOneDecimalPlace(utils.SafeDivide(grossProfit, current.Revenue) * 100),
		NetMargin:               utils.RoundWithOneDecimalPlace(utils.SafeDivide(current.NetProfit, current.Revenue) * 100),
		TotalCurrentAssets:      utils.RoundToUnit(totalCurrentAssets),
		TotalCurrentLiabilities: utils.RoundToUnit(totalCurrentLiabilities),
		WorkingCapital:          utils.RoundToUnit(totalCurrentAssets - totalCurrentLiabilities),
		CurrentRatio:            utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totalCurrentAssets, totalCurrentLiabilities)),
		QuickRatio:              utils.RoundWithTwoDecimalPlace(utils.SafeDivide(current.Cash+current.Receivables, totalCurrentLiabilities)),
		DSO:                     dso,
		DIO:                     dio,
		DPO:                     dpo,
		CashConversionCycle:     dso + dio - dpo,
		CashRunwayMonths:        utils.RoundWithOneDecimalPlace(utils.SafeDivide(current.Cash, current.Opex)),
		VATPayable:              utils.RoundToUnit(current.VATCollected - current.VATPaid),
		HasVATData:              current.VATCollected > 0 || current.VATPaid > 0,
	}

	if previous != nil {
		result.RevenueChange = percentChange(current.Revenue, previous.Revenue)
		result.ProfitChange = percentChange(current.NetProfit, previous.NetProfit)
		result.CashChange = percentChange(current.Cash, previous.Cash)
	}

	return result
}

// percentChange divides by |previous| so a prior loss does not flip the sign
// of the result. A zero previous value yields nil.
func percentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	change := utils.RoundWithOneDecimalPlace((current - previous) / math.Abs(previous) * 100)
	return &change
}
