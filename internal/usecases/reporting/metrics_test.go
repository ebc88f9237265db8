package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

func samplePeriod() domain.FinancialPeriod {
	return domain.FinancialPeriod{
		Revenue:     100000,
		COGS:        60000,
		Opex:        20000,
		NetProfit:   15000,
		Cash:        50000,
		Receivables: 30000,
		Inventory:   20000,
		Payables:    15000,
	}
}

func TestCalculateMetrics_CurrentOnly(t *testing.T) {
	m := CalculateMetrics(samplePeriod(), nil)

	assert.Equal(t, 40000.0, m.GrossProfit)
	assert.Equal(t, 40.0, m.GrossMargin)
	assert.Equal(t, 15.0, m.NetMargin)
	assert.Equal(t, 100000.0, m.TotalCurrentAssets)
	assert.Equal(t, 15000.0, m.TotalCurrentLiabilities)
	assert.Equal(t, 85000.0, m.WorkingCapital)
	assert.Equal(t, 6.67, m.CurrentRatio)
	assert.Equal(t, 5.33, m.QuickRatio)
	assert.Equal(t, 9.0, m.DSO)
	assert.Equal(t, 10.0, m.DIO)
	assert.Equal(t, 8.0, m.DPO)
	assert.Equal(t, 11.0, m.CashConversionCycle)
	assert.Equal(t, 2.5, m.CashRunwayMonths)
	assert.False(t, m.HasVATData)
	assert.Zero(t, m.VATPayable)
	assert.Nil(t, m.RevenueChange)
	assert.Nil(t, m.ProfitChange)
	assert.Nil(t, m.CashChange)
}

func TestCalculateMetrics_WithPrevious(t *testing.T) {
	previous := domain.FinancialPeriod{Revenue: 80000, NetProfit: -5000, Cash: 40000}

	m := CalculateMetrics(samplePeriod(), &previous)

	require.NotNil(t, m.RevenueChange)
	require.NotNil(t, m.ProfitChange)
	require.NotNil(t, m.CashChange)
	assert.Equal(t, 25.0, *m.RevenueChange)
	assert.Equal(t, 400.0, *m.ProfitChange)
	assert.Equal(t, 25.0, *m.CashChange)
}

func TestCalculateMetrics_ZeroPreviousValuesGiveNoChange(t *testing.T) {
	previous := domain.FinancialPeriod{Revenue: 0, NetProfit: 0, Cash: 1000}

	m := CalculateMetrics(samplePeriod(), &previous)

	assert.Nil(t, m.RevenueChange)
	assert.Nil(t, m.ProfitChange)
	require.NotNil(t, m.CashChange)
	assert.Equal(t, 4900.0, *m.CashChange)
}

func TestCalculateMetrics_LossWideningKeepsAbsoluteDenominator(t *testing.T) {
	current := domain.FinancialPeriod{Revenue: 1000, NetProfit: -3000}
	previous := domain.FinancialPeriod{Revenue: 1000, NetProfit: -1000}

	m := CalculateMetrics(current, &previous)

	require.NotNil(t, m.ProfitChange)
	assert.Equal(t, -200.0, *m.ProfitChange)
}

func TestCalculateMetrics_ZeroDenominators(t *testing.T) {
	m := CalculateMetrics(domain.FinancialPeriod{Cash: 5000, NetProfit: -100}, nil)

	assert.Zero(t, m.GrossMargin)
	assert.Zero(t, m.NetMargin)
	assert.Zero(t, m.CurrentRatio)
	assert.Zero(t, m.QuickRatio)
	assert.Zero(t, m.DSO)
	assert.Zero(t, m.DIO)
	assert.Zero(t, m.DPO)
	assert.Zero(t, m.CashConversionCycle)
	assert.Zero(t, m.CashRunwayMonths)
	assert.Equal(t, 5000.0, m.WorkingCapital)
}

func TestCalculateMetrics_VAT(t *testing.T) {
	p := samplePeriod()
	p.VATCollected = 5000
	p.VATPaid = 3000

	m := CalculateMetrics(p, nil)

	assert.True(t, m.HasVATData)
	assert.Equal(t, 2000.0, m.VATPayable)
}

func TestCalculateMetrics_CycleMatchesRoundedDays(t *testing.T) {
	periods := []domain.FinancialPeriod{
		samplePeriod(),
		{Revenue: 73000, COGS: 41000, Receivables: 12345, Inventory: 9876, Payables: 5432},
		{Revenue: 10, COGS: 3, Receivables: 1, Inventory: 2, Payables: 7},
	}

	for _, p := range periods {
		m := CalculateMetrics(p, nil)
		assert.Equal(t, m.DSO+m.DIO-m.DPO, m.CashConversionCycle)
	}
}

func TestCalculateMetrics_Deterministic(t *testing.T) {
	previous := domain.FinancialPeriod{Revenue: 80000, NetProfit: -5000, Cash: 40000}

	first := CalculateMetrics(samplePeriod(), &previous)
	second := CalculateMetrics(samplePeriod(), &previous)

	assert.Equal(t, first, second)
}
