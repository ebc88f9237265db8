package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

func testStripeConfig() config.Stripe {
	return config.Stripe{
		PriceStarterMonth:  "price_starter_m",
		PriceStarterAnnual: "price_starter_y",
		PriceProMonth:      "price_pro_m",
		PriceProAnnual:     " price_pro_y ",
	}
}

func TestPriceTable_Resolve(t *testing.T) {
	table := NewPriceTable(testStripeConfig())

	tests := []struct {
		plan    domain.Plan
		billing domain.BillingInterval
		want    string
		ok      bool
	}{
		{domain.PlanStarter, domain.BillingMonthly, "price_starter_m", true},
		{domain.PlanStarter, domain.BillingAnnual, "price_starter_y", true},
		{domain.PlanPro, domain.BillingMonthly, "price_pro_m", true},
		{domain.PlanPro, domain.BillingAnnual, "price_pro_y", true},
		{domain.PlanPro, "", "price_pro_m", true},
		{domain.PlanFree, domain.BillingMonthly, "", false},
	}

	for _, tt := range tests {
		got, ok := table.Resolve(tt.plan, tt.billing)
		assert.Equal(t, tt.want, got, "%s/%s", tt.plan, tt.billing)
		assert.Equal(t, tt.ok, ok, "%s/%s", tt.plan, tt.billing)
	}
}

func TestPriceTable_MissingConfig(t *testing.T) {
	table := NewPriceTable(config.Stripe{PriceProMonth: "price_pro_m"})

	_, ok := table.Resolve(domain.PlanStarter, domain.BillingMonthly)
	assert.False(t, ok)

	_, ok = table.PlanFor("")
	assert.False(t, ok)
}

func TestPriceTable_PlanFor(t *testing.T) {
	table := NewPriceTable(testStripeConfig())

	plan, ok := table.PlanFor("price_pro_y")
	assert.True(t, ok)
	assert.Equal(t, domain.PlanPro, plan)

	plan, ok = table.PlanFor("price_starter_m")
	assert.True(t, ok)
	assert.Equal(t, domain.PlanStarter, plan)

	_, ok = table.PlanFor("price_legacy")
	assert.False(t, ok)
}
