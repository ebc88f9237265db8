package billing

import (
	"strings"

	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

type priceKey struct {
	plan    domain.Plan
	billing domain.BillingInterval
}

// PriceTable maps plans to configured Stripe price ids and back.
type PriceTable struct {
	prices map[priceKey]string
	plans  map[string]domain.Plan
}

func NewPriceTable(cfg config.Stripe) PriceTable {
	t := PriceTable{
		prices: make(map[priceKey]string, 4),
		plans:  make(map[string]domain.Plan, 4),
	}

	t.add(domain.PlanStarter, domain.BillingMonthly, cfg.PriceStarterMonth)
	t.add(domain.PlanStarter, domain.BillingAnnual, cfg.PriceStarterAnnual)
	t.add(domain.PlanPro, domain.BillingMonthly, cfg.PriceProMonth)
	t.add(domain.PlanPro, domain.BillingAnnual, cfg.PriceProAnnual)

	return t
}

func (t PriceTable) add(plan domain.Plan, billing domain.BillingInterval, priceID string) {
	priceID = strings.TrimSpace(priceID)
	if priceID == "" {
		return
	}
	t.prices[priceKey{plan, billing}] = priceID
	t.plans[priceID] = plan
}

// Resolve returns the price id for plan and billing. Empty billing means
// monthly.
func (t PriceTable) Resolve(plan domain.Plan, billing domain.BillingInterval) (string, bool) {
	if billing == "" {
		billing = domain.BillingMonthly
	}
	id, ok := t.prices[priceKey{plan, billing}]
	return id, ok
}

// PlanFor reports the plan a price belongs to.
func (t PriceTable) PlanFor(priceID string) (domain.Plan, bool) {
	plan, ok := t.plans[priceID]
	return plan, ok
}

func validPlan(p domain.Plan) bool {
	return p == domain.PlanStarter || p == domain.PlanPro
}

func validBilling(b domain.BillingInterval) bool {
	return b == domain.BillingMonthly || b == domain.BillingAnnual
}
