package narrating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/utils"
)

// SystemPrompt is sent with every request to the text generation service.
const SystemPrompt = `You are a friendly finance advisor who explains a small business's monthly numbers to its owner.

Rules:
- Use plain, everyday words. No finance jargon. If you must name a ratio, explain it in the same sentence.
- Do not use contractions. Write "do not" instead of "don't" and "it is" instead of "it's".
- Every action must contain a concrete number: an amount, a number of days or a percentage.
- Speak to the owner directly ("you", "your business").
- Never invent figures. Use only the numbers you are given.

Answer using exactly this layout, one key per line, every key present, nothing before the first key:

HERO_SUMMARY: one sentence (maximum 25 words) on how the business did this period
NARRATIVE: three to five sentences explaining profit, cash and the most important risk
CASH_CYCLE_EXPLANATION: two or three sentences explaining how long cash is tied up and why
ACTION_1_TITLE: short imperative title (maximum 6 words)
ACTION_1_DESC: one or two sentences with a concrete numeric target
ACTION_2_TITLE: short imperative title (maximum 6 words)
ACTION_2_DESC: one or two sentences with a concrete numeric target
ACTION_3_TITLE: short imperative title (maximum 6 words)
ACTION_3_DESC: one or two sentences with a concrete numeric target
MEETING_SUMMARY: a short script (three or four sentences) the owner can read out to partners or the bank`

var industryHints = map[string]string{
	"product":       "Talk about stock, units sold, suppliers and shelf space.",
	"online":        "Talk about orders, customers, platform fees and delivery costs.",
	"services":      "Talk about clients, billable work, invoices and team time.",
	"food":          "Talk about covers, ingredients, daily takings and waste.",
	"construction":  "Talk about projects, progress billing, retention money and subcontractors.",
	"manufacturing": "Talk about production runs, raw materials, finished goods and machine time.",
	"healthcare":    "Talk about patients, insurance claims, consumables and appointments.",
	"other":         "Use everyday small-business language.",
}

// IndustryHint returns the vocabulary guidance for an industry key.
func IndustryHint(industry string) string {
	if hint, ok := industryHints[industry]; ok {
		return hint
	}
	return industryHints["other"]
}

// BuildPrompt renders the user prompt: company context, raw figures for both
// periods and every computed metric with its target range.
func BuildPrompt(in Input) string {
	company := in.Company
	cur := company.Currency
	money := func(v float64) string { return utils.FormatMoney(cur, v) }

	var b strings.Builder

	b.WriteString("COMPANY\n")
	fmt.Fprintf(&b, "Name: %s\n", company.Name)
	fmt.Fprintf(&b, "Industry: %s (%s)\n", in.Benchmark.Label, company.Industry)
	if label := company.PeriodLabel(); label != "" {
		fmt.Fprintf(&b, "Period: %s\n", label)
	}
	fmt.Fprintf(&b, "Currency: %s\n", cur)
	fmt.Fprintf(&b, "Language guidance: %s\n\n", IndustryHint(company.Industry))

	b.WriteString("THIS PERIOD\n")
	writePeriod(&b, in.Current, money)

	if in.Previous != nil {
		b.WriteString("\nPREVIOUS PERIOD\n")
		writePeriod(&b, *in.Previous, money)
	}

	m := in.Metrics
	bm := in.Benchmark

	b.WriteString("\nCALCULATED METRICS\n")
	fmt.Fprintf(&b, "Gross profit: %s\n", money(m.GrossProfit))
	fmt.Fprintf(&b, "Gross margin: %.1f%% (healthy range %s%%, target %s%%)\n", m.GrossMargin, rangeText(bm.GrossMargin), utils.FormatNumber(bm.GrossMargin.Ideal))
	fmt.Fprintf(&b, "Net margin: %.1f%% (healthy range %s%%, target %s%%)\n", m.NetMargin, rangeText(bm.NetMargin), utils.FormatNumber(bm.NetMargin.Ideal))
	fmt.Fprintf(&b, "Current assets: %s\n", money(m.TotalCurrentAssets))
	fmt.Fprintf(&b, "Current liabilities: %s\n", money(m.TotalCurrentLiabilities))
	fmt.Fprintf(&b, "Working capital: %s\n", money(m.WorkingCapital))
	fmt.Fprintf(&b, "Current ratio: %.2f (healthy range %s, target %s)\n", m.CurrentRatio, rangeText(bm.CurrentRatio), utils.FormatNumber(bm.CurrentRatio.Ideal))
	fmt.Fprintf(&b, "Quick ratio: %.2f (healthy at 1.0 or above)\n", m.QuickRatio)
	fmt.Fprintf(&b, "Days to collect from customers (DSO): %.0f days (healthy range %s days)\n", m.DSO, rangeText(bm.DSO))
	fmt.Fprintf(&b, "Days stock is held (DIO): %.0f days (healthy range %s days)\n", m.DIO, rangeText(bm.DIO))
	fmt.Fprintf(&b, "Days to pay suppliers (DPO): %.0f days (healthy range %s days)\n", m.DPO, rangeText(bm.DPO))
	fmt.Fprintf(&b, "Cash conversion cycle: %.0f days (lower is better)\n", m.CashConversionCycle)
	fmt.Fprintf(&b, "Cash runway: %.1f months of operating expenses (3 months or more is safe)\n", m.CashRunwayMonths)
	if m.HasVATData {
		fmt.Fprintf(&b, "VAT payable: %s\n", money(m.VATPayable))
	}
	writeChange(&b, "Revenue change vs previous period", m.RevenueChange)
	writeChange(&b, "Net profit change vs previous period", m.ProfitChange)
	writeChange(&b, "Cash change vs previous period", m.CashChange)

	b.WriteString("\nWrite the analysis now, using the required layout.")

	return b.String()
}

func writePeriod(b *strings.Builder, p domain.FinancialPeriod, money func(float64) string) {
	fmt.Fprintf(b, "Revenue: %s\n", money(p.Revenue))
	fmt.Fprintf(b, "Cost of goods sold: %s\n", money(p.COGS))
	fmt.Fprintf(b, "Operating expenses: %s\n", money(p.Opex))
	fmt.Fprintf(b, "Net profit: %s\n", money(p.NetProfit))
	fmt.Fprintf(b, "Cash in bank: %s\n", money(p.Cash))
	fmt.Fprintf(b, "Money owed by customers: %s\n", money(p.Receivables))
	fmt.Fprintf(b, "Inventory: %s\n", money(p.Inventory))
	fmt.Fprintf(b, "Money owed to suppliers: %s\n", money(p.Payables))
	fmt.Fprintf(b, "Short-term loans: %s\n", money(p.ShortTermLoans))
	fmt.Fprintf(b, "Other liabilities: %s\n", money(p.OtherLiabilities))
	if p.VATCollected > 0 || p.VATPaid > 0 {
		fmt.Fprintf(b, "VAT collected: %s\n", money(p.VATCollected))
		fmt.Fprintf(b, "VAT paid: %s\n", money(p.VATPaid))
	}
}

func writeChange(b *strings.Builder, label string, change *float64) {
	if change == nil {
		return
	}
	fmt.Fprintf(b, "%s: %+.1f%%\n", label, *change)
}

func rangeText(r domain.Range) string {
	return utils.FormatNumber(r.Min) + "-" + utils.FormatNumber(r.Max)
}
