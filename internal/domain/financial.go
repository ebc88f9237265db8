package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultCurrency = "AED"
	DefaultIndustry = "other"
)

// FinancialPeriod holds the raw figures of one reporting period. Missing JSON
// fields decode to zero.
type FinancialPeriod struct {
	Revenue          float64 `json:"revenue"`
	COGS             float64 `json:"cogs"`
	Opex             float64 `json:"opex"`
	NetProfit        float64 `json:"netProfit"`
	Cash             float64 `json:"cash"`
	Receivables      float64 `json:"receivables"`
	Inventory        float64 `json:"inventory"`
	Payables         float64 `json:"payables"`
	ShortTermLoans   float64 `json:"shortTermLoans"`
	OtherLiabilities float64 `json:"otherLiabilities"`
	VATCollected     float64 `json:"vatCollected"`
	VATPaid          float64 `json:"vatPaid"`
}

type ReportingPeriod struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

type Company struct {
	Name     string          `json:"name"`
	Industry string          `json:"industry"`
	Currency string          `json:"currency"`
	Period   ReportingPeriod `json:"period"`
}

// WithDefaults returns a copy with industry and currency filled in.
func (c Company) WithDefaults() Company {
	c.Name = strings.TrimSpace(c.Name)
	c.Industry = strings.ToLower(strings.TrimSpace(c.Industry))
	if c.Industry == "" {
		c.Industry = DefaultIndustry
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return c
}

// PeriodLabel renders the reporting period as "March 2025", or an empty string
// when nothing was supplied.
func (c Company) PeriodLabel() string {
	switch {
	case c.Period.Month != "" && c.Period.Year != 0:
		return c.Period.Month + " " + strconv.Itoa(c.Period.Year)
	case c.Period.Month != "":
		return c.Period.Month
	case c.Period.Year != 0:
		return strconv.Itoa(c.Period.Year)
	}
	return ""
}
