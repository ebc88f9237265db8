package reporting

import (
	"strings"

	"github.com/vfg2006/cashpulse-api/internal/domain"
)

const (
	IndustryProduct       = "product"
	IndustryOnline        = "online"
	IndustryServices      = "services"
	IndustryFood          = "food"
	IndustryConstruction  = "construction"
	IndustryManufacturing = "manufacturing"
	IndustryHealthcare    = "healthcare"
	IndustryOther         = "other"
)

var benchmarks = map[string]domain.IndustryBenchmark{
	IndustryProduct: {
		Industry:     IndustryProduct,
		Label:        "Product and retail",
		GrossMargin:  domain.Range{Min: 25, Max: 50, Ideal: 40},
		NetMargin:    domain.Range{Min: 3, Max: 12, Ideal: 8},
		CurrentRatio: domain.Range{Min: 1.2, Max: 2.5, Ideal: 1.8},
		DSO:          domain.Range{Min: 0, Max: 30, Ideal: 15},
		DIO:          domain.Range{Min: 30, Max: 90, Ideal: 45},
		DPO:          domain.Range{Min: 30, Max: 60, Ideal: 45},
	},
	IndustryOnline: {
		Industry:     IndustryOnline,
		Label:        "Online and e-commerce",
		GrossMargin:  domain.Range{Min: 30, Max: 60, Ideal: 45},
		NetMargin:    domain.Range{Min: 5, Max: 15, Ideal: 10},
		CurrentRatio: domain.Range{Min: 1.2, Max: 3, Ideal: 2},
		DSO:          domain.Range{Min: 0, Max: 10, Ideal: 3},
		DIO:          domain.Range{Min: 20, Max: 60, Ideal: 35},
		DPO:          domain.Range{Min: 20, Max: 45, Ideal: 30},
	},
	IndustryServices: {
		Industry:     IndustryServices,
		Label:        "Professional services",
		GrossMargin:  domain.Range{Min: 40, Max: 70, Ideal: 55},
		NetMargin:    domain.Range{Min: 10, Max: 25, Ideal: 15},
		CurrentRatio: domain.Range{Min: 1.5, Max: 3, Ideal: 2},
		DSO:          domain.Range{Min: 30, Max: 60, Ideal: 45},
		DIO:          domain.Range{Min: 0, Max: 10, Ideal: 0},
		DPO:          domain.Range{Min: 15, Max: 45, Ideal: 30},
	},
	IndustryFood: {
		Industry:     IndustryFood,
		Label:        "Food and hospitality",
		GrossMargin:  domain.Range{Min: 55, Max: 75, Ideal: 65},
		NetMargin:    domain.Range{Min: 3, Max: 10, Ideal: 6},
		CurrentRatio: domain.Range{Min: 0.8, Max: 1.5, Ideal: 1.2},
		DSO:          domain.Range{Min: 0, Max: 7, Ideal: 2},
		DIO:          domain.Range{Min: 3, Max: 14, Ideal: 7},
		DPO:          domain.Range{Min: 15, Max: 45, Ideal: 30},
	},
	IndustryConstruction: {
		Industry:     IndustryConstruction,
		Label:        "Construction and contracting",
		GrossMargin:  domain.Range{Min: 15, Max: 30, Ideal: 22},
		NetMargin:    domain.Range{Min: 3, Max: 10, Ideal: 6},
		CurrentRatio: domain.Range{Min: 1.1, Max: 2, Ideal: 1.5},
		DSO:          domain.Range{Min: 45, Max: 90, Ideal: 60},
		DIO:          domain.Range{Min: 10, Max: 30, Ideal: 20},
		DPO:          domain.Range{Min: 30, Max: 75, Ideal: 60},
	},
	IndustryManufacturing: {
		Industry:     IndustryManufacturing,
		Label:        "Manufacturing",
		GrossMargin:  domain.Range{Min: 20, Max: 40, Ideal: 30},
		NetMargin:    domain.Range{Min: 4, Max: 12, Ideal: 8},
		CurrentRatio: domain.Range{Min: 1.2, Max: 2.5, Ideal: 1.8},
		DSO:          domain.Range{Min: 30, Max: 60, Ideal: 45},
		DIO:          domain.Range{Min: 45, Max: 120, Ideal: 60},
		DPO:          domain.Range{Min: 30, Max: 60, Ideal: 45},
	},
	IndustryHealthcare: {
		Industry:     IndustryHealthcare,
		Label:        "Healthcare and clinics",
		GrossMargin:  domain.Range{Min: 35, Max: 65, Ideal: 50},
		NetMargin:    domain.Range{Min: 8, Max: 20, Ideal: 12},
		CurrentRatio: domain.Range{Min: 1.3, Max: 3, Ideal: 2},
		DSO:          domain.Range{Min: 30, Max: 75, Ideal: 45},
		DIO:          domain.Range{Min: 15, Max: 45, Ideal: 30},
		DPO:          domain.Range{Min: 20, Max: 45, Ideal: 30},
	},
	IndustryOther: {
		Industry:     IndustryOther,
		Label:        "General business",
		GrossMargin:  domain.Range{Min: 25, Max: 55, Ideal: 40},
		NetMargin:    domain.Range{Min: 5, Max: 15, Ideal: 10},
		CurrentRatio: domain.Range{Min: 1.2, Max: 2.5, Ideal: 1.8},
		DSO:          domain.Range{Min: 15, Max: 45, Ideal: 30},
		DIO:          domain.Range{Min: 15, Max: 60, Ideal: 30},
		DPO:          domain.Range{Min: 20, Max: 45, Ideal: 30},
	},
}

// NormalizeIndustry folds caller input ("  Food ") onto the fixed industry
// keys. Analyze applies it to the submitted company before any lookup.
func NormalizeIndustry(industry string) string {
	key := strings.ToLower(strings.TrimSpace(industry))
	if _, ok := benchmarks[key]; ok {
		return key
	}
	return IndustryOther
}

// BenchmarksFor returns the entry for an exact industry key. Anything else,
// including case or whitespace variants, gets the "other" entry.
func BenchmarksFor(industry string) domain.IndustryBenchmark {
	if b, ok := benchmarks[industry]; ok {
		return b
	}
	return benchmarks[IndustryOther]
}
