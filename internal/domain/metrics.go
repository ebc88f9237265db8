package domain

// MetricsResult is derived from a FinancialPeriod. The *Change fields are nil
// when no usable prior period was supplied.
type MetricsResult struct {
	GrossProfit             float64  `json:"grossProfit"`
	GrossMargin             float64  `json:"grossMargin"`
	NetMargin               float64  `json:"netMargin"`
	TotalCurrentAssets      float64  `json:"totalCurrentAssets"`
	TotalCurrentLiabilities float64  `json:"totalCurrentLiabilities"`
	WorkingCapital          float64  `json:"workingCapital"`
	CurrentRatio            float64  `json:"currentRatio"`
	QuickRatio              float64  `json:"quickRatio"`
	DSO                     float64  `json:"dso"`
	DIO                     float64  `json:"dio"`
	DPO                     float64  `json:"dpo"`
	CashConversionCycle     float64  `json:"cashConversionCycle"`
	CashRunwayMonths        float64  `json:"cashRunwayMonths"`
	VATPayable              float64  `json:"vatPayable"`
	HasVATData              bool     `json:"hasVatData"`
	RevenueChange           *float64 `json:"revenueChange"`
	ProfitChange            *float64 `json:"profitChange"`
	CashChange              *float64 `json:"cashChange"`
}
