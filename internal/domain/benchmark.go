package domain

type Range struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Ideal float64 `json:"ideal"`
}

// Contains reports whether v falls inside [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type IndustryBenchmark struct {
	Industry     string `json:"industry"`
	Label        string `json:"label"`
	GrossMargin  Range  `json:"grossMargin"`
	NetMargin    Range  `json:"netMargin"`
	CurrentRatio Range  `json:"currentRatio"`
	DSO          Range  `json:"dso"`
	DIO          Range  `json:"dio"`
	DPO          Range  `json:"dpo"`
}
