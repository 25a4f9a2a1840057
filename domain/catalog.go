package domain

type GenreInfo struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type MarketInfo struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type ScenarioInfo struct {
	Key            Scenario `json:"key"`
	PeakMultiplier float64  `json:"peak_multiplier"`
	PeakMonth      int      `json:"peak_month"`
	DecayRate      float64  `json:"decay_rate"`
}

type PlatformInfo struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

type AssessmentInfo struct {
	Key   PriceAssessment `json:"key"`
	Label string          `json:"label"`
	Color string          `json:"color"`
}

// Catalog is the read-only reference data a client needs to build an
// InvestmentRequest and render a ProjectionResult.
type Catalog struct {
	HorizonMonths     int              `json:"horizon_months"`
	ReferencePlatform string           `json:"reference_platform"`
	Genres            []GenreInfo      `json:"genres"`
	Markets           []MarketInfo     `json:"markets"`
	Scenarios         []ScenarioInfo   `json:"scenarios"`
	Platforms         []PlatformInfo   `json:"platforms"`
	PriceAssessments  []AssessmentInfo `json:"price_assessments"`
}
