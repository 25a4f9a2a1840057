package domain

type Scenario string

const (
	ScenarioDeclining    Scenario = "declining"
	ScenarioStable       Scenario = "stable"
	ScenarioModestGrowth Scenario = "modest_growth"
	ScenarioHighGrowth   Scenario = "high_growth"
)

type InvestmentRequest struct {
	Title        string   `json:"title,omitempty"`
	Investment   float64  `json:"investment"`
	Genre        string   `json:"genre"`
	DailyStreams int64    `json:"daily_streams"`
	Markets      []string `json:"markets"`
	Scenario     Scenario `json:"scenario"`
}

type MonthRecord struct {
	Month             int     `json:"month"`
	Streams           int64   `json:"streams"`
	Revenue           float64 `json:"revenue"`
	CumulativeRevenue float64 `json:"cumulative_revenue"`
	Investment        float64 `json:"investment"`
	Profit            float64 `json:"profit"`
}

type PlatformRevenue struct {
	Platform   string  `json:"platform"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// RateSummary holds the per-stream figures resolved for a request.
// MeanRate and EffectiveRate are on the reference platform; BlendedRate
// covers every distribution channel.
type RateSummary struct {
	MeanRate        float64    `json:"mean_rate"`
	GenreMultiplier float64    `json:"genre_multiplier"`
	EffectiveRate   float64    `json:"effective_rate"`
	BlendedRate     float64    `json:"blended_rate"`
	MarketTier      MarketTier `json:"market_tier"`
}

type ProjectionResult struct {
	Months            []MonthRecord     `json:"months"`
	BreakEvenMonth    *int              `json:"break_even_month"` // nil when the investment is never recouped
	FinalROI          float64           `json:"final_roi"`
	ROIApplicable     bool              `json:"roi_applicable"` // false when the investment is zero
	TotalStreams      int64             `json:"total_streams"`
	FinalRevenue      float64           `json:"final_revenue"`
	SuggestedPrice    float64           `json:"suggested_price"`
	PriceAssessment   PriceAssessment   `json:"price_assessment"`
	IsProfitable      bool              `json:"is_profitable"`
	PlatformBreakdown []PlatformRevenue `json:"platform_breakdown"`
	Rates             RateSummary       `json:"rates"`
}
