package domain

// PriceAssessment rates an asking price against the expected revenue of the track.
type PriceAssessment string

const (
	PriceExcellent PriceAssessment = "excellent"
	PriceGood      PriceAssessment = "good"
	PriceNormal    PriceAssessment = "normal"
	PriceHigh      PriceAssessment = "high"
	PriceVeryHigh  PriceAssessment = "very_high"
)

// PriceAssessments lists every assessment from most to least favorable.
var PriceAssessments = []PriceAssessment{
	PriceExcellent,
	PriceGood,
	PriceNormal,
	PriceHigh,
	PriceVeryHigh,
}

func (p PriceAssessment) Label() string {
	switch p {
	case PriceExcellent:
		return "Excellent Deal"
	case PriceGood:
		return "Good Price"
	case PriceNormal:
		return "Fair Price"
	case PriceHigh:
		return "High Price"
	case PriceVeryHigh:
		return "Very High Price"
	}
	return "Unknown"
}

func (p PriceAssessment) Color() string {
	switch p {
	case PriceExcellent:
		return "#22c55e"
	case PriceGood:
		return "#84cc16"
	case PriceNormal:
		return "#eab308"
	case PriceHigh:
		return "#f97316"
	case PriceVeryHigh:
		return "#ef4444"
	}
	return "#6b7280"
}

// MarketTier rates the average per-stream payout of the selected markets.
type MarketTier string

const (
	MarketPremium  MarketTier = "premium"
	MarketStrong   MarketTier = "strong"
	MarketGood     MarketTier = "good"
	MarketModerate MarketTier = "moderate"
	MarketEmerging MarketTier = "emerging"
)

func (t MarketTier) Label() string {
	switch t {
	case MarketPremium:
		return "Premium Markets"
	case MarketStrong:
		return "Strong Markets"
	case MarketGood:
		return "Good Markets"
	case MarketModerate:
		return "Moderate Markets"
	case MarketEmerging:
		return "Emerging Markets"
	}
	return "Unknown Markets"
}
