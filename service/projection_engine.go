package service

import (
	"math"

	"track-roi/domain"
)

// roundHalfUp redondea al entero más cercano; las mitades suben hacia +inf.
func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

var priceBands = []struct {
	below      float64
	assessment domain.PriceAssessment
}{
	{0.3, domain.PriceExcellent},
	{0.5, domain.PriceGood},
	{0.8, domain.PriceNormal},
	{1.2, domain.PriceHigh},
}

var marketTiers = []struct {
	atLeast float64
	tier    domain.MarketTier
}{
	{0.025, domain.MarketPremium},
	{0.020, domain.MarketStrong},
	{0.015, domain.MarketGood},
	{0.010, domain.MarketModerate},
}

// Compute projects a request over HorizonMonths. It never fails: unknown
// genres, markets and scenarios resolve to defaults. Requests are expected
// to have gone through PrepareRequest first.
func Compute(req domain.InvestmentRequest) domain.ProjectionResult {
	rates := resolveRates(req.Markets, req.Genre)

	params, ok := scenarioParams(req.Scenario)
	if !ok {
		params, _ = scenarioParams(domain.ScenarioStable)
	}

	acc := accumulate(req, params, rates.BlendedRate)

	finalROI, applicable := returnOnInvestment(acc.cumulative, req.Investment)
	isProfitable := finalROI > 0
	if !applicable {
		isProfitable = acc.cumulative > 0
	}

	expectedRevenue := float64(acc.totalStreams) * rates.BlendedRate

	return domain.ProjectionResult{
		Months:            acc.months,
		BreakEvenMonth:    acc.breakEven,
		FinalROI:          finalROI,
		ROIApplicable:     applicable,
		TotalStreams:      acc.totalStreams,
		FinalRevenue:      roundHalfUp(acc.cumulative),
		SuggestedPrice:    suggestedPrice(acc.months, acc.cumulative),
		PriceAssessment:   assessPrice(req.Investment, expectedRevenue),
		IsProfitable:      isProfitable,
		PlatformBreakdown: platformBreakdown(acc.cumulative),
		Rates:             rates,
	}
}

func resolveRates(markets []string, genre string) domain.RateSummary {
	mean := DefaultMarketRate
	if len(markets) > 0 {
		sum := 0.0
		for _, code := range markets {
			sum += MarketRate(code)
		}
		mean = sum / float64(len(markets))
	}

	multiplier := GenreMultiplier(genre)
	effective := mean * multiplier

	return domain.RateSummary{
		MeanRate:        mean,
		GenreMultiplier: multiplier,
		EffectiveRate:   effective,
		BlendedRate:     effective / ReferencePlatformShare,
		MarketTier:      classifyMarkets(mean),
	}
}

func classifyMarkets(meanRate float64) domain.MarketTier {
	for _, t := range marketTiers {
		if meanRate >= t.atLeast {
			return t.tier
		}
	}
	return domain.MarketEmerging
}

// rampMultiplier grows linearly from 1.0 at month 0 to the peak multiplier.
func rampMultiplier(s domain.ScenarioInfo, month int) float64 {
	return 1 + (s.PeakMultiplier-1)*(float64(month)/float64(s.PeakMonth))
}

// decayMultiplier falls exponentially from the peak multiplier.
func decayMultiplier(s domain.ScenarioInfo, month int) float64 {
	return s.PeakMultiplier * math.Exp(-s.DecayRate*float64(month-s.PeakMonth))
}

func streamMultiplier(s domain.ScenarioInfo, month int) float64 {
	if month <= s.PeakMonth {
		return rampMultiplier(s, month)
	}
	return decayMultiplier(s, month)
}

type accumulation struct {
	months       []domain.MonthRecord
	cumulative   float64
	totalStreams int64
	breakEven    *int
}

// firstCrossing keeps an already recorded month; otherwise it records month
// once reached is true.
func firstCrossing(current *int, month int, reached bool) *int {
	if current != nil || !reached {
		return current
	}
	m := month
	return &m
}

func (a accumulation) step(month int, streams, revenue, investment float64) accumulation {
	a.cumulative += revenue
	a.breakEven = firstCrossing(a.breakEven, month, a.cumulative >= investment)

	record := domain.MonthRecord{
		Month:             month,
		Streams:           int64(roundHalfUp(streams)),
		Revenue:           roundHalfUp(revenue),
		CumulativeRevenue: roundHalfUp(a.cumulative),
		Investment:        investment,
		Profit:            roundHalfUp(a.cumulative - investment),
	}
	a.totalStreams += record.Streams
	a.months = append(a.months, record)
	return a
}

func accumulate(req domain.InvestmentRequest, s domain.ScenarioInfo, blendedRate float64) accumulation {
	acc := accumulation{months: make([]domain.MonthRecord, 0, HorizonMonths)}
	baseline := float64(req.DailyStreams) * DaysPerMonth

	for month := 1; month <= HorizonMonths; month++ {
		streams := baseline * streamMultiplier(s, month)
		acc = acc.step(month, streams, streams*blendedRate, req.Investment)
	}
	return acc
}

// returnOnInvestment reports the ROI percentage. It is not applicable for a
// zero investment.
func returnOnInvestment(finalRevenue, investment float64) (float64, bool) {
	if investment <= 0 {
		return 0, false
	}
	return (finalRevenue/investment - 1) * 100, true
}

func suggestedPrice(months []domain.MonthRecord, finalCumulative float64) float64 {
	base := finalCumulative
	if len(months) >= SuggestedPriceMonth {
		base = months[SuggestedPriceMonth-1].CumulativeRevenue
	}
	return roundHalfUp(base * SuggestedPriceMargin)
}

func assessPrice(investment, expectedRevenue float64) domain.PriceAssessment {
	if investment <= 0 {
		return domain.PriceExcellent
	}
	if expectedRevenue <= 0 {
		return domain.PriceVeryHigh
	}

	ratio := investment / expectedRevenue
	for _, b := range priceBands {
		if ratio < b.below {
			return b.assessment
		}
	}
	return domain.PriceVeryHigh
}

func platformBreakdown(finalCumulative float64) []domain.PlatformRevenue {
	breakdown := make([]domain.PlatformRevenue, 0, len(platformDistribution))
	for _, p := range platformDistribution {
		breakdown = append(breakdown, domain.PlatformRevenue{
			Platform:   p.Name,
			Revenue:    roundHalfUp(finalCumulative * p.Share),
			Percentage: p.Share * 100,
		})
	}
	return breakdown
}
