package service

import "track-roi/domain"

// Catalog returns copies of the static tables in display order.
func Catalog() domain.Catalog {
	markets := make([]domain.MarketInfo, 0, len(availableMarkets))
	for _, code := range availableMarkets {
		markets = append(markets, domain.MarketInfo{
			Code: code,
			Name: MarketName(code),
			Rate: MarketRate(code),
		})
	}

	assessments := make([]domain.AssessmentInfo, 0, len(domain.PriceAssessments))
	for _, a := range domain.PriceAssessments {
		assessments = append(assessments, domain.AssessmentInfo{
			Key:   a,
			Label: a.Label(),
			Color: a.Color(),
		})
	}

	return domain.Catalog{
		HorizonMonths:     HorizonMonths,
		ReferencePlatform: ReferencePlatform,
		Genres:            append([]domain.GenreInfo(nil), genres...),
		Markets:           markets,
		Scenarios:         append([]domain.ScenarioInfo(nil), scenarios...),
		Platforms:         append([]domain.PlatformInfo(nil), platformDistribution...),
		PriceAssessments:  assessments,
	}
}
