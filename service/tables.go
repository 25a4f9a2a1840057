package service

import (
	"strings"

	"track-roi/domain"
)

// Reference-platform revenue per stream, by country code.
var marketRates = map[string]float64{
	"AR": 0.004, "AT": 0.022, "AU": 0.019, "BE": 0.020, "BR": 0.007,
	"CA": 0.017, "CL": 0.005, "DE": 0.021, "DK": 0.027, "ES": 0.010,
	"FI": 0.026, "FR": 0.016, "GB": 0.029, "IT": 0.012, "MX": 0.007,
	"NL": 0.024, "NO": 0.027, "PT": 0.010, "SE": 0.025, "UY": 0.007,
	"US": 0.025,
}

var marketNames = map[string]string{
	"AR": "Argentina", "AT": "Austria", "AU": "Australia", "BE": "Belgium", "BR": "Brazil",
	"CA": "Canada", "CL": "Chile", "DE": "Germany", "DK": "Denmark", "ES": "Spain",
	"FI": "Finland", "FR": "France", "GB": "United Kingdom", "IT": "Italy", "MX": "Mexico",
	"NL": "Netherlands", "NO": "Norway", "PT": "Portugal", "SE": "Sweden", "UY": "Uruguay",
	"US": "United States",
}

// Display order of the selectable markets.
var availableMarkets = []string{
	"US", "GB", "NO", "DK", "SE", "NL", "DE", "AT", "BE", "AU", "CA",
	"FR", "IT", "ES", "PT", "BR", "MX", "CL", "UY", "AR", "FI",
}

var defaultMarkets = []string{"US", "DE", "GB"}

const defaultGenre = "Phonk"

var genres = []domain.GenreInfo{
	{Name: "Phonk", Multiplier: 1.15},
	{Name: "Pop", Multiplier: 1.10},
	{Name: "Hip-Hop", Multiplier: 1.08},
	{Name: "Drum & Bass", Multiplier: 1.05},
	{Name: "Techno", Multiplier: 1.02},
	{Name: "House", Multiplier: 1.02},
	{Name: "Electronic", Multiplier: 1.00},
	{Name: "Brazilian Funk", Multiplier: 0.95},
}

// Shares sum to 1.0; the first entry is the reference platform.
var platformDistribution = []domain.PlatformInfo{
	{Name: ReferencePlatform, Share: ReferencePlatformShare},
	{Name: "YouTube", Share: 0.20},
	{Name: "Apple Music", Share: 0.12},
	{Name: "TikTok", Share: 0.06},
	{Name: "Amazon Music", Share: 0.04},
	{Name: "Other", Share: 0.03},
}

var scenarios = []domain.ScenarioInfo{
	{Key: domain.ScenarioDeclining, PeakMultiplier: 0.6, PeakMonth: 2, DecayRate: 0.18},
	{Key: domain.ScenarioStable, PeakMultiplier: 0.85, PeakMonth: 3, DecayRate: 0.10},
	{Key: domain.ScenarioModestGrowth, PeakMultiplier: 1.25, PeakMonth: 2, DecayRate: 0.12},
	{Key: domain.ScenarioHighGrowth, PeakMultiplier: 2.5, PeakMonth: 4, DecayRate: 0.15},
}

var scenarioAliases = map[string]domain.Scenario{
	"decreasing":    domain.ScenarioDeclining,
	"small_upside":  domain.ScenarioModestGrowth,
	"big_upside":    domain.ScenarioHighGrowth,
	"modest-growth": domain.ScenarioModestGrowth,
	"high-growth":   domain.ScenarioHighGrowth,
}

// MarketRate returns the reference-platform rate for a country code,
// falling back to DefaultMarketRate.
func MarketRate(code string) float64 {
	if rate, ok := marketRates[code]; ok {
		return rate
	}
	return DefaultMarketRate
}

// MarketName returns the display name of a country code, or the code itself.
func MarketName(code string) string {
	if name, ok := marketNames[code]; ok {
		return name
	}
	return code
}

// GenreMultiplier returns the revenue multiplier of a genre, falling back to
// DefaultGenreMultiplier.
func GenreMultiplier(genre string) float64 {
	for _, g := range genres {
		if g.Name == genre {
			return g.Multiplier
		}
	}
	return DefaultGenreMultiplier
}

// canonicalGenre matches a genre name case-insensitively against the table.
func canonicalGenre(genre string) (string, bool) {
	for _, g := range genres {
		if strings.EqualFold(g.Name, genre) {
			return g.Name, true
		}
	}
	return genre, false
}

// ResolveScenario maps a scenario key or one of its aliases to its canonical key.
func ResolveScenario(name string) (domain.Scenario, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := scenarioAliases[key]; ok {
		return alias, true
	}
	for _, s := range scenarios {
		if string(s.Key) == key {
			return s.Key, true
		}
	}
	return domain.Scenario(name), false
}

func scenarioParams(key domain.Scenario) (domain.ScenarioInfo, bool) {
	for _, s := range scenarios {
		if s.Key == key {
			return s, true
		}
	}
	return domain.ScenarioInfo{}, false
}
