package service

import (
	"math"
	"testing"

	"track-roi/domain"
)

func TestPlatformSharesSumToOne(t *testing.T) {
	sum := 0.0
	for _, p := range platformDistribution {
		sum += p.Share
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("platform shares sum to %v", sum)
	}
	if platformDistribution[0].Name != ReferencePlatform || platformDistribution[0].Share != ReferencePlatformShare {
		t.Errorf("reference platform must come first with share %v", ReferencePlatformShare)
	}
}

func TestMarketLookups(t *testing.T) {
	if MarketRate("GB") != 0.029 {
		t.Errorf("unexpected GB rate %v", MarketRate("GB"))
	}
	if MarketRate("ZZ") != DefaultMarketRate {
		t.Errorf("unknown market should use the default rate")
	}
	if MarketName("NO") != "Norway" {
		t.Errorf("unexpected name %q", MarketName("NO"))
	}
	if MarketName("ZZ") != "ZZ" {
		t.Errorf("unknown market should fall back to its code")
	}
	for _, code := range availableMarkets {
		if _, ok := marketRates[code]; !ok {
			t.Errorf("available market %s has no rate", code)
		}
		if _, ok := marketNames[code]; !ok {
			t.Errorf("available market %s has no name", code)
		}
	}
}

func TestGenreMultiplier(t *testing.T) {
	if GenreMultiplier("Phonk") != 1.15 {
		t.Errorf("unexpected Phonk multiplier")
	}
	if GenreMultiplier("Brazilian Funk") != 0.95 {
		t.Errorf("unexpected Brazilian Funk multiplier")
	}
	if GenreMultiplier("Polka") != DefaultGenreMultiplier {
		t.Errorf("unknown genre should use the default multiplier")
	}
}

func TestResolveScenario(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Scenario
		ok   bool
	}{
		{"stable", domain.ScenarioStable, true},
		{"Declining", domain.ScenarioDeclining, true},
		{"decreasing", domain.ScenarioDeclining, true},
		{"modest-growth", domain.ScenarioModestGrowth, true},
		{"small_upside", domain.ScenarioModestGrowth, true},
		{"high_growth", domain.ScenarioHighGrowth, true},
		{"big_upside", domain.ScenarioHighGrowth, true},
		{"moonshot", "moonshot", false},
	}
	for _, tt := range tests {
		got, ok := ResolveScenario(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveScenario(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()

	if c.HorizonMonths != HorizonMonths {
		t.Errorf("unexpected horizon %d", c.HorizonMonths)
	}
	if len(c.Markets) != len(availableMarkets) || c.Markets[0].Code != "US" || c.Markets[0].Name != "United States" {
		t.Errorf("unexpected markets: %+v", c.Markets)
	}
	if len(c.Genres) != 8 || len(c.Scenarios) != 4 || len(c.Platforms) != 6 {
		t.Errorf("unexpected table sizes: %d genres, %d scenarios, %d platforms",
			len(c.Genres), len(c.Scenarios), len(c.Platforms))
	}
	if len(c.PriceAssessments) != 5 || c.PriceAssessments[2].Label != "Fair Price" {
		t.Errorf("unexpected assessments: %+v", c.PriceAssessments)
	}

	c.Genres[0].Multiplier = 99
	c.Platforms[0].Share = 0
	if GenreMultiplier("Phonk") != 1.15 || platformDistribution[0].Share != ReferencePlatformShare {
		t.Errorf("catalog must return copies of the static tables")
	}
}
