package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"track-roi/domain"
)

// ErrInvalidRequest wraps every boundary validation failure.
var ErrInvalidRequest = errors.New("invalid projection request")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// PrepareRequest fills defaults, canonicalizes names and validates a request
// before it reaches Compute.
func PrepareRequest(input domain.InvestmentRequest) (domain.InvestmentRequest, error) {
	req := normalizeRequest(input)
	if err := validateRequest(req); err != nil {
		return domain.InvestmentRequest{}, err
	}
	return req, nil
}

func normalizeRequest(input domain.InvestmentRequest) domain.InvestmentRequest {
	req := input
	req.Title = strings.TrimSpace(input.Title)

	req.Genre = strings.TrimSpace(input.Genre)
	if req.Genre == "" {
		req.Genre = defaultGenre
	} else if name, ok := canonicalGenre(req.Genre); ok {
		req.Genre = name
	}

	// nil significa que el campo no vino; una lista vacía es un error
	if input.Markets == nil {
		req.Markets = append([]string(nil), defaultMarkets...)
	} else {
		req.Markets = make([]string, 0, len(input.Markets))
		seen := make(map[string]bool, len(input.Markets))
		for _, m := range input.Markets {
			code := strings.ToUpper(strings.TrimSpace(m))
			if seen[code] {
				continue
			}
			seen[code] = true
			req.Markets = append(req.Markets, code)
		}
	}

	if strings.TrimSpace(string(input.Scenario)) == "" {
		req.Scenario = domain.ScenarioStable
	} else {
		req.Scenario, _ = ResolveScenario(string(input.Scenario))
	}

	return req
}

func validateRequest(req domain.InvestmentRequest) error {
	if math.IsNaN(req.Investment) || math.IsInf(req.Investment, 0) {
		return invalid("investment must be a finite number")
	}
	if req.Investment < 0 {
		return invalid("investment must not be negative")
	}
	if req.Investment > MaxInvestment {
		return invalid("investment exceeds the maximum of %.0f", MaxInvestment)
	}
	if req.DailyStreams < 0 {
		return invalid("daily streams must not be negative")
	}
	if req.DailyStreams > MaxDailyStreams {
		return invalid("daily streams exceed the maximum of %d", MaxDailyStreams)
	}
	if len(req.Markets) == 0 {
		return invalid("at least one market must be selected")
	}
	if len(req.Markets) > MaxMarketsPerRequest {
		return invalid("number of markets exceeds the maximum of %d", MaxMarketsPerRequest)
	}
	for _, code := range req.Markets {
		if !isCountryCode(code) {
			return invalid("market %q is not a two-letter country code", code)
		}
	}
	if _, ok := scenarioParams(req.Scenario); !ok {
		return invalid("unknown scenario %q", req.Scenario)
	}
	if len(req.Title) > MaxTitleLength {
		return invalid("title exceeds the maximum of %d characters", MaxTitleLength)
	}
	return nil
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
