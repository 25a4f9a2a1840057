package service

import (
	"fmt"
	"strings"

	"track-roi/domain"
	"track-roi/logger"
)

type ProjectionService struct{}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService() *ProjectionService {
	return &ProjectionService{}
}

// Project validates the request and computes its 36-month projection.
func (s *ProjectionService) Project(
	input domain.InvestmentRequest,
) (domain.ProjectionResult, error) {

	req, err := PrepareRequest(input)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	result := Compute(req)

	breakEven := "never"
	if result.BreakEvenMonth != nil {
		breakEven = fmt.Sprintf("month %d", *result.BreakEvenMonth)
	}
	logger.Info("Projection computed (genre=%s, scenario=%s, markets=%s, break_even=%s, roi=%.1f%%, assessment=%s)",
		req.Genre,
		req.Scenario,
		strings.Join(req.Markets, ","),
		breakEven,
		result.FinalROI,
		result.PriceAssessment,
	)

	return result, nil
}

// Catalog returns the static reference tables.
func (s *ProjectionService) Catalog() domain.Catalog {
	return Catalog()
}
