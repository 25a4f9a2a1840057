package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"track-roi/domain"
	"track-roi/logger"
	"track-roi/service"
)

const maxRequestBodyBytes = 1 << 20

type CalculateResponse struct {
	CalculationID string                  `json:"calculation_id"`
	Result        domain.ProjectionResult `json:"result"`
}

type ProjectionHandler struct {
	service *service.ProjectionService
	newID   func() string
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service, newID: uuid.NewString}
}

func (h *ProjectionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.InvestmentRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		logger.Debug("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Project(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			logger.Debug("Rejected projection request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("Error computing projection: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	id := h.newID()
	logger.Debug("Calculation %s served for request %s", id, middleware.GetReqID(r.Context()))

	writeJSON(w, http.StatusOK, CalculateResponse{
		CalculationID: id,
		Result:        result,
	})
}
