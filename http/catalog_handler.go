package http

import (
	"net/http"

	"track-roi/service"
)

type CatalogHandler struct {
	service *service.ProjectionService
}

func NewCatalogHandler(service *service.ProjectionService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Catalog())
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
