package api

import (
	"net/http"

	"github.com/iammorganparry/bankdash/internal/dataset"
)

type HealthHandler struct {
	ds *dataset.Dataset
}

func NewHealthHandler(ds *dataset.Dataset) *HealthHandler {
	return &HealthHandler{ds: ds}
}

type healthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Records: h.ds.Len()})
}
