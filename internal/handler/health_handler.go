package handler

import (
	"context"
	"net/http"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

const serviceName = "voice-translator"

type pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	body := model.HealthResponse{Status: "healthy", Service: serviceName, Database: "up"}

	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			body.Status = "degraded"
			body.Database = "down"
			writeJSON(w, http.StatusServiceUnavailable, body)
			return
		}
	}

	writeJSON(w, http.StatusOK, body)
}
