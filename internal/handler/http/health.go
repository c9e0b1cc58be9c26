package http

import (
	"net/http"

	"github.com/MKhiriev/linkboard/internal/utils"
	"github.com/MKhiriev/linkboard/models"
)

// healthz reports liveness. The "ok!" literal is part of the public contract.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok!"}, http.StatusOK)
}
