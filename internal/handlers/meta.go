package handlers

import (
	"net/http"

	"probsolver-backend/internal/models"
)

const (
	serviceName    = "ProbSolver AI Backend"
	serviceCreator = "Naitik Khandelwal (NTK)"
	serviceVersion = "1.0"
)

func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HomeResponse{
		Message: serviceName,
		Creator: serviceCreator,
		Version: serviceVersion,
	})
}

// Health is a liveness probe; it never checks the provider.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy"})
}
