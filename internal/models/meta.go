package models

type HomeResponse struct {
	Message string `json:"message"`
	Creator string `json:"creator"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// API Error response
type ErrorResponse struct {
	Error string `json:"error"`
}
