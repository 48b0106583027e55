package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"probsolver-backend/internal/models"
	"probsolver-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError is the single place where failures become HTTP responses.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	var providerErr *services.ProviderError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp(validationErr.Message))
	case errors.As(err, &providerErr):
		log.Printf("Gemini API error [%s]: %v", r.Header.Get("X-Request-ID"), providerErr.Err)
		writeJSON(w, http.StatusInternalServerError, errorResp(providerErr.Error()))
	default:
		log.Printf("Chat error [%s]: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, errorResp(err.Error()))
	}
}

// NotFound and MethodNotAllowed keep unknown routes on the JSON envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResp("Not found"))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed"))
}
