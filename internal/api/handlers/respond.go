package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// respondWithAppError maps the error taxonomy onto status codes: caller
// mistakes are 4xx, provider failures are 502 so clients can tell them
// apart from bugs on our side.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
