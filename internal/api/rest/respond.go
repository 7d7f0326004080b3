package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/security"
	"edufleet-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the service error taxonomy onto HTTP status codes.
// 402 for a failed balance check keeps the payment-required semantics
// distinct from plain conflicts.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
