package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

// ValidationResponse carries every violation found in a request so the
// caller can show all of them at once.
type ValidationResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}

func RespondWithValidationErrors(w http.ResponseWriter, message string, errs []string) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationResponse{
		Message: message,
		Errors:  errs,
	})
}
