package rest

import (
	"errors"
	"net/http"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/core/domain"
)

// writeDomainError переводит ошибку use case в HTTP-ответ
func writeDomainError(w http.ResponseWriter, logger logging.LoggerPort, err error) {
	var paramErr *domain.InvalidParameterError
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &paramErr):
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  paramErr.Error(),
			Reason: "INVALID_PARAMETER",
			Field:  paramErr.Field,
			Value:  paramErr.Value,
		})
	case errors.As(err, &validationErr):
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:   "Property payload failed validation",
			Reason:  "VALIDATION_FAILED",
			Details: validationErr.Details,
		})
	case errors.Is(err, domain.ErrNotFound):
		httpkit.WriteErrorBody(w, http.StatusNotFound, httpkit.ErrorBody{
			Error:  "Property not found",
			Reason: "NOT_FOUND",
		})
	default:
		// детали хранилища наружу не отдаем
		logger.Error("Request failed with internal error", err, nil)
		httpkit.WriteErrorBody(w, http.StatusInternalServerError, httpkit.ErrorBody{
			Error:  "Storage is unavailable",
			Reason: "STORAGE_UNAVAILABLE",
		})
	}
}
