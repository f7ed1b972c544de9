package rest

import (
	"errors"
	"net/http"

	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"
)

// uploadErrorBody ответ 400 на загрузку, в которой не принят ни один файл
type uploadErrorBody struct {
	Error    string                `json:"error"`
	Reason   string                `json:"reason"`
	Rejected []domain.RejectedFile `json:"rejected"`
}

func writeDomainError(w http.ResponseWriter, logger logging.LoggerPort, err error) {
	var paramErr *domain.InvalidParameterError
	var tooMany *domain.TooManyFilesError
	var rejected *domain.RejectedFilesError

	switch {
	case errors.As(err, &paramErr):
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  "Invalid " + paramErr.Field,
			Reason: "INVALID_PARAMETER",
			Field:  paramErr.Field,
			Value:  paramErr.Value,
		})
	case errors.As(err, &tooMany):
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  tooMany.Error(),
			Reason: "TOO_MANY_FILES",
		})
	case errors.As(err, &rejected):
		httpkit.RespondWithJSON(w, http.StatusBadRequest, uploadErrorBody{
			Error:    "No valid image files were uploaded",
			Reason:   "NO_VALID_FILES",
			Rejected: rejected.Rejected,
		})
	case errors.Is(err, domain.ErrNoFiles):
		httpkit.RespondWithJSON(w, http.StatusBadRequest, uploadErrorBody{
			Error:    "No files were uploaded",
			Reason:   "NO_FILES",
			Rejected: []domain.RejectedFile{},
		})
	case errors.Is(err, domain.ErrNotFound):
		httpkit.WriteErrorBody(w, http.StatusNotFound, httpkit.ErrorBody{
			Error:  "Image not found",
			Reason: "NOT_FOUND",
		})
	default:
		logger.Error("Request failed with internal error", err, nil)
		httpkit.WriteErrorBody(w, http.StatusInternalServerError, httpkit.ErrorBody{
			Error:  "Storage is unavailable",
			Reason: "STORAGE_UNAVAILABLE",
		})
	}
}
