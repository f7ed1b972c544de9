package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/httpkit"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/filters"
	"real-estate-platform/services/properties-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

const maxPropertyBodyBytes = 1 << 20

type PropertyHandlers struct {
	findUC   usecases_port.FindPropertiesUseCase
	createUC usecases_port.CreatePropertyUseCase
	deleteUC usecases_port.DeletePropertyUseCase
}

func NewPropertyHandlers(findUC usecases_port.FindPropertiesUseCase,
	createUC usecases_port.CreatePropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase) *PropertyHandlers {
	return &PropertyHandlers{
		findUC:   findUC,
		createUC: createUC,
		deleteUC: deleteUC,
	}
}

// FindProperties обрабатывает GET /properties
func (h *PropertyHandlers) FindProperties(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler": "FindProperties",
	})

	properties, err := h.findUC.Execute(r.Context(), filters.FromQuery(r.URL.Query()))
	if err != nil {
		writeDomainError(w, handlerLogger, err)
		return
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	httpkit.RespondWithJSON(w, http.StatusOK, properties)
}

// CreateProperty обрабатывает POST /properties
func (h *PropertyHandlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler": "CreateProperty",
	})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPropertyBodyBytes))
	if err != nil {
		handlerLogger.Warn("Failed to read request body", logging.Fields{"error": err.Error()})
		httpkit.WriteErrorBody(w, http.StatusBadRequest, httpkit.ErrorBody{
			Error:  "Request body could not be read",
			Reason: "VALIDATION_FAILED",
		})
		return
	}

	property, err := h.createUC.Execute(r.Context(), json.RawMessage(body))
	if err != nil {
		writeDomainError(w, handlerLogger, err)
		return
	}
	httpkit.RespondWithJSON(w, http.StatusCreated, property)
}

// DeleteProperty обрабатывает DELETE /properties/{id}
func (h *PropertyHandlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(logging.Fields{
		"handler":     "DeleteProperty",
		"property_id": propertyID,
	})

	if err := h.deleteUC.Execute(r.Context(), propertyID); err != nil {
		writeDomainError(w, handlerLogger, err)
		return
	}
	httpkit.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}
