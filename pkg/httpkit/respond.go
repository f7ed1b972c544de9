package httpkit

import (
	"encoding/json"
	"net/http"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Error   string   `json:"error"`
	Reason  string   `json:"reason,omitempty"`
	Field   string   `json:"field,omitempty"`
	Value   string   `json:"value,omitempty"`
	Details []string `json:"details,omitempty"`
}

// WriteJSONError отправляет ответ {"error": message}
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorBody{Error: message})
}

// WriteErrorBody отправляет развернутое описание ошибки
func WriteErrorBody(w http.ResponseWriter, statusCode int, body ErrorBody) {
	RespondWithJSON(w, statusCode, body)
}

// RespondWithJSON сериализует payload и отправляет его с заданным статусом
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}
