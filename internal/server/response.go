package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fine-reconciliation/internal/domain"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps the error taxonomy onto HTTP statuses: local validation
// failures are the client's fault, remote failures are a bad gateway with
// the upstream message passed through.
func writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		jsonError(w, http.StatusBadRequest, validation.Error())
		return
	}
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		jsonError(w, http.StatusBadGateway, remote.Message)
		return
	}
	jsonError(w, http.StatusInternalServerError, "internal error")
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
