package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status. When data
// cannot be marshaled nothing but a plain 500 reaches the client.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WritePrivateJSON answers 200 with a body that depends on the caller's
// session or identity, so shared caches must not keep it.
func WritePrivateJSON(w http.ResponseWriter, data any) (int, error) {
	w.Header().Set("Cache-Control", "no-store")
	return WriteJSON(w, data, http.StatusOK)
}
