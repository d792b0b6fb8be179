// Package res writes the JSON bodies the API responds with. Success
// payloads go out as-is; failures share the single {"error": msg} shape the
// clients key on.
package res

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, body any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// JSON writes data as the response body with the given status code.
func JSON(w http.ResponseWriter, data any, statusCode int) {
	write(w, data, statusCode)
}

// Error writes the error envelope with the given status code.
func Error(w http.ResponseWriter, msg string, statusCode int) {
	write(w, map[string]string{"error": msg}, statusCode)
}
