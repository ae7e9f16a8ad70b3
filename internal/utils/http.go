package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackErrorBody is written when data cannot be marshaled, so that every
// response of the API stays JSON.
const fallbackErrorBody = `{"error":"error writing data to JSON"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error and a JSON
// error body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.PasswordResponse{Password: p}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
