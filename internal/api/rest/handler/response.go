package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body shape of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Header already sent, nothing useful to do with an encode error.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard error body with the given status. The
// message is the full client-visible detail; internals never leak here.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorResponse{Error: message})
}
