package handler

import (
	"errors"
	"net/http"

	"github.com/ougotti/simplenotebook/internal/model"
	"github.com/ougotti/simplenotebook/internal/validate"
)

// handleError maps service errors onto HTTP responses. Display-name
// validation messages are surfaced verbatim; everything unrecognized
// collapses into a generic 500.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, model.ErrMissingDisplayName):
		WriteError(w, http.StatusBadRequest, model.ErrMissingDisplayName.Error())
	case validate.IsValidationError(err):
		WriteError(w, http.StatusBadRequest, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
