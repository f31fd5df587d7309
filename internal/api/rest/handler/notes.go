package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
)

// NoteService defines business operations for note management.
type NoteService interface {
	ListNotes(ctx context.Context, userID string) ([]model.NoteSummary, error)
	CreateNote(ctx context.Context, userID string, draft model.NoteDraft) (model.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, patch model.NotePatch) (model.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// Notes handles HTTP endpoints for notes.
type Notes struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNotes creates a new Notes handler.
func NewNotes(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Notes {
	return &Notes{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type notesListResponse struct {
	Notes []model.NoteSummary `json:"notes"`
}

type noteResponse struct {
	Note model.Note `json:"note"`
}

// List returns summaries of all the caller's notes.
func (h *Notes) List(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := h.noteService.ListNotes(r.Context(), profile.Subject)
	if err != nil {
		h.logger.Error("list notes failed", "user_id", profile.Subject, "error", err.Error())
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, notesListResponse{Notes: summaries})
}

// Create stores a new note from the request body.
func (h *Notes) Create(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var draft model.NoteDraft
	if err := decodeBody(r, &draft); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), profile.Subject, draft)
	if err != nil {
		h.logger.Error("create note failed", "user_id", profile.Subject, "error", err.Error())
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, noteResponse{Note: note})
}

// Get returns one full note.
func (h *Notes) Get(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	note, err := h.noteService.GetNote(r.Context(), profile.Subject, noteID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			h.logger.Error("get note failed", "user_id", profile.Subject, "note_id", noteID, "error", err.Error())
		}
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, noteResponse{Note: note})
}

// Update merges the request body into an existing note.
func (h *Notes) Update(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch model.NotePatch
	if err := decodeBody(r, &patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	note, err := h.noteService.UpdateNote(r.Context(), profile.Subject, noteID, patch)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			h.logger.Error("update note failed", "user_id", profile.Subject, "note_id", noteID, "error", err.Error())
		}
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, noteResponse{Note: note})
}

// Delete removes a note and answers 204 regardless of prior existence.
func (h *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	noteID := chi.URLParam(r, "noteID")
	if err := h.noteService.DeleteNote(r.Context(), profile.Subject, noteID); err != nil {
		h.logger.Error("delete note failed", "user_id", profile.Subject, "note_id", noteID, "error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody parses a JSON request body. An empty body decodes into the
// zero value, matching clients that send partial or no payloads.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
