package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
)

// Notes executes note operations for one user at a time against the
// object store. Every key lives under <prefix><sanitizedUserID>/.
type Notes struct {
	storage model.Storage
	prefix  string
	logger  *logger.Logger
}

// NewNotes creates a Notes service. prefix is the environment namespace,
// e.g. "prod/".
func NewNotes(storage model.Storage, prefix string, logger *logger.Logger) *Notes {
	return &Notes{
		storage: storage,
		prefix:  prefix,
		logger:  logger,
	}
}

func (s *Notes) userPrefix(userID string) string {
	return s.prefix + sanitizeKeyPart(userID) + "/"
}

func (s *Notes) noteKey(userID, noteID string) string {
	return s.userPrefix(userID) + sanitizeKeyPart(noteID) + ".json"
}

// ListNotes enumerates the user's notes and returns their summaries in
// storage listing order. Content is not part of the list view.
func (s *Notes) ListNotes(ctx context.Context, userID string) ([]model.NoteSummary, error) {
	prefix := s.userPrefix(userID)
	keys, err := s.storage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list note objects: %w", err)
	}

	summaries := make([]model.NoteSummary, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimPrefix(key, prefix)
		if name == settingsObject || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := s.storage.Download(ctx, key)
		if errors.Is(err, model.ErrNotFound) {
			// Deleted between listing and fetch.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to download note object: %w", err)
		}

		var note model.Note
		if err := json.Unmarshal(data, &note); err != nil {
			s.logger.Warn("skipping unreadable note object", "key", key, "error", err)
			continue
		}

		note.ID = strings.TrimSuffix(name, ".json")
		summaries = append(summaries, note.Summary())
	}

	return summaries, nil
}

// CreateNote persists a new note with a generated id and fresh
// timestamps. Missing title falls back to the default; missing content
// stays empty. CreatedAt equals UpdatedAt on the stored note.
func (s *Notes) CreateNote(ctx context.Context, userID string, draft model.NoteDraft) (model.Note, error) {
	now := time.Now().UTC()
	note := model.Note{
		ID:        model.NewNoteID(),
		Title:     draft.Title,
		Content:   draft.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if note.Title == "" {
		note.Title = model.DefaultNoteTitle
	}

	data, err := json.Marshal(note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to marshal note: %w", err)
	}

	if err := s.storage.Upload(ctx, s.noteKey(userID, note.ID), data); err != nil {
		return model.Note{}, fmt.Errorf("failed to store note: %w", err)
	}

	return note, nil
}

// GetNote fetches a full note. Returns model.ErrNotFound when absent.
func (s *Notes) GetNote(ctx context.Context, userID, noteID string) (model.Note, error) {
	data, err := s.storage.Download(ctx, s.noteKey(userID, noteID))
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, model.ErrNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to download note: %w", err)
	}

	var note model.Note
	if err := json.Unmarshal(data, &note); err != nil {
		return model.Note{}, fmt.Errorf("failed to unmarshal note: %w", err)
	}

	return note, nil
}

// UpdateNote overlays the patch on the stored note and writes it back.
// ID and CreatedAt are preserved, UpdatedAt is refreshed. Returns
// model.ErrNotFound when the note does not exist.
//
// The read-merge-write sequence runs without coordination; concurrent
// updates to the same note race and the last write wins.
func (s *Notes) UpdateNote(ctx context.Context, userID, noteID string, patch model.NotePatch) (model.Note, error) {
	note, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return model.Note{}, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	note.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to marshal note: %w", err)
	}

	if err := s.storage.Upload(ctx, s.noteKey(userID, noteID), data); err != nil {
		return model.Note{}, fmt.Errorf("failed to store note: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note. Deleting an absent note succeeds.
func (s *Notes) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.storage.Delete(ctx, s.noteKey(userID, noteID)); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
