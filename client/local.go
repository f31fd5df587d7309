package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ougotti/simplenotebook/internal/model"
	"github.com/ougotti/simplenotebook/internal/validate"
)

// Storage keys, one flat file each, mirroring the browser-storage layout
// of the web frontend. The draft entries are transient scratch space for
// the note being written.
const (
	notesKey        = "notes.json"
	settingsKey     = "settings.json"
	draftTitleKey   = "draft-title"
	draftContentKey = "draft-content"
)

// LocalBackend implements the remote contract entirely on the local
// filesystem: no network, no authentication, one well-known file per
// storage key. Reads treat corrupt data as absent; writes replace the
// whole key atomically via rename.
type LocalBackend struct {
	dir string
}

// NewLocalBackend creates the storage directory and returns a backend
// over it.
func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &LocalBackend{dir: dir}, nil
}

func (b *LocalBackend) readNotes() []model.Note {
	data, err := os.ReadFile(filepath.Join(b.dir, notesKey))
	if err != nil {
		return nil
	}
	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		// Corrupt store reads as empty, never errors.
		return nil
	}
	return notes
}

func (b *LocalBackend) writeKey(key string, data []byte) error {
	path := filepath.Join(b.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (b *LocalBackend) writeNotes(notes []model.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}
	return b.writeKey(notesKey, data)
}

// ListNotes returns summaries in insertion order.
func (b *LocalBackend) ListNotes(_ context.Context) ([]model.NoteSummary, error) {
	notes := b.readNotes()
	summaries := make([]model.NoteSummary, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, note.Summary())
	}
	return summaries, nil
}

// GetNote returns the full note or ErrNotFound.
func (b *LocalBackend) GetNote(_ context.Context, id string) (model.Note, error) {
	for _, note := range b.readNotes() {
		if note.ID == id {
			return note, nil
		}
	}
	return model.Note{}, ErrNotFound
}

// CreateNote appends a new note with a generated id and fresh
// timestamps, applying the title default.
func (b *LocalBackend) CreateNote(_ context.Context, draft model.NoteDraft) (model.Note, error) {
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

	notes := append(b.readNotes(), note)
	if err := b.writeNotes(notes); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// UpdateNote merges the patch into the stored note, preserving id and
// CreatedAt and refreshing UpdatedAt. ErrNotFound when absent.
func (b *LocalBackend) UpdateNote(_ context.Context, id string, patch model.NotePatch) (model.Note, error) {
	notes := b.readNotes()
	for i, note := range notes {
		if note.ID != id {
			continue
		}
		if patch.Title != nil {
			note.Title = *patch.Title
		}
		if patch.Content != nil {
			note.Content = *patch.Content
		}
		note.UpdatedAt = time.Now().UTC()
		notes[i] = note
		if err := b.writeNotes(notes); err != nil {
			return model.Note{}, err
		}
		return note, nil
	}
	return model.Note{}, ErrNotFound
}

// DeleteNote removes the note; deleting an absent id succeeds.
func (b *LocalBackend) DeleteNote(_ context.Context, id string) error {
	notes := b.readNotes()
	kept := notes[:0]
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	return b.writeNotes(kept)
}

// GetUserSettings returns the stored settings or a synthesized default
// record when none exist.
func (b *LocalBackend) GetUserSettings(_ context.Context) (model.UserSettings, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, settingsKey))
	if err != nil {
		return model.DefaultUserSettings(time.Now().UTC()), nil
	}
	var settings model.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.DefaultUserSettings(time.Now().UTC()), nil
	}
	return settings, nil
}

// UpdateUserSettings validates the display name with the same rules the
// server applies, merges with the stored record preserving CreatedAt,
// and persists. Nothing is written when validation fails.
func (b *LocalBackend) UpdateUserSettings(ctx context.Context, patch model.SettingsPatch) (model.UserSettings, error) {
	if patch.DisplayName == nil {
		return model.UserSettings{}, &ValidationError{Message: model.ErrMissingDisplayName.Error(), Err: model.ErrMissingDisplayName}
	}

	name, err := validate.DisplayName(*patch.DisplayName)
	if err != nil {
		return model.UserSettings{}, &ValidationError{Message: err.Error(), Err: err}
	}

	now := time.Now().UTC()
	settings := model.UserSettings{
		DisplayName: name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing, err := b.GetUserSettings(ctx); err == nil && !existing.CreatedAt.IsZero() && existing.DisplayName != "" {
		settings.CreatedAt = existing.CreatedAt
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := b.writeKey(settingsKey, data); err != nil {
		return model.UserSettings{}, err
	}
	return settings, nil
}

// SaveDraft caches the in-progress note for recovery across sessions.
func (b *LocalBackend) SaveDraft(title, content string) error {
	if err := b.writeKey(draftTitleKey, []byte(title)); err != nil {
		return err
	}
	return b.writeKey(draftContentKey, []byte(content))
}

// LoadDraft returns the cached draft, reporting whether one exists.
func (b *LocalBackend) LoadDraft() (title, content string, ok bool) {
	titleData, titleErr := os.ReadFile(filepath.Join(b.dir, draftTitleKey))
	contentData, contentErr := os.ReadFile(filepath.Join(b.dir, draftContentKey))
	if titleErr != nil && contentErr != nil {
		return "", "", false
	}
	return string(titleData), string(contentData), true
}

// ClearDraft discards the cached draft.
func (b *LocalBackend) ClearDraft() error {
	for _, key := range []string{draftTitleKey, draftContentKey} {
		if err := os.Remove(filepath.Join(b.dir, key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
	}
	return nil
}
