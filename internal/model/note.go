package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultNoteTitle is used when a note is created without a title.
const DefaultNoteTitle = "Untitled"

// Note is a single markdown note owned by one user.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary returns the list-view projection of the note, content omitted.
func (n Note) Summary() NoteSummary {
	return NoteSummary{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NoteSummary is the list-view projection of a note.
type NoteSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteDraft carries the caller-supplied fields for note creation.
// Empty fields fall back to DefaultNoteTitle and empty content.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotePatch carries a partial note update. Nil fields keep the stored
// value; ID and CreatedAt are never patchable.
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NewNoteID generates a note identifier unique per user. The millisecond
// timestamp keeps object-store listings roughly chronological; the random
// suffix keeps rapid successive calls collision-free.
func NewNoteID() string {
	return fmt.Sprintf("note-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
