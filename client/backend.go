// Package client is the persistence façade the UI talks to. It hides
// whether notes live in a hosted object-store API or in flat files on
// the local machine: the mode is decided once, from the runtime
// configuration, and callers never branch on it.
package client

import (
	"context"

	"github.com/ougotti/simplenotebook/internal/model"
)

// Backend is the storage strategy behind the façade. Exactly one
// variant, local or remote, is selected at initialization and used for
// every call afterwards.
type Backend interface {
	ListNotes(ctx context.Context) ([]model.NoteSummary, error)
	GetNote(ctx context.Context, id string) (model.Note, error)
	CreateNote(ctx context.Context, draft model.NoteDraft) (model.Note, error)
	UpdateNote(ctx context.Context, id string, patch model.NotePatch) (model.Note, error)
	DeleteNote(ctx context.Context, id string) error
	GetUserSettings(ctx context.Context) (model.UserSettings, error)
	UpdateUserSettings(ctx context.Context, patch model.SettingsPatch) (model.UserSettings, error)
}
