package client

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ougotti/simplenotebook/internal/model"
)

// Facade is the single entry point for note and settings persistence.
// The first call loads the runtime configuration exactly once, decides
// between local and remote mode, and caches the choice for the life of
// the process.
type Facade struct {
	loader     ConfigLoader
	dataDir    string
	httpClient *http.Client

	token *tokenHolder

	once      sync.Once
	initErr   error
	backend   Backend
	local     *LocalBackend
	localMode bool
}

// Option configures a Facade.
type Option func(*Facade)

// WithDataDir overrides where local-mode data and drafts are kept.
func WithDataDir(dir string) Option {
	return func(f *Facade) { f.dataDir = dir }
}

// WithHTTPClient overrides the HTTP client used for remote calls.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Facade) { f.httpClient = c }
}

// New creates a Facade that loads its configuration through loader on
// first use.
func New(loader ConfigLoader, opts ...Option) *Facade {
	f := &Facade{
		loader: loader,
		token:  &tokenHolder{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.dataDir == "" {
		f.dataDir = defaultDataDir()
	}
	return f
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "simplenotebook")
}

// SetBearerToken stores the credential attached to remote calls. An
// empty string clears it. Safe to call before initialization.
func (f *Facade) SetBearerToken(token string) {
	f.token.set(token)
}

// ensureInitialized performs the one-time configuration fetch and
// backend selection. Concurrent first calls block on the same result.
func (f *Facade) ensureInitialized(ctx context.Context) error {
	f.once.Do(func() {
		local, err := NewLocalBackend(f.dataDir)
		if err != nil {
			f.initErr = err
			return
		}
		f.local = local

		cfg, err := f.loader.Load(ctx)
		if err != nil {
			f.initErr = err
			return
		}

		if IsLocalMode(cfg) {
			f.localMode = true
			f.backend = local
			return
		}
		f.backend = NewRemoteBackend(cfg.APIBaseURL, f.token, f.httpClient)
	})
	return f.initErr
}

// LocalMode reports whether the façade ended up in local mode,
// initializing it if needed.
func (f *Facade) LocalMode(ctx context.Context) (bool, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return false, err
	}
	return f.localMode, nil
}

// ListNotes returns summaries of all notes in backend-defined order.
func (f *Facade) ListNotes(ctx context.Context) ([]model.NoteSummary, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	return f.backend.ListNotes(ctx)
}

// GetNote returns one full note or ErrNotFound.
func (f *Facade) GetNote(ctx context.Context, id string) (model.Note, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return model.Note{}, err
	}
	return f.backend.GetNote(ctx, id)
}

// CreateNote persists a new note and discards any recovered draft.
func (f *Facade) CreateNote(ctx context.Context, draft model.NoteDraft) (model.Note, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return model.Note{}, err
	}
	note, err := f.backend.CreateNote(ctx, draft)
	if err != nil {
		return model.Note{}, err
	}
	// Draft served its purpose once the note is stored.
	_ = f.local.ClearDraft()
	return note, nil
}

// UpdateNote merges the patch into an existing note.
func (f *Facade) UpdateNote(ctx context.Context, id string, patch model.NotePatch) (model.Note, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return model.Note{}, err
	}
	return f.backend.UpdateNote(ctx, id, patch)
}

// DeleteNote removes a note.
func (f *Facade) DeleteNote(ctx context.Context, id string) error {
	if err := f.ensureInitialized(ctx); err != nil {
		return err
	}
	return f.backend.DeleteNote(ctx, id)
}

// GetUserSettings returns the stored settings or a default record.
func (f *Facade) GetUserSettings(ctx context.Context) (model.UserSettings, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return model.UserSettings{}, err
	}
	return f.backend.GetUserSettings(ctx)
}

// UpdateUserSettings validates and stores the settings record.
func (f *Facade) UpdateUserSettings(ctx context.Context, patch model.SettingsPatch) (model.UserSettings, error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return model.UserSettings{}, err
	}
	return f.backend.UpdateUserSettings(ctx, patch)
}

// SaveDraft caches the in-progress note locally, regardless of mode.
func (f *Facade) SaveDraft(ctx context.Context, title, content string) error {
	if err := f.ensureInitialized(ctx); err != nil {
		return err
	}
	return f.local.SaveDraft(title, content)
}

// LoadDraft returns the cached draft, reporting whether one exists.
func (f *Facade) LoadDraft(ctx context.Context) (title, content string, ok bool, err error) {
	if err := f.ensureInitialized(ctx); err != nil {
		return "", "", false, err
	}
	title, content, ok = f.local.LoadDraft()
	return title, content, ok, nil
}

// ClearDraft discards the cached draft.
func (f *Facade) ClearDraft(ctx context.Context) error {
	if err := f.ensureInitialized(ctx); err != nil {
		return err
	}
	return f.local.ClearDraft()
}
