package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/ougotti/simplenotebook/internal/model"
)

// tokenHolder shares the bearer credential between the façade and the
// remote backend. Safe for concurrent set and read.
type tokenHolder struct {
	mu    sync.RWMutex
	token string
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *tokenHolder) get() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RemoteBackend talks to the hosted notes API, attaching the bearer
// credential to every request and normalizing HTTP failures into the
// client error taxonomy.
type RemoteBackend struct {
	baseURL    string
	token      *tokenHolder
	httpClient *http.Client
}

// NewRemoteBackend creates a backend for the API rooted at baseURL.
func NewRemoteBackend(baseURL string, token *tokenHolder, httpClient *http.Client) *RemoteBackend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteBackend{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// do issues one API request and decodes the response envelope into out
// when out is non-nil. Response statuses map onto the error taxonomy;
// transport failures come back as NetworkError.
func (b *RemoteBackend) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := b.token.get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return &ValidationError{Message: decodeErrorMessage(resp)}
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: api request failed: %s", ErrServer, resp.Status)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return resp.Status
	}
	return body.Error
}

type notesListEnvelope struct {
	Notes []model.NoteSummary `json:"notes"`
}

type noteEnvelope struct {
	Note model.Note `json:"note"`
}

type settingsEnvelope struct {
	Settings model.UserSettings `json:"settings"`
}

// ListNotes returns summaries in the order the API lists them; the
// object store does not guarantee a sort.
func (b *RemoteBackend) ListNotes(ctx context.Context) ([]model.NoteSummary, error) {
	var env notesListEnvelope
	if err := b.do(ctx, http.MethodGet, "/notes", nil, &env); err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// GetNote fetches one full note.
func (b *RemoteBackend) GetNote(ctx context.Context, id string) (model.Note, error) {
	var env noteEnvelope
	if err := b.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &env); err != nil {
		return model.Note{}, err
	}
	return env.Note, nil
}

// CreateNote stores a new note server-side.
func (b *RemoteBackend) CreateNote(ctx context.Context, draft model.NoteDraft) (model.Note, error) {
	var env noteEnvelope
	if err := b.do(ctx, http.MethodPost, "/notes", draft, &env); err != nil {
		return model.Note{}, err
	}
	return env.Note, nil
}

// UpdateNote merges the patch server-side.
func (b *RemoteBackend) UpdateNote(ctx context.Context, id string, patch model.NotePatch) (model.Note, error) {
	var env noteEnvelope
	if err := b.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), patch, &env); err != nil {
		return model.Note{}, err
	}
	return env.Note, nil
}

// DeleteNote removes the note server-side.
func (b *RemoteBackend) DeleteNote(ctx context.Context, id string) error {
	return b.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// GetUserSettings fetches the caller's settings record.
func (b *RemoteBackend) GetUserSettings(ctx context.Context) (model.UserSettings, error) {
	var env settingsEnvelope
	if err := b.do(ctx, http.MethodGet, "/users/me/settings", nil, &env); err != nil {
		return model.UserSettings{}, err
	}
	return env.Settings, nil
}

// UpdateUserSettings stores the caller's settings record. The server
// performs the authoritative display-name validation.
func (b *RemoteBackend) UpdateUserSettings(ctx context.Context, patch model.SettingsPatch) (model.UserSettings, error) {
	var env settingsEnvelope
	if err := b.do(ctx, http.MethodPut, "/users/me/settings", patch, &env); err != nil {
		return model.UserSettings{}, err
	}
	return env.Settings, nil
}
