package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// AppConfig is the runtime configuration document published alongside
// the frontend. Placeholder values mean no backend was provisioned.
type AppConfig struct {
	APIBaseURL     string `json:"apiBaseUrl"`
	CognitoDomain  string `json:"cognitoDomain"`
	ClientID       string `json:"clientId"`
	UserPoolID     string `json:"userPoolId"`
	IdentityPoolID string `json:"identityPoolId"`
	Region         string `json:"region"`
	NotesBucket    string `json:"notesBucket"`
	NotesPrefix    string `json:"notesPrefix"`
}

// placeholderMarkers are the tokens deployment scaffolding leaves in an
// unconfigured document.
var placeholderMarkers = []string{
	"your-api-id",
	"your-domain",
	"your-client-id",
	"PLACEHOLDER",
}

// IsLocalMode reports whether the configuration selects local mode:
// a missing config, or a placeholder marker (or emptiness) in any of the
// endpoint and identity-provider fields.
func IsLocalMode(cfg *AppConfig) bool {
	if cfg == nil {
		return true
	}
	for _, field := range []string{cfg.APIBaseURL, cfg.CognitoDomain, cfg.ClientID} {
		if field == "" {
			return true
		}
		for _, marker := range placeholderMarkers {
			if strings.Contains(field, marker) {
				return true
			}
		}
	}
	return false
}

// ConfigLoader fetches the runtime configuration document. Returning a
// nil config without error means no configuration exists, which selects
// local mode.
type ConfigLoader interface {
	Load(ctx context.Context) (*AppConfig, error)
}

// FileConfigLoader reads the configuration from a local JSON file.
// A missing file is not an error; it selects local mode.
type FileConfigLoader struct {
	Path string
}

// Load implements ConfigLoader.
func (l FileConfigLoader) Load(_ context.Context) (*AppConfig, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// HTTPConfigLoader fetches the configuration from a URL, typically the
// config.json deployed next to the frontend. A 404 is not an error; it
// selects local mode.
type HTTPConfigLoader struct {
	URL    string
	Client *http.Client
}

// Load implements ConfigLoader.
func (l HTTPConfigLoader) Load(ctx context.Context) (*AppConfig, error) {
	httpClient := l.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build config request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load config: %s", resp.Status)
	}

	var cfg AppConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
