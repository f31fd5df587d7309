package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
	"github.com/ougotti/simplenotebook/internal/validate"
)

// Settings executes user-settings operations against the object store.
// The settings document shares the user's note prefix.
type Settings struct {
	storage model.Storage
	prefix  string
	logger  *logger.Logger
}

// NewSettings creates a Settings service. prefix is the environment
// namespace, e.g. "prod/".
func NewSettings(storage model.Storage, prefix string, logger *logger.Logger) *Settings {
	return &Settings{
		storage: storage,
		prefix:  prefix,
		logger:  logger,
	}
}

func (s *Settings) settingsKey(userID string) string {
	return s.prefix + sanitizeKeyPart(userID) + "/" + settingsObject
}

// GetSettings returns the stored settings, or a synthesized default
// record when the user has never saved any. The default is not
// persisted; the record only reaches storage on the first update.
func (s *Settings) GetSettings(ctx context.Context, userID string) (model.UserSettings, error) {
	data, err := s.storage.Download(ctx, s.settingsKey(userID))
	if errors.Is(err, model.ErrNotFound) {
		return model.DefaultUserSettings(time.Now().UTC()), nil
	}
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("failed to download settings: %w", err)
	}

	var settings model.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.UserSettings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return settings, nil
}

// UpdateSettings validates the display name with the authoritative rules
// and writes the merged record. CreatedAt survives from the stored
// record; first write stamps it. Nothing is written when validation
// fails.
//
// Like note updates, this is uncoordinated read-merge-write; the last
// writer wins.
func (s *Settings) UpdateSettings(ctx context.Context, userID string, patch model.SettingsPatch) (model.UserSettings, error) {
	if patch.DisplayName == nil {
		return model.UserSettings{}, model.ErrMissingDisplayName
	}

	name, err := validate.DisplayName(*patch.DisplayName)
	if err != nil {
		return model.UserSettings{}, err
	}

	now := time.Now().UTC()
	settings := model.UserSettings{
		DisplayName: name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	key := s.settingsKey(userID)
	data, err := s.storage.Download(ctx, key)
	switch {
	case errors.Is(err, model.ErrNotFound):
		// First write, CreatedAt stays fresh.
	case err != nil:
		return model.UserSettings{}, fmt.Errorf("failed to download settings: %w", err)
	default:
		var existing model.UserSettings
		if err := json.Unmarshal(data, &existing); err != nil {
			s.logger.Warn("overwriting unreadable settings object", "key", key, "error", err)
		} else if !existing.CreatedAt.IsZero() {
			settings.CreatedAt = existing.CreatedAt
		}
	}

	out, err := json.Marshal(settings)
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := s.storage.Upload(ctx, key, out); err != nil {
		return model.UserSettings{}, fmt.Errorf("failed to store settings: %w", err)
	}

	return settings, nil
}
