package handler

import (
	"context"
	"net/http"

	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
	"github.com/ougotti/simplenotebook/internal/validate"
)

// SettingsService defines business operations for user settings.
type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (model.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, patch model.SettingsPatch) (model.UserSettings, error)
}

// Settings handles HTTP endpoints for user settings.
type Settings struct {
	settingsService SettingsService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewSettings creates a new Settings handler.
func NewSettings(settingsService SettingsService, contextManager model.ContextManager, logger *logger.Logger) *Settings {
	return &Settings{
		settingsService: settingsService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type settingsResponse struct {
	Settings model.UserSettings `json:"settings"`
}

// Get returns the caller's settings, defaulted when never saved.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settings, err := h.settingsService.GetSettings(r.Context(), profile.Subject)
	if err != nil {
		h.logger.Error("get settings failed", "user_id", profile.Subject, "error", err.Error())
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, settingsResponse{Settings: settings})
}

// Update validates and stores the caller's settings.
func (h *Settings) Update(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch model.SettingsPatch
	if err := decodeBody(r, &patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), profile.Subject, patch)
	if err != nil {
		if !validate.IsValidationError(err) {
			h.logger.Error("update settings failed", "user_id", profile.Subject, "error", err.Error())
		}
		handleError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, settingsResponse{Settings: settings})
}
