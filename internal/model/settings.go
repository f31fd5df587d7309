package model

import "time"

// UserSettings stores per-user preferences, currently the display name.
// CreatedAt is set on the first write and preserved by every later one.
type UserSettings struct {
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SettingsPatch carries a partial settings update. The remote contract
// requires DisplayName to be present.
type SettingsPatch struct {
	DisplayName *string `json:"displayName"`
}

// DefaultUserSettings returns the record served when a user has never
// saved settings. It is synthesized, not persisted.
func DefaultUserSettings(now time.Time) UserSettings {
	return UserSettings{CreatedAt: now, UpdatedAt: now}
}
