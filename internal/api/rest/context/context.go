// Package context carries the authenticated caller through HTTP request
// contexts.
package context

import (
	"context"

	"github.com/ougotti/simplenotebook/internal/identity"
)

type ctxKey int

const userKey ctxKey = iota

// Manager implements model.ContextManager over request context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the caller's profile.
func (m *Manager) SetUserToContext(ctx context.Context, profile identity.Profile) context.Context {
	return context.WithValue(ctx, userKey, profile)
}

// GetUserFromContext retrieves the caller's profile, reporting whether
// one was set.
func (m *Manager) GetUserFromContext(ctx context.Context) (identity.Profile, bool) {
	profile, ok := ctx.Value(userKey).(identity.Profile)
	if !ok || profile.Subject == "" {
		return identity.Profile{}, false
	}
	return profile, true
}
