package model

import (
	"context"

	"github.com/ougotti/simplenotebook/internal/identity"
)

// ContextManager moves the authenticated caller's identity between
// request contexts.
type ContextManager interface {
	SetUserToContext(ctx context.Context, profile identity.Profile) context.Context
	GetUserFromContext(ctx context.Context) (identity.Profile, bool)
}
