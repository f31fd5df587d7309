package middleware

import (
	"net/http"
	"strings"

	"github.com/ougotti/simplenotebook/internal/api/rest/handler"
	"github.com/ougotti/simplenotebook/internal/identity"
	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
)

// TokenVerifier resolves a caller profile from bearer tokens.
type TokenVerifier interface {
	ParseAccessToken(tokenString string) (identity.Profile, error)
}

// Authenticate validates bearer tokens and injects the caller's profile
// into the request context. Requests without a valid subject claim are
// rejected before any routing or storage access.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps next with bearer-token authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			handler.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		profile, err := m.tokens.ParseAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("rejected bearer token", "error", err.Error())
			handler.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}
