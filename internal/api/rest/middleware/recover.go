package middleware

import (
	"net/http"

	"github.com/ougotti/simplenotebook/internal/api/rest/handler"
	"github.com/ougotti/simplenotebook/internal/logger"
)

// Recover catches panics escaping any handler and turns them into the
// generic 500 response, keeping internal detail out of the body.
type Recover struct {
	logger *logger.Logger
}

// NewRecover creates a new Recover middleware.
func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

// Handle wraps next with panic recovery.
func (m *Recover) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.logger.Error("panic while serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec)
				handler.WriteError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
