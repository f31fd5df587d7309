// Package router assembles the HTTP surface: the notes and settings
// resources behind bearer authentication, with CORS, logging, and panic
// recovery applied to everything.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ougotti/simplenotebook/internal/api/rest/handler"
	"github.com/ougotti/simplenotebook/internal/api/rest/middleware"
	"github.com/ougotti/simplenotebook/internal/logger"
	"github.com/ougotti/simplenotebook/internal/model"
)

// Router builds the HTTP handler for the notes API.
type Router struct {
	noteService     handler.NoteService
	settingsService handler.SettingsService
	tokens          middleware.TokenVerifier
	contextManager  model.ContextManager
	allowedOrigin   string
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	noteService handler.NoteService,
	settingsService handler.SettingsService,
	tokens middleware.TokenVerifier,
	contextManager model.ContextManager,
	allowedOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		noteService:     noteService,
		settingsService: settingsService,
		tokens:          tokens,
		contextManager:  contextManager,
		allowedOrigin:   allowedOrigin,
		logger:          logger,
	}
}

// Register wires middleware and routes and returns the root handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecover(r.logger)
	cors := middleware.NewCORS(r.allowedOrigin)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	notes := handler.NewNotes(r.noteService, r.contextManager, r.logger)
	settings := handler.NewSettings(r.settingsService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(recovery.Handle)
	mux.Use(cors.Handle)

	// Anything outside the published method/resource set is 405.
	methodNotAllowed := func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
	mux.MethodNotAllowed(methodNotAllowed)
	mux.NotFound(methodNotAllowed)

	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)

		protected.Route("/notes", func(rt chi.Router) {
			rt.Get("/", notes.List)
			rt.Post("/", notes.Create)
			rt.Get("/{noteID}", notes.Get)
			rt.Put("/{noteID}", notes.Update)
			rt.Delete("/{noteID}", notes.Delete)
		})

		protected.Route("/users/me/settings", func(rt chi.Router) {
			rt.Get("/", settings.Get)
			rt.Put("/", settings.Update)
		})
	})

	return mux
}
