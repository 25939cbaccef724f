// Package router sets up all HTTP routes and middleware chains for the
// webbuilder API. Routes are organized into open auth endpoints and
// session-protected groups.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"webbuilder/internal/handlers"
	"webbuilder/internal/middleware"
	"webbuilder/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, projects *handlers.Projects, export *handlers.Export, credits *handlers.Credits) chi.Router {
	r := chi.NewRouter()

	// Credential guessing and paid exports get separate per-IP limits so
	// an export burst cannot lock a user out of logging in.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	exportLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints — accessible without a session.
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter.Middleware).Post("/register", auth.Register)
			r.With(authLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)

			// 2FA verify needs a session but not a completed code — it IS
			// the completion step. Setup requires a fully open session.
			r.Post("/2fa/verify", auth.TwoFAVerify)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/2fa/setup", auth.TwoFASetup)
				r.Get("/me", auth.Me)
			})
		})

		// Everything below requires a fully authenticated session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projects.List)
				r.Post("/", projects.Create)
				r.Get("/{projectID}", projects.Get)
				r.Put("/{projectID}", projects.Update)
				r.Delete("/{projectID}", projects.Delete)
			})

			r.Route("/export", func(r chi.Router) {
				r.With(exportLimiter.Middleware).Post("/{projectID}", export.Download)
				r.Get("/preview/{projectID}", export.Preview)
				r.Get("/history", export.History)
			})

			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", credits.Balance)
				r.Get("/history", credits.History)
				r.Get("/packages", credits.Packages)
				r.Post("/purchase", credits.Purchase)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
