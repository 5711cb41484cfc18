// Package ui exposes the simulation service over a small JSON API.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gomonte/app"
	"gomonte/internal"
	"gomonte/internal/config"
)

// App represents the HTTP application
type App struct {
	router *chi.Mux
	runs   *app.RunService
	sim    config.SimulationConfig
	logger *internal.Logger
}

// NewApp creates the HTTP application around a run service
func NewApp(runs *app.RunService, sim config.SimulationConfig, logger *internal.Logger) *App {
	a := &App{
		router: chi.NewRouter(),
		runs:   runs,
		sim:    sim,
		logger: logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/scenarios", a.handleListScenarios)
		r.Post("/runs", a.handleCreateRun)
		r.Get("/runs", a.handleListRuns)
		r.Get("/runs/{id}", a.handleGetRun)
	})
}

// Router returns the configured router
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the given port
func (a *App) Serve(port string) error {
	a.logger.Info("listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
