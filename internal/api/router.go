package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"gonum.org/v1/plot/vg"

	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/view"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	ds *dataset.Dataset,
	layout view.Layout,
	figureWidth, figureHeight vg.Length,
	debug bool,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	healthH := NewHealthHandler(ds)
	dashboardH := NewDashboardHandler(layout, logger)
	figureH := NewFigureHandler(ds, figureWidth, figureHeight, debug, logger)

	r.Get("/health", healthH.Health)
	r.Get("/", dashboardH.Page)
	r.Get("/figures/{id}.{format}", figureH.Image)

	return r
}
