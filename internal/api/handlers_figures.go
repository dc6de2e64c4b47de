package api

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gonum.org/v1/plot/vg"

	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/render"
	"github.com/iammorganparry/bankdash/internal/view"
)

type FigureHandler struct {
	ds     *dataset.Dataset
	width  vg.Length
	height vg.Length
	debug  bool
	logger *slog.Logger
}

func NewFigureHandler(ds *dataset.Dataset, width, height vg.Length, debug bool, logger *slog.Logger) *FigureHandler {
	return &FigureHandler{ds: ds, width: width, height: height, debug: debug, logger: logger}
}

// Image handles GET /figures/{id}.{format}
func (h *FigureHandler) Image(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := chi.URLParam(r, "format")

	if !view.IsRegion(id) {
		writeError(w, http.StatusNotFound, "figure not found")
		return
	}
	contentType, err := render.ContentType(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	panels, err := view.Update(h.ds, categoryParam(r, view.DefaultCategory))
	if err != nil {
		if errors.Is(err, view.ErrUnknownCategory) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("update panels", "error", err, "figure", id)
		writeErrorDetail(w, http.StatusInternalServerError, "figure computation failed", err, h.debug)
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, panels.Figure(id), format, h.width, h.height); err != nil {
		h.logger.Error("render figure", "error", err, "figure", id, "format", format)
		writeErrorDetail(w, http.StatusInternalServerError, "figure rendering failed", err, h.debug)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
