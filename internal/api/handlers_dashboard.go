package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/iammorganparry/bankdash/internal/view"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type DashboardHandler struct {
	layout view.Layout
	logger *slog.Logger
}

func NewDashboardHandler(layout view.Layout, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{layout: layout, logger: logger}
}

type regionImage struct {
	ID  string
	Src string
}

type dashboardPage struct {
	Layout   view.Layout
	Selected string
	Figures  []regionImage
}

// Page handles GET /
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r, h.layout.Default)
	if !view.IsCategory(category) {
		writeError(w, http.StatusBadRequest, "unknown category: "+category)
		return
	}

	page := dashboardPage{Layout: h.layout, Selected: category}
	q := url.Values{"category": {category}}.Encode()
	for _, id := range h.layout.Regions {
		page.Figures = append(page.Figures, regionImage{
			ID:  id,
			Src: "/figures/" + id + ".svg?" + q,
		})
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, page); err != nil {
		h.logger.Error("render dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "render dashboard failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func categoryParam(r *http.Request, fallback string) string {
	if c := r.URL.Query().Get("category"); c != "" {
		return c
	}
	return fallback
}
