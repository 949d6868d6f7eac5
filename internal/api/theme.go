package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/middleware"
	"infinite-experiment/themecookie/internal/themecookie"
)

type ThemePreference struct {
	Theme  string `json:"theme"`
	Source string `json:"source"`
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeListResponse struct {
	Themes []string `json:"themes"`
}

// ThemeHandler exposes the theme cookie to clients that do not render pages
type ThemeHandler struct {
	resources *themecookie.Resources
	metrics   *metrics.MetricsRegistry
	log       *zap.SugaredLogger
}

func NewThemeHandler(resources *themecookie.Resources, metricsReg *metrics.MetricsRegistry, log *zap.SugaredLogger) *ThemeHandler {
	return &ThemeHandler{resources: resources, metrics: metricsReg, log: log}
}

// GetPreference handles GET /ui/api/theme. It expects ThemeMiddleware to
// have run.
func (h *ThemeHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	pref := ThemePreference{Theme: middleware.Theme(r.Context()), Source: "none"}
	if pref.Theme != "" {
		pref.Source = "cookie"
	}
	respondWithSuccess(w, http.StatusOK, &pref)
}

// SetPreference handles POST /ui/api/theme. An empty theme clears the cookie.
func (h *ThemeHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	theme := strings.TrimSpace(req.Theme)
	if theme != "" {
		if reason := themecookie.Validate(h.resources, req.Theme); reason != "" {
			h.log.Warnw("Rejected theme preference",
				"request_id", middleware.RequestID(r.Context()),
				"theme", req.Theme,
				"reason", string(reason),
			)
			respondWithError(w, http.StatusBadRequest, "Unknown theme")
			return
		}
	}

	themecookie.WriteCookie(w, theme)
	h.metrics.CookieWritten(theme)

	source := "cookie"
	if theme == "" {
		source = "none"
	}
	respondWithSuccess(w, http.StatusOK, &ThemePreference{Theme: theme, Source: source})
}

// ListThemes handles GET /ui/api/themes
func (h *ThemeHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.resources.Themes()
	if err != nil {
		h.log.Errorw("Failed to list themes", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, "Unable to list themes")
		return
	}
	respondWithSuccess(w, http.StatusOK, &ThemeListResponse{Themes: themes})
}
