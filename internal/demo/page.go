package demo

import (
	"context"

	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/themecookie"
	"infinite-experiment/themecookie/internal/ui"
)

// Themes offered by the selector
var Themes = []string{"valo", "reindeer", "runo"}

// NewPageClass returns the demo page class using defaultTheme when no theme
// cookie is present.
func NewPageClass(defaultTheme string, log *zap.SugaredLogger, metricsReg *metrics.MetricsRegistry) *ui.PageClass {
	return &ui.PageClass{
		Name:  "ThemeCookieDemo",
		Theme: defaultTheme,
		Title: "Theme cookie demo",
		Push:  ui.PushConfiguration{Mode: ui.PushDisabled, Transport: ui.TransportWebSocketXHR},
		New: func() ui.View {
			return &themeView{log: log, metrics: metricsReg}
		},
	}
}

type themeView struct {
	log     *zap.SugaredLogger
	metrics *metrics.MetricsRegistry
}

func (v *themeView) Init(ctx context.Context, page *ui.Page, req *ui.Request) {
	selector := &ui.Select{
		ID:      "theme",
		Label:   "Current theme",
		Options: Themes,
		Value:   page.Theme(),
		OnChange: func(ctx context.Context, value string) {
			v.setTheme(ctx, page, value)
		},
	}

	clearButton := &ui.Button{
		ID:      "clear",
		Caption: "Clear cookie",
		OnClick: func(ctx context.Context) {
			v.setTheme(ctx, page, "")
		},
	}

	page.Add(selector, clearButton)
}

func (v *themeView) setTheme(ctx context.Context, page *ui.Page, theme string) {
	if err := themecookie.SetTheme(ctx, theme); err != nil {
		v.log.Errorw("Failed to store theme", "page_id", page.ID(), "theme", theme, "error", err.Error())
		page.Notify("Could not store the theme: " + err.Error())
		return
	}
	v.metrics.CookieWritten(theme)
	v.log.Infow("Theme stored", "page_id", page.ID(), "theme", theme)
}
