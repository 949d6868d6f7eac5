package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageView struct {
	PageID     string
	Title      string
	Theme      string
	Stylesheet string
	ThemesPath string
	EventPath  string
	WidgetSet  string
	Notices    []string
	Components []componentView
}

// RenderPage writes the full HTML document for page
func RenderPage(w http.ResponseWriter, page *Page, paths Paths) error {
	view := pageView{
		PageID:     page.ID(),
		Title:      page.Title(),
		Theme:      page.Theme(),
		Stylesheet: paths.stylesheet(page.Theme()),
		ThemesPath: paths.Themes,
		EventPath:  paths.Event,
		WidgetSet:  page.WidgetSet().Name,
		Notices:    page.drainNotices(),
	}
	// listeners mutate component state under the access lock
	page.access.Lock()
	for _, c := range page.Components() {
		view.Components = append(view.Components, c.view())
	}
	page.access.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render page %s: %w", page.ID(), err)
	}
	return nil
}
