package themecookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/ui"
)

func TestInstaller_AddsProxyToNewSessions(t *testing.T) {
	log := zap.NewNop().Sugar()
	store := ui.NewSessionStore(time.Minute, time.Minute)
	service := ui.NewService(store, log, ui.Paths{Themes: "/themes", Event: "/ui/event"})
	service.AddProvider(ui.NewClassProvider(&ui.PageClass{Name: "AppPage", Theme: "valo"}))
	service.Init(NewInstaller(testResources(t), log, nil))

	rec := httptest.NewRecorder()
	session := service.Session(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	providers := session.Providers()
	require.Len(t, providers, 2)
	assert.IsType(t, &ui.ClassProvider{}, providers[0])
	assert.IsType(t, &ProxyProvider{}, providers[1])
}

func TestInstaller_CookieThemeReachesPage(t *testing.T) {
	log := zap.NewNop().Sugar()
	store := ui.NewSessionStore(time.Minute, time.Minute)
	service := ui.NewService(store, log, ui.Paths{Themes: "/themes", Event: "/ui/event"})
	service.AddProvider(ui.NewClassProvider(&ui.PageClass{Name: "AppPage", Theme: "valo", Title: "App"}))
	service.Init(NewInstaller(testResources(t), log, nil))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "runo"})
	rec := httptest.NewRecorder()

	service.PageHandler(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/themes/runo/styles.css"`)
	assert.Contains(t, rec.Body.String(), "<title>App</title>")
}
