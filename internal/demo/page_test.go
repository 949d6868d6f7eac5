package demo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/themecookie"
	"infinite-experiment/themecookie/internal/ui"
)

func initPage(t *testing.T, metricsReg *metrics.MetricsRegistry) (*ui.Page, *ui.Select, *ui.Button) {
	t.Helper()
	page := ui.NewPage(NewPageClass("valo", zap.NewNop().Sugar(), metricsReg))
	page.SetTheme("valo")

	view := &themeView{log: zap.NewNop().Sugar(), metrics: metricsReg}
	view.Init(context.Background(), page, ui.NewRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	components := page.Components()
	require.Len(t, components, 2)
	return page, components[0].(*ui.Select), components[1].(*ui.Button)
}

func TestThemeView_SelectorStartsAtPageTheme(t *testing.T) {
	_, selector, button := initPage(t, nil)

	assert.Equal(t, "valo", selector.Value)
	assert.Equal(t, Themes, selector.Options)
	assert.Equal(t, "Clear cookie", button.Caption)
}

func TestThemeView_ChangeStoresCookie(t *testing.T) {
	metricsReg := metrics.NewMetricsRegistry(prometheus.NewRegistry(), nil)
	page, selector, _ := initPage(t, metricsReg)
	rec := httptest.NewRecorder()

	selector.OnChange(ui.WithCurrent(context.Background(), page, rec), "runo")

	assert.Equal(t, "runo", page.Theme())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, themecookie.CookieName, cookies[0].Name)
	assert.Equal(t, "runo", cookies[0].Value)
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsReg.ThemeCookieWritesTotal.WithLabelValues("set")))
}

func TestThemeView_ClearButton(t *testing.T) {
	metricsReg := metrics.NewMetricsRegistry(prometheus.NewRegistry(), nil)
	page, _, button := initPage(t, metricsReg)
	rec := httptest.NewRecorder()

	button.OnClick(ui.WithCurrent(context.Background(), page, rec))

	assert.Equal(t, "valo", page.Theme())
	assert.Equal(t, "themeCookie=; Path=/; Max-Age=0", rec.Header().Get("Set-Cookie"))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsReg.ThemeCookieWritesTotal.WithLabelValues("clear")))
}

func TestThemeView_FailureIsShown(t *testing.T) {
	page, selector, _ := initPage(t, nil)

	selector.OnChange(ui.WithCurrent(context.Background(), page, nil), "runo")

	assert.Equal(t, "valo", page.Theme())
	rec := httptest.NewRecorder()
	require.NoError(t, ui.RenderPage(rec, page, ui.Paths{Themes: "/themes", Event: "/ui/event"}))
	assert.Contains(t, rec.Body.String(), "Could not store the theme")
}
