package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/middleware"
	"infinite-experiment/themecookie/internal/themecookie"
	"infinite-experiment/themecookie/internal/ui"
)

func testResources(t *testing.T) *themecookie.Resources {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, name := range []string{"themes/valo/styles.css", "themes/runo/styles.css"} {
		if err := afero.WriteFile(fs, name, []byte(""), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return themecookie.NewResources(fs, "themes")
}

func newThemeHandler(t *testing.T) *ThemeHandler {
	return NewThemeHandler(testResources(t), metrics.NewMetricsRegistry(prometheus.NewRegistry(), nil), zap.NewNop().Sugar())
}

func decodePreference(t *testing.T, rec *httptest.ResponseRecorder) ThemePreference {
	t.Helper()
	var resp APIResponse[ThemePreference]
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data == nil {
		t.Fatalf("Expected data in response, got error %q", resp.Error)
	}
	return *resp.Data
}

func TestGetPreference(t *testing.T) {
	h := newThemeHandler(t)
	handler := middleware.ThemeMiddleware(h.resources)(http.HandlerFunc(h.GetPreference))

	r := httptest.NewRequest(http.MethodGet, "/ui/api/theme", nil)
	r.AddCookie(&http.Cookie{Name: themecookie.CookieName, Value: "runo"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	pref := decodePreference(t, rec)
	if pref.Theme != "runo" || pref.Source != "cookie" {
		t.Errorf("Expected runo from cookie, got %+v", pref)
	}

	r = httptest.NewRequest(http.MethodGet, "/ui/api/theme", nil)
	r.AddCookie(&http.Cookie{Name: themecookie.CookieName, Value: "../../etc"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	pref = decodePreference(t, rec)
	if pref.Theme != "" || pref.Source != "none" {
		t.Errorf("Expected no preference for invalid cookie, got %+v", pref)
	}
}

func TestSetPreference(t *testing.T) {
	h := newThemeHandler(t)

	rec := httptest.NewRecorder()
	h.SetPreference(rec, httptest.NewRequest(http.MethodPost, "/ui/api/theme", strings.NewReader(`{"theme":"valo"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "valo" || cookies[0].MaxAge != themecookie.PermanentMaxAge {
		t.Errorf("Expected permanent valo cookie, got %+v", cookies)
	}
}

func TestSetPreference_Clear(t *testing.T) {
	h := newThemeHandler(t)

	rec := httptest.NewRecorder()
	h.SetPreference(rec, httptest.NewRequest(http.MethodPost, "/ui/api/theme", strings.NewReader(`{"theme":""}`)))

	if got := rec.Header().Get("Set-Cookie"); got != "themeCookie=; Path=/; Max-Age=0" {
		t.Errorf("Expected clearing cookie, got %q", got)
	}
}

func TestSetPreference_Rejected(t *testing.T) {
	h := newThemeHandler(t)

	for _, body := range []string{`{"theme":"../etc"}`, `{"theme":"nosuch"}`, `not json`} {
		rec := httptest.NewRecorder()
		h.SetPreference(rec, httptest.NewRequest(http.MethodPost, "/ui/api/theme", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %s: expected status 400, got %d", body, rec.Code)
		}
		if rec.Header().Get("Set-Cookie") != "" {
			t.Errorf("Body %s: expected no cookie", body)
		}
	}
}

func TestListThemes(t *testing.T) {
	h := newThemeHandler(t)

	rec := httptest.NewRecorder()
	h.ListThemes(rec, httptest.NewRequest(http.MethodGet, "/ui/api/themes", nil))

	var resp APIResponse[ThemeListResponse]
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Data == nil || len(resp.Data.Themes) != 2 {
		t.Errorf("Expected 2 themes, got %+v", resp.Data)
	}
}

func TestHealthCheckHandler(t *testing.T) {
	sessions := ui.NewSessionStore(time.Minute, time.Minute)

	rec := httptest.NewRecorder()
	HealthCheckHandler(testResources(t), sessions, time.Now())(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	var resp HealthCheckResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if rec.Code != http.StatusOK || resp.Status != "ok" {
		t.Errorf("Expected healthy status, got %d %+v", rec.Code, resp)
	}

	empty := themecookie.NewResources(afero.NewMemMapFs(), "themes")
	rec = httptest.NewRecorder()
	HealthCheckHandler(empty, sessions, time.Now())(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without themes, got %d", rec.Code)
	}
}
