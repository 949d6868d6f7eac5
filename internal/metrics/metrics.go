package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the theme cookie server
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Session Metrics
	SessionsActive prometheus.GaugeFunc

	// Theme Metrics
	ThemeResolutionsTotal  *prometheus.CounterVec
	RejectedCookiesTotal   *prometheus.CounterVec
	ThemeCookieWritesTotal *prometheus.CounterVec
}

// NewMetricsRegistry registers all metrics with reg. activeSessions may be
// nil when no session store is running.
func NewMetricsRegistry(reg prometheus.Registerer, activeSessions func() int) *MetricsRegistry {
	factory := promauto.With(reg)

	m := &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "themecookie_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "themecookie_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "themecookie_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Theme Metrics
		ThemeResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "themecookie_theme_resolutions_total",
				Help: "Theme resolutions by where the answer came from (cookie or provider)",
			},
			[]string{"source"},
		),
		RejectedCookiesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "themecookie_rejected_cookies_total",
				Help: "Theme cookies ignored because their value was not a usable theme",
			},
			[]string{"reason"},
		),
		ThemeCookieWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "themecookie_cookie_writes_total",
				Help: "Theme cookies sent to clients by action (set or clear)",
			},
			[]string{"action"},
		),
	}

	if activeSessions != nil {
		m.SessionsActive = factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "themecookie_sessions_active",
				Help: "Current number of live UI sessions",
			},
			func() float64 { return float64(activeSessions()) },
		)
	}

	return m
}

// CookieWritten counts a theme cookie write. An empty theme is a clear.
func (m *MetricsRegistry) CookieWritten(theme string) {
	if m == nil {
		return
	}
	action := "set"
	if theme == "" {
		action = "clear"
	}
	m.ThemeCookieWritesTotal.WithLabelValues(action).Inc()
}
