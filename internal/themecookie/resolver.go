package themecookie

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"infinite-experiment/themecookie/internal/metrics"
	"infinite-experiment/themecookie/internal/ui"
)

// CookieName is the name of the cookie holding the preferred theme
const CookieName = "themeCookie"

// delegateKey is the request attribute remembering which provider selected
// the page class.
type delegateKey struct{}

// ProxyProvider answers the theme query from the theme cookie and forwards
// every other query to the provider that selected the page class for the
// current request.
type ProxyProvider struct {
	session   *ui.Session
	resources *Resources
	log       *zap.SugaredLogger
	metrics   *metrics.MetricsRegistry
}

var _ ui.Provider = (*ProxyProvider)(nil)

// NewProxyProvider creates a proxy over the providers of session. metricsReg
// may be nil.
func NewProxyProvider(session *ui.Session, resources *Resources, log *zap.SugaredLogger, metricsReg *metrics.MetricsRegistry) *ProxyProvider {
	return &ProxyProvider{
		session:   session,
		resources: resources,
		log:       log,
		metrics:   metricsReg,
	}
}

func (p *ProxyProvider) PageClass(e *ui.Event) *ui.PageClass {
	for _, provider := range p.session.Providers() {
		// Any proxy, not only this one, would loop back into the same list
		if _, ok := provider.(*ProxyProvider); ok {
			continue
		}

		if class := provider.PageClass(e); class != nil {
			e.Request.SetAttribute(delegateKey{}, provider)
			return class
		}
	}
	return nil
}

// delegate returns the provider recorded by PageClass. Calling any other
// query first is a programming error.
func delegate(e *ui.Event) ui.Provider {
	if e != nil && e.Request != nil {
		if provider, ok := e.Request.Attribute(delegateKey{}).(ui.Provider); ok {
			return provider
		}
	}
	panic(ErrResolutionOrder)
}

func (p *ProxyProvider) Theme(e *ui.Event) string {
	provider := delegate(e)

	if theme, ok := p.cookieTheme(e.Request.Request); ok {
		p.resolved("cookie")
		return theme
	}

	p.resolved("provider")
	return provider.Theme(e)
}

func (p *ProxyProvider) CreateInstance(e *ui.Event) *ui.Page {
	return delegate(e).CreateInstance(e)
}

func (p *ProxyProvider) PageTitle(e *ui.Event) string {
	return delegate(e).PageTitle(e)
}

func (p *ProxyProvider) PushMode(e *ui.Event) ui.PushMode {
	return delegate(e).PushMode(e)
}

func (p *ProxyProvider) PushTransport(e *ui.Event) ui.Transport {
	return delegate(e).PushTransport(e)
}

func (p *ProxyProvider) WidgetSetInfo(e *ui.Event) *ui.WidgetSetInfo {
	return delegate(e).WidgetSetInfo(e)
}

func (p *ProxyProvider) WidgetSet(e *ui.Event) string {
	return delegate(e).WidgetSet(e)
}

func (p *ProxyProvider) PreservedOnRefresh(e *ui.Event) bool {
	return delegate(e).PreservedOnRefresh(e)
}

func (p *ProxyProvider) cookieTheme(r *http.Request) (string, bool) {
	return FindTheme(r, p.resources, func(value string, reason Rejection) {
		p.log.Debugw("Ignoring theme cookie",
			"session_id", p.session.ID,
			"value", value,
			"reason", string(reason),
		)
		if p.metrics != nil {
			p.metrics.RejectedCookiesTotal.WithLabelValues(string(reason)).Inc()
		}
	})
}

func (p *ProxyProvider) resolved(source string) {
	if p.metrics != nil {
		p.metrics.ThemeResolutionsTotal.WithLabelValues(source).Inc()
	}
}

// FindTheme returns the first valid theme cookie value of r, trimmed.
// onReject, if not nil, is called for every theme cookie that is skipped.
func FindTheme(r *http.Request, res *Resources, onReject func(value string, reason Rejection)) (string, bool) {
	for _, c := range r.Cookies() {
		if c.Name != CookieName {
			continue
		}
		reason := Validate(res, c.Value)
		if reason == "" {
			return strings.TrimSpace(c.Value), true
		}
		if onReject != nil {
			onReject(c.Value, reason)
		}
	}
	return "", false
}
