package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ServiceInitListener is notified once when a Service starts
type ServiceInitListener interface {
	ServiceInit(s *Service)
}

// Paths are the URL prefixes pages link to
type Paths struct {
	Themes string
	Event  string
	// Stylesheet names the file linked for a theme. nil links styles.css.
	Stylesheet func(theme string) string
}

func (p Paths) stylesheet(theme string) string {
	if theme == "" {
		return ""
	}
	if p.Stylesheet == nil {
		return "styles.css"
	}
	return p.Stylesheet(theme)
}

// Service creates pages for incoming requests and dispatches client events
// to them.
type Service struct {
	sessions *SessionStore
	log      *zap.SugaredLogger
	paths    Paths

	mu           sync.RWMutex
	providers    []Provider
	sessionInits []func(*Session)
}

func NewService(sessions *SessionStore, log *zap.SugaredLogger, paths Paths) *Service {
	return &Service{
		sessions: sessions,
		log:      log,
		paths:    paths,
	}
}

// AddProvider registers a provider that every new session starts with
func (s *Service) AddProvider(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = append(s.providers, p)
}

// AddSessionInitListener registers fn to run for every new session, after
// the default providers were added to it.
func (s *Service) AddSessionInitListener(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionInits = append(s.sessionInits, fn)
}

// Init notifies the given listeners that the service is starting
func (s *Service) Init(listeners ...ServiceInitListener) {
	for _, l := range listeners {
		l.ServiceInit(s)
	}
}

// Session returns the request's session, starting a new one if needed
func (s *Service) Session(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := s.sessions.Lookup(r); ok {
		return sess
	}

	sess := s.sessions.Create(w)

	s.mu.RLock()
	providers := append([]Provider(nil), s.providers...)
	inits := slices.Clone(s.sessionInits)
	s.mu.RUnlock()

	for _, p := range providers {
		sess.AddProvider(p)
	}
	for _, fn := range inits {
		fn(sess)
	}

	s.log.Infow("Session started", "session_id", sess.ID, "providers", len(sess.Providers()))
	return sess
}

// selectProvider asks the session providers for a page class, most recently
// added first, and returns the first provider that answers.
func selectProvider(e *Event) (Provider, *PageClass) {
	providers := e.Session.Providers()
	for i := len(providers) - 1; i >= 0; i-- {
		if class := providers[i].PageClass(e); class != nil {
			return providers[i], class
		}
	}
	return nil, nil
}

// CreatePage resolves and initializes the page for a request. w may be nil
// when the caller has no response to attach.
func (s *Service) CreatePage(ctx context.Context, w http.ResponseWriter, e *Event) (*Page, error) {
	provider, class := selectProvider(e)
	if class == nil {
		return nil, ErrNoPageClass
	}
	e.Class = class

	preserve := provider.PreservedOnRefresh(e)
	if preserve {
		if page := e.Session.preservedPage(class.Name); page != nil {
			return page, nil
		}
	}

	page := provider.CreateInstance(e)
	if page == nil {
		return nil, fmt.Errorf("%w: class %s", ErrNoPageInstance, class.Name)
	}

	page.SetTheme(provider.Theme(e))
	page.SetTitle(provider.PageTitle(e))
	page.SetPushConfiguration(PushConfiguration{
		Mode:      provider.PushMode(e),
		Transport: provider.PushTransport(e),
	})
	if info := provider.WidgetSetInfo(e); info != nil {
		page.SetWidgetSet(*info)
	} else {
		page.SetWidgetSet(WidgetSetInfo{Name: provider.WidgetSet(e)})
	}

	e.Session.AddPage(page)
	if preserve {
		e.Session.preserve(class.Name, page)
	}

	page.init(WithCurrent(ctx, page, w), e.Request)
	return page, nil
}

// PageHandler serves a freshly created (or preserved) page
func (s *Service) PageHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.Session(w, r)
	e := &Event{Request: NewRequest(r), Session: sess}

	page, err := s.CreatePage(r.Context(), w, e)
	if err != nil {
		s.log.Errorw("Failed to create page", "session_id", sess.ID, "path", r.URL.Path, "error", err.Error())
		http.Error(w, "Unable to create page", http.StatusInternalServerError)
		return
	}

	if err := RenderPage(w, page, s.paths); err != nil {
		s.log.Errorw("Failed to render page", "page_id", page.ID(), "error", err.Error())
	}
}

// EventHandler delivers a form-posted client event to its page and renders
// the page again in the same response.
func (s *Service) EventHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	sess, ok := s.sessions.Lookup(r)
	if !ok {
		http.Error(w, "Session expired", http.StatusGone)
		return
	}

	page, ok := sess.Page(r.PostFormValue("page"))
	if !ok {
		http.Error(w, ErrUnknownPage.Error(), http.StatusNotFound)
		return
	}

	ctx := WithCurrent(r.Context(), page, w)
	if err := page.dispatch(ctx, r.PostFormValue("component"), r.PostFormValue("value")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownComponent) {
			status = http.StatusBadRequest
		}
		s.log.Warnw("Failed to dispatch event", "page_id", page.ID(), "error", err.Error())
		http.Error(w, err.Error(), status)
		return
	}

	if err := RenderPage(w, page, s.paths); err != nil {
		s.log.Errorw("Failed to render page", "page_id", page.ID(), "error", err.Error())
	}
}
