package ui

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionCookie carries the session id between requests
const SessionCookie = "UISESSIONID"

// Session holds the pages and page providers of one browser session
type Session struct {
	ID string

	mu        sync.RWMutex
	providers []Provider
	pages     map[string]*Page
	preserved map[string]*Page
}

// NewSession creates a session that is not tracked by any store
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		pages:     make(map[string]*Page),
		preserved: make(map[string]*Page),
	}
}

// AddProvider appends a provider to the session's provider list
func (s *Session) AddProvider(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = append(s.providers, p)
}

// Providers returns a snapshot of the providers in registration order
func (s *Session) Providers() []Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

func (s *Session) AddPage(p *Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[p.ID()] = p
}

func (s *Session) Page(id string) (*Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[id]
	return p, ok
}

func (s *Session) preservedPage(className string) *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preserved[className]
}

func (s *Session) preserve(className string, p *Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preserved[className] = p
}

// SessionStore keeps live sessions in memory and expires idle ones
type SessionStore struct {
	cache       *cache.Cache
	idleTimeout time.Duration
}

func NewSessionStore(idleTimeout, cleanupInterval time.Duration) *SessionStore {
	return &SessionStore{
		cache:       cache.New(idleTimeout, cleanupInterval),
		idleTimeout: idleTimeout,
	}
}

// OnEvicted registers a callback run when a session expires
func (s *SessionStore) OnEvicted(fn func(id string)) {
	s.cache.OnEvicted(func(key string, _ interface{}) {
		fn(key)
	})
}

// Lookup returns the session named by the request's session cookie and
// extends its lifetime.
func (s *SessionStore) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	val, found := s.cache.Get(c.Value)
	if !found {
		return nil, false
	}
	sess, ok := val.(*Session)
	if !ok {
		return nil, false
	}
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	return sess, true
}

// Create starts a new session and sends its cookie with w
func (s *SessionStore) Create(w http.ResponseWriter) *Session {
	sess := NewSession()
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}
