package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// View builds the content of a page when it is created
type View interface {
	Init(ctx context.Context, page *Page, req *Request)
}

// ViewFunc adapts a plain function to View
type ViewFunc func(ctx context.Context, page *Page, req *Request)

func (f ViewFunc) Init(ctx context.Context, page *Page, req *Request) {
	f(ctx, page, req)
}

// PageClass describes a kind of page together with the defaults a provider
// reports for it.
type PageClass struct {
	Name              string
	Theme             string
	Title             string
	Push              PushConfiguration
	WidgetSet         string
	PreserveOnRefresh bool
	New               func() View
}

// Page is one live, browser-visible application instance
type Page struct {
	id    string
	class *PageClass
	view  View

	// access serializes listener execution, mu guards the fields below
	access sync.Mutex
	mu     sync.Mutex

	theme      string
	title      string
	push       PushConfiguration
	widgetSet  WidgetSetInfo
	components []Component
	notices    []string
}

// NewPage creates a page for the given class. The view is instantiated but
// not initialized.
func NewPage(class *PageClass) *Page {
	p := &Page{
		id:    uuid.New().String(),
		class: class,
	}
	if class != nil && class.New != nil {
		p.view = class.New()
	}
	return p
}

func (p *Page) ID() string {
	return p.id
}

func (p *Page) Class() *PageClass {
	return p.class
}

// Theme returns the active theme, empty when none is set
func (p *Page) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme changes the active theme. The change is visible in the next render.
func (p *Page) SetTheme(theme string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
}

func (p *Page) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *Page) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

func (p *Page) PushConfiguration() PushConfiguration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.push
}

func (p *Page) SetPushConfiguration(cfg PushConfiguration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.push = cfg
}

func (p *Page) WidgetSet() WidgetSetInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.widgetSet
}

func (p *Page) SetWidgetSet(info WidgetSetInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.widgetSet = info
}

// Add appends components to the page content
func (p *Page) Add(components ...Component) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.components = append(p.components, components...)
}

func (p *Page) Components() []Component {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// Notify queues a message shown once on the next render
func (p *Page) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, message)
}

func (p *Page) drainNotices() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.notices
	p.notices = nil
	return out
}

// Access runs fn outside of request handling, e.g. from a background
// goroutine. The context handed to fn carries the page but no response.
func (p *Page) Access(ctx context.Context, fn func(ctx context.Context)) {
	p.access.Lock()
	defer p.access.Unlock()
	fn(WithCurrent(ctx, p, nil))
}

func (p *Page) init(ctx context.Context, req *Request) {
	if p.view == nil {
		return
	}
	p.access.Lock()
	defer p.access.Unlock()
	p.view.Init(ctx, p, req)
}

// dispatch delivers a client event to the component with the given id. ctx
// must already carry the ambient page and response.
func (p *Page) dispatch(ctx context.Context, componentID, value string) error {
	var target Component
	for _, c := range p.Components() {
		if c.ComponentID() == componentID {
			target = c
			break
		}
	}
	if target == nil {
		return fmt.Errorf("page %s: %w: %q", p.id, ErrUnknownComponent, componentID)
	}

	p.access.Lock()
	defer p.access.Unlock()
	target.handle(ctx, value)
	return nil
}
