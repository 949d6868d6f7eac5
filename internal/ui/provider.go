package ui

// Provider resolves which page class, theme and transport settings apply to
// an incoming request. PageClass is always queried first; the remaining
// queries are only made against the provider that returned a class.
type Provider interface {
	PageClass(e *Event) *PageClass
	CreateInstance(e *Event) *Page
	Theme(e *Event) string
	PageTitle(e *Event) string
	PushMode(e *Event) PushMode
	PushTransport(e *Event) Transport
	WidgetSetInfo(e *Event) *WidgetSetInfo
	WidgetSet(e *Event) string
	PreservedOnRefresh(e *Event) bool
}

// ClassProvider serves a single page class and answers every other query
// from the class defaults.
type ClassProvider struct {
	class *PageClass
}

var _ Provider = (*ClassProvider)(nil)

func NewClassProvider(class *PageClass) *ClassProvider {
	return &ClassProvider{class: class}
}

func (p *ClassProvider) PageClass(e *Event) *PageClass {
	return p.class
}

func (p *ClassProvider) CreateInstance(e *Event) *Page {
	return NewPage(e.Class)
}

func (p *ClassProvider) Theme(e *Event) string {
	return e.Class.Theme
}

func (p *ClassProvider) PageTitle(e *Event) string {
	return e.Class.Title
}

func (p *ClassProvider) PushMode(e *Event) PushMode {
	return e.Class.Push.Mode
}

func (p *ClassProvider) PushTransport(e *Event) Transport {
	return e.Class.Push.Transport
}

func (p *ClassProvider) WidgetSetInfo(e *Event) *WidgetSetInfo {
	name := p.WidgetSet(e)
	return &WidgetSetInfo{Name: name, Custom: name != DefaultWidgetSet}
}

func (p *ClassProvider) WidgetSet(e *Event) string {
	if e.Class.WidgetSet == "" {
		return DefaultWidgetSet
	}
	return e.Class.WidgetSet
}

func (p *ClassProvider) PreservedOnRefresh(e *Event) bool {
	return e.Class.PreserveOnRefresh
}
