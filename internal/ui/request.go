package ui

import "net/http"

// Request is the framework's view of one incoming HTTP request. Attributes
// live exactly as long as the request does.
type Request struct {
	*http.Request
	attributes map[any]any
}

func NewRequest(r *http.Request) *Request {
	return &Request{Request: r, attributes: make(map[any]any)}
}

// SetAttribute stores a request-scoped value. A nil value removes the key.
func (r *Request) SetAttribute(key, value any) {
	if value == nil {
		delete(r.attributes, key)
		return
	}
	r.attributes[key] = value
}

// Attribute returns the request-scoped value for key, or nil
func (r *Request) Attribute(key any) any {
	return r.attributes[key]
}

// Event is handed to every provider query made while handling a request.
// The same event is used for all queries of that request.
type Event struct {
	Request *Request
	Session *Session
	// Class is set once a provider has selected the page class
	Class *PageClass
}
