package themecookie

import "errors"

var (
	// ErrIllegalState is matched by every *StateError
	ErrIllegalState = errors.New("illegal state")

	// ErrResolutionOrder is the panic value raised when a provider query is
	// made before PageClass selected a provider for the same request.
	ErrResolutionOrder = errors.New("PageClass must be the first provider query of a request")
)

// Reason tells why the theme cookie could not be set
type Reason string

const (
	ReasonNoResponse         Reason = "no_response"
	ReasonWebSocketTransport Reason = "websocket_transport"
)

// StateError is returned when the ambient request context cannot carry a
// cookie back to the browser.
type StateError struct {
	Reason Reason
}

func (e *StateError) Error() string {
	switch e.Reason {
	case ReasonWebSocketTransport:
		return "themecookie: cannot be used together with regular websockets, use TransportWebSocketXHR instead"
	default:
		return "themecookie: must be called during regular request handling and not from a background goroutine"
	}
}

func (e *StateError) Is(target error) bool {
	return target == ErrIllegalState
}
