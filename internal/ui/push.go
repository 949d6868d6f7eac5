package ui

// PushMode controls whether a page receives server-initiated updates
type PushMode int

const (
	PushDisabled PushMode = iota
	PushManual
	PushAutomatic
)

func (m PushMode) String() string {
	switch m {
	case PushManual:
		return "manual"
	case PushAutomatic:
		return "automatic"
	default:
		return "disabled"
	}
}

// Transport is the channel used for push updates
type Transport int

const (
	// TransportWebSocket keeps a single bidirectional socket; requests never
	// go through a regular HTTP request/response exchange.
	TransportWebSocket Transport = iota
	// TransportWebSocketXHR pushes over a socket but sends client requests as XHR.
	TransportWebSocketXHR
	TransportLongPolling
)

func (t Transport) String() string {
	switch t {
	case TransportWebSocketXHR:
		return "websocket-xhr"
	case TransportLongPolling:
		return "long-polling"
	default:
		return "websocket"
	}
}

// PushConfiguration is the push setup of a single page
type PushConfiguration struct {
	Mode      PushMode
	Transport Transport
}

// Enabled reports whether push is turned on at all
func (c PushConfiguration) Enabled() bool {
	return c.Mode != PushDisabled
}

// WidgetSetInfo describes the client-side widget set a page is rendered with
type WidgetSetInfo struct {
	Name   string
	Custom bool
}

// DefaultWidgetSet is used when a page class does not name one
const DefaultWidgetSet = "default"
