package themecookie

import (
	"context"
	"math"
	"net/http"

	"infinite-experiment/themecookie/internal/ui"
)

// PermanentMaxAge keeps the cookie for as long as clients allow
const PermanentMaxAge = math.MaxInt32

// SetTheme changes the theme of the current page and adds a cookie with the
// selection to the current response. An empty themeName clears the cookie
// and leaves the page theme as it is.
//
// ctx must carry the page and response of a request being handled; see
// ui.WithCurrent. Otherwise a *StateError is returned.
func SetTheme(ctx context.Context, themeName string) error {
	w := ui.CurrentResponse(ctx)
	page := ui.CurrentPage(ctx)

	if w == nil || page == nil {
		if page != nil {
			push := page.PushConfiguration()
			if push.Enabled() && push.Transport == ui.TransportWebSocket {
				return &StateError{Reason: ReasonWebSocketTransport}
			}
		}
		return &StateError{Reason: ReasonNoResponse}
	}

	SetThemeFor(themeName, page, w)
	return nil
}

// ClearTheme removes the theme cookie without touching the page theme
func ClearTheme(ctx context.Context) error {
	return SetTheme(ctx, "")
}

// SetThemeFor changes the theme of page and adds a cookie with the selection
// to w. An empty themeName clears the cookie and leaves the page theme as it
// is.
func SetThemeFor(themeName string, page *ui.Page, w http.ResponseWriter) {
	if themeName != "" {
		page.SetTheme(themeName)
	}
	WriteCookie(w, themeName)
}

// WriteCookie appends the theme cookie to w. An empty themeName expires it.
func WriteCookie(w http.ResponseWriter, themeName string) {
	cookie := &http.Cookie{
		Name:  CookieName,
		Value: themeName,
		Path:  "/",
	}

	if themeName == "" {
		// MaxAge < 0 is sent as Max-Age=0
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = PermanentMaxAge
	}

	http.SetCookie(w, cookie)
}
