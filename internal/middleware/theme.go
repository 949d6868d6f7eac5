package middleware

import (
	"context"
	"net/http"

	"infinite-experiment/themecookie/internal/themecookie"
)

var themeKey contextKey = "theme"

// ThemeMiddleware injects the user's validated theme preference into the
// request context. Invalid cookie values are treated as no preference.
func ThemeMiddleware(resources *themecookie.Resources) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			theme, ok := themecookie.FindTheme(r, resources, nil)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), themeKey, theme)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Theme returns the preference stored by ThemeMiddleware, empty if none
func Theme(ctx context.Context) string {
	theme, _ := ctx.Value(themeKey).(string)
	return theme
}
