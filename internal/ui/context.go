package ui

import (
	"context"
	"net/http"
)

type contextKey string

var (
	currentPageKey     contextKey = "ui_current_page"
	currentResponseKey contextKey = "ui_current_response"
)

// WithCurrent binds the page and response being handled to ctx. A nil
// response marks work that happens outside a regular request/response
// exchange.
func WithCurrent(ctx context.Context, page *Page, w http.ResponseWriter) context.Context {
	ctx = context.WithValue(ctx, currentPageKey, page)
	return context.WithValue(ctx, currentResponseKey, w)
}

// CurrentPage returns the page bound to ctx, or nil
func CurrentPage(ctx context.Context) *Page {
	if page, ok := ctx.Value(currentPageKey).(*Page); ok {
		return page
	}
	return nil
}

// CurrentResponse returns the response bound to ctx, or nil
func CurrentResponse(ctx context.Context) http.ResponseWriter {
	if w, ok := ctx.Value(currentResponseKey).(http.ResponseWriter); ok && w != nil {
		return w
	}
	return nil
}
