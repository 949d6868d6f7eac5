package ui

import "errors"

var (
	ErrNoPageClass      = errors.New("no page provider returned a page class")
	ErrNoPageInstance   = errors.New("page provider returned no page instance")
	ErrUnknownPage      = errors.New("unknown page")
	ErrUnknownComponent = errors.New("unknown component")
)
