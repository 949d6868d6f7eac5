package ui

import (
	"context"
	"slices"
)

// Component is a piece of page content that can receive client events
type Component interface {
	ComponentID() string
	handle(ctx context.Context, value string)
	view() componentView
}

// componentView is the template model of a component
type componentView struct {
	Kind    string
	ID      string
	Label   string
	Value   string
	Options []string
}

// Select lets the user pick one of a fixed set of options
type Select struct {
	ID       string
	Label    string
	Options  []string
	Value    string
	OnChange func(ctx context.Context, value string)
}

func (s *Select) ComponentID() string {
	return s.ID
}

func (s *Select) handle(ctx context.Context, value string) {
	if !slices.Contains(s.Options, value) || value == s.Value {
		return
	}
	s.Value = value
	if s.OnChange != nil {
		s.OnChange(ctx, value)
	}
}

func (s *Select) view() componentView {
	return componentView{Kind: "select", ID: s.ID, Label: s.Label, Value: s.Value, Options: s.Options}
}

// Button fires OnClick when pressed
type Button struct {
	ID      string
	Caption string
	OnClick func(ctx context.Context)
}

func (b *Button) ComponentID() string {
	return b.ID
}

func (b *Button) handle(ctx context.Context, _ string) {
	if b.OnClick != nil {
		b.OnClick(ctx)
	}
}

func (b *Button) view() componentView {
	return componentView{Kind: "button", ID: b.ID, Label: b.Caption}
}
