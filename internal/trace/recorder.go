package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"fitjourney/internal/nav"
)

// Span names.
const (
	SpanNavigate         = "fitjourney.navigate"
	SpanToggleMobileMenu = "fitjourney.toggle_mobile_menu"
)

// Attribute keys.
const (
	AttrFrom        = attribute.Key("fitjourney.section.from")
	AttrTo          = attribute.Key("fitjourney.section.to")
	AttrMenuWasOpen = attribute.Key("fitjourney.mobile_menu.was_open")
	AttrMenuOpen    = attribute.Key("fitjourney.mobile_menu.open")
	AttrSource      = attribute.Key("fitjourney.input.source")
)

// Recorder emits one span per UI state transition.
type Recorder struct {
	tracer   oteltrace.Tracer
	shutdown func(context.Context) error
}

// Navigate records a section change. source names the control that fired it
// (e.g. "header", "drawer", "card", "key").
func (r *Recorder) Navigate(ctx context.Context, from, to nav.Section, menuWasOpen bool, source string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanNavigate,
		oteltrace.WithAttributes(
			AttrFrom.String(from.String()),
			AttrTo.String(to.String()),
			AttrMenuWasOpen.Bool(menuWasOpen),
			AttrSource.String(source),
		),
	)
	span.End()
}

// ToggleMobileMenu records a mobile menu flip with its resulting state.
func (r *Recorder) ToggleMobileMenu(ctx context.Context, open bool, source string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanToggleMobileMenu,
		oteltrace.WithAttributes(
			AttrMenuOpen.Bool(open),
			AttrSource.String(source),
		),
	)
	span.End()
}
