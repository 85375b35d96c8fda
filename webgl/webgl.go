// SPDX-License-Identifier: Unlicense OR MIT

/*
Package webgl acquires WebGL rendering contexts from drawing surfaces,
smoothing over the identifiers older browsers registered WebGL under.

A Surface is usually a *Canvas wrapping a <canvas> element (GOOS=js), but any
implementation will do:

	cnv, err := webgl.NewCanvas(js.Global().Get("document").Call("getElementById", "webgl"))
	if err != nil {
		...
	}
	ctx, err := webgl.Setup(cnv, webgl.Attributes{"antialias": true}, func(msg string) {
		log.Printf("webgl: context creation failed: %q", msg)
	})
*/
package webgl

import (
	"errors"

	"go.uber.org/zap"
)

// Context is a rendering context handle. It belongs to the caller as soon as
// it is returned; this package keeps no reference to it.
type Context interface{}

// Attributes are context creation attributes. They are handed to the surface
// unmodified.
type Attributes map[string]interface{}

// Surface is a drawing surface that hands out rendering contexts.
type Surface interface {
	// GetContext requests a context of the given type. A nil Context
	// and nil error means the type is not supported by the surface.
	GetContext(contextType string, attrs Attributes) (Context, error)
}

// EventTarget is implemented by surfaces that deliver context
// notifications.
type EventTarget interface {
	// AddEventListener registers fn for events of the given type. It
	// reports false if the surface has no event registration.
	AddEventListener(eventType string, fn func(ContextEvent)) bool
}

// ContextEvent is a context notification delivered by an EventTarget.
type ContextEvent struct {
	Type          string
	StatusMessage string
}

// Context notification types.
const (
	CreationErrorEvent   = "webglcontextcreationerror"
	ContextLostEvent     = "webglcontextlost"
	ContextRestoredEvent = "webglcontextrestored"
)

// ErrUnsupported is returned when a surface supports none of the context
// types.
var ErrUnsupported = errors.New("webgl: webgl is not supported")

var contextTypes = []string{
	"webgl",
	"experimental-webgl",
	"webkit-3d",
	"moz-webgl",
}

// ContextTypes returns the context types tried by Create3DContext, in order.
func ContextTypes() []string {
	return append([]string(nil), contextTypes...)
}

// Create3DContext returns the first context s hands out for ContextTypes.
// Errors from individual types are skipped. If every type fails, or s is
// nil, Create3DContext returns ErrUnsupported.
func Create3DContext(s Surface, attrs Attributes) (Context, error) {
	if s == nil {
		return nil, ErrUnsupported
	}
	for _, typ := range contextTypes {
		ctx, err := s.GetContext(typ, attrs)
		if err != nil {
			zap.L().Debug("webgl: context type failed", zap.String("type", typ), zap.Error(err))
			continue
		}
		if ctx != nil {
			zap.L().Debug("webgl: context created", zap.String("type", typ))
			return ctx, nil
		}
	}
	return nil, ErrUnsupported
}

// Setup is Create3DContext with error reporting. If s is an EventTarget,
// creation error notifications are forwarded to onError with their status
// message. If no context could be created, onError is also called with the
// empty string, so a single failure may be reported twice. A nil onError is
// ignored.
func Setup(s Surface, attrs Attributes, onError func(msg string)) (Context, error) {
	if onError == nil {
		onError = func(string) {}
	}
	registered := false
	if t, ok := s.(EventTarget); ok {
		registered = t.AddEventListener(CreationErrorEvent, func(e ContextEvent) {
			onError(e.StatusMessage)
		})
	}
	if !registered {
		zap.L().Debug("webgl: surface has no event registration")
	}
	ctx, err := Create3DContext(s, attrs)
	if err != nil {
		onError("")
		return nil, err
	}
	return ctx, nil
}

// OnContextLost registers handlers for context loss and restoration. A nil
// handler is skipped. It reports false if s delivers no notifications.
func OnContextLost(s Surface, lost, restored func(ContextEvent)) bool {
	t, ok := s.(EventTarget)
	if !ok {
		return false
	}
	if lost != nil && !t.AddEventListener(ContextLostEvent, lost) {
		return false
	}
	if restored != nil && !t.AddEventListener(ContextRestoredEvent, restored) {
		return false
	}
	return true
}
