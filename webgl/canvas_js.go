// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"errors"
	"fmt"
	"syscall/js"
)

// Canvas is a Surface and EventTarget backed by a <canvas> element.
type Canvas struct {
	el         js.Value
	cleanfuncs []func()
}

// NewCanvas wraps the <canvas> element el.
func NewCanvas(el js.Value) (*Canvas, error) {
	if !el.Truthy() {
		return nil, errors.New("webgl: no <canvas> element given")
	}
	return &Canvas{el: el}, nil
}

// Element returns the wrapped <canvas> element.
func (c *Canvas) Element() js.Value {
	return c.el
}

// GetContext calls getContext on the element. Exceptions thrown by the
// browser are returned as errors.
func (c *Canvas) GetContext(contextType string, attrs Attributes) (ctx Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			ctx, err = nil, fmt.Errorf("webgl: getContext(%q): %w", contextType, jsErr)
		}
	}()
	var v js.Value
	if attrs != nil {
		v = c.el.Call("getContext", contextType, map[string]interface{}(attrs))
	} else {
		v = c.el.Call("getContext", contextType)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	return v, nil
}

// AddEventListener registers fn with the element's addEventListener. The
// default action of context lost events is prevented so that the context can
// be restored.
func (c *Canvas) AddEventListener(eventType string, fn func(ContextEvent)) bool {
	if !c.el.Get("addEventListener").Truthy() {
		return false
	}
	jsf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := ContextEvent{Type: eventType}
		if len(args) > 0 {
			ev := args[0]
			if eventType == ContextLostEvent {
				ev.Call("preventDefault")
			}
			if msg := ev.Get("statusMessage"); msg.Type() == js.TypeString {
				e.StatusMessage = msg.String()
			}
		}
		fn(e)
		return nil
	})
	c.el.Call("addEventListener", eventType, jsf, false)
	c.cleanfuncs = append(c.cleanfuncs, func() {
		c.el.Call("removeEventListener", eventType, jsf, false)
		jsf.Release()
	})
	return true
}

// Release removes the listeners added by AddEventListener.
func (c *Canvas) Release() {
	// Cleanup in the opposite order of registration.
	for i := len(c.cleanfuncs) - 1; i >= 0; i-- {
		c.cleanfuncs[i]()
	}
	c.cleanfuncs = nil
}

// ContextValue returns the JavaScript object of a context returned by a
// Canvas, or js.Null() for any other context.
func ContextValue(ctx Context) js.Value {
	if v, ok := ctx.(js.Value); ok {
		return v
	}
	return js.Null()
}
