// SPDX-License-Identifier: Unlicense OR MIT

package anim

import "syscall/js"

type jsHost struct {
	global js.Value
}

// DefaultHost returns the JavaScript global object.
func DefaultHost() Host {
	return jsHost{global: js.Global()}
}

func (h jsHost) Has(name string) bool {
	return h.global.Get(name).Truthy()
}

func (h jsHost) Number(name string) float64 {
	v := h.global.Get(name)
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

func (h jsHost) Call(name string, args ...interface{}) {
	for i, a := range args {
		args[i] = jsArg(a)
	}
	h.global.Call(name, args...)
}

// jsArg converts a to a value js.ValueOf accepts. Values without a
// JavaScript representation become undefined.
func jsArg(a interface{}) interface{} {
	switch a := a.(type) {
	case nil, js.Value, js.Func, bool, string, float64, int:
		return a
	case FrameCallback:
		return funcOnce(a)
	case interface{ Element() js.Value }:
		return a.Element()
	default:
		return js.Undefined()
	}
}

// funcOnce wraps cb in a js.Func that is released after its first call.
func funcOnce(cb FrameCallback) js.Func {
	var jsf js.Func
	jsf = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		jsf.Release()
		var ts float64
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			ts = args[0].Float()
		}
		cb(ts)
		return nil
	})
	return jsf
}
