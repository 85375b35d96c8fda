// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
)

type canvasElement struct {
	el js.Value
}

func (c canvasElement) Element() js.Value {
	return c.el
}

func TestJSArg(t *testing.T) {
	obj := js.Global().Get("Object").New()
	assert.Nil(t, jsArg(nil))
	assert.True(t, jsArg(obj).(js.Value).Equal(obj))
	assert.True(t, jsArg(canvasElement{el: obj}).(js.Value).Equal(obj))
	assert.Equal(t, "canvas", jsArg("canvas"))

	unknown := jsArg(struct{ X int }{1})
	assert.True(t, unknown.(js.Value).IsUndefined())
	assert.NotPanics(t, func() {
		js.ValueOf(jsArg(make(chan int)))
	})
}

func TestJSHostCallUnknownElement(t *testing.T) {
	var got []js.Value
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		got = args
		return nil
	})
	defer fn.Release()
	js.Global().Set("testRequestFrame", fn)
	defer js.Global().Delete("testRequestFrame")

	h := DefaultHost()
	assert.NotPanics(t, func() {
		h.Call("testRequestFrame", FrameCallback(func(float64) {}), struct{}{})
	})
	if assert.Len(t, got, 2) {
		assert.Equal(t, js.TypeFunction, got[0].Type())
		assert.True(t, got[1].IsUndefined())
	}
}
