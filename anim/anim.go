// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim provides animation time and frame scheduling on top of whatever
the host offers.

Both are chosen from ordered lists of candidates the first time they are
used. In a browser the candidates are the standard globals followed by their
vendor prefixed variants; elsewhere, and when no candidate is available, a
wall clock and a timer at roughly 70Hz take over.

A frame request is single shot. Request the next frame from the callback, or
use Animate, to keep animating:

	anim.RequestAnimationFrame(cnv, func(ts float64) {
		draw(ts)
	})

In a browser callbacks run on the event loop. With the timer fallback each
callback runs on a goroutine of its own.
*/
package anim

import (
	"context"
	"fmt"
	"sync"
)

// Host is the global namespace of the environment.
type Host interface {
	// Has reports whether the named global is set to a truthy value.
	Has(name string) bool
	// Number returns the numeric value of the named global.
	Number(name string) float64
	// Call calls the named global function with args. FrameCallback
	// arguments are converted to host functions.
	Call(name string, args ...interface{})
}

var (
	defaultOnce   sync.Once
	defaultClock  *Clock
	defaultFrames *Frames
)

func defaults() {
	h := DefaultHost()
	defaultClock = NewClock(GlobalClocks(h)...)
	defaultFrames = NewFrames(GlobalSchedulers(h)...)
}

// AnimationTime returns the current animation time in milliseconds from the
// process wide Clock.
func AnimationTime() float64 {
	defaultOnce.Do(defaults)
	return defaultClock.Now()
}

// RequestAnimationFrame schedules a single call of cb with the process wide
// Frames.
func RequestAnimationFrame(el Element, cb FrameCallback) {
	defaultOnce.Do(defaults)
	defaultFrames.RequestFrame(el, cb)
}

// RequestFrameFunc adapts a function to a Requester.
type RequestFrameFunc func(el Element, cb FrameCallback)

func (f RequestFrameFunc) RequestFrame(el Element, cb FrameCallback) {
	f(el, cb)
}

// Animate calls fn for every frame until ctx is done. Frames are requested
// from r one at a time, each from the previous frame's callback. Animate
// returns immediately.
func Animate(ctx context.Context, r Requester, el Element, fn FrameCallback) {
	var frame FrameCallback
	frame = func(ts float64) {
		if ctx.Err() != nil {
			return
		}
		fn(ts)
		if ctx.Err() != nil {
			return
		}
		r.RequestFrame(el, frame)
	}
	r.RequestFrame(el, frame)
}

type typeName struct {
	v interface{}
}

func (t typeName) String() string {
	return fmt.Sprintf("%T", t.v)
}

func describe(v interface{}) fmt.Stringer {
	if s, ok := v.(fmt.Stringer); ok {
		return s
	}
	return typeName{v}
}
