// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// FrameCallback is called with the frame timestamp in milliseconds.
type FrameCallback func(ts float64)

// Element is the host element a frame is requested for. On js it is nil, a
// js.Value, or a value with an Element() js.Value method such as
// *webgl.Canvas. Other values are passed to the host as undefined.
type Element interface{}

// Requester schedules a single call of a FrameCallback.
type Requester interface {
	RequestFrame(el Element, cb FrameCallback)
}

// Scheduler is a candidate frame scheduling primitive.
type Scheduler interface {
	Requester
	// Available reports whether the scheduler can be used.
	Available() bool
}

// FallbackInterval is the delay used by TimerScheduler when none is set.
const FallbackInterval = time.Second / 70

// Frames schedules frame callbacks with the first available of a list of
// schedulers. The schedulers are probed once, on first use, and the
// selection is kept for the lifetime of the Frames.
type Frames struct {
	once   sync.Once
	scheds []Scheduler
	sched  Scheduler
}

var schedulerNames = []string{
	"requestAnimationFrame",
	"webkitRequestAnimationFrame",
	"mozRequestAnimationFrame",
	"oRequestAnimationFrame",
	"msRequestAnimationFrame",
}

// SchedulerNames returns the host globals probed for frame scheduling, in
// order.
func SchedulerNames() []string {
	return append([]string(nil), schedulerNames...)
}

// NewFrames returns a Frames selecting among scheds, falling back to a
// TimerScheduler.
func NewFrames(scheds ...Scheduler) *Frames {
	return &Frames{scheds: scheds}
}

// RequestFrame arranges for cb to be called once, at the next frame.
func (f *Frames) RequestFrame(el Element, cb FrameCallback) {
	f.Scheduler().RequestFrame(el, cb)
}

// Scheduler returns the selected scheduler.
func (f *Frames) Scheduler() Scheduler {
	f.once.Do(f.probe)
	return f.sched
}

func (f *Frames) probe() {
	f.sched = TimerScheduler{}
	for _, s := range f.scheds {
		if s.Available() {
			f.sched = s
			break
		}
	}
	zap.L().Debug("anim: scheduler selected", zap.Stringer("scheduler", describe(f.sched)))
}

// GlobalScheduler schedules frames with a host global function taking the
// callback first and the element second.
type GlobalScheduler struct {
	Host Host
	Name string
}

func (g GlobalScheduler) Available() bool {
	return g.Host.Has(g.Name)
}

func (g GlobalScheduler) RequestFrame(el Element, cb FrameCallback) {
	g.Host.Call(g.Name, cb, el)
}

func (g GlobalScheduler) String() string {
	return g.Name
}

// GlobalSchedulers returns a GlobalScheduler for each of SchedulerNames on
// h.
func GlobalSchedulers(h Host) []Scheduler {
	scheds := make([]Scheduler, len(schedulerNames))
	for i, name := range schedulerNames {
		scheds[i] = GlobalScheduler{Host: h, Name: name}
	}
	return scheds
}

// TimerScheduler is the fallback Scheduler. It calls the callback after
// Interval, or FallbackInterval if Interval is zero, with the wall clock
// time. The element is ignored.
//
// The callback runs on its own goroutine, not on the goroutine that
// requested the frame. Callbacks sharing state with other goroutines must
// synchronize.
type TimerScheduler struct {
	Interval time.Duration
}

func (TimerScheduler) Available() bool {
	return true
}

func (t TimerScheduler) RequestFrame(_ Element, cb FrameCallback) {
	d := t.Interval
	if d == 0 {
		d = FallbackInterval
	}
	time.AfterFunc(d, func() {
		cb(millis(time.Now()))
	})
}

func (TimerScheduler) String() string {
	return "timer"
}
