// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// ClockSource is a candidate source of animation time.
type ClockSource interface {
	// Available reports whether the source can be used.
	Available() bool
	// Now returns the current time in milliseconds since an epoch chosen
	// by the source.
	Now() float64
}

// Clock returns animation time from the first available of a list of
// sources. The sources are probed once, on first use, and the selection is
// kept for the lifetime of the Clock.
type Clock struct {
	once    sync.Once
	sources []ClockSource
	src     ClockSource
}

var clockNames = []string{
	"animationTime",
	"webkitAnimationTime",
	"mozAnimationTime",
	"oAnimationTime",
	"msAnimationTime",
}

// ClockNames returns the host globals probed for animation time, in order.
func ClockNames() []string {
	return append([]string(nil), clockNames...)
}

// NewClock returns a Clock selecting among sources, falling back to
// WallClock.
func NewClock(sources ...ClockSource) *Clock {
	return &Clock{sources: sources}
}

// Now returns the current animation time in milliseconds.
func (c *Clock) Now() float64 {
	return c.Source().Now()
}

// Source returns the selected source.
func (c *Clock) Source() ClockSource {
	c.once.Do(c.probe)
	return c.src
}

func (c *Clock) probe() {
	c.src = WallClock{}
	for _, s := range c.sources {
		if s.Available() {
			c.src = s
			break
		}
	}
	zap.L().Debug("anim: clock selected", zap.Stringer("source", describe(c.src)))
}

// GlobalClock reads animation time from a numeric host global.
type GlobalClock struct {
	Host Host
	Name string
}

func (g GlobalClock) Available() bool {
	return g.Host.Has(g.Name)
}

// Now returns the current value of the global.
func (g GlobalClock) Now() float64 {
	return g.Host.Number(g.Name)
}

func (g GlobalClock) String() string {
	return g.Name
}

// WallClock is the fallback ClockSource: milliseconds since the Unix epoch.
type WallClock struct{}

func (WallClock) Available() bool {
	return true
}

func (WallClock) Now() float64 {
	return millis(time.Now())
}

func (WallClock) String() string {
	return "wall clock"
}

func millis(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}

// GlobalClocks returns a GlobalClock for each of ClockNames on h.
func GlobalClocks(h Host) []ClockSource {
	srcs := make([]ClockSource, len(clockNames))
	for i, name := range clockNames {
		srcs[i] = GlobalClock{Host: h, Name: name}
	}
	return srcs
}
