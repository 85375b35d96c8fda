// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package anim

import (
	"time"

	"golang.org/x/sys/unix"
)

// MonotonicClock reads CLOCK_MONOTONIC. Its epoch is unspecified, usually
// system boot. It is not a default candidate; pass it to NewClock to prefer
// it over the wall clock:
//
//	clk := anim.NewClock(append(anim.GlobalClocks(anim.DefaultHost()), anim.MonotonicClock{})...)
type MonotonicClock struct{}

func (MonotonicClock) Available() bool {
	var ts unix.Timespec
	return unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts) == nil
}

func (MonotonicClock) Now() float64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return WallClock{}.Now()
	}
	return float64(ts.Nano()) / float64(time.Millisecond)
}

func (MonotonicClock) String() string {
	return "CLOCK_MONOTONIC"
}
