// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

package anim

type nativeHost struct{}

// DefaultHost returns a Host without globals.
func DefaultHost() Host {
	return nativeHost{}
}

func (nativeHost) Has(name string) bool {
	return false
}

func (nativeHost) Number(name string) float64 {
	return 0
}

func (nativeHost) Call(name string, args ...interface{}) {}
