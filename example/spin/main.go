// SPDX-License-Identifier: Unlicense OR MIT

//go:build js
// +build js

// Command spin clears a <canvas id="webgl"> to a colour cycling with the
// animation time. Package it with webglutil.
package main

import (
	"context"
	"math"
	"syscall/js"

	"go.uber.org/zap"

	"webglutil.org/anim"
	"webglutil.org/webgl"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	doc := js.Global().Get("document")
	cnv, err := webgl.NewCanvas(doc.Call("getElementById", "webgl"))
	if err != nil {
		logger.Fatal("no canvas", zap.Error(err))
	}
	defer cnv.Release()

	ctx, err := webgl.Setup(cnv, webgl.Attributes{
		"antialias":       false,
		"powerPreference": "high-performance",
	}, func(msg string) {
		logger.Error("context creation failed", zap.String("status", msg))
	})
	if err != nil {
		logger.Fatal("setup", zap.Error(err))
	}
	gl := webgl.ContextValue(ctx)

	animCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	webgl.OnContextLost(cnv, func(webgl.ContextEvent) {
		logger.Warn("context lost")
		cancel()
	}, nil)

	start := anim.AnimationTime()
	colorBufferBit := gl.Get("COLOR_BUFFER_BIT")
	anim.Animate(animCtx, anim.RequestFrameFunc(anim.RequestAnimationFrame), cnv, func(ts float64) {
		t := (anim.AnimationTime() - start) / 1000
		el := cnv.Element()
		if w, h := el.Get("clientWidth").Int(), el.Get("clientHeight").Int(); w != el.Get("width").Int() || h != el.Get("height").Int() {
			el.Set("width", w)
			el.Set("height", h)
			gl.Call("viewport", 0, 0, w, h)
		}
		gl.Call("clearColor", 0.5+0.5*math.Sin(t), 0.5+0.5*math.Sin(t+2), 0.5+0.5*math.Sin(t+4), 1)
		gl.Call("clear", colorBufferBit)
	})
	<-animCtx.Done()
}
