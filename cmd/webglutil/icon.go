// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const faviconSize = 32

func buildFavicon(dst, icon string) (err error) {
	f, err := os.Open(icon)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}
	scaled := image.NewNRGBA(image.Rectangle{Max: image.Point{X: faviconSize, Y: faviconSize}})
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(w, scaled)
}
