package main

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/effects"
)

// rasterize draws an antialiased shape filling r into a new image covering r.
func rasterize(kind string, r image.Rectangle, c effects.Color) (*image.RGBA, error) {
	img := image.NewRGBA(r)
	w, h := float32(r.Dx()), float32(r.Dy())

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	switch kind {
	case "rect":
		z.MoveTo(0, 0)
		z.LineTo(w, 0)
		z.LineTo(w, h)
		z.LineTo(0, h)
	case "ellipse":
		ellipse(z, w/2, h/2, w/2, h/2)
	default:
		return nil, fmt.Errorf("unknown shape %q (want rect or ellipse)", kind)
	}
	z.ClosePath()
	z.Draw(img, r, image.NewUniform(c), image.Point{})
	return img, nil
}

// ellipse adds an ellipse centred at (cx, cy) built from four cubic arcs.
func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	const k = 4 * (math.Sqrt2 - 1) / 3
	kx, ky := rx*k, ry*k

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
}
