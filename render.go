package effects

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/effects/blur"
	"github.com/gogpu/effects/internal/packed"
	"github.com/gogpu/effects/internal/parallel"
)

// CompositeFunc blends one scanline of an effect into dst. c is the effect
// color, premultiplied and in the pixel layout of blur.Raster; mask holds
// the coverage of each pixel and has the same length as dst.
type CompositeFunc func(dst []uint32, c uint32, mask []byte)

// Compositor supplies the blending for a blend mode. Returning nil selects
// the built-in normal (source-over) compositing.
type Compositor func(mode BlendMode) CompositeFunc

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	compositor Compositor
	workers    int
}

// WithCompositor sets the compositor used for blend modes other than
// normal. Without one, every effect composites as normal.
func WithCompositor(c Compositor) RenderOption {
	return func(o *renderOptions) {
		o.compositor = c
	}
}

// WithWorkers splits the output into horizontal bands and draws them on n
// goroutines. Each band runs its own blurs, so the result is identical to a
// single-threaded render. n <= 0 uses GOMAXPROCS; the default is 1.
//
// A Compositor used with WithWorkers must be safe for concurrent use.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
		if n <= 0 {
			o.workers = -1
		}
	}
}

// Render draws shape with the effects in s into dst.
//
// dst.Rect is the area to redraw and src holds the shape's own pixels; it
// must cover at least s.Clip(shape, dst.Rect). Layers are drawn back to
// front: drop shadow, outer glow, the shape itself, inner shadow, inner
// glow, color overlay.
//
// Render only fails on invalid rasters or on an effect whose filter is not
// defined, and then it leaves dst untouched.
func Render(s *Set, shape image.Rectangle, dst, src blur.Raster, opts ...RenderOption) error {
	o := renderOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if !dst.Valid() || !src.Valid() {
		return fmt.Errorf("effects: render: %w", blur.ErrInvalidRaster)
	}
	for _, k := range s.mask.Kinds() {
		e, _ := s.Effect(k)
		if b, ok := blurOf(e); ok && !b.Filter.Valid() {
			return fmt.Errorf("effects: render %v: %w: %d", k, blur.ErrUnknownFilter, uint8(b.Filter))
		}
	}

	bands := parallel.Bands(dst.Rect, parallel.BandHeight)
	if o.workers == 1 || len(bands) < 2 {
		return renderClip(s, shape, dst, src, o.compositor)
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	var (
		mu   sync.Mutex
		errs []error
	)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			if err := renderClip(s, shape, dst.SubRaster(b), src, o.compositor); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}
	}
	pool.ExecuteAll(work)
	return errors.Join(errs...)
}

// renderClip draws every layer of s that falls inside dst.Rect.
func renderClip(s *Set, shape image.Rectangle, dst, src blur.Raster, comp Compositor) error {
	var below, above []layer
	if sh, ok := s.Shadow(DropShadow); ok {
		below = append(below, shadowLayer(DropShadow, sh, shape, dst.Rect))
	}
	if g, ok := s.Glow(OuterGlow); ok && g.Size > 0 {
		below = append(below, glowLayer(OuterGlow, g, shape, dst.Rect))
	}
	if sh, ok := s.Shadow(InnerShadow); ok {
		above = append(above, shadowLayer(InnerShadow, sh, shape, dst.Rect))
	}
	if g, ok := s.Glow(InnerGlow); ok && g.Size > 0 {
		above = append(above, glowLayer(InnerGlow, g, shape, dst.Rect))
	}
	if ov, ok := s.Overlay(); ok {
		region := shape.Intersect(dst.Rect)
		above = append(above, layer{
			kind:     ColorOverlay,
			region:   region,
			blurRect: region,
			params:   blur.Params{Filter: blur.OnePassBox},
			effect:   ov,
		})
	}

	for _, l := range below {
		if err := l.render(dst, src, comp); err != nil {
			return err
		}
	}
	drawSource(shape, dst, src)
	for _, l := range above {
		if err := l.render(dst, src, comp); err != nil {
			return err
		}
	}
	return nil
}

// layer is one effect ready to draw: the output region, the blur output
// rectangle aligned with it, and how to shape the mask.
type layer struct {
	kind      Kind
	region    image.Rectangle
	blurRect  image.Rectangle
	params    blur.Params
	effect    LayerEffect
	attenuate func(mask []byte, src []uint32)
}

func shadowLayer(k Kind, sh ShadowEffect, shape, clip image.Rectangle) layer {
	d := sh.Offset()
	l := layer{
		kind:   k,
		params: sh.Params(),
		effect: sh.LayerEffect,
	}
	if k == InnerShadow {
		l.region = clip.Intersect(shape)
		l.attenuate = attenuateInvertedInner
	} else {
		l.region = clip.Intersect(outset(shape, int(sh.Size)).Add(d))
		if sh.Knockout {
			l.attenuate = attenuateOuter
		}
	}
	l.blurRect = l.region.Sub(d)
	return l
}

func glowLayer(k Kind, g GlowEffect, shape, clip image.Rectangle) layer {
	l := layer{
		kind:   k,
		params: g.Params(),
		effect: g.LayerEffect,
	}
	if k == InnerGlow {
		l.region = shape.Intersect(clip)
		if g.Source == SourceEdge {
			l.attenuate = attenuateInvertedInner
		} else {
			l.attenuate = attenuateInner
		}
	} else {
		l.region = outset(shape, int(g.Size)).Intersect(clip)
	}
	l.blurRect = l.region
	return l
}

func (l *layer) render(dst, src blur.Raster, comp Compositor) error {
	if l.region.Empty() {
		return nil
	}
	Logger().Debug("effects: render layer",
		"kind", l.kind,
		"region", l.region,
		"blur", l.blurRect,
		"filter", l.params.Filter,
		"radius", l.params.Radius)

	st, err := blur.Begin(l.params, src.Rect, l.blurRect, src)
	if err != nil {
		return fmt.Errorf("effects: render %v: %w", l.kind, err)
	}
	defer st.End()

	composite := packed.FillMasked
	if comp != nil && l.effect.BlendMode != BlendNormal {
		if f := comp(l.effect.BlendMode); f != nil {
			composite = f
		}
	}
	c := packed.SwapRB(packed.Premultiply(uint32(l.effect.Color)))

	// Columns, relative to the region, where src has pixels to attenuate by.
	r := l.region
	tLeft := max(r.Min.X, src.Rect.Min.X) - r.Min.X
	tRight := min(r.Max.X, src.Rect.Max.X) - r.Min.X
	count := max(tRight-tLeft, 0)

	mask := make([]byte, r.Dx())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		st.Process(mask)
		if l.attenuate != nil && count > 0 && y >= src.Rect.Min.Y && y < src.Rect.Max.Y {
			off := r.Min.X + tLeft - src.Rect.Min.X
			l.attenuate(mask[tLeft:tLeft+count], src.Row(y)[off:off+count])
		}
		row := dst.Row(y)[r.Min.X-dst.Rect.Min.X:]
		composite(row[:r.Dx()], c, mask)
	}
	return nil
}

// drawSource composites the shape's own pixels over dst.
func drawSource(shape image.Rectangle, dst, src blur.Raster) {
	r := shape.Intersect(dst.Rect).Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := dst.Row(y)[r.Min.X-dst.Rect.Min.X:][:r.Dx()]
		s := src.Row(y)[r.Min.X-src.Rect.Min.X:][:r.Dx()]
		packed.OverRow(d, s)
	}
}

// attenuateInner keeps the mask where the source is opaque.
func attenuateInner(mask []byte, src []uint32) {
	for i, p := range src {
		mask[i] = packed.ScaleBounded(mask[i], uint8(p>>24))
	}
}

// attenuateInvertedInner inverts the mask, then keeps it where the source
// is opaque.
func attenuateInvertedInner(mask []byte, src []uint32) {
	for i, p := range src {
		mask[i] = packed.ScaleBounded(255-mask[i], uint8(p>>24))
	}
}

// attenuateOuter keeps the mask where the source is transparent.
func attenuateOuter(mask []byte, src []uint32) {
	for i, p := range src {
		mask[i] = packed.ScaleBounded(mask[i], 255-uint8(p>>24))
	}
}
