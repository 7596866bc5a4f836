package effects

import "image"

// Clip returns the part of the source needed to render shape, drawn with
// the effects in s, into the output area clip.
//
// Shadows read the shape displaced against their offset; blurred effects
// read an extra size pixels around what they cover. The result always lies
// within shape.
func (s *Set) Clip(shape, clip image.Rectangle) image.Rectangle {
	visible := shape.Intersect(clip)
	r := visible

	for _, k := range [...]Kind{DropShadow, InnerShadow} {
		if sh, ok := s.Shadow(k); ok {
			d := sh.Offset()
			need := shape.Intersect(clip.Sub(d))
			r = r.Union(outset(need, int(sh.Size)))
		}
	}
	for _, k := range [...]Kind{OuterGlow, InnerGlow} {
		if g, ok := s.Glow(k); ok {
			r = r.Union(outset(visible, int(g.Size)))
		}
	}
	return shape.Intersect(r)
}

// Bounds returns the area drawn when shape is rendered with the effects in
// s. Only a drop shadow and an outer glow reach outside the shape.
func (s *Set) Bounds(shape image.Rectangle) image.Rectangle {
	r := shape
	if sh, ok := s.Shadow(DropShadow); ok {
		r = r.Union(outset(shape.Add(sh.Offset()), int(sh.Size)))
	}
	if g, ok := s.Glow(OuterGlow); ok {
		r = r.Union(outset(shape, int(g.Size)))
	}
	return r
}

// InteriorOnly reports whether every effect in s stays inside the shape,
// i.e. s has neither a drop shadow nor an outer glow. An empty set is
// interior-only.
func (s *Set) InteriorOnly() bool {
	return s.mask&(DropShadow.Bit()|OuterGlow.Bit()) == 0
}

// outset grows r by n pixels on every side. An empty rectangle stays empty.
func outset(r image.Rectangle, n int) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return r.Inset(-n)
}
