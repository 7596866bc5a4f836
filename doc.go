// Package effects renders bitmap effects around and inside a shape: drop
// shadow, outer glow, inner shadow, inner glow and color overlay.
//
// # Overview
//
// A Set holds at most one effect of each Kind. Effects are edited through
// named properties, the way a property panel or scripting layer would, and
// new effects start from sensible defaults:
//
//	var s effects.Set
//	s.SetNamed(effects.DropShadow, "distance", 8)
//	s.SetNamed(effects.DropShadow, "color", "#202040")
//	s.SetNamed(effects.OuterGlow, "size", 12)
//
// # Geometry
//
// Effects reach beyond the shape they decorate. Set.Bounds returns the area
// a shape covers once drawn with its effects, and Set.Clip the part of the
// shape's pixels needed to redraw a given area.
//
// # Rendering
//
// Render draws a shape and its effects into a blur.Raster. Blurred effects
// stream their masks from package blur one scanline at a time, so memory use
// grows with the blur radius rather than the size of the shape:
//
//	dst := blur.NewRaster(s.Bounds(shape))
//	err := effects.Render(&s, shape, dst, src)
//
// Only normal (source-over) blending is built in. Other blend modes are
// supplied by the caller through WithCompositor.
//
// # Persistence
//
// Encode and Decode read and write a compact big-endian binary form. The
// encoding is bit-exact: decoding and re-encoding returns the same bytes,
// and data written by later versions with extra trailing fields still
// decodes. Package preset stores named sets in SQLite.
//
// # Coordinate System
//
// Pixel coordinates follow image.Rectangle: the origin is at the top left
// and y grows downwards. Shadow angles are in degrees, measured clockwise
// from the positive x axis.
package effects
