package effects

import (
	"image"
	"math"

	"github.com/gogpu/effects/blur"
)

// Effect is one effect record. It is one of LayerEffect, ShadowEffect or
// GlowEffect; the Category tells which.
type Effect interface {
	// Category returns the record shape.
	Category() Category

	// Layer returns the color and blend mode every record carries.
	Layer() LayerEffect

	isEffect()
}

// LayerEffect is the record of a color overlay and the common part of every
// other record.
type LayerEffect struct {
	Color     Color
	BlendMode BlendMode
}

// Category implements Effect.
func (e LayerEffect) Category() Category { return CategoryLayer }

// Layer implements Effect.
func (e LayerEffect) Layer() LayerEffect { return e }

// Opacity returns the alpha channel of the effect color.
func (e LayerEffect) Opacity() uint8 { return e.Color.A() }

func (LayerEffect) isEffect() {}

// BlurEffect holds the blur parameters shared by shadows and glows.
type BlurEffect struct {
	Filter blur.Filter
	Size   uint8 // blur radius in pixels
	Spread uint8
}

// Params returns the blur parameters for the blur package.
func (b BlurEffect) Params() blur.Params {
	return blur.Params{
		Radius: int(b.Size),
		Spread: b.Spread,
		Filter: b.Filter,
	}
}

// ShadowEffect is the record of a drop or inner shadow.
type ShadowEffect struct {
	LayerEffect
	BlurEffect

	Angle    uint16 // degrees, 0-359
	Distance uint16 // pixels, 0-32767
	Knockout bool   // clip a drop shadow out of the shape's opaque interior
}

// Category implements Effect.
func (e ShadowEffect) Category() Category { return CategoryShadow }

// Offset returns the displacement of the shadow from the shape.
func (e ShadowEffect) Offset() image.Point {
	return Offset(int(e.Angle), int(e.Distance))
}

// GlowEffect is the record of an outer or inner glow.
type GlowEffect struct {
	LayerEffect
	BlurEffect

	Range  uint8
	Source Source // inner glow only
}

// Category implements Effect.
func (e GlowEffect) Category() Category { return CategoryGlow }

// Offset returns the displacement of a shadow cast distance pixels in the
// direction angle (degrees, clockwise from the positive x axis since y grows
// downwards). Each component is rounded half up.
func Offset(angle, distance int) image.Point {
	rad := float64(angle) * math.Pi / 180
	d := float64(distance)
	return image.Point{
		X: int(math.Floor(0.5 + d*math.Cos(rad))),
		Y: int(math.Floor(0.5 + d*math.Sin(rad))),
	}
}

// Default returns the record a kind starts with when one of its properties
// is first written: 75% black, normal blending, a 5 pixel three-pass box
// blur, shadows cast 5 pixels at 60 degrees with knockout, glows at full
// range from the edge.
func Default(k Kind) Effect {
	layer := LayerEffect{Color: DefaultColor, BlendMode: BlendNormal}
	bl := BlurEffect{Filter: blur.ThreePassBox, Size: 5, Spread: 0}

	switch k.Category() {
	case CategoryShadow:
		return ShadowEffect{
			LayerEffect: layer,
			BlurEffect:  bl,
			Angle:       60,
			Distance:    5,
			Knockout:    true,
		}
	case CategoryGlow:
		return GlowEffect{
			LayerEffect: layer,
			BlurEffect:  bl,
			Range:       255,
			Source:      SourceEdge,
		}
	default:
		return layer
	}
}

// blurOf returns the blur parameters of e, if it has any.
func blurOf(e Effect) (BlurEffect, bool) {
	switch e := e.(type) {
	case ShadowEffect:
		return e.BlurEffect, true
	case GlowEffect:
		return e.BlurEffect, true
	default:
		return BlurEffect{}, false
	}
}
