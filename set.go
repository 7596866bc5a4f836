package effects

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Largest values of the scaled fields.
const (
	maxSize     = 255
	maxDistance = 32767
)

// Set is a collection of at most one effect of each kind.
//
// A Set is plain data: assigning one Set to another copies it, and no two
// Sets share state. The zero value is the empty set, and a Set whose last
// effect is cleared becomes equal to the zero value again, so Sets can be
// compared with ==.
type Set struct {
	mask    Mask
	shadows [2]ShadowEffect // DropShadow, InnerShadow
	glows   [2]GlowEffect   // OuterGlow, InnerGlow
	overlay LayerEffect
}

// Mask returns the presence bitmask.
func (s *Set) Mask() Mask { return s.mask }

// Has reports whether an effect of kind k is present.
func (s *Set) Has(k Kind) bool { return k.Valid() && s.mask.Has(k) }

// IsEmpty reports whether the set has no effects.
func (s *Set) IsEmpty() bool { return s.mask == 0 }

// Len returns the number of effects present.
func (s *Set) Len() int { return bits.OnesCount16(uint16(s.mask)) }

// Equal reports whether s and o hold the same effects with the same values.
func (s *Set) Equal(o *Set) bool { return *s == *o }

// Effect returns the effect of kind k.
func (s *Set) Effect(k Kind) (Effect, bool) {
	if !s.Has(k) {
		return nil, false
	}
	switch k.Category() {
	case CategoryShadow:
		return s.shadows[shadowSlot(k)], true
	case CategoryGlow:
		return s.glows[glowSlot(k)], true
	default:
		return s.overlay, true
	}
}

// Shadow returns the shadow of kind k. It reports false if k is not a
// shadow kind or no such shadow is present.
func (s *Set) Shadow(k Kind) (ShadowEffect, bool) {
	if !s.Has(k) || k.Category() != CategoryShadow {
		return ShadowEffect{}, false
	}
	return s.shadows[shadowSlot(k)], true
}

// Glow returns the glow of kind k. It reports false if k is not a glow kind
// or no such glow is present.
func (s *Set) Glow(k Kind) (GlowEffect, bool) {
	if !s.Has(k) || k.Category() != CategoryGlow {
		return GlowEffect{}, false
	}
	return s.glows[glowSlot(k)], true
}

// Overlay returns the color overlay, if present.
func (s *Set) Overlay() (LayerEffect, bool) {
	if !s.Has(ColorOverlay) {
		return LayerEffect{}, false
	}
	return s.overlay, true
}

// Put stores e as the effect of kind k, replacing any existing one. The
// record must have k's category.
func (s *Set) Put(k Kind, e Effect) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if e == nil || e.Category() != k.Category() {
		return fmt.Errorf("%w: %v needs a %v record", ErrCategoryMismatch, k, k.Category())
	}
	switch e := e.(type) {
	case ShadowEffect:
		s.shadows[shadowSlot(k)] = e
	case GlowEffect:
		s.glows[glowSlot(k)] = e
	case LayerEffect:
		s.overlay = e
	default:
		return fmt.Errorf("%w: %T", ErrCategoryMismatch, e)
	}
	s.mask |= k.Bit()
	return nil
}

// Clear removes the effect of kind k and reports whether it was present.
func (s *Set) Clear(k Kind) bool {
	if !s.Has(k) {
		return false
	}
	s.mask &^= k.Bit()
	switch k.Category() {
	case CategoryShadow:
		s.shadows[shadowSlot(k)] = ShadowEffect{}
	case CategoryGlow:
		s.glows[glowSlot(k)] = GlowEffect{}
	default:
		s.overlay = LayerEffect{}
	}
	s.normalize()
	return true
}

// Reset removes every effect.
func (s *Set) Reset() { *s = Set{} }

// ScaleSizes multiplies the blur size of every present shadow and glow by
// factor, and the distance of every shadow. Results are clamped to the
// field ranges; negative factors count as zero. Scaling by 1 never changes
// the set.
func (s *Set) ScaleSizes(factor int) {
	factor = clamp(factor, 0, maxDistance+1)
	for i, k := range [...]Kind{DropShadow, InnerShadow} {
		if !s.mask.Has(k) {
			continue
		}
		sh := &s.shadows[i]
		sh.Size = uint8(scaleClamped(int(sh.Size), factor, maxSize))
		sh.Distance = uint16(scaleClamped(int(sh.Distance), factor, maxDistance))
	}
	for i, k := range [...]Kind{OuterGlow, InnerGlow} {
		if !s.mask.Has(k) {
			continue
		}
		g := &s.glows[i]
		g.Size = uint8(scaleClamped(int(g.Size), factor, maxSize))
	}
}

// String lists the present kinds.
func (s *Set) String() string {
	return "effects.Set{" + s.mask.String() + "}"
}

// normalize restores the canonical empty form once no effect is left.
func (s *Set) normalize() {
	if s.mask == 0 {
		*s = Set{}
	}
}

func shadowSlot(k Kind) int {
	if k == InnerShadow {
		return 1
	}
	return 0
}

func glowSlot(k Kind) int {
	if k == InnerGlow {
		return 1
	}
	return 0
}

// scaleClamped returns v*factor limited to bound.
func scaleClamped(v, factor, bound int) int {
	return clamp(v*factor, 0, bound)
}

// clamp limits v to [lo, hi].
func clamp[T constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
