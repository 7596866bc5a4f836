// Package packed implements 8-bit channel arithmetic on 32-bit pixels that
// hold four premultiplied channels. Every function rounds the way
// ScaleBounded does, so results are identical whichever channel order the
// pixels use.
package packed

// ScaleBounded returns a*b/255 rounded to nearest.
func ScaleBounded(a, b uint8) uint8 {
	u := uint32(a)*uint32(b) + 0x80
	return uint8((u + u>>8) >> 8)
}

// Scale multiplies each channel of x by a/255.
func Scale(x uint32, a uint8) uint32 {
	s := uint32(a)

	u := (x&0x00FF00FF)*s + 0x00800080
	u = (u + u>>8&0x00FF00FF) >> 8 & 0x00FF00FF

	v := (x>>8&0x00FF00FF)*s + 0x00800080
	v = (v + v>>8&0x00FF00FF) & 0xFF00FF00

	return u | v
}

// Over composites the premultiplied pixel src over dst.
func Over(dst, src uint32) uint32 {
	return Scale(dst, 255-uint8(src>>24)) + src
}

// OverRow composites src over dst pixel by pixel. Both rows must be the
// same length.
func OverRow(dst, src []uint32) {
	for i, s := range src[:len(dst)] {
		switch s >> 24 {
		case 0:
		case 0xFF:
			dst[i] = s
		default:
			dst[i] = Over(dst[i], s)
		}
	}
}

// FillMasked composites the premultiplied color c, scaled per pixel by
// mask, over dst. Pixels where mask is 0 are left alone.
func FillMasked(dst []uint32, c uint32, mask []byte) {
	for i, m := range mask[:len(dst)] {
		if m == 0 {
			continue
		}
		dst[i] = Over(dst[i], Scale(c, m))
	}
}

// Premultiply returns the channels of the non-premultiplied pixel p scaled
// by its alpha.
func Premultiply(p uint32) uint32 {
	return Scale(p|0xFF000000, uint8(p>>24))
}

// SwapRB exchanges the bytes at bits 0-7 and 16-23, converting between
// 0xAARRGGBB and 0xAABBGGRR.
func SwapRB(p uint32) uint32 {
	return p&0xFF00FF00 | p>>16&0xFF | p&0xFF<<16
}
