package blur

import (
	"image"

	"honnef.co/go/safeish"
)

// littleEndian reports whether the host stores the low byte of a word first.
// On such hosts the bytes of an image.RGBA pixel read as a uint32 put alpha
// in the top byte, which is the layout Raster expects.
var littleEndian = safeish.SliceCast[[]byte]([]uint16{1})[0] == 1

// Raster is a view of 32-bit premultiplied pixels in image.RGBA byte order
// read as little-endian words: alpha in the top byte, red in the low byte.
//
// Pix[0] is the pixel at Rect.Min and Stride is measured in pixels. A Raster
// does not own its memory: the caller keeps Pix alive for as long as any blur
// State created from it.
type Raster struct {
	Pix    []uint32
	Stride int
	Rect   image.Rectangle
}

// NewRaster allocates a transparent raster covering r.
func NewRaster(r image.Rectangle) Raster {
	r = r.Canon()
	return Raster{
		Pix:    make([]uint32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// FromRGBA returns a raster over the pixels of img. On little-endian hosts
// the raster shares memory with img, so writes through either are visible in
// both. Elsewhere the pixels are converted into a new buffer.
func FromRGBA(img *image.RGBA) Raster {
	if img == nil {
		return Raster{}
	}
	if littleEndian && img.Stride%4 == 0 {
		return Raster{
			Pix:    safeish.SliceCast[[]uint32](img.Pix[:len(img.Pix)&^3]),
			Stride: img.Stride / 4,
			Rect:   img.Rect,
		}
	}
	r := NewRaster(img.Rect)
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, y):]
		row := r.Row(y)
		for x := range row {
			p := src[x*4 : x*4+4]
			row[x] = uint32(p[3])<<24 | uint32(p[2])<<16 | uint32(p[1])<<8 | uint32(p[0])
		}
	}
	return r
}

// FromAlpha copies an alpha-only image into a new raster. Colour channels are
// set to the alpha value, which keeps the pixels valid premultiplied white.
func FromAlpha(img *image.Alpha) Raster {
	if img == nil {
		return Raster{}
	}
	r := NewRaster(img.Rect)
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, y):]
		row := r.Row(y)
		for x := range row {
			a := uint32(src[x])
			row[x] = a<<24 | a<<16 | a<<8 | a
		}
	}
	return r
}

// RGBA returns the raster as an *image.RGBA. On little-endian hosts the image
// shares memory with r; elsewhere it is a converted copy.
func (r Raster) RGBA() *image.RGBA {
	if littleEndian && len(r.Pix) > 0 {
		return &image.RGBA{
			Pix:    safeish.SliceCast[[]byte](r.Pix),
			Stride: r.Stride * 4,
			Rect:   r.Rect,
		}
	}
	img := image.NewRGBA(r.Rect)
	for y := r.Rect.Min.Y; y < r.Rect.Max.Y; y++ {
		dst := img.Pix[img.PixOffset(r.Rect.Min.X, y):]
		for x, p := range r.Row(y) {
			dst[x*4+0] = uint8(p)
			dst[x*4+1] = uint8(p >> 8)
			dst[x*4+2] = uint8(p >> 16)
			dst[x*4+3] = uint8(p >> 24)
		}
	}
	return img
}

// Bounds returns the rectangle covered by the raster.
func (r Raster) Bounds() image.Rectangle { return r.Rect }

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (r Raster) PixOffset(x, y int) int {
	return (y-r.Rect.Min.Y)*r.Stride + (x - r.Rect.Min.X)
}

// At returns the pixel at (x, y), or 0 outside the raster.
func (r Raster) At(x, y int) uint32 {
	if !image.Pt(x, y).In(r.Rect) {
		return 0
	}
	return r.Pix[r.PixOffset(x, y)]
}

// Alpha returns the alpha byte at (x, y), or 0 outside the raster.
func (r Raster) Alpha(x, y int) uint8 {
	return uint8(r.At(x, y) >> 24)
}

// Set stores p at (x, y). Points outside the raster are ignored.
func (r Raster) Set(x, y int, p uint32) {
	if !image.Pt(x, y).In(r.Rect) {
		return
	}
	r.Pix[r.PixOffset(x, y)] = p
}

// Row returns the pixels of row y, or nil if y is outside the raster.
func (r Raster) Row(y int) []uint32 {
	if y < r.Rect.Min.Y || y >= r.Rect.Max.Y {
		return nil
	}
	i := r.PixOffset(r.Rect.Min.X, y)
	return r.Pix[i : i+r.Rect.Dx() : i+r.Rect.Dx()]
}

// SubRaster returns a view of the part of r inside rect, sharing memory.
func (r Raster) SubRaster(rect image.Rectangle) Raster {
	rect = rect.Intersect(r.Rect)
	if rect.Empty() {
		return Raster{}
	}
	i := r.PixOffset(rect.Min.X, rect.Min.Y)
	return Raster{
		Pix:    r.Pix[i:],
		Stride: r.Stride,
		Rect:   rect,
	}
}

// Valid reports whether every pixel of Rect is addressable through Pix.
func (r Raster) Valid() bool {
	if r.Rect.Empty() {
		return true
	}
	if r.Stride < r.Rect.Dx() {
		return false
	}
	return len(r.Pix) >= (r.Rect.Dy()-1)*r.Stride+r.Rect.Dx()
}
