package blur

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/effects/internal/logging"
)

// Errors returned by Begin.
var (
	// ErrUnknownFilter is returned for a Filter value with no implementation.
	ErrUnknownFilter = errors.New("blur: unknown filter")

	// ErrNegativeRadius is returned when Params.Radius is below zero.
	ErrNegativeRadius = errors.New("blur: negative radius")

	// ErrInvalidRaster is returned when the source raster cannot address
	// every pixel of its own rectangle.
	ErrInvalidRaster = errors.New("blur: raster too small for its bounds")
)

// Filter selects the blur algorithm. The values are persisted in 3 bits.
type Filter uint8

// Filter constants.
const (
	FastGaussian Filter = iota
	OnePassBox
	TwoPassBox
	ThreePassBox
	NaiveGaussian
)

var filterNames = [...]string{
	FastGaussian:  "gaussian",
	OnePassBox:    "box1pass",
	TwoPassBox:    "box2pass",
	ThreePassBox:  "box3pass",
	NaiveGaussian: "naivegaussian",
}

// Filters returns every implemented filter.
func Filters() []Filter {
	return []Filter{FastGaussian, OnePassBox, TwoPassBox, ThreePassBox, NaiveGaussian}
}

// String returns the property name of the filter.
func (f Filter) String() string {
	if f.Valid() {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// Valid reports whether f names an implemented filter.
func (f Filter) Valid() bool {
	return int(f) < len(filterNames)
}

// ParseFilter returns the filter with the given property name. Matching
// ignores case.
func ParseFilter(name string) (Filter, error) {
	for i, n := range filterNames {
		if strings.EqualFold(n, name) {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Params configures a blur.
type Params struct {
	// Radius is the blur radius in pixels. Zero copies the source alpha.
	Radius int

	// Spread in [0, 255] hardens the blur; 0 is a plain blur. The naive
	// Gaussian filter ignores it.
	Spread uint8

	// Filter selects the algorithm.
	Filter Filter
}

// engine is implemented by each blur algorithm.
type engine interface {
	// process writes output scanline y (relative to the output rectangle)
	// into mask[:width]. Calls arrive once per line in increasing y.
	process(y int, mask []byte)
}

// State is a blur in progress. Create it with Begin, call Process once for
// every output scanline, then call End.
type State struct {
	eng    engine
	width  int
	height int
	y      int
	ended  bool
}

// Begin prepares a blur of src producing output.Dy() scanlines of
// output.Dx() mask bytes.
//
// input and output share src's coordinate space. Only pixels inside both
// input and src.Rect are read; everything else counts as transparent.
func Begin(p Params, input, output image.Rectangle, src Raster) (*State, error) {
	if !p.Filter.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, uint8(p.Filter))
	}
	if p.Radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, p.Radius)
	}
	if !src.Valid() {
		return nil, ErrInvalidRaster
	}

	output = output.Canon()
	fr := newFrame(input.Canon().Intersect(src.Rect), output, src)

	var eng engine
	switch {
	case p.Radius == 0 || fr.empty():
		eng = &copyEngine{frame: fr}
	case p.Filter == NaiveGaussian:
		eng = newNaiveGaussian(fr, p.Radius)
	case p.Filter == FastGaussian:
		eng = newFastGaussian(fr, p.Radius, p.Spread)
	default:
		eng = newBoxBlur(fr, p, int(p.Filter-OnePassBox)+1)
	}

	logging.Get().Debug("blur: begin",
		"filter", p.Filter,
		"radius", p.Radius,
		"spread", p.Spread,
		"input", input,
		"output", output)

	return &State{
		eng:    eng,
		width:  output.Dx(),
		height: output.Dy(),
	}, nil
}

// Width returns the number of mask bytes written by each Process call.
func (s *State) Width() int { return s.width }

// Remaining returns the number of scanlines not yet produced.
func (s *State) Remaining() int { return s.height - s.y }

// Process writes the next scanline of the mask into mask[:Width()].
//
// It panics if mask is too short, if every scanline has already been
// produced, or if End has been called.
func (s *State) Process(mask []byte) {
	switch {
	case s.ended:
		panic("blur: Process called after End")
	case s.y >= s.height:
		panic("blur: Process called more times than the output has rows")
	case len(mask) < s.width:
		panic(fmt.Sprintf("blur: mask buffer of %d bytes, need %d", len(mask), s.width))
	}
	s.eng.process(s.y, mask[:s.width])
	s.y++
}

// End releases the buffers and kernel held by s. It is safe to call more
// than once.
func (s *State) End() {
	s.eng = nil
	s.ended = true
}

// frame is the geometry shared by all engines: the output size and the
// input rectangle translated so that the output's top-left pixel is (0, 0).
type frame struct {
	width, height            int
	left, top, right, bottom int
	src                      source
}

func newFrame(input, output image.Rectangle, src Raster) frame {
	fr := frame{
		width:  output.Dx(),
		height: output.Dy(),
	}
	if input.Empty() {
		return fr
	}
	in := input.Sub(output.Min)
	fr.left, fr.top, fr.right, fr.bottom = in.Min.X, in.Min.Y, in.Max.X, in.Max.Y
	fr.src = source{
		pix:    src.Pix,
		stride: src.Stride,
		base:   src.PixOffset(output.Min.X, output.Min.Y),
	}
	return fr
}

func (f *frame) empty() bool {
	return f.left >= f.right || f.top >= f.bottom || f.width == 0 || f.height == 0
}

// passThrough copies the source alpha of row y, zero outside the input.
func (f *frame) passThrough(y int, mask []byte) {
	if y < f.top || y >= f.bottom {
		clear(mask)
		return
	}
	off := f.src.offset(y)
	for x := range mask {
		if x >= f.left && x < f.right {
			mask[x] = uint8(f.src.pix[off+x] >> 24)
		} else {
			mask[x] = 0
		}
	}
}

// source addresses the caller's pixels in output-relative coordinates. Only
// points inside the frame's input rectangle are ever read, and those are
// guaranteed to lie within pix.
type source struct {
	pix    []uint32
	stride int
	base   int
}

// offset returns the index in pix of output-relative (0, y).
func (s *source) offset(y int) int {
	return s.base + y*s.stride
}

// copyEngine implements radius 0 (and empty inputs) for every filter.
type copyEngine struct {
	frame
}

func (e *copyEngine) process(y int, mask []byte) {
	e.passThrough(y, mask)
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// addSat adds w to a, saturating at the maximum uint32.
func addSat(a, w uint32) uint32 {
	if ^uint32(0)-a > w {
		return a + w
	}
	return ^uint32(0)
}
