package effects

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied color packed as 0xAARRGGBB. In little-endian
// memory its bytes read blue, green, red, alpha, which is how it is stored
// and encoded: the value is never converted on the way in or out.
//
// The alpha byte is the effect's opacity.
type Color uint32

// DefaultColor is 75% opaque black.
const DefaultColor Color = 0xBF000000

// ARGB packs a color from its channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha (opacity) channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithRGB returns c with its red, green and blue taken from rgb. The alpha
// of c is kept.
func (c Color) WithRGB(rgb Color) Color {
	return c&0xFF000000 | rgb&0x00FFFFFF
}

// WithOpacity returns c with alpha a.
func (c Color) WithOpacity(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// String formats the color channels as "r,g,b". Opacity is reported
// separately, as a property of its own.
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R(), c.G(), c.B())
}

// ColorFrom converts any color.Color.
func ColorFrom(c color.Color) Color {
	if ec, ok := c.(Color); ok {
		return ec
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ParseColor parses "#rrggbb", "#rgb", "r,g,b" or an SVG color name such as
// "steelblue". The result is opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			break
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			break
		}
		return Color(v) | 0xFF000000, nil

	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			break
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return 0, fmt.Errorf("%w: color %q", ErrBadValue, s)
			}
			ch[i] = uint8(v)
		}
		return RGB(ch[0], ch[1], ch[2]), nil

	default:
		name := foldName(strings.ReplaceAll(s, " ", ""))
		if c, ok := colornames.Map[name]; ok {
			return RGB(c.R, c.G, c.B), nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrBadValue, s)
}
