package effects

import "fmt"

// BlendMode selects how an effect layer is combined with what lies below
// it. The values are persisted in 4 bits and their order must not change.
type BlendMode uint8

// Blend modes.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "colorDodge",
	BlendColorBurn:  "colorBurn",
	BlendHardLight:  "hardLight",
	BlendSoftLight:  "softLight",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

var blendsByName = newNameTable[BlendMode](blendNames[:])

// String returns the property name of the mode.
func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// IsHSL reports whether m is one of the non-separable hue, saturation,
// color and luminosity modes.
func (m BlendMode) IsHSL() bool {
	return m >= BlendHue && m <= BlendLuminosity
}

// ParseBlendMode returns the blend mode with the given name, ignoring case.
func ParseBlendMode(name string) (BlendMode, error) {
	if m, ok := blendsByName.lookup(name); ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: blend mode %q", ErrBadValue, name)
}

// Source selects where an inner glow starts.
type Source uint8

// Glow sources.
const (
	// SourceEdge glows inward from the shape's edge.
	SourceEdge Source = iota
	// SourceCenter glows outward from the shape's centre.
	SourceCenter
)

var sourceNames = [...]string{
	SourceEdge:   "edge",
	SourceCenter: "center",
}

var sourcesByName = newNameTable[Source](sourceNames[:])

// String returns the property name of the source.
func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// ParseSource returns the source with the given name, ignoring case.
func ParseSource(name string) (Source, error) {
	if s, ok := sourcesByName.lookup(name); ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: source %q", ErrBadValue, name)
}
