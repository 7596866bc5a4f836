package effects

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five bitmap effects. The numeric value is the
// bit position in a Mask and fixes the order in which effects are stored,
// encoded and listed.
type Kind uint8

// Effect kinds.
const (
	DropShadow Kind = iota
	OuterGlow
	InnerShadow
	InnerGlow
	ColorOverlay

	numKinds = 5
)

var kindNames = [numKinds]string{
	DropShadow:   "dropShadow",
	OuterGlow:    "outerGlow",
	InnerShadow:  "innerShadow",
	InnerGlow:    "innerGlow",
	ColorOverlay: "colorOverlay",
}

// Kinds returns every effect kind in storage order.
func Kinds() []Kind {
	return []Kind{DropShadow, OuterGlow, InnerShadow, InnerGlow, ColorOverlay}
}

// String returns the property name of the kind, e.g. "dropShadow".
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the five defined kinds.
func (k Kind) Valid() bool { return k < numKinds }

// Bit returns the presence bit of k.
func (k Kind) Bit() Mask { return 1 << k }

// Category returns the record shape used by k.
func (k Kind) Category() Category {
	switch k {
	case DropShadow, InnerShadow:
		return CategoryShadow
	case OuterGlow, InnerGlow:
		return CategoryGlow
	default:
		return CategoryLayer
	}
}

// IsBlur reports whether effects of kind k are blurred before compositing.
func (k Kind) IsBlur() bool {
	return k.Valid() && k.Category() != CategoryLayer
}

// ParseKind returns the kind with the given property name, ignoring case.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName.lookup(name); ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

var kindsByName = newNameTable[Kind](kindNames[:])

// Category is the shape of an effect record: which fields it carries.
type Category uint8

// Record categories.
const (
	// CategoryLayer records carry a color and blend mode only.
	CategoryLayer Category = iota
	// CategoryShadow records add blur, angle, distance and knockout.
	CategoryShadow
	// CategoryGlow records add blur, range and source.
	CategoryGlow
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryLayer:
		return "Layer"
	case CategoryShadow:
		return "Shadow"
	case CategoryGlow:
		return "Glow"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Mask is the presence bitmask of a Set: bit k is set when Kind k is present.
type Mask uint16

// Has reports whether k's bit is set.
func (m Mask) Has(k Kind) bool { return m&k.Bit() != 0 }

// Kinds returns the kinds whose bits are set, in storage order.
func (m Mask) Kinds() []Kind {
	var ks []Kind
	for k := Kind(0); k < numKinds; k++ {
		if m.Has(k) {
			ks = append(ks, k)
		}
	}
	return ks
}

// String lists the present kinds, e.g. "dropShadow|innerGlow".
func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, k := range m.Kinds() {
		parts = append(parts, k.String())
	}
	if rest := m &^ allKinds; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

const allKinds Mask = 1<<numKinds - 1
