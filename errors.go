package effects

import "errors"

// Errors returned by Set operations, property access and the codec.
var (
	// ErrUnknownKind is returned for a kind name or number outside the five
	// defined effects.
	ErrUnknownKind = errors.New("effects: unknown effect kind")

	// ErrUnknownField is returned for a property name that no effect has.
	ErrUnknownField = errors.New("effects: unknown property")

	// ErrFieldNotApplicable is returned when a property exists but does not
	// apply to the addressed kind, e.g. "angle" on an outer glow.
	ErrFieldNotApplicable = errors.New("effects: property not applicable to effect kind")

	// ErrBadValue is returned when a property value has the wrong type or
	// cannot be parsed.
	ErrBadValue = errors.New("effects: invalid property value")

	// ErrCategoryMismatch is returned by Set.Put when the record does not
	// have the shape the kind requires.
	ErrCategoryMismatch = errors.New("effects: record does not match effect kind")

	// ErrUnsupportedKind is returned by Decode when the presence mask names
	// a kind this package does not define.
	ErrUnsupportedKind = errors.New("effects: encoded set uses unsupported effect kind")
)
