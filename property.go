package effects

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/effects/blur"
)

// Field names an editable property of an effect.
type Field uint8

// Fields, in the order they are listed and applied.
const (
	FieldColor Field = iota
	FieldOpacity
	FieldBlendMode
	FieldFilter
	FieldSize
	FieldSpread
	FieldRange
	FieldKnockout
	FieldDistance
	FieldAngle
	FieldSource

	numFields
)

const (
	allMask    = allKinds
	blurMask   = 1<<DropShadow | 1<<InnerShadow | 1<<OuterGlow | 1<<InnerGlow
	shadowMask = 1<<DropShadow | 1<<InnerShadow
	glowMask   = 1<<OuterGlow | 1<<InnerGlow
)

// fieldTable maps each field to its name and the kinds it applies to.
var fieldTable = [numFields]struct {
	name  string
	kinds Mask
}{
	FieldColor:     {"color", allMask},
	FieldOpacity:   {"opacity", allMask},
	FieldBlendMode: {"blendMode", allMask},
	FieldFilter:    {"filter", blurMask},
	FieldSize:      {"size", blurMask},
	FieldSpread:    {"spread", blurMask},
	FieldRange:     {"range", glowMask},
	FieldKnockout:  {"knockout", 1 << DropShadow},
	FieldDistance:  {"distance", shadowMask},
	FieldAngle:     {"angle", shadowMask},
	FieldSource:    {"source", 1 << InnerGlow},
}

var fieldsByName = func() nameTable[Field] {
	names := make([]string, numFields)
	for f, e := range fieldTable {
		names[f] = e.name
	}
	return newNameTable[Field](names)
}()

// String returns the property name of the field.
func (f Field) String() string {
	if f < numFields {
		return fieldTable[f].name
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// AppliesTo reports whether f is a property of effects of kind k.
func (f Field) AppliesTo(k Kind) bool {
	return f < numFields && k.Valid() && fieldTable[f].kinds.Has(k)
}

// ParseField returns the field with the given name, ignoring case.
func ParseField(name string) (Field, error) {
	if f, ok := fieldsByName.lookup(name); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// LookupField returns the named field of kind k. A field that exists but
// does not apply to k, such as "source" on a drop shadow, is an
// ErrFieldNotApplicable error.
func LookupField(k Kind, name string) (Field, error) {
	f, err := ParseField(name)
	if err != nil {
		return 0, err
	}
	if err := checkField(k, f); err != nil {
		return 0, err
	}
	return f, nil
}

// FieldsOf returns the fields of kind k in listing order.
func FieldsOf(k Kind) []Field {
	var fs []Field
	for f := Field(0); f < numFields; f++ {
		if f.AppliesTo(k) {
			fs = append(fs, f)
		}
	}
	return fs
}

func checkField(k Kind, f Field) error {
	switch {
	case !k.Valid():
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	case f >= numFields:
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	case !f.AppliesTo(k):
		return fmt.Errorf("%w: %v of %v", ErrFieldNotApplicable, f, k)
	}
	return nil
}

// Property is a named field value, as listed by Set.Fields.
type Property struct {
	Name  string
	Value any
}

// GetField returns the value of field f of the effect of kind k, or nil if
// no such effect is present. Values have these types:
//
//	color                           Color (opaque; see opacity)
//	opacity, size, spread, range    int
//	distance, angle                 int
//	blendMode                       BlendMode
//	filter                          blur.Filter
//	knockout                        bool
//	source                          Source
func (s *Set) GetField(k Kind, f Field) (any, error) {
	if err := checkField(k, f); err != nil {
		return nil, err
	}
	e, ok := s.Effect(k)
	if !ok {
		return nil, nil
	}
	return recordOf(e).get(f), nil
}

// SetField writes field f of the effect of kind k and reports whether the
// set changed. If the effect is absent it is first created from Default(k),
// which always counts as a change.
//
// Numbers are clamped to the field's range: opacity, size, spread and range
// to [0, 255], distance to [0, 32767]; angle is reduced modulo 360. Writing
// color replaces the red, green and blue channels and keeps the opacity.
// Values may be given as their Go type, as any integer type, or as a
// string. On error the set is unchanged.
func (s *Set) SetField(k Kind, f Field, v any) (dirty bool, err error) {
	if err := checkField(k, f); err != nil {
		return false, err
	}

	e, present := s.Effect(k)
	if !present {
		e = Default(k)
	}
	rec := recordOf(e)
	changed, err := rec.set(f, v)
	if err != nil {
		return false, fmt.Errorf("effects: set %v.%v: %w", k, f, err)
	}
	if !changed && present {
		return false, nil
	}
	if err := s.Put(k, rec.effect(k.Category())); err != nil {
		return false, err
	}
	return true, nil
}

// GetNamed is GetField with the field given by name.
func (s *Set) GetNamed(k Kind, name string) (any, error) {
	f, err := LookupField(k, name)
	if err != nil {
		return nil, err
	}
	return s.GetField(k, f)
}

// SetNamed is SetField with the field given by name.
func (s *Set) SetNamed(k Kind, name string, v any) (bool, error) {
	f, err := LookupField(k, name)
	if err != nil {
		return false, err
	}
	return s.SetField(k, f, v)
}

// Fields returns every field of the effect of kind k in listing order, or
// nil if the effect is absent.
func (s *Set) Fields(k Kind) ([]Property, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	e, ok := s.Effect(k)
	if !ok {
		return nil, nil
	}
	rec := recordOf(e)
	var props []Property
	for _, f := range FieldsOf(k) {
		props = append(props, Property{Name: f.String(), Value: rec.get(f)})
	}
	return props, nil
}

// SetFields writes several fields of the effect of kind k at once, in
// listing order regardless of the order of props. A nil props removes the
// effect. Either every write succeeds or the set is unchanged.
func (s *Set) SetFields(k Kind, props []Property) (dirty bool, err error) {
	if !k.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if props == nil {
		return s.Clear(k), nil
	}

	type write struct {
		f Field
		v any
	}
	writes := make([]write, 0, len(props))
	for _, p := range props {
		f, err := LookupField(k, p.Name)
		if err != nil {
			return false, err
		}
		writes = append(writes, write{f, p.Value})
	}
	slices.SortStableFunc(writes, func(a, b write) int { return cmp.Compare(a.f, b.f) })

	next := *s
	if !next.Has(k) {
		if err := next.Put(k, Default(k)); err != nil {
			return false, err
		}
		dirty = true
	}
	for _, w := range writes {
		changed, err := next.SetField(k, w.f, w.v)
		if err != nil {
			return false, err
		}
		dirty = dirty || changed
	}
	*s = next
	return dirty, nil
}

// record is the union of every record shape, used to edit any effect
// through one set of accessors.
type record struct {
	LayerEffect
	BlurEffect
	angle    uint16
	distance uint16
	knockout bool
	rng      uint8
	source   Source
}

func recordOf(e Effect) *record {
	switch e := e.(type) {
	case ShadowEffect:
		return &record{
			LayerEffect: e.LayerEffect,
			BlurEffect:  e.BlurEffect,
			angle:       e.Angle,
			distance:    e.Distance,
			knockout:    e.Knockout,
		}
	case GlowEffect:
		return &record{
			LayerEffect: e.LayerEffect,
			BlurEffect:  e.BlurEffect,
			rng:         e.Range,
			source:      e.Source,
		}
	default:
		return &record{LayerEffect: e.Layer()}
	}
}

func (r *record) effect(c Category) Effect {
	switch c {
	case CategoryShadow:
		return ShadowEffect{
			LayerEffect: r.LayerEffect,
			BlurEffect:  r.BlurEffect,
			Angle:       r.angle,
			Distance:    r.distance,
			Knockout:    r.knockout,
		}
	case CategoryGlow:
		return GlowEffect{
			LayerEffect: r.LayerEffect,
			BlurEffect:  r.BlurEffect,
			Range:       r.rng,
			Source:      r.source,
		}
	default:
		return r.LayerEffect
	}
}

func (r *record) get(f Field) any {
	switch f {
	case FieldColor:
		return r.Color.WithOpacity(0xFF)
	case FieldOpacity:
		return int(r.Color.A())
	case FieldBlendMode:
		return r.BlendMode
	case FieldFilter:
		return r.Filter
	case FieldSize:
		return int(r.Size)
	case FieldSpread:
		return int(r.Spread)
	case FieldRange:
		return int(r.rng)
	case FieldKnockout:
		return r.knockout
	case FieldDistance:
		return int(r.distance)
	case FieldAngle:
		return int(r.angle)
	case FieldSource:
		return r.source
	}
	return nil
}

// set stores v into field f and reports whether the stored value changed.
func (r *record) set(f Field, v any) (bool, error) {
	switch f {
	case FieldColor:
		c, err := toColor(v)
		if err != nil {
			return false, err
		}
		return update(&r.Color, r.Color.WithRGB(c)), nil

	case FieldOpacity:
		n, err := toCardinal(v, 255)
		if err != nil {
			return false, err
		}
		return update(&r.Color, r.Color.WithOpacity(uint8(n))), nil

	case FieldBlendMode:
		m, err := toEnum(v, ParseBlendMode, len(blendNames))
		if err != nil {
			return false, err
		}
		return update(&r.BlendMode, m), nil

	case FieldFilter:
		fl, err := toEnum(v, blur.ParseFilter, len(blur.Filters()))
		if err != nil {
			return false, err
		}
		return update(&r.Filter, fl), nil

	case FieldSize, FieldSpread, FieldRange:
		n, err := toCardinal(v, 255)
		if err != nil {
			return false, err
		}
		return update(r.byteField(f), uint8(n)), nil

	case FieldKnockout:
		b, err := toBool(v)
		if err != nil {
			return false, err
		}
		return update(&r.knockout, b), nil

	case FieldDistance:
		n, err := toCardinal(v, maxDistance)
		if err != nil {
			return false, err
		}
		return update(&r.distance, uint16(n)), nil

	case FieldAngle:
		n, err := toInt(v)
		if err != nil {
			return false, err
		}
		n %= 360
		if n < 0 {
			n += 360
		}
		return update(&r.angle, uint16(n)), nil

	case FieldSource:
		src, err := toEnum(v, ParseSource, len(sourceNames))
		if err != nil {
			return false, err
		}
		return update(&r.source, src), nil
	}
	return false, fmt.Errorf("%w: %v", ErrUnknownField, f)
}

func (r *record) byteField(f Field) *uint8 {
	switch f {
	case FieldSize:
		return &r.Size
	case FieldSpread:
		return &r.Spread
	default:
		return &r.rng
	}
}

// update stores v in *dst and reports whether it differed.
func update[T comparable](dst *T, v T) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func toInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(clamp(v, -1<<31, 1<<31-1)), nil
	case uint:
		return int(min(v, 1<<31-1)), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(min(v, 1<<31-1)), nil
	case uint64:
		return int(min(v, 1<<31-1)), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: number %q", ErrBadValue, v)
		}
		return int(clamp(n, -1<<31, 1<<31-1)), nil
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrBadValue, v)
}

// toCardinal converts v and clamps it to [0, bound].
func toCardinal(v any, bound int) (int, error) {
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	return clamp(n, 0, bound), nil
}

func toBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(foldName(strings.TrimSpace(v)))
		if err != nil {
			return false, fmt.Errorf("%w: boolean %q", ErrBadValue, v)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: %T is not a boolean", ErrBadValue, v)
}

func toColor(v any) (Color, error) {
	switch v := v.(type) {
	case Color:
		return v, nil
	case string:
		return ParseColor(v)
	case color.Color:
		return ColorFrom(v), nil
	}
	return 0, fmt.Errorf("%w: %T is not a color", ErrBadValue, v)
}

// toEnum accepts a value of the enumeration itself (below n) or its name.
func toEnum[T ~uint8](v any, parse func(string) (T, error), n int) (T, error) {
	switch v := v.(type) {
	case T:
		if int(v) >= n {
			return 0, fmt.Errorf("%w: %d out of range", ErrBadValue, uint8(v))
		}
		return v, nil
	case string:
		t, err := parse(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		return t, nil
	}
	var zero T
	return 0, fmt.Errorf("%w: %T is not a %T", ErrBadValue, v, zero)
}
