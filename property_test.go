package effects

import (
	"errors"
	"testing"

	"github.com/gogpu/effects/blur"
)

func TestSetFieldClamps(t *testing.T) {
	tests := []struct {
		k     Kind
		field string
		in    any
		want  any
	}{
		{DropShadow, "opacity", 300, 255},
		{DropShadow, "opacity", -4, 0},
		{OuterGlow, "size", uint64(1 << 40), 255},
		{OuterGlow, "spread", "17", 17},
		{InnerGlow, "range", int8(-1), 0},
		{DropShadow, "distance", 40000, 32767},
		{InnerShadow, "angle", 725, 5},
		{InnerShadow, "angle", -30, 330},
		{DropShadow, "knockout", "FALSE", false},
		{DropShadow, "blendMode", "ColorBurn", BlendColorBurn},
		{OuterGlow, "filter", "box1pass", blur.OnePassBox},
		{InnerGlow, "source", SourceCenter, SourceCenter},
	}

	for _, tt := range tests {
		t.Run(tt.k.String()+"."+tt.field, func(t *testing.T) {
			var s Set
			dirty, err := s.SetNamed(tt.k, tt.field, tt.in)
			if err != nil {
				t.Fatalf("SetNamed() error = %v", err)
			}
			if !dirty {
				t.Error("first write to an absent effect should be dirty")
			}
			got, err := s.GetNamed(tt.k, tt.field)
			if err != nil || got != tt.want {
				t.Errorf("GetNamed() = %v (%T), %v; want %v (%T)", got, got, err, tt.want, tt.want)
			}

			// Writing the stored value back is a no-op.
			dirty, err = s.SetNamed(tt.k, tt.field, got)
			if err != nil || dirty {
				t.Errorf("rewrite = %v, %v; want false, nil", dirty, err)
			}
		})
	}
}

func TestSetFieldDefaultIsDirty(t *testing.T) {
	var s Set
	// 5 is already the default size, but materializing the slot is a change.
	dirty, err := s.SetField(DropShadow, FieldSize, 5)
	if err != nil || !dirty {
		t.Fatalf("SetField() = %v, %v; want true, nil", dirty, err)
	}
	if dirty, _ = s.SetField(DropShadow, FieldSize, 5); dirty {
		t.Error("second write of the same size reported dirty")
	}
}

func TestSetFieldColorKeepsOpacity(t *testing.T) {
	var s Set
	if _, err := s.SetNamed(ColorOverlay, "color", "#ff0000"); err != nil {
		t.Fatal(err)
	}
	ov, _ := s.Overlay()
	if ov.Color != 0xBFFF0000 {
		t.Errorf("stored color = %#x, want 0xbfff0000", uint32(ov.Color))
	}
	got, _ := s.GetField(ColorOverlay, FieldColor)
	if got != Color(0xFFFF0000) {
		t.Errorf("GetField(color) = %v, want opaque red", got)
	}
	got, _ = s.GetField(ColorOverlay, FieldOpacity)
	if got != 0xBF {
		t.Errorf("GetField(opacity) = %v, want 191", got)
	}
}

func TestFieldErrors(t *testing.T) {
	var s Set

	tests := []struct {
		name  string
		k     Kind
		field string
		v     any
		want  error
	}{
		{"not applicable", OuterGlow, "angle", 10, ErrFieldNotApplicable},
		{"source on inner shadow", InnerShadow, "source", "edge", ErrFieldNotApplicable},
		{"knockout on inner shadow", InnerShadow, "knockout", true, ErrFieldNotApplicable},
		{"unknown field", DropShadow, "noise", 1, ErrUnknownField},
		{"unknown kind", Kind(7), "size", 1, ErrUnknownKind},
		{"bad number", DropShadow, "size", "big", ErrBadValue},
		{"bad type", DropShadow, "size", 1.5, ErrBadValue},
		{"bad bool", DropShadow, "knockout", "maybe", ErrBadValue},
		{"bad filter", OuterGlow, "filter", blur.Filter(7), ErrBadValue},
		{"bad blend", ColorOverlay, "blendMode", "dissolve", ErrBadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.SetNamed(tt.k, tt.field, tt.v); !errors.Is(err, tt.want) {
				t.Errorf("SetNamed() error = %v, want %v", err, tt.want)
			}
			if !s.IsEmpty() {
				t.Errorf("failed write changed the set: %v", s.String())
			}
		})
	}

	if v, err := s.GetNamed(DropShadow, "size"); v != nil || err != nil {
		t.Errorf("GetNamed(absent) = %v, %v; want nil, nil", v, err)
	}
	if _, err := s.GetNamed(ColorOverlay, "size"); !errors.Is(err, ErrFieldNotApplicable) {
		t.Errorf("GetNamed(overlay size) error = %v", err)
	}
}

func TestFieldsOf(t *testing.T) {
	names := func(fs []Field) []string {
		var out []string
		for _, f := range fs {
			out = append(out, f.String())
		}
		return out
	}

	tests := []struct {
		k    Kind
		want []string
	}{
		{DropShadow, []string{"color", "opacity", "blendMode", "filter", "size", "spread", "knockout", "distance", "angle"}},
		{InnerShadow, []string{"color", "opacity", "blendMode", "filter", "size", "spread", "distance", "angle"}},
		{OuterGlow, []string{"color", "opacity", "blendMode", "filter", "size", "spread", "range"}},
		{InnerGlow, []string{"color", "opacity", "blendMode", "filter", "size", "spread", "range", "source"}},
		{ColorOverlay, []string{"color", "opacity", "blendMode"}},
	}

	for _, tt := range tests {
		got := names(FieldsOf(tt.k))
		if len(got) != len(tt.want) {
			t.Errorf("FieldsOf(%v) = %v, want %v", tt.k, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("FieldsOf(%v) = %v, want %v", tt.k, got, tt.want)
				break
			}
		}
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	s := mustSet(t,
		InnerGlow, "size", 12,
		InnerGlow, "source", "center",
		InnerGlow, "blendMode", "screen",
	)

	props, err := s.Fields(InnerGlow)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 8 || props[0].Name != "color" || props[7].Value != SourceCenter {
		t.Fatalf("Fields() = %+v", props)
	}

	var d Set
	dirty, err := d.SetFields(InnerGlow, props)
	if err != nil || !dirty {
		t.Fatalf("SetFields() = %v, %v", dirty, err)
	}
	if d != s {
		t.Errorf("SetFields(Fields()) = %+v, want %+v", d, s)
	}

	if dirty, err := d.SetFields(InnerGlow, props); err != nil || dirty {
		t.Errorf("SetFields(same) = %v, %v; want false, nil", dirty, err)
	}

	if props, _ := d.Fields(OuterGlow); props != nil {
		t.Errorf("Fields(absent) = %v, want nil", props)
	}
}

func TestSetFieldsAtomic(t *testing.T) {
	s := mustSet(t, DropShadow, "size", 7)
	before := s

	_, err := s.SetFields(DropShadow, []Property{
		{Name: "size", Value: 20},
		{Name: "knockout", Value: "sometimes"},
	})
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("SetFields() error = %v, want ErrBadValue", err)
	}
	if s != before {
		t.Error("failed SetFields changed the set")
	}

	_, err = s.SetFields(DropShadow, []Property{
		{Name: "size", Value: 20},
		{Name: "range", Value: 3},
	})
	if !errors.Is(err, ErrFieldNotApplicable) {
		t.Errorf("SetFields(range) error = %v, want ErrFieldNotApplicable", err)
	}

	var e Set
	if _, err := e.SetFields(OuterGlow, []Property{{Name: "size", Value: "x"}}); err == nil || !e.IsEmpty() {
		t.Errorf("failed SetFields on empty set = %v, set %v", err, e.String())
	}
}

func TestSetFieldsOrderAndClear(t *testing.T) {
	var s Set
	// Listing order applies color before opacity whatever the input order.
	_, err := s.SetFields(ColorOverlay, []Property{
		{Name: "opacity", Value: 10},
		{Name: "color", Value: "#00ff00"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if ov, _ := s.Overlay(); ov.Color != ARGB(10, 0, 0xFF, 0) {
		t.Errorf("overlay color = %#x", uint32(ov.Color))
	}

	dirty, err := s.SetFields(ColorOverlay, nil)
	if err != nil || !dirty || s != (Set{}) {
		t.Errorf("SetFields(nil) = %v, %v; set %v", dirty, err, s.String())
	}
}
