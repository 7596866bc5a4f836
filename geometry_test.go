package effects

import (
	"image"
	"testing"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		angle, distance int
		want            image.Point
	}{
		{0, 5, image.Pt(5, 0)},
		{60, 5, image.Pt(3, 4)},
		{90, 10, image.Pt(0, 10)},
		{180, 7, image.Pt(-7, 0)},
		{225, 2, image.Pt(-1, -1)},
		{270, 0, image.Pt(0, 0)},
	}

	for _, tt := range tests {
		if got := Offset(tt.angle, tt.distance); got != tt.want {
			t.Errorf("Offset(%d, %d) = %v, want %v", tt.angle, tt.distance, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	shape := rect(0, 0, 100, 50)

	tests := []struct {
		name string
		set  Set
		want image.Rectangle
	}{
		{"empty", Set{}, shape},
		{
			"outer glow",
			mustSet(t, OuterGlow, "size", 10, OuterGlow, "spread", 0, OuterGlow, "source", "edge"),
			rect(-10, -10, 110, 60),
		},
		{
			"drop shadow",
			mustSet(t, DropShadow, "angle", 60, DropShadow, "distance", 5, DropShadow, "size", 3),
			rect(0, 0, 106, 57),
		},
		{
			"interior effects",
			mustSet(t, InnerShadow, "size", 40, InnerGlow, "size", 40, ColorOverlay, "opacity", 255),
			shape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Bounds(shape); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	shape := rect(0, 0, 100, 50)
	clip := rect(10, 10, 20, 20)

	tests := []struct {
		name string
		set  Set
		want image.Rectangle
	}{
		{"empty", Set{}, clip},
		{"glow", mustSet(t, InnerGlow, "size", 3), rect(7, 7, 23, 23)},
		{
			"shadow",
			mustSet(t, DropShadow, "angle", 60, DropShadow, "distance", 5, DropShadow, "size", 3),
			rect(4, 3, 20, 20),
		},
		{"clipped to shape", mustSet(t, OuterGlow, "size", 30), rect(0, 0, 50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Clip(shape, clip); got != tt.want {
				t.Errorf("Clip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeometryMonotonic(t *testing.T) {
	shapes := []image.Rectangle{rect(0, 0, 100, 50), rect(-20, 5, 3, 9), rect(7, 7, 8, 8)}
	clips := []image.Rectangle{rect(-50, -50, 200, 200), rect(0, 0, 10, 10), rect(90, 40, 95, 45)}

	var sets []Set
	for _, angle := range []int{0, 45, 135, 300} {
		for _, size := range []int{0, 4, 255} {
			sets = append(sets, mustSet(t,
				DropShadow, "angle", angle,
				DropShadow, "distance", size*3,
				DropShadow, "size", size,
				OuterGlow, "size", size/2,
				InnerShadow, "angle", angle+90,
				InnerShadow, "size", size,
			))
		}
	}

	for _, s := range sets {
		for _, shape := range shapes {
			if b := s.Bounds(shape); !shape.In(b) {
				t.Errorf("%v: Bounds(%v) = %v does not contain the shape", s.String(), shape, b)
			}
			for _, clip := range clips {
				got := s.Clip(shape, clip)
				if !got.In(shape) {
					t.Errorf("Clip(%v, %v) = %v outside shape", shape, clip, got)
				}
				if visible := shape.Intersect(clip); !visible.In(got) {
					t.Errorf("Clip(%v, %v) = %v misses visible part %v", shape, clip, got, visible)
				}
			}
		}
	}
}

func TestInteriorOnly(t *testing.T) {
	var s Set
	if !s.InteriorOnly() {
		t.Error("empty set should be interior-only")
	}
	s = mustSet(t, InnerShadow, "size", 2, ColorOverlay, "opacity", 9)
	if !s.InteriorOnly() {
		t.Error("inner effects should be interior-only")
	}
	s.SetNamed(OuterGlow, "size", 0)
	if s.InteriorOnly() {
		t.Error("outer glow should not be interior-only")
	}
}
