package main

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/effects"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		in      string
		want    edit
		wantErr error
	}{
		{"dropShadow.distance=8", edit{effects.DropShadow, "distance", "8"}, nil},
		{"innerglow.source=center", edit{effects.InnerGlow, "source", "center"}, nil},
		{"colorOverlay.color=10,20,30", edit{effects.ColorOverlay, "color", "10,20,30"}, nil},
		{"bevel.size=2", edit{}, effects.ErrUnknownKind},
		{"outerGlow.angle=2", edit{}, effects.ErrFieldNotApplicable},
		{"outerGlow.size", edit{}, nil},
		{"size=2", edit{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseEdit(tt.in)
			if tt.want == (edit{}) {
				if err == nil {
					t.Fatalf("parseEdit() = %+v, want error", got)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("parseEdit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("parseEdit() = %+v, %v; want %+v", got, err, tt.want)
			}
		})
	}
}

func TestEditListApply(t *testing.T) {
	var l editList
	for _, s := range []string{"dropShadow.size=9", "dropShadow.knockout=false"} {
		if err := l.Set(s); err != nil {
			t.Fatal(err)
		}
	}

	var set effects.Set
	if err := l.apply(&set); err != nil {
		t.Fatal(err)
	}
	sh, ok := set.Shadow(effects.DropShadow)
	if !ok || sh.Size != 9 || sh.Knockout {
		t.Errorf("shadow = %+v, %v", sh, ok)
	}

	bad := editList{{effects.DropShadow, "size", "huge"}}
	if err := bad.apply(&set); !errors.Is(err, effects.ErrBadValue) {
		t.Errorf("apply() error = %v, want ErrBadValue", err)
	}
}

func TestRasterize(t *testing.T) {
	blue := effects.RGB(0, 0, 255)
	r := image.Rect(0, 0, 20, 10)

	img, err := rasterize("ellipse", r, blue)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(10, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("ellipse centre = %v, want opaque blue", got)
	}
	if got := img.RGBAAt(0, 0).A; got != 0 {
		t.Errorf("ellipse corner alpha = %d, want 0", got)
	}

	img, err = rasterize("rect", r, blue)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0).A; got != 255 {
		t.Errorf("rect corner alpha = %d, want 255", got)
	}

	if _, err := rasterize("star", r, blue); err == nil {
		t.Error("rasterize(star) succeeded")
	}
}
