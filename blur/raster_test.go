package blur

import (
	"image"
	"image/color"
	"testing"
)

func TestFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(1, 2, 6, 5))
	img.SetRGBA(3, 4, color.RGBA{R: 10, G: 20, B: 30, A: 40})

	r := FromRGBA(img)
	if r.Rect != img.Rect {
		t.Fatalf("Rect = %v, want %v", r.Rect, img.Rect)
	}
	if got, want := r.At(3, 4), uint32(40<<24|30<<16|20<<8|10); got != want {
		t.Errorf("At(3, 4) = %#08x, want %#08x", got, want)
	}
	if got := r.Alpha(3, 4); got != 40 {
		t.Errorf("Alpha(3, 4) = %d, want 40", got)
	}
	if got := r.Alpha(0, 0); got != 0 {
		t.Errorf("Alpha outside = %d, want 0", got)
	}

	back := r.RGBA()
	if got := back.RGBAAt(3, 4); got != (color.RGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("RGBA().RGBAAt(3, 4) = %v", got)
	}
}

func TestFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 3, 3))
	img.SetAlpha(1, 1, color.Alpha{A: 0x80})

	r := FromAlpha(img)
	if got := r.At(1, 1); got != 0x80808080 {
		t.Errorf("At(1, 1) = %#08x, want 0x80808080", got)
	}
}

func TestRasterRowAndSub(t *testing.T) {
	r := NewRaster(image.Rect(-2, -2, 4, 3))
	r.Set(1, 0, 0xff000000)
	r.Set(10, 10, 1) // ignored

	row := r.Row(0)
	if len(row) != 6 || row[3] != 0xff000000 {
		t.Errorf("Row(0) = %v", row)
	}
	if r.Row(3) != nil {
		t.Errorf("Row(3) outside raster is not nil")
	}

	sub := r.SubRaster(image.Rect(0, -1, 10, 2))
	if sub.Rect != image.Rect(0, -1, 4, 2) {
		t.Fatalf("SubRaster rect = %v", sub.Rect)
	}
	if got := sub.At(1, 0); got != 0xff000000 {
		t.Errorf("sub.At(1, 0) = %#08x, want 0xff000000", got)
	}
	if !sub.Valid() {
		t.Errorf("sub-raster reported invalid")
	}
	if empty := r.SubRaster(image.Rect(20, 20, 30, 30)); empty.Pix != nil || !empty.Rect.Empty() {
		t.Errorf("disjoint SubRaster is not empty")
	}
}
