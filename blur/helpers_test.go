package blur

import (
	"image"
	"testing"
)

// Test helper functions shared across blur tests.

var allFilters = Filters()

// blurAll runs a complete Begin/Process/End cycle and returns the mask rows.
func blurAll(t *testing.T, p Params, input, output image.Rectangle, src Raster) [][]byte {
	t.Helper()

	s, err := Begin(p, input, output, src)
	if err != nil {
		t.Fatalf("Begin(%+v) error = %v", p, err)
	}
	defer s.End()

	rows := make([][]byte, output.Dy())
	for y := range rows {
		rows[y] = make([]byte, output.Dx())
		s.Process(rows[y])
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d after all rows, want 0", s.Remaining())
	}
	return rows
}

// alphaRaster creates a raster whose pixels have alpha f(x, y).
func alphaRaster(r image.Rectangle, f func(x, y int) uint8) Raster {
	ras := NewRaster(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := uint32(f(x, y))
			ras.Set(x, y, a<<24|a<<16|a<<8|a)
		}
	}
	return ras
}

// expectPanic fails the test if fn does not panic.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
