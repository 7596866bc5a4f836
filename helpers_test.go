package effects

import (
	"image"
	"testing"

	"github.com/gogpu/effects/blur"
)

func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}

// opaqueRaster returns an opaque white raster covering r.
func opaqueRaster(r image.Rectangle) blur.Raster {
	ras := blur.NewRaster(r)
	for i := range ras.Pix {
		ras.Pix[i] = 0xFFFFFFFF
	}
	return ras
}

// newDst returns a transparent raster covering r.
func newDst(r image.Rectangle) blur.Raster {
	return blur.NewRaster(r)
}

// mustSet builds a set from kind/field/value triples.
func mustSet(t *testing.T, writes ...any) Set {
	t.Helper()
	var s Set
	for i := 0; i+2 < len(writes); i += 3 {
		k := writes[i].(Kind)
		name := writes[i+1].(string)
		if _, err := s.SetNamed(k, name, writes[i+2]); err != nil {
			t.Fatalf("SetNamed(%v, %s) error = %v", k, name, err)
		}
	}
	return s
}
