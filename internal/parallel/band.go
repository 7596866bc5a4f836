package parallel

import "image"

// BandHeight is the number of rows in a band. 64 rows of a few hundred
// pixels keep a band's blur rings and output rows in cache.
const BandHeight = 64

// Bands splits r into horizontal strips of at most height rows, top to
// bottom. A height of 0 or less means BandHeight.
func Bands(r image.Rectangle, height int) []image.Rectangle {
	if r.Empty() {
		return nil
	}
	if height <= 0 {
		height = BandHeight
	}
	bands := make([]image.Rectangle, 0, (r.Dy()+height-1)/height)
	for y := r.Min.Y; y < r.Max.Y; y += height {
		bands = append(bands, image.Rect(r.Min.X, y, r.Max.X, min(y+height, r.Max.Y)))
	}
	return bands
}
