package blur

// fastGaussian is the separable Gaussian filter. Rows of the source are
// filtered horizontally once each into a ring of 2r+1 rows; every output
// scanline then filters the ring vertically with the same kernel.
type fastGaussian struct {
	frame
	radius  int
	kernel  []uint32
	ring    [][]uint32
	nextRow int
	started bool
}

func newFastGaussian(fr frame, radius int, spread uint8) *fastGaussian {
	ring := make([][]uint32, radius*2+1)
	for i := range ring {
		ring[i] = make([]uint32, fr.width)
	}
	return &fastGaussian{
		frame:  fr,
		radius: radius,
		kernel: fastKernel(radius, spread),
		ring:   ring,
	}
}

func (e *fastGaussian) process(y int, mask []byte) {
	r := e.radius
	if y < e.top-r || y >= e.bottom+r {
		clear(mask)
		return
	}

	tTop := max(-r, e.top-y)
	tBottom := min(r, e.bottom-y-1)

	first := y + tTop
	if e.started {
		first = max(first, e.nextRow)
	}
	for ty := first; ty <= y+tBottom; ty++ {
		e.filterRow(ty, e.ring[mod(ty, len(e.ring))])
	}
	e.nextRow = y + tBottom + 1
	e.started = true

	for x := range mask {
		var sum uint32
		for k := tTop; k <= tBottom; k++ {
			v := e.ring[mod(y+k, len(e.ring))][x] >> 16
			sum = addSat(sum, e.kernel[r+k]*v)
		}
		if sum < 0x1000000 {
			mask[x] = uint8(sum >> 16)
		} else {
			mask[x] = 0xFF
		}
	}
}

// filterRow convolves source row ty horizontally into dst.
func (e *fastGaussian) filterRow(ty int, dst []uint32) {
	r := e.radius
	row := e.src.offset(ty)
	for x := range dst {
		tLeft := max(-r, e.left-x)
		tRight := min(r, e.right-x-1)

		var sum uint32
		for kx := tLeft; kx <= tRight; kx++ {
			a := e.src.pix[row+x+kx] >> 24
			sum = addSat(sum, e.kernel[r+kx]*a)
		}
		dst[x] = sum
	}
}
