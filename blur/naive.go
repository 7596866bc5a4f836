package blur

// naiveGaussian convolves every output pixel with the full 2-D kernel.
// It is O(r²) per pixel and serves as the reference the faster filters are
// checked against.
type naiveGaussian struct {
	frame
	radius int
	kernel []uint32
}

func newNaiveGaussian(fr frame, radius int) *naiveGaussian {
	return &naiveGaussian{
		frame:  fr,
		radius: radius,
		kernel: naiveKernel(radius),
	}
}

func (e *naiveGaussian) process(y int, mask []byte) {
	r := e.radius
	size := r*2 + 1

	tTop := max(-r, e.top-y)
	tBottom := min(r, e.bottom-y-1)
	if tTop > tBottom {
		clear(mask)
		return
	}

	for x := range mask {
		tLeft := max(-r, e.left-x)
		tRight := min(r, e.right-x-1)

		var sum uint64
		for ky := tTop; ky <= tBottom; ky++ {
			row := e.src.offset(y+ky) + x
			k := (ky+r)*size + r
			for kx := tLeft; kx <= tRight; kx++ {
				sum += uint64(e.kernel[k+kx]) * uint64(e.src.pix[row+kx]>>24)
			}
		}
		mask[x] = uint8(min(sum>>24, 0xFF))
	}
}
