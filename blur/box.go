package blur

// boxPass is one stage of a box blur cascade. It holds a ring of summed-area
// rows over its input: the source alpha for the first pass, the previous
// pass's box means for the rest.
//
// Rows and columns are relative to the output rectangle. The pass only sees
// input inside [left, right) × [top, bottom); its ring row for top-1 is the
// all-zero sentinel.
type boxPass struct {
	left, top, right, bottom int
	radius                   int

	ring    [][]uint32 // 2*radius+2 rows of right-left+1 sums
	nextRow int        // first row not yet summed
	prev    *boxPass   // nil for the first pass
}

func (p *boxPass) area() uint32 {
	n := uint32(p.radius*2 + 1)
	return n * n
}

func (p *boxPass) slot(y int) []uint32 {
	return p.ring[mod(y, len(p.ring))]
}

// boxBlur approximates a Gaussian with up to three box filters whose radii
// add up to the blur radius.
type boxBlur struct {
	frame
	passes []*boxPass
	spread uint32
	rowBuf []uint32
}

func newBoxBlur(fr frame, p Params, passes int) engine {
	r := p.Radius

	// Buffer extent: every input pixel that can reach the output.
	bufLeft, bufTop := -r, -r
	bufRight, bufBottom := fr.width+r, fr.height+r
	if fr.right <= bufLeft || fr.left >= bufRight || fr.bottom <= bufTop || fr.top >= bufBottom {
		return zeroEngine{}
	}

	e := &boxBlur{
		frame:  fr,
		spread: boxSpread(r, p.Spread),
	}

	var done int
	var prev *boxPass
	for _, radius := range boxRadii(r, passes) {
		bp := &boxPass{
			left:   max(fr.left-done, bufLeft+done),
			top:    max(fr.top-done, bufTop+done),
			right:  min(fr.right+done, bufRight-done),
			bottom: min(fr.bottom+done, bufBottom-done),
			radius: radius,
			prev:   prev,
		}
		if bp.left >= bp.right || bp.top >= bp.bottom {
			return zeroEngine{}
		}
		bp.nextRow = bp.top
		bp.ring = make([][]uint32, radius*2+2)
		for i := range bp.ring {
			bp.ring[i] = make([]uint32, bp.right-bp.left+1)
		}
		if w := bp.right - bp.left; w > len(e.rowBuf) {
			e.rowBuf = make([]uint32, w)
		}
		e.passes = append(e.passes, bp)

		prev = bp
		done += radius
	}
	return e
}

func (e *boxBlur) process(y int, mask []byte) {
	p := e.passes[len(e.passes)-1]
	r := p.radius
	if y < p.top-r || y >= p.bottom+r {
		clear(mask)
		return
	}
	e.sumRows(p, min(y+r, p.bottom-1))

	area := uint64(p.area())
	x0 := min(max(0, p.left-r), len(mask))
	x1 := max(min(len(mask), p.right+r), x0)
	clear(mask[:x0])
	for x := x0; x < x1; x++ {
		sum := uint64(p.boxSum(x-r, x+r, y-r, y+r))
		v := sum * uint64(e.spread) / (area * 256)
		mask[x] = uint8(min(v, 0xFF))
	}
	clear(mask[x1:])
}

// sumRows extends the summed-area ring of p through row last.
func (e *boxBlur) sumRows(p *boxPass, last int) {
	for ; p.nextRow <= last; p.nextRow++ {
		ty := p.nextRow
		vals := e.rowBuf[:p.right-p.left]

		if q := p.prev; q != nil {
			e.sumRows(q, min(ty+q.radius, q.bottom-1))
			area := q.area()
			for x := range vals {
				cx := p.left + x
				vals[x] = q.boxSum(cx-q.radius, cx+q.radius, ty-q.radius, ty+q.radius) / area
			}
		} else {
			row := e.src.offset(ty) + p.left
			for x := range vals {
				vals[x] = e.src.pix[row+x] >> 24
			}
		}

		above := p.slot(ty - 1)
		cur := p.slot(ty)
		cur[0] = 0
		var acc uint32
		for x, v := range vals {
			acc += v
			cur[x+1] = above[x+1] + acc
		}
	}
}

// boxSum returns the sum of the pass input over columns [x0, x1] and rows
// [y0, y1], clipped to the pass rectangle. Rows up to y1 (clipped) must
// already be summed.
func (p *boxPass) boxSum(x0, x1, y0, y1 int) uint32 {
	x0 = max(x0, p.left)
	x1 = min(x1, p.right-1)
	y0 = max(y0, p.top)
	y1 = min(y1, p.bottom-1)
	if x0 > x1 || y0 > y1 {
		return 0
	}
	l, r := x0-p.left, x1-p.left+1
	bottom, top := p.slot(y1), p.slot(y0-1)
	return bottom[r] - bottom[l] - top[r] + top[l]
}

// zeroEngine produces an all-transparent mask.
type zeroEngine struct{}

func (zeroEngine) process(_ int, mask []byte) { clear(mask) }
