package blur

import (
	"math"
)

// Fixed-point units of the kernels.
const (
	naiveUnit = 1 << 24 // naive 2-D kernel weights sum to this
	fastUnit  = 1 << 16 // fast 1-D kernel weights sum to this (before spread)
)

// gaussianValue samples the Gaussian profile used by every kernel in this
// package: exp(-x²/2) with x = 3(i+1)/r. For r == 0 the result is 0.
func gaussianValue(i int, r float32) float32 {
	x := float32(3*(i+1)) / r
	return float32(math.Exp(float64(-x*x) / 2))
}

// gaussianProfile returns the 2r+1 samples of the profile, mirrored so that
// index 0 and 2r hold gaussianValue(0, r) and the centre holds
// gaussianValue(r, r).
func gaussianProfile(r int) []float32 {
	size := r*2 + 1
	lk := make([]float32, size)
	for i := 0; i <= r; i++ {
		v := gaussianValue(i, float32(r))
		lk[i] = v
		lk[size-1-i] = v
	}
	return lk
}

// naiveKernel builds the (2r+1)² kernel of the naive Gaussian filter. Each
// weight is 1 - g(i)·g(j), normalized so that the weights sum to (just under)
// naiveUnit.
func naiveKernel(r int) []uint32 {
	size := r*2 + 1
	lk := gaussianProfile(r)

	k := make([]float32, size*size)
	var sum float32
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := 1 - lk[i]*lk[j]
			k[i*size+j] = v
			sum += v
		}
	}

	kernel := make([]uint32, size*size)
	for i, v := range k {
		kernel[i] = uint32(v * naiveUnit / sum)
	}
	return kernel
}

// fastKernel builds the 2r+1 tap kernel of the fast Gaussian filter.
//
// The outer r' = r·(255-spread)/255 taps on each side carry the inverted
// Gaussian profile of radius r'; every tap between them repeats the profile's
// centre value. With spread 0 the kernel sums to about fastUnit; larger
// spreads flatten the middle and push the sum above it, which the filter
// absorbs by saturating.
func fastKernel(r int, spread uint8) []uint32 {
	size := r*2 + 1
	sr := r * (255 - int(spread)) / 255

	lk := gaussianProfile(sr)
	var sum float32
	for i := range lk {
		lk[i] = 1 - lk[i]
		sum += lk[i]
	}

	kernel := make([]uint32, size)
	for i := 0; i < sr; i++ {
		kernel[i] = uint32(lk[i] * fastUnit / sum)
		kernel[size-1-i] = kernel[i]
	}
	centre := uint32(lk[sr] * fastUnit / sum)
	for i := sr; i < size-sr; i++ {
		kernel[i] = centre
	}
	return kernel
}

// boxSpread returns the factor (in 1/256 units) by which the final box pass
// scales its average. The formula is empirical; it keeps spread 0 visually
// close to the Gaussian filters and must not change, since persisted content
// depends on it.
func boxSpread(radius int, spread uint8) uint32 {
	if radius <= 0 {
		return 256
	}
	f := 256 / gaussianValue(radius*int(spread)/160, float32(radius))
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}

// boxRadii splits radius across passes, front-loading the remainder so that
// earlier passes are at most one pixel wider than later ones.
func boxRadii(radius, passes int) []int {
	radii := make([]int, passes)
	for i := range radii {
		radii[i] = (radius + passes - i - 1) / (passes - i)
		radius -= radii[i]
	}
	return radii
}
