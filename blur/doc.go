// Package blur turns the alpha channel of a 32-bit raster into a blurred
// 8-bit coverage mask, one scanline at a time.
//
// A blur is a three phase state machine:
//
//	st, err := blur.Begin(params, inputRect, outputRect, src)
//	if err != nil {
//		return err
//	}
//	defer st.End()
//	mask := make([]byte, outputRect.Dx())
//	for y := outputRect.Min.Y; y < outputRect.Max.Y; y++ {
//		st.Process(mask)
//		// consume mask
//	}
//
// Three algorithms are available, selected by [Filter]:
//   - Naive Gaussian: full 2-D kernel, O(r²) per pixel (reference only)
//   - Fast Gaussian: separable kernel streamed through a (2r+1)-row ring
//   - Box (1, 2 or 3 passes): cascaded summed-area tables, O(1) per pixel
//
// All filters read only the top (alpha) byte of each source pixel and treat
// pixels outside the input rectangle as transparent. A radius of zero copies
// the source alpha unchanged.
//
// A [State] must not be shared between goroutines. Independent states own
// all of their buffers and kernels and may run concurrently.
package blur
