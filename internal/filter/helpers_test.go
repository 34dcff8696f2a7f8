package filter

// Test helper functions shared across filter tests.

// newTestSurface creates a surface filled with an opaque colour.
func newTestSurface(w, h int, r, g, b uint8) Surface {
	s := NewSurface(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			setTestPixel(s, x, y, r, g, b)
		}
	}
	return s
}

// setTestPixel writes an opaque pixel.
func setTestPixel(s Surface, x, y int, r, g, b uint8) {
	i := y*s.Stride + x*4
	s.Pix[i+0] = r
	s.Pix[i+1] = g
	s.Pix[i+2] = b
	s.Pix[i+3] = 0xff
}

// setTestGray writes an opaque gray pixel.
func setTestGray(s Surface, x, y int, v uint8) {
	setTestPixel(s, x, y, v, v, v)
}

// testPixel returns the RGBA bytes at (x, y).
func testPixel(s Surface, x, y int) [4]uint8 {
	i := y*s.Stride + x*4
	return [4]uint8{s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]}
}
