package filter

// Surface is a view over a straight-alpha RGBA8 pixel buffer.
// Pixel (x, y) starts at Pix[y*Stride+x*4].
type Surface struct {
	Pix    []uint8
	Width  int
	Height int
	Stride int
}

// NewSurface allocates a zeroed surface of the given size.
func NewSurface(width, height int) Surface {
	return Surface{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
		Stride: width * 4,
	}
}

// OilPaint recolours each pixel with the mean colour of the most populated
// intensity level in its square neighbourhood.
//
// Neighbours outside the image are excluded, not clamped, so edge pixels
// aggregate over fewer samples.
type OilPaint struct {
	// Radius is the neighbourhood half-width.
	Radius int

	// Levels is the number of intensity buckets.
	Levels int

	// Intensity scales brightness before bucketing.
	Intensity int
}

// Apply paints every row of dst from src on the calling goroutine.
// dst must have the same dimensions as src.
func (f *OilPaint) Apply(src, dst Surface) {
	buckets := BucketMap(src, f.Intensity, f.Levels)
	h := NewHistogram(UsedLevels(f.Intensity, f.Levels))
	f.PaintRows(src, dst, buckets, h, 0, src.Height)
}

// PaintRows writes output rows [y0, y1) of dst. buckets is the bucket map
// of src (see BucketMap) and h is the caller's scratch histogram.
func (f *OilPaint) PaintRows(src, dst Surface, buckets []int32, h *Histogram, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := y * dst.Stride
		for x := 0; x < dst.Width; x++ {
			r, g, b := f.PaintPixel(src, buckets, h, x, y)
			i := row + x*4
			dst.Pix[i+0] = r
			dst.Pix[i+1] = g
			dst.Pix[i+2] = b
			dst.Pix[i+3] = 0xff
		}
	}
}

// PaintPixel computes the output colour of (x, y). On return h holds the
// neighbourhood histogram of that pixel.
//
// A neighbourhood without samples yields black; this only happens for
// coordinates outside src.
func (f *OilPaint) PaintPixel(src Surface, buckets []int32, h *Histogram, x, y int) (r, g, b uint8) {
	h.Reset()

	// Restricting the window to the image is the same as skipping
	// every out-of-range coordinate. A radius past the image size covers
	// the whole image, and capping it keeps x+radius from overflowing.
	radius := min(f.Radius, max(src.Width, src.Height))
	x0, x1 := max(x-radius, 0), min(x+radius, src.Width-1)
	y0, y1 := max(y-radius, 0), min(y+radius, src.Height-1)

	for by := y0; by <= y1; by++ {
		row := by * src.Stride
		brow := buckets[by*src.Width:]
		for bx := x0; bx <= x1; bx++ {
			i := row + bx*4
			h.Add(int(brow[bx]), src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		}
	}

	bucket, _ := h.Dominant()
	r, g, b, ok := h.Mean(bucket)
	if !ok {
		return 0, 0, 0
	}
	return r, g, b
}
