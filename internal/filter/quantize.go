package filter

import "math"

// brightnessScale is 3 (channel average) times 255 (8-bit range).
const brightnessScale = 3 * 255

// Bucket maps a colour to its intensity level:
//
//	floor(((r+g+b)/3) * intensity / 255)
//
// clamped to levels-1. The floor is taken exactly in integer arithmetic,
// and any non-negative intensity is accepted.
func Bucket(r, g, b uint8, intensity, levels int) int {
	i := (int(r) + int(g) + int(b)) * capIntensity(intensity, levels) / brightnessScale
	if i > levels-1 {
		i = levels - 1
	}
	return i
}

// capIntensity lowers intensity to where the product with a channel sum
// cannot overflow. At levels*brightnessScale every non-zero sum already
// reaches the top level, so the cap does not change any bucket.
func capIntensity(intensity, levels int) int {
	limit := math.MaxInt / brightnessScale
	if levels <= limit/brightnessScale {
		limit = levels * brightnessScale
	}
	return min(intensity, limit)
}

// UsedLevels returns how many levels Bucket can produce for the given
// settings: never more than intensity+1, since the brightest pixel maps to
// intensity. Histograms need no more entries than this.
func UsedLevels(intensity, levels int) int {
	if intensity < levels {
		return intensity + 1
	}
	return levels
}

// BucketRows fills buckets for source rows [y0, y1). buckets is indexed
// by y*src.Width+x and must hold at least src.Width*src.Height entries.
func BucketRows(src Surface, buckets []int32, intensity, levels, y0, y1 int) {
	intensity = capIntensity(intensity, levels)
	for y := y0; y < y1; y++ {
		row := y * src.Stride
		out := buckets[y*src.Width : (y+1)*src.Width]
		for x := range out {
			i := row + x*4
			out[x] = int32(Bucket(src.Pix[i], src.Pix[i+1], src.Pix[i+2], intensity, levels))
		}
	}
}

// BucketMap returns the intensity level of every pixel of src.
func BucketMap(src Surface, intensity, levels int) []int32 {
	buckets := make([]int32, src.Width*src.Height)
	BucketRows(src, buckets, intensity, levels, 0, src.Height)
	return buckets
}
