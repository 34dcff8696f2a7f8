package oilpaint

// Test helper functions shared across oilpaint tests.

// newFilledPixmap creates a pixmap filled with one colour.
func newFilledPixmap(w, h int, c RGBA) *Pixmap {
	p := NewPixmap(w, h)
	p.Clear(c)
	return p
}

// newNoisePixmap creates a pixmap with a deterministic pseudo-random pattern.
func newNoisePixmap(w, h int, seed uint32) *Pixmap {
	p := NewPixmap(w, h)
	s := seed | 1
	for i := range p.data {
		// xorshift32
		s ^= s << 13
		s ^= s >> 17
		s ^= s << 5
		p.data[i] = uint8(s >> 24)
	}
	return p
}

// setGray writes an opaque gray pixel.
func setGray(p *Pixmap, x, y int, v uint8) {
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = v, v, v, 0xff
}

// pixelBytes returns the RGBA bytes at (x, y).
func pixelBytes(p *Pixmap, x, y int) [4]uint8 {
	i := (y*p.width + x) * 4
	return [4]uint8{p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]}
}

// equalPixmaps reports whether a and b have identical size and bytes.
func equalPixmaps(a, b *Pixmap) bool {
	if a.width != b.width || a.height != b.height || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
