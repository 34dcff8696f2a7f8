package oilpaint

import (
	"image"
	"image/color"

	"github.com/gogpu/oilpaint/internal/filter"
	imageio "github.com/gogpu/oilpaint/internal/image"
)

// Pixmap is an in-memory bitmap: width × height pixels, row-major,
// 4 bytes per pixel in straight (non-premultiplied) RGBA order.
//
// A Pixmap may be empty (0 width or height).
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent black pixmap. Negative sizes are treated
// as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.Bytes()
}

// GetPixel returns the color of a single pixel, or Transparent when out of range.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.Bytes()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from any image. Premultiplied sources are
// converted to straight alpha.
func FromImage(img image.Image) *Pixmap {
	n := imageio.ToNRGBA(img)
	pm := NewPixmap(n.Rect.Dx(), n.Rect.Dy())
	rowBytes := pm.width * 4
	for y := 0; y < pm.height; y++ {
		copy(pm.data[y*rowBytes:(y+1)*rowBytes], n.Pix[y*n.Stride:])
	}
	return pm
}

// surface exposes the pixel buffer to the filter core without copying.
func (p *Pixmap) surface() filter.Surface {
	return filter.Surface{
		Pix:    p.data,
		Width:  p.width,
		Height: p.height,
		Stride: p.width * 4,
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
