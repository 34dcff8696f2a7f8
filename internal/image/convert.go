package image

import (
	"image"
	"image/color"
)

// ToNRGBA returns img as a straight-alpha RGBA8 image whose bounds start
// at the origin. An *image.NRGBA already at the origin is returned as is;
// anything else is copied.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch src := img.(type) {
	case *image.RGBA:
		// Common decoder output; skip the color.Color round trip when opaque.
		if src.Opaque() {
			for y := 0; y < b.Dy(); y++ {
				so := src.PixOffset(b.Min.X, b.Min.Y+y)
				copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[so:so+b.Dx()*4])
			}
			return dst
		}
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			so := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[so:so+b.Dx()*4])
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
