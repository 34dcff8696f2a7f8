package oilpaint

import (
	"fmt"
	"io"

	imageio "github.com/gogpu/oilpaint/internal/image"
)

// ErrUnsupportedFormat is returned when a file extension names no known
// encoding.
var ErrUnsupportedFormat = imageio.ErrUnsupportedFormat

// Load reads an image file into a pixmap. The format is detected from the
// content: PNG, JPEG, GIF, BMP, TIFF, WebP, QOI and .rgbz are supported.
func Load(path string) (*Pixmap, error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Decode reads an image stream into a pixmap.
func Decode(r io.Reader) (*Pixmap, error) {
	img, _, err := imageio.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Save writes the pixmap to path in the format named by its extension:
// .png, .jpg/.jpeg, .bmp, .tif/.tiff, .qoi or .rgbz.
func (p *Pixmap) Save(path string) error {
	return imageio.Save(path, p)
}

// Encode writes the pixmap to w in the format named by ext (for example
// ".png" or ".rgbz").
func (p *Pixmap) Encode(w io.Writer, ext string) error {
	format := imageio.FormatFromPath(ext)
	if format == imageio.FormatUnknown {
		return fmt.Errorf("%w: %q", imageio.ErrUnsupportedFormat, ext)
	}
	return imageio.Encode(w, p, format)
}

// Fit returns a copy scaled to fit within maxW×maxH, keeping the aspect
// ratio. Small images are scaled up.
func (p *Pixmap) Fit(maxW, maxH int) (*Pixmap, error) {
	img, err := imageio.Fit(p, maxW, maxH)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}
