// Package image handles reading, writing and resizing the bitmaps fed to
// and produced by the oil painting filter.
//
// Decoding sniffs the content, so file extensions only matter on encode.
// Registered decoders: PNG, JPEG, GIF, BMP, TIFF, WebP, QOI and the
// zstd-compressed raw RGBA container (.rgbz).
package image

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an encoding is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// JPEGQuality is the quality used when encoding JPEG.
const JPEGQuality = 90

// Decode reads an image in any registered format and returns it with the
// detected format name.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(rawMagic))
	if len(head) == 0 && err != nil {
		if errors.Is(err, io.EOF) {
			return nil, "", ErrEmptyData
		}
		return nil, "", fmt.Errorf("image: read: %w", err)
	}
	if isRaw(head) {
		img, err := DecodeRaw(br)
		if err != nil {
			return nil, "", err
		}
		return img, FormatRaw.String(), nil
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the image at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	// Encoders take their fast paths on *image.NRGBA, and going through
	// NRGBA keeps straight alpha exact.
	img = ToNRGBA(img)

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatQOI:
		err = qoi.Encode(w, img)
	case FormatRaw:
		return EncodeRaw(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img to path, choosing the format from the extension.
// The file is only left behind when encoding succeeds.
func Save(path string, img image.Image) error {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("image: write file: %w", err)
	}
	return f.Close()
}
