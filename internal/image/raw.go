package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/klauspost/compress/zstd"
)

// rawMagic starts every .rgbz stream.
var rawMagic = [4]byte{'O', 'P', 'R', 'Z'}

const (
	rawHeaderSize = 12

	// maxRawDimension bounds width and height read from a header.
	maxRawDimension = 1 << 15
)

// ErrBadRawHeader is returned when an .rgbz header is malformed.
var ErrBadRawHeader = errors.New("image: bad rgbz header")

// isRaw reports whether the stream starts with the .rgbz magic.
func isRaw(head []byte) bool {
	return len(head) >= len(rawMagic) && bytes.Equal(head[:len(rawMagic)], rawMagic[:])
}

// EncodeRaw writes img as an .rgbz stream:
//
//	"OPRZ" | width uint32 LE | height uint32 LE | zstd(RGBA rows)
//
// Pixels are straight (non-premultiplied) RGBA8, rows top to bottom.
func EncodeRaw(w io.Writer, img image.Image) error {
	src := ToNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()

	var hdr [rawHeaderSize]byte
	copy(hdr[:4], rawMagic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(height))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("image: write rgbz header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("image: zstd writer: %w", err)
	}
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		off := y * src.Stride
		if _, err := enc.Write(src.Pix[off : off+rowBytes]); err != nil {
			_ = enc.Close()
			return fmt.Errorf("image: write rgbz pixels: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("image: close zstd: %w", err)
	}
	return nil
}

// DecodeRaw reads an .rgbz stream.
func DecodeRaw(r io.Reader) (*image.NRGBA, error) {
	var hdr [rawHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRawHeader, err)
	}
	if !isRaw(hdr[:]) {
		return nil, fmt.Errorf("%w: bad magic", ErrBadRawHeader)
	}

	width := binary.LittleEndian.Uint32(hdr[4:8])
	height := binary.LittleEndian.Uint32(hdr[8:12])
	if width > maxRawDimension || height > maxRawDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrBadRawHeader, width, height, maxRawDimension)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	if len(dst.Pix) == 0 {
		return dst, nil
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("image: zstd reader: %w", err)
	}
	defer dec.Close()

	if _, err := io.ReadFull(dec, dst.Pix); err != nil {
		return nil, fmt.Errorf("image: read rgbz pixels: %w", err)
	}
	return dst, nil
}
