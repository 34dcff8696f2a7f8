package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an on-disk image encoding.
type Format uint8

const (
	// FormatUnknown is returned for unrecognised extensions.
	FormatUnknown Format = iota

	// FormatPNG is lossless PNG.
	FormatPNG

	// FormatJPEG is baseline JPEG. Alpha is dropped on encode.
	FormatJPEG

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression on encode.
	FormatTIFF

	// FormatQOI is the Quite OK Image format.
	FormatQOI

	// FormatRaw is straight RGBA8 behind a small header, zstd compressed.
	FormatRaw

	formatCount
)

// FormatInfo describes a Format.
type FormatInfo struct {
	// Name is the short lowercase name.
	Name string

	// Extensions lists recognised file extensions, preferred first.
	Extensions []string

	// Lossy is true when encoding discards information.
	Lossy bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {Name: "unknown"},
	FormatPNG:     {Name: "png", Extensions: []string{".png"}},
	FormatJPEG:    {Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}, Lossy: true},
	FormatBMP:     {Name: "bmp", Extensions: []string{".bmp"}},
	FormatTIFF:    {Name: "tiff", Extensions: []string{".tif", ".tiff"}},
	FormatQOI:     {Name: "qoi", Extensions: []string{".qoi"}},
	FormatRaw:     {Name: "rgbz", Extensions: []string{".rgbz"}},
}

// Info returns the metadata for f. Invalid formats report FormatUnknown.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return formatInfoTable[FormatUnknown]
	}
	return formatInfoTable[f]
}

// String returns the format name.
func (f Format) String() string {
	return f.Info().Name
}

// Ext returns the preferred file extension, or "" for FormatUnknown.
func (f Format) Ext() string {
	exts := f.Info().Extensions
	if len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// FormatFromPath picks the format from the file extension, case-insensitive.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatUnknown
	}
	for f := FormatPNG; f < formatCount; f++ {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}
