package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/oilpaint"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"1024x768", 1024, 768, false},
		{"10X20", 10, 20, false},
		{"800", 0, 0, true},
		{"ax10", 0, 0, true},
		{"10xb", 0, 0, true},
		{"0x10", 0, 0, true},
		{"10x-1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %d, %d, want %d, %d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, suffix, ext string
		want            string
	}{
		{"photo.jpg", "_oil", "", "photo_oil.jpg"},
		{filepath.Join("a", "b.png"), "_x", "", filepath.Join("a", "b_x.png")},
		{"frame.png", "_oil", ".qoi", "frame_oil.qoi"},
		{"frame.png", "", "rgbz", "frame.rgbz"},
		{"noext", "_oil", "", "noext_oil"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.in, tt.suffix, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.in, tt.suffix, tt.ext, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var inputs []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		p := oilpaint.NewPixmap(12, 8)
		p.Clear(oilpaint.RGB(0.2, 0.4, 0.6))
		path := filepath.Join(dir, name)
		if err := p.Save(path); err != nil {
			t.Fatalf("Save: %v", err)
		}
		inputs = append(inputs, path)
	}

	cfg := config{
		suffix: "_oil",
		params: oilpaint.DefaultParams(),
		jobs:   2,
		fitW:   6,
		fitH:   6,
	}
	if err := run(context.Background(), logger, cfg, inputs); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, in := range inputs {
		out, err := oilpaint.Load(outputPath(in, "_oil", ""))
		if err != nil {
			t.Fatalf("Load output: %v", err)
		}
		if out.Width() != 6 || out.Height() != 4 {
			t.Errorf("%s: size = %dx%d, want 6x4", in, out.Width(), out.Height())
		}
	}
}

func TestRunErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	if err := run(ctx, logger, config{params: oilpaint.DefaultParams()}, nil); err == nil {
		t.Error("expected error with no inputs")
	}
	if err := run(ctx, logger, config{output: "x.png", params: oilpaint.DefaultParams()}, []string{"a", "b"}); err == nil {
		t.Error("expected error for -o with several inputs")
	}
	bad := config{params: oilpaint.Params{Radius: 1, Levels: 0}}
	if err := run(ctx, logger, bad, []string{"a.png"}); err == nil {
		t.Error("expected error for invalid params")
	}
	missing := config{suffix: "_oil", params: oilpaint.DefaultParams()}
	if err := run(ctx, logger, missing, []string{filepath.Join(t.TempDir(), "missing.png")}); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestRunRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	in := filepath.Join(dir, "photo.png")
	src := oilpaint.NewPixmap(4, 4)
	src.Clear(oilpaint.RGB(0.1, 0.9, 0.3))
	if err := src.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	before, err := os.ReadFile(in)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	tests := []struct {
		name string
		cfg  config
	}{
		{"empty suffix", config{suffix: ""}},
		{"empty suffix same ext", config{suffix: "", ext: "png"}},
		{"output is input", config{output: filepath.Join(dir, ".", "photo.png"), suffix: "_oil"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.params = oilpaint.DefaultParams()
			err := run(context.Background(), logger, tt.cfg, []string{in})
			if err == nil || !strings.Contains(err.Error(), "overwrite") {
				t.Fatalf("err = %v, want overwrite error", err)
			}

			after, err := os.ReadFile(in)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if string(after) != string(before) {
				t.Error("input file was modified")
			}
		})
	}

	// A different extension with no suffix is a distinct file.
	cfg := config{ext: ".qoi", params: oilpaint.DefaultParams(), workers: 1}
	if err := run(context.Background(), logger, cfg, []string{in}); err != nil {
		t.Fatalf("run with -ext: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "photo.qoi")); err != nil {
		t.Errorf("expected photo.qoi: %v", err)
	}
}
