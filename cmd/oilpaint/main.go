// Command oilpaint applies the oil painting filter to image files.
//
// Usage:
//
//	oilpaint [flags] input...
//
// Each input is written next to itself with a suffix (default "_oil") and
// the same extension, unless -o names the output for a single input:
//
//	oilpaint -radius 3 -fit 1024x768 photo.jpg
//	oilpaint -o painted.png -levels 64 photo.jpg
//	oilpaint -jobs 4 -ext .qoi frames/*.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/oilpaint"
)

type config struct {
	output  string
	suffix  string
	ext     string
	params  oilpaint.Params
	workers int
	jobs    int
	fitW    int
	fitH    int
}

func main() {
	var (
		cfg     config
		fit     = flag.String("fit", "", "scale input to fit WxH before painting (e.g. 1024x768)")
		verbose = flag.Bool("v", false, "verbose (debug) logging")
		version = flag.Bool("version", false, "print version and exit")
	)
	flag.StringVar(&cfg.output, "o", "", "output file (only with a single input)")
	flag.StringVar(&cfg.suffix, "suffix", "_oil", "suffix appended to output file names")
	flag.StringVar(&cfg.ext, "ext", "", "output extension (default: same as input)")
	flag.IntVar(&cfg.params.Radius, "radius", oilpaint.DefaultRadius, "neighbourhood radius in pixels")
	flag.IntVar(&cfg.params.Levels, "levels", oilpaint.DefaultLevels, "number of intensity levels")
	flag.IntVar(&cfg.params.Intensity, "intensity", oilpaint.DefaultIntensity, "intensity quantization factor")
	flag.IntVar(&cfg.workers, "workers", 0, "worker goroutines per image (0 = all CPUs)")
	flag.IntVar(&cfg.jobs, "jobs", 1, "images processed concurrently")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("oilpaint", oilpaint.Version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	oilpaint.SetLogger(logger)

	if *fit != "" {
		w, h, err := parseSize(*fit)
		if err != nil {
			logger.Error("invalid -fit", "error", err)
			os.Exit(2)
		}
		cfg.fitW, cfg.fitH = w, h
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, logger, cfg, flag.Args())
	stop()

	if err != nil {
		logger.Error("oilpaint failed", "error", err)
		os.Exit(1)
	}
}

// run paints every input, at most cfg.jobs at a time. The first failure
// cancels the remaining inputs.
func run(ctx context.Context, logger *slog.Logger, cfg config, inputs []string) error {
	if len(inputs) == 0 {
		return errors.New("no input files")
	}
	if cfg.output != "" && len(inputs) > 1 {
		return errors.New("-o requires exactly one input")
	}

	outputs := make([]string, len(inputs))
	for i, in := range inputs {
		out := cfg.output
		if out == "" {
			out = outputPath(in, cfg.suffix, cfg.ext)
		}
		if filepath.Clean(out) == filepath.Clean(in) {
			return fmt.Errorf("%s: output would overwrite input (set -suffix, -ext or -o)", in)
		}
		outputs[i] = out
	}

	f, err := oilpaint.NewFilter(cfg.params, oilpaint.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	defer f.Close()

	printer := message.NewPrinter(language.English)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.jobs, 1))
	for i, in := range inputs {
		out := outputs[i]
		g.Go(func() error {
			if err := paintFile(ctx, f, cfg, in, out, logger, printer); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func paintFile(ctx context.Context, f *oilpaint.Filter, cfg config, in, out string, logger *slog.Logger, printer *message.Printer) error {
	start := time.Now()

	src, err := oilpaint.Load(in)
	if err != nil {
		return err
	}
	if cfg.fitW > 0 {
		if src, err = src.Fit(cfg.fitW, cfg.fitH); err != nil {
			return err
		}
	}

	dst, err := f.Apply(ctx, src)
	if err != nil {
		return err
	}
	if err := dst.Save(out); err != nil {
		return err
	}

	logger.Info("painted",
		"input", in,
		"output", out,
		"size", fmt.Sprintf("%dx%d", dst.Width(), dst.Height()),
		"pixels", printer.Sprintf("%d", dst.Width()*dst.Height()),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// outputPath derives the output name for in: "dir/photo.jpg" with suffix
// "_oil" becomes "dir/photo_oil.jpg". A non-empty ext replaces the input
// extension.
func outputPath(in, suffix, ext string) string {
	inExt := filepath.Ext(in)
	if ext == "" {
		ext = inExt
	} else if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(in, inExt) + suffix + ext
}

// parseSize parses "WxH" into positive integers.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: width: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: height: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: width and height must be positive", s)
	}
	return w, h, nil
}
