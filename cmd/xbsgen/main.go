// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

// Command xbsgen converts a sequence of PNG or JPEG frames into a Go source
// file embedding a compressed splash.FrameStore, plus the playback defaults
// chosen on the command line. The emitted file is meant to be committed and
// compiled into the boot binary.
//
// Usage:
//
//	xbsgen [flags] frame0.png frame1.png ...
//
// A single input image is encoded as a static palette image when it fits in
// 256 colors, falling back to a one-frame raw store otherwise.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"

	splash "github.com/seb3773/xbootsplash"
)

type options struct {
	output     string
	pkgName    string
	varName    string
	mode       string
	intervalMS int
	loop       bool
	method     string
	resize     string
	offsetX    int
	offsetY    int
	background bool
	bgColor    string
}

func main() {
	var opts options
	flag.StringVar(&opts.output, "o", "splash_data.go", "output Go source file")
	flag.StringVar(&opts.pkgName, "p", "main", "package name of the emitted file")
	flag.StringVar(&opts.varName, "n", "SplashStore", "variable name of the emitted store")
	flag.StringVar(&opts.mode, "m", "auto", "output mode (auto, anim, static)")
	flag.IntVar(&opts.intervalMS, "d", 33, "frame interval in milliseconds")
	flag.BoolVar(&opts.loop, "l", false, "loop the animation")
	flag.StringVar(&opts.method, "z", "auto", "compression method (auto, rle_xor, rle_direct, sparse, raw)")
	flag.StringVar(&opts.resize, "r", "", "resize frames to WxH before encoding")
	flag.IntVar(&opts.offsetX, "x", 0, "horizontal offset from centered position")
	flag.IntVar(&opts.offsetY, "y", 0, "vertical offset from centered position")
	flag.BoolVar(&opts.background, "b", false, "fill the surface with the background color first")
	flag.StringVar(&opts.bgColor, "c", "000000", "background color as RRGGBB")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "xbsgen: no input images")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "xbsgen: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, inputs []string) error {
	method, err := parseMethod(opts.method)
	if err != nil {
		return err
	}
	bgColor, err := parseColor(opts.bgColor)
	if err != nil {
		return err
	}

	paths, err := expandInputs(inputs)
	if err != nil {
		return err
	}
	sortByFrameNumber(paths)

	var targetW, targetH int
	if opts.resize != "" {
		if targetW, targetH, err = parseSize(opts.resize); err != nil {
			return err
		}
	}

	frames, width, height, err := loadFrames(paths, targetW, targetH)
	if err != nil {
		return err
	}

	var store *splash.FrameStore
	switch opts.mode {
	case "static":
		if len(frames) != 1 {
			return fmt.Errorf("static mode takes exactly one input image, got %d", len(frames))
		}
		store, err = splash.EncodeStatic(frames[0], width, height)
	case "auto":
		if len(frames) == 1 {
			store, err = encodeSingle(frames[0], width, height)
			break
		}
		fallthrough
	case "anim":
		store, err = splash.EncodeAnimation(frames, width, height, splash.EncodeOptions{
			Method:   method,
			Interval: time.Duration(opts.intervalMS) * time.Millisecond,
			Loop:     opts.loop,
		})
	default:
		return fmt.Errorf("unknown mode %q (want auto, anim or static)", opts.mode)
	}
	if err != nil {
		return err
	}

	if len(frames) > 1 {
		reportSizes(frames, width, height, store)
	} else {
		fmt.Fprintf(os.Stderr, "static image %dx%d encoded as %s, %d bytes\n",
			width, height, store.Method, store.EncodedSize())
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.output, err)
	}
	defer out.Close()

	return emitStore(out, store, emitParams{
		pkgName:    opts.pkgName,
		varName:    opts.varName,
		offsetX:    opts.offsetX,
		offsetY:    opts.offsetY,
		background: opts.background,
		bgColor:    bgColor,
	})
}

// encodeSingle tries the palette path for a lone image and falls back to a
// one-frame raw animation when the image has too many colors.
func encodeSingle(pixels []splash.Pixel, width, height int) (*splash.FrameStore, error) {
	store, err := splash.EncodeStatic(pixels, width, height)
	if err == nil {
		return store, nil
	}
	if !splash.IsSplashError(err, splash.ErrUnsupported) {
		return nil, err
	}
	fmt.Fprintln(os.Stderr, "image exceeds 256 colors, storing raw")
	return splash.EncodeAnimation([][]splash.Pixel{pixels}, width, height, splash.EncodeOptions{
		Method:   splash.MethodRaw,
		Interval: 33 * time.Millisecond,
	})
}

func parseMethod(name string) (splash.CompressionMethod, error) {
	switch name {
	case "auto":
		return splash.MethodAuto, nil
	case "rle_xor":
		return splash.MethodRleXor, nil
	case "rle_direct":
		return splash.MethodRleDirect, nil
	case "sparse":
		return splash.MethodSparseXor, nil
	case "raw":
		return splash.MethodRaw, nil
	default:
		return 0, fmt.Errorf("unknown compression method %q", name)
	}
}

func parseColor(s string) (splash.Pixel, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q, expected RRGGBB", s)
	}
	rgb, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return splash.NewPixelRGB(uint32(rgb)), nil
}

func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}

// expandInputs flattens directory arguments into the image files they
// contain, so a whole frame directory can be passed as a single argument.
func expandInputs(inputs []string) ([]string, error) {
	var paths []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, in)
			continue
		}

		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, err
		}
		found := false
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".png", ".jpg", ".jpeg":
				paths = append(paths, filepath.Join(in, e.Name()))
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("no PNG or JPEG files in %s", in)
		}
	}
	return paths, nil
}

var frameNumberRe = regexp.MustCompile(`(\d+)\D*$`)

// sortByFrameNumber orders paths by the last number in each filename, so
// frame2.png sorts before frame10.png. Paths without a number keep their
// lexical order after the numbered ones are placed.
func sortByFrameNumber(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		ni, iok := frameNumber(paths[i])
		nj, jok := frameNumber(paths[j])
		if iok && jok {
			return ni < nj
		}
		if iok != jok {
			return iok
		}
		return paths[i] < paths[j]
	})
}

func frameNumber(path string) (int, bool) {
	m := frameNumberRe.FindStringSubmatch(path)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// loadFrames decodes the input images into RGB565 frames. All frames must
// share the same dimensions; when a resize target is given each frame is
// scaled to it with bilinear filtering first.
func loadFrames(paths []string, targetW, targetH int) ([][]splash.Pixel, int, int, error) {
	var frames [][]splash.Pixel
	var width, height int

	for _, path := range paths {
		img, err := loadImage(path)
		if err != nil {
			return nil, 0, 0, err
		}
		if targetW > 0 {
			img = resizeImage(img, targetW, targetH)
		}

		b := img.Bounds()
		if width == 0 {
			width, height = b.Dx(), b.Dy()
		} else if b.Dx() != width || b.Dy() != height {
			return nil, 0, 0, fmt.Errorf("%s is %dx%d, expected %dx%d (use -r to resize)",
				path, b.Dx(), b.Dy(), width, height)
		}

		frames = append(frames, toRGB565(img))
	}
	return frames, width, height, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

func resizeImage(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func toRGB565(img image.Image) []splash.Pixel {
	b := img.Bounds()
	pixels := make([]splash.Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pixels = append(pixels, splash.NewPixel(uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
		}
	}
	return pixels
}

// reportSizes prints the selector's cost table to stderr, with raw and zstd
// sizes as reference points.
func reportSizes(frames [][]splash.Pixel, width, height int, store *splash.FrameStore) {
	report, err := splash.BuildSizeReport(frames, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "size report unavailable: %v\n", err)
		return
	}

	fmt.Fprintf(os.Stderr, "%d frames %dx%d\n", len(frames), width, height)
	fmt.Fprintf(os.Stderr, "  raw:        %d bytes\n", report.RawBytes)
	fmt.Fprintf(os.Stderr, "  zstd ref:   %d bytes\n", report.ZstdBytes)
	for _, c := range report.Costs {
		if !c.Feasible {
			fmt.Fprintf(os.Stderr, "  %-11s infeasible\n", c.Method.String()+":")
			continue
		}
		fmt.Fprintf(os.Stderr, "  %-11s %d bytes\n", c.Method.String()+":", c.TotalBytes)
	}
	fmt.Fprintf(os.Stderr, "stored as %s, %d bytes (%.1f%% of raw)\n",
		store.Method, store.EncodedSize(),
		100*float64(store.EncodedSize())/float64(report.RawBytes))
}
