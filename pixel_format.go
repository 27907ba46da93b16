// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "fmt"

// PixelFormat describes how pixels are laid out in a display surface.
//
// For 24 and 32 bpp surfaces each channel occupies a full byte and the shift
// fields give the bit position of that byte within the (little-endian) pixel
// word. For 16 bpp surfaces the shifts describe the 5:6:5 field positions
// directly. One descriptor drives a single parameterized blit path instead of
// hand-duplicated per-depth conversion functions.
type PixelFormat struct {
	// BPP (bits-per-pixel) specifies how many bits represent each pixel.
	// Supported values are 16, 24 and 32.
	BPP uint8

	// RedShift is the bit position of the red channel within a pixel value.
	RedShift uint8

	// GreenShift is the bit position of the green channel within a pixel value.
	GreenShift uint8

	// BlueShift is the bit position of the blue channel within a pixel value.
	BlueShift uint8
}

// Common pixel format presets for the surface layouts seen in practice.
var (
	// PixelFormatRGB565 matches the frame store's own pixel layout; blits to
	// it are direct 16-bit copies.
	PixelFormatRGB565 = PixelFormat{BPP: 16, RedShift: 11, GreenShift: 5, BlueShift: 0}

	// PixelFormatXRGB8888 is the common 32-bit layout with red in the high
	// color byte (the usual DRM dumb-buffer format).
	PixelFormatXRGB8888 = PixelFormat{BPP: 32, RedShift: 16, GreenShift: 8, BlueShift: 0}

	// PixelFormatBGRX8888 is the mirrored 32-bit layout with blue in the
	// high color byte.
	PixelFormatBGRX8888 = PixelFormat{BPP: 32, RedShift: 0, GreenShift: 8, BlueShift: 16}

	// PixelFormatRGB888 is 24-bit packed with red in the high byte.
	PixelFormatRGB888 = PixelFormat{BPP: 24, RedShift: 16, GreenShift: 8, BlueShift: 0}

	// PixelFormatBGR888 is 24-bit packed with blue in the high byte.
	PixelFormatBGR888 = PixelFormat{BPP: 24, RedShift: 0, GreenShift: 8, BlueShift: 16}
)

// BytesPerPixel returns the number of bytes each pixel occupies.
func (pf PixelFormat) BytesPerPixel() int {
	return int(pf.BPP) / 8
}

// Validate checks the descriptor for consistency: a supported depth, shifts
// inside the pixel word, and byte-aligned channels for 24/32 bpp layouts.
func (pf PixelFormat) Validate() error {
	switch pf.BPP {
	case 16, 24, 32:
	default:
		return validationError("PixelFormat.Validate",
			fmt.Sprintf("unsupported depth %d bpp (want 16, 24 or 32)", pf.BPP), nil)
	}

	maxShift := pf.BPP - 1
	for _, s := range []struct {
		name  string
		shift uint8
	}{
		{"red", pf.RedShift},
		{"green", pf.GreenShift},
		{"blue", pf.BlueShift},
	} {
		if s.shift > maxShift {
			return validationError("PixelFormat.Validate",
				fmt.Sprintf("%s shift %d exceeds maximum for %d-bit pixels", s.name, s.shift, pf.BPP), nil)
		}
		if pf.BPP != 16 && s.shift%8 != 0 {
			return validationError("PixelFormat.Validate",
				fmt.Sprintf("%s shift %d is not byte-aligned for %d-bit pixels", s.name, s.shift, pf.BPP), nil)
		}
	}

	if pf.RedShift == pf.GreenShift || pf.GreenShift == pf.BlueShift || pf.RedShift == pf.BlueShift {
		return validationError("PixelFormat.Validate", "channel shifts overlap", nil)
	}

	return nil
}

// NativePixel converts an RGB565 pixel into this format's pixel value.
// For 16 bpp the 5:6:5 fields are repositioned without expansion; for 24 and
// 32 bpp each channel is expanded to 8 bits first.
func (pf PixelFormat) NativePixel(p Pixel) uint32 {
	if pf.BPP == 16 {
		r := uint32(p >> 11 & 0x1F)
		g := uint32(p >> 5 & 0x3F)
		b := uint32(p & 0x1F)
		return r<<pf.RedShift | g<<pf.GreenShift | b<<pf.BlueShift
	}
	r, g, b := p.RGB()
	return uint32(r)<<pf.RedShift | uint32(g)<<pf.GreenShift | uint32(b)<<pf.BlueShift
}
