// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

// Pixel is a 16-bit RGB565 color value: 5 bits red, 6 bits green, 5 bits
// blue, packed high-to-low as R:G:B. All frame data is produced and stored
// in this format; conversion to the display surface's native format happens
// only at blit time.
type Pixel uint16

// NewPixel packs 8-bit RGB components into an RGB565 pixel.
func NewPixel(r, g, b uint8) Pixel {
	return Pixel(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// NewPixelRGB packs a 24-bit 0xRRGGBB color into an RGB565 pixel.
func NewPixelRGB(rgb uint32) Pixel {
	return NewPixel(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGB expands the pixel into 8-bit components. The low bits are zero-filled,
// matching the expansion the blitter performs for 24/32 bpp surfaces.
func (p Pixel) RGB() (r, g, b uint8) {
	r = uint8(p>>11) << 3
	g = uint8(p>>5&0x3F) << 2
	b = uint8(p&0x1F) << 3
	return r, g, b
}

// PixelBlack is the all-zero pixel, used for surface clears.
const PixelBlack Pixel = 0
