// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "encoding/binary"

// Blit copies the frame buffer onto the surface at pixel offset (x, y),
// converting from RGB565 to the surface's pixel format. The source is
// clipped against the surface bounds, so negative offsets and frames larger
// than the surface copy only the visible region. A fully off-surface blit
// copies nothing and returns nil.
func Blit(dst Surface, fb *FrameBuffer, x, y int) error {
	format := dst.Format()
	if err := format.Validate(); err != nil {
		return err
	}

	dstW, dstH := dst.Size()
	srcX, srcY := 0, 0
	w, h := fb.width, fb.height

	if x < 0 {
		srcX = -x
		w += x
		x = 0
	}
	if y < 0 {
		srcY = -y
		h += y
		y = 0
	}
	if x+w > dstW {
		w = dstW - x
	}
	if y+h > dstH {
		h = dstH - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	buf := dst.Bytes()
	stride := dst.Stride()
	bpp := format.BytesPerPixel()
	pixels := fb.pixels

	switch {
	case format == PixelFormatRGB565:
		for row := 0; row < h; row++ {
			src := pixels[(srcY+row)*fb.width+srcX:]
			out := buf[(y+row)*stride+x*2:]
			for col := 0; col < w; col++ {
				binary.LittleEndian.PutUint16(out[col*2:], uint16(src[col]))
			}
		}
	case format.BPP == 32 && (format == PixelFormatXRGB8888 || format == PixelFormatBGRX8888):
		blit32(buf, stride, x, y, w, h, pixels, fb.width, srcX, srcY, format)
	default:
		for row := 0; row < h; row++ {
			src := pixels[(srcY+row)*fb.width+srcX:]
			out := buf[(y+row)*stride+x*bpp:]
			for col := 0; col < w; col++ {
				putNative(out[col*bpp:], format.NativePixel(src[col]), bpp)
			}
		}
	}
	return nil
}

// blit32 handles the common 32bpp formats with an 8-pixel unrolled inner
// loop. The conversion is a pure function of the source word, so unrolling
// just trims loop overhead on the hot path.
func blit32(buf []byte, stride, x, y, w, h int, pixels []Pixel, srcStride, srcX, srcY int, format PixelFormat) {
	for row := 0; row < h; row++ {
		src := pixels[(srcY+row)*srcStride+srcX:]
		out := buf[(y+row)*stride+x*4:]
		col := 0
		for ; col+8 <= w; col += 8 {
			binary.LittleEndian.PutUint32(out[col*4:], format.NativePixel(src[col]))
			binary.LittleEndian.PutUint32(out[col*4+4:], format.NativePixel(src[col+1]))
			binary.LittleEndian.PutUint32(out[col*4+8:], format.NativePixel(src[col+2]))
			binary.LittleEndian.PutUint32(out[col*4+12:], format.NativePixel(src[col+3]))
			binary.LittleEndian.PutUint32(out[col*4+16:], format.NativePixel(src[col+4]))
			binary.LittleEndian.PutUint32(out[col*4+20:], format.NativePixel(src[col+5]))
			binary.LittleEndian.PutUint32(out[col*4+24:], format.NativePixel(src[col+6]))
			binary.LittleEndian.PutUint32(out[col*4+28:], format.NativePixel(src[col+7]))
		}
		for ; col < w; col++ {
			binary.LittleEndian.PutUint32(out[col*4:], format.NativePixel(src[col]))
		}
	}
}

// putNative writes a native pixel value as bpp little-endian bytes.
func putNative(out []byte, v uint32, bpp int) {
	out[0] = byte(v)
	out[1] = byte(v >> 8)
	if bpp > 2 {
		out[2] = byte(v >> 16)
	}
	if bpp > 3 {
		out[3] = byte(v >> 24)
	}
}

// Fill paints the whole surface with one color. Black on a format whose
// native representation is all zero bytes is bulk-cleared row by row.
func Fill(dst Surface, color Pixel) error {
	format := dst.Format()
	if err := format.Validate(); err != nil {
		return err
	}

	w, h := dst.Size()
	buf := dst.Bytes()
	stride := dst.Stride()
	bpp := format.BytesPerPixel()
	native := format.NativePixel(color)

	if native == 0 {
		for row := 0; row < h; row++ {
			out := buf[row*stride : row*stride+w*bpp]
			for i := range out {
				out[i] = 0
			}
		}
		return nil
	}

	for row := 0; row < h; row++ {
		out := buf[row*stride:]
		for col := 0; col < w; col++ {
			putNative(out[col*bpp:], native, bpp)
		}
	}
	return nil
}
