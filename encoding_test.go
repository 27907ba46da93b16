// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"bytes"
	"testing"
)

// roundTrip encodes curr against prev and decodes the payload into a copy of
// prev, returning the reconstruction.
func roundTrip(t *testing.T, codec FrameCodec, curr, prev []Pixel) []Pixel {
	t.Helper()

	payload, err := codec.Encode(curr, prev)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	dst := make([]Pixel, len(curr))
	copy(dst, prev)
	codec.Decode(payload, dst)
	return dst
}

func pixelsEqual(a, b []Pixel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// makeTestFrames builds a short animation of a dot walking along a row, a
// typical mostly-static splash sequence.
func makeTestFrames(width, height, count int) [][]Pixel {
	frames := make([][]Pixel, count)
	for f := range frames {
		frame := make([]Pixel, width*height)
		frame[f%width] = NewPixel(0xFF, 0x80, 0x20)
		frames[f] = frame
	}
	return frames
}

func TestEncoding_RleXor(t *testing.T) {
	codec := &RleXorCodec{}

	t.Run("round trip", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 4)
		for f := 1; f < len(frames); f++ {
			got := roundTrip(t, codec, frames[f], frames[f-1])
			if !pixelsEqual(got, frames[f]) {
				t.Errorf("frame %d round trip mismatch", f)
			}
		}
	})

	t.Run("identical frames encode to end marker", func(t *testing.T) {
		frame := makeTestFrames(16, 8, 1)[0]
		payload, err := codec.Encode(frame, frame)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		// 128 unchanged pixels is one skip command plus the end byte.
		want := []byte{0xFF, 0x00}
		if !bytes.Equal(payload, want) {
			t.Errorf("Encode() = %x, want %x", payload, want)
		}
	})

	t.Run("skip then delta byte stream", func(t *testing.T) {
		prev := []Pixel{5, 5, 5, 5}
		curr := []Pixel{5, 5, 5, 5 ^ 0x1234}
		payload, err := codec.Encode(curr, prev)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		// Skip 3 (0x80|2), one delta word, end marker.
		want := []byte{0x82, 0x01, 0x34, 0x12, 0x00}
		if !bytes.Equal(payload, want) {
			t.Errorf("Encode() = %x, want %x", payload, want)
		}
	})

	t.Run("missing predecessor is an error", func(t *testing.T) {
		if _, err := codec.Encode(make([]Pixel, 4), nil); !IsSplashError(err, ErrEncoding) {
			t.Errorf("Encode() error = %v, want encoding error", err)
		}
	})

	t.Run("long change run splits at 127", func(t *testing.T) {
		prev := make([]Pixel, 300)
		curr := make([]Pixel, 300)
		for i := range curr {
			curr[i] = Pixel(i + 1)
		}
		got := roundTrip(t, codec, curr, prev)
		if !pixelsEqual(got, curr) {
			t.Error("300-pixel change run did not round trip")
		}
	})

	t.Run("truncated payload stays in bounds", func(t *testing.T) {
		prev := make([]Pixel, 8)
		curr := make([]Pixel, 8)
		for i := range curr {
			curr[i] = Pixel(0x1111 * (i + 1))
		}
		payload, err := codec.Encode(curr, prev)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		for cut := 0; cut < len(payload); cut++ {
			dst := make([]Pixel, 8)
			codec.Decode(payload[:cut], dst)
		}
	})

	t.Run("corrupt skip past frame end is ignored", func(t *testing.T) {
		dst := []Pixel{1, 2}
		codec.Decode([]byte{0xFF, 0x01, 0x34, 0x12, 0x00}, dst)
		if dst[0] != 1 || dst[1] != 2 {
			t.Errorf("out-of-range skip mutated frame: %v", dst)
		}
	})
}

func TestEncoding_RleDirect(t *testing.T) {
	codec := &RleDirectCodec{}

	t.Run("round trip", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 4)
		for f := 1; f < len(frames); f++ {
			got := roundTrip(t, codec, frames[f], make([]Pixel, len(frames[f])))
			if !pixelsEqual(got, frames[f]) {
				t.Errorf("frame %d round trip mismatch", f)
			}
		}
	})

	t.Run("solid run uses repeat command", func(t *testing.T) {
		a := NewPixel(0xFF, 0x00, 0x00)
		b := NewPixel(0x00, 0xFF, 0x00)
		curr := []Pixel{a, a, a, a, b}
		payload, err := codec.Encode(curr, nil)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		want := []byte{
			0x84, byte(a), byte(a >> 8),
			0x01, byte(b), byte(b >> 8),
			0x00,
		}
		if !bytes.Equal(payload, want) {
			t.Errorf("Encode() = %x, want %x", payload, want)
		}
	})

	t.Run("high bit means repeat not skip", func(t *testing.T) {
		// The same control byte that skips 3 pixels in RLE-XOR repeats a
		// value 2 times here.
		dst := make([]Pixel, 4)
		codec.Decode([]byte{0x82, 0x34, 0x12, 0x00}, dst)
		want := []Pixel{0x1234, 0x1234, 0, 0}
		if !pixelsEqual(dst, want) {
			t.Errorf("Decode() = %v, want %v", dst, want)
		}
	})

	t.Run("literal run breaks before a solid run", func(t *testing.T) {
		curr := []Pixel{1, 2, 7, 7, 7, 3}
		got := roundTrip(t, codec, curr, make([]Pixel, len(curr)))
		if !pixelsEqual(got, curr) {
			t.Errorf("round trip = %v, want %v", got, curr)
		}
	})

	t.Run("repeat missing value byte stops decode", func(t *testing.T) {
		dst := []Pixel{9, 9}
		codec.Decode([]byte{0x85}, dst)
		if dst[0] != 9 || dst[1] != 9 {
			t.Errorf("truncated repeat mutated frame: %v", dst)
		}
	})
}

func TestEncoding_SparseXor(t *testing.T) {
	codec := &SparseXorCodec{}

	t.Run("round trip", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 4)
		for f := 1; f < len(frames); f++ {
			got := roundTrip(t, codec, frames[f], frames[f-1])
			if !pixelsEqual(got, frames[f]) {
				t.Errorf("frame %d round trip mismatch", f)
			}
		}
	})

	t.Run("payload size is 2 plus 4 per change", func(t *testing.T) {
		prev := make([]Pixel, 100)
		curr := make([]Pixel, 100)
		curr[10] = 1
		curr[50] = 2
		curr[99] = 3
		payload, err := codec.Encode(curr, prev)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if len(payload) != 2+3*4 {
			t.Errorf("payload length = %d, want %d", len(payload), 2+3*4)
		}
	})

	t.Run("rejects frames beyond 16-bit indexing", func(t *testing.T) {
		big := make([]Pixel, sparseMaxPixels+1)
		if _, err := codec.Encode(big, big); !IsSplashError(err, ErrUnsupported) {
			t.Errorf("Encode() error = %v, want unsupported error", err)
		}
	})

	t.Run("count clamped to available records", func(t *testing.T) {
		// Declares 100 records but carries one.
		payload := []byte{100, 0, 2, 0, 0xFF, 0xFF}
		dst := make([]Pixel, 4)
		codec.Decode(payload, dst)
		want := []Pixel{0, 0, 0xFFFF, 0}
		if !pixelsEqual(dst, want) {
			t.Errorf("Decode() = %v, want %v", dst, want)
		}
	})

	t.Run("out-of-range index is dropped", func(t *testing.T) {
		payload := []byte{1, 0, 0xFF, 0x7F, 0x01, 0x00}
		dst := make([]Pixel, 4)
		codec.Decode(payload, dst)
		if !pixelsEqual(dst, make([]Pixel, 4)) {
			t.Errorf("out-of-range record mutated frame: %v", dst)
		}
	})
}

func TestEncoding_Raw(t *testing.T) {
	codec := &RawCodec{}

	t.Run("round trip", func(t *testing.T) {
		frame := makeTestFrames(16, 8, 1)[0]
		got := roundTrip(t, codec, frame, nil)
		if !pixelsEqual(got, frame) {
			t.Error("raw round trip mismatch")
		}
	})

	t.Run("payload is two bytes per pixel", func(t *testing.T) {
		frame := make([]Pixel, 37)
		payload, err := codec.Encode(frame, nil)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if len(payload) != 74 {
			t.Errorf("payload length = %d, want 74", len(payload))
		}
	})

	t.Run("short payload fills a prefix", func(t *testing.T) {
		dst := []Pixel{9, 9, 9}
		codec.Decode([]byte{0x34, 0x12}, dst)
		want := []Pixel{0x1234, 9, 9}
		if !pixelsEqual(dst, want) {
			t.Errorf("Decode() = %v, want %v", dst, want)
		}
	})
}

func TestEncoding_PaletteLzss(t *testing.T) {
	codec := &PaletteLzssCodec{}

	t.Run("round trip", func(t *testing.T) {
		// A dithered two-color pattern with a border, well under 256 colors.
		const w, h = 32, 16
		frame := make([]Pixel, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				switch {
				case x == 0 || y == 0 || x == w-1 || y == h-1:
					frame[y*w+x] = NewPixel(0xFF, 0xFF, 0xFF)
				case (x+y)%2 == 0:
					frame[y*w+x] = NewPixel(0x20, 0x40, 0x80)
				}
			}
		}
		got := roundTrip(t, codec, frame, nil)
		if !pixelsEqual(got, frame) {
			t.Error("palette round trip mismatch")
		}
	})

	t.Run("rejects more than 256 colors", func(t *testing.T) {
		frame := make([]Pixel, 300)
		for i := range frame {
			frame[i] = Pixel(i)
		}
		if _, err := codec.Encode(frame, nil); !IsSplashError(err, ErrUnsupported) {
			t.Errorf("Encode() error = %v, want unsupported error", err)
		}
	})

	t.Run("truncated palette table decodes nothing", func(t *testing.T) {
		dst := []Pixel{7, 7}
		// Declares 4 palette entries, carries one.
		codec.Decode([]byte{4, 0, 0x34, 0x12}, dst)
		if dst[0] != 7 || dst[1] != 7 {
			t.Errorf("truncated palette mutated frame: %v", dst)
		}
	})

	t.Run("index past palette end falls back to entry zero", func(t *testing.T) {
		// One palette entry, one literal index byte 5.
		payload := []byte{1, 0, 0x34, 0x12, 0x01, 0x05}
		dst := make([]Pixel, 1)
		codec.Decode(payload, dst)
		if dst[0] != 0x1234 {
			t.Errorf("Decode() = %04x, want 1234", uint16(dst[0]))
		}
	})
}
