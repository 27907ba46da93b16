// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"testing"
	"time"
)

func TestEncodeAnimation(t *testing.T) {
	t.Run("frame zero stored raw", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 4)
		store, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
			Method:   MethodRleXor,
			Interval: 33 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("EncodeAnimation() error = %v", err)
		}
		if store.FrameCount() != 4 {
			t.Fatalf("FrameCount() = %d, want 4", store.FrameCount())
		}
		if len(store.Payloads[0]) != 16*8*2 {
			t.Errorf("frame 0 payload = %d bytes, want raw %d",
				len(store.Payloads[0]), 16*8*2)
		}
	})

	t.Run("auto resolves to a concrete method", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 4)
		store, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
			Method:   MethodAuto,
			Interval: 33 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("EncodeAnimation() error = %v", err)
		}
		if store.Method == MethodAuto {
			t.Error("store kept the auto tag instead of a concrete method")
		}
	})

	t.Run("decode chain reconstructs every frame", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 6)
		for _, method := range []CompressionMethod{MethodRleXor, MethodRleDirect, MethodSparseXor, MethodRaw} {
			store, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
				Method:   method,
				Interval: 33 * time.Millisecond,
			})
			if err != nil {
				t.Fatalf("%s: EncodeAnimation() error = %v", method, err)
			}

			fb := make([]Pixel, 16*8)
			for f := 0; f < store.FrameCount(); f++ {
				store.DecodeFrame(f, fb)
				if !pixelsEqual(fb, frames[f]) {
					t.Errorf("%s: frame %d mismatch after chained decode", method, f)
				}
			}
		}
	})

	t.Run("rejects out-of-range interval", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 2)
		for _, interval := range []time.Duration{0, 2 * time.Second} {
			_, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
				Method:   MethodRleXor,
				Interval: interval,
			})
			if !IsSplashError(err, ErrValidation) {
				t.Errorf("interval %v: error = %v, want validation error", interval, err)
			}
		}
	})

	t.Run("rejects palette for animations", func(t *testing.T) {
		frames := makeTestFrames(16, 8, 2)
		_, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
			Method:   MethodPaletteLzss,
			Interval: 33 * time.Millisecond,
		})
		if !IsSplashError(err, ErrUnsupported) {
			t.Errorf("error = %v, want unsupported error", err)
		}
	})
}

func TestEncodeStatic(t *testing.T) {
	t.Run("single payload round trips", func(t *testing.T) {
		frame := makeTestFrames(32, 16, 1)[0]
		store, err := EncodeStatic(frame, 32, 16)
		if err != nil {
			t.Fatalf("EncodeStatic() error = %v", err)
		}
		if store.Method != MethodPaletteLzss {
			t.Errorf("Method = %s, want palette_lzss", store.Method)
		}
		if store.FrameCount() != 1 {
			t.Fatalf("FrameCount() = %d, want 1", store.FrameCount())
		}

		fb := make([]Pixel, 32*16)
		store.DecodeFrame(0, fb)
		if !pixelsEqual(fb, frame) {
			t.Error("static decode mismatch")
		}
	})

	t.Run("too many colors is unsupported", func(t *testing.T) {
		frame := make([]Pixel, 512)
		for i := range frame {
			frame[i] = Pixel(i)
		}
		if _, err := EncodeStatic(frame, 32, 16); !IsSplashError(err, ErrUnsupported) {
			t.Errorf("error = %v, want unsupported error", err)
		}
	})
}

func TestFrameStore_DecodeFrame(t *testing.T) {
	frames := makeTestFrames(16, 8, 3)
	store, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
		Method:   MethodRleXor,
		Interval: 33 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("EncodeAnimation() error = %v", err)
	}

	t.Run("out-of-range index is a no-op", func(t *testing.T) {
		fb := make([]Pixel, 16*8)
		store.DecodeFrame(-1, fb)
		store.DecodeFrame(3, fb)
		if !pixelsEqual(fb, make([]Pixel, 16*8)) {
			t.Error("out-of-range index mutated the buffer")
		}
	})

	t.Run("frame zero resets the delta chain", func(t *testing.T) {
		fb := make([]Pixel, 16*8)
		for i := range fb {
			fb[i] = 0xFFFF
		}
		store.DecodeFrame(0, fb)
		if !pixelsEqual(fb, frames[0]) {
			t.Error("frame 0 decode did not overwrite stale contents")
		}
	})
}

func TestFrameStore_EncodedSize(t *testing.T) {
	frames := makeTestFrames(16, 8, 3)
	store, err := EncodeAnimation(frames, 16, 8, EncodeOptions{
		Method:   MethodSparseXor,
		Interval: 33 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("EncodeAnimation() error = %v", err)
	}

	var want int64
	for _, p := range store.Payloads {
		want += int64(len(p))
	}
	if got := store.EncodedSize(); got != want {
		t.Errorf("EncodedSize() = %d, want %d", got, want)
	}
}
