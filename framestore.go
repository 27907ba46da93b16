// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "time"

// FrameStore is an encoded animation or static image ready for playback.
// It is produced at build time by the generator and consumed read-only by
// the player, so a store embedded in a binary can be shared freely.
type FrameStore struct {
	// Width and Height are the pixel dimensions of every frame.
	Width  int
	Height int

	// Method is the compression method of payloads 1..n-1. Payload 0 is
	// always MethodRaw for animations; a MethodPaletteLzss store has
	// exactly one payload encoded with PaletteLzss.
	Method CompressionMethod

	// Interval is the nominal frame duration.
	Interval time.Duration

	// Loop reports whether playback wraps from the last frame to frame 0.
	Loop bool

	// Payloads holds one encoded payload per frame.
	Payloads [][]byte
}

// FrameCount returns the number of frames in the store.
func (s *FrameStore) FrameCount() int {
	return len(s.Payloads)
}

// EncodeOptions configures EncodeAnimation.
type EncodeOptions struct {
	// Method selects the compression method, or MethodAuto to let the
	// selector pick per-sequence.
	Method CompressionMethod

	// Interval is the nominal frame duration.
	Interval time.Duration

	// Loop makes playback wrap back to frame 0.
	Loop bool
}

// EncodeAnimation compresses a frame sequence into a FrameStore. Frame 0 is
// always stored Raw so that playback and loop wrap have an absolute base,
// and each later frame is encoded against its predecessor.
func EncodeAnimation(frames [][]Pixel, width, height int, opts EncodeOptions) (*FrameStore, error) {
	iv := newInputValidator()
	if err := iv.ValidateFrameSequence(frames, width, height); err != nil {
		return nil, err
	}
	if err := iv.ValidateInterval(opts.Interval); err != nil {
		return nil, err
	}

	method := opts.Method
	if method == MethodAuto {
		selected, _, err := SelectMethod(frames, width, height)
		if err != nil {
			return nil, err
		}
		method = selected
	}
	if err := iv.ValidateStoreMethod(method, len(frames)); err != nil {
		return nil, err
	}

	raw := RawCodec{}
	codec, err := codecFor(method)
	if err != nil {
		return nil, err
	}

	payloads := make([][]byte, len(frames))
	if payloads[0], err = raw.Encode(frames[0], nil); err != nil {
		return nil, err
	}
	for f := 1; f < len(frames); f++ {
		if payloads[f], err = codec.Encode(frames[f], frames[f-1]); err != nil {
			return nil, err
		}
	}

	return &FrameStore{
		Width:    width,
		Height:   height,
		Method:   method,
		Interval: opts.Interval,
		Loop:     opts.Loop,
		Payloads: payloads,
	}, nil
}

// EncodeStatic compresses a single image with the palette+LZSS path. It
// fails when the image has more than 256 distinct colors; callers fall back
// to a one-frame Raw animation in that case.
func EncodeStatic(pixels []Pixel, width, height int) (*FrameStore, error) {
	iv := newInputValidator()
	if err := iv.ValidateFrameSequence([][]Pixel{pixels}, width, height); err != nil {
		return nil, err
	}

	codec := PaletteLzssCodec{}
	payload, err := codec.Encode(pixels, nil)
	if err != nil {
		return nil, err
	}

	return &FrameStore{
		Width:    width,
		Height:   height,
		Method:   MethodPaletteLzss,
		Interval: 0,
		Loop:     false,
		Payloads: [][]byte{payload},
	}, nil
}

// DecodeFrame decodes payload index into dst, which holds the previous
// frame's pixels (or anything, for frame 0 and PaletteLzss). The index must
// be in range; out-of-range indices and short dst buffers decode nothing
// beyond what the payload's clamping rules allow.
func (s *FrameStore) DecodeFrame(index int, dst []Pixel) {
	if index < 0 || index >= len(s.Payloads) {
		return
	}

	var codec FrameCodec
	switch {
	case s.Method == MethodPaletteLzss:
		codec = &PaletteLzssCodec{}
	case index == 0:
		codec = &RawCodec{}
	default:
		c, err := codecFor(s.Method)
		if err != nil {
			return
		}
		codec = c
	}
	codec.Decode(s.Payloads[index], dst)
}

// EncodedSize returns the summed payload size in bytes.
func (s *FrameStore) EncodedSize() int64 {
	var total int64
	for _, p := range s.Payloads {
		total += int64(len(p))
	}
	return total
}
