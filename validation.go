// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"fmt"
	"time"
)

// inputValidator validates encode-time input and frame-store metadata.
type inputValidator struct{}

// newInputValidator creates a new input validator.
func newInputValidator() *inputValidator {
	return &inputValidator{}
}

const (
	// maxFrameDimension bounds a single frame axis.
	maxFrameDimension = 16384

	// maxFrameArea bounds the pixel count of a single frame (64 MPix).
	maxFrameArea = 64 * 1024 * 1024

	// maxFrameCount matches the generator's 256-frame animation limit.
	maxFrameCount = 256

	// minFrameInterval and maxFrameInterval bound the per-frame delay,
	// matching the generator's accepted -d range of 1-1000 ms.
	minFrameInterval = time.Millisecond
	maxFrameInterval = time.Second
)

// ValidateFrameDimensions validates a frame's width and height.
func (iv *inputValidator) ValidateFrameDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return validationError("inputValidator.ValidateFrameDimensions",
			fmt.Sprintf("frame dimensions must be positive, got %dx%d", width, height), nil)
	}

	if width > maxFrameDimension || height > maxFrameDimension {
		return validationError("inputValidator.ValidateFrameDimensions",
			fmt.Sprintf("frame dimensions too large: %dx%d (max %d)",
				width, height, maxFrameDimension), nil)
	}

	if width*height > maxFrameArea {
		return validationError("inputValidator.ValidateFrameDimensions",
			fmt.Sprintf("frame area too large: %d pixels (max %d)",
				width*height, maxFrameArea), nil)
	}

	return nil
}

// ValidateFrameSequence checks that every frame of an animation has exactly
// width×height pixels. Mixed-size sequences are a build-time error, never a
// runtime concern.
func (iv *inputValidator) ValidateFrameSequence(frames [][]Pixel, width, height int) error {
	if err := iv.ValidateFrameDimensions(width, height); err != nil {
		return err
	}

	if len(frames) == 0 {
		return validationError("inputValidator.ValidateFrameSequence",
			"animation has no frames", nil)
	}

	if len(frames) > maxFrameCount {
		return validationError("inputValidator.ValidateFrameSequence",
			fmt.Sprintf("too many frames: %d (max %d)", len(frames), maxFrameCount), nil)
	}

	want := width * height
	for i, frame := range frames {
		if len(frame) != want {
			return validationError("inputValidator.ValidateFrameSequence",
				fmt.Sprintf("frame %d has %d pixels, want %d (%dx%d)",
					i, len(frame), want, width, height), nil)
		}
	}

	return nil
}

// ValidateStoreMethod validates a compression method tag for a frame store
// with the given frame count.
func (iv *inputValidator) ValidateStoreMethod(method CompressionMethod, frameCount int) error {
	switch method {
	case MethodRleXor, MethodRleDirect, MethodSparseXor, MethodRaw:
		return nil
	case MethodPaletteLzss:
		if frameCount != 1 {
			return unsupportedError("inputValidator.ValidateStoreMethod",
				fmt.Sprintf("palette+LZSS is valid only for static images, store has %d frames", frameCount), nil)
		}
		return nil
	case MethodAuto:
		return validationError("inputValidator.ValidateStoreMethod",
			"auto is an encode-time selection request, not a storable method", nil)
	default:
		return validationError("inputValidator.ValidateStoreMethod",
			fmt.Sprintf("unknown compression method %d", method), nil)
	}
}

// ValidateInterval validates the target frame interval.
func (iv *inputValidator) ValidateInterval(interval time.Duration) error {
	if interval < minFrameInterval || interval > maxFrameInterval {
		return validationError("inputValidator.ValidateInterval",
			fmt.Sprintf("frame interval %v out of range [%v, %v]",
				interval, minFrameInterval, maxFrameInterval), nil)
	}
	return nil
}
