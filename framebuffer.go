// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

// FrameBuffer is a decoded RGB565 frame in row-major order. The player
// allocates one at startup and decodes every payload into it in place, so
// the delta chain accumulates without further allocation.
type FrameBuffer struct {
	width  int
	height int
	pixels []Pixel
}

// NewFrameBuffer allocates a zeroed (black) frame buffer.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	iv := newInputValidator()
	if err := iv.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}, nil
}

// Width returns the buffer width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Pixels returns the backing pixel slice. Mutating it mutates the buffer.
func (fb *FrameBuffer) Pixels() []Pixel { return fb.pixels }
