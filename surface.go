// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

// Surface is a blit target: a linear pixel buffer with a stride, a pixel
// format, and an optional presentation step. Implementations wrap whatever
// the platform provides (a dumb DRM buffer, an fbdev mapping, a test
// buffer); the blitter only needs these five methods.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Stride returns the length of one row in bytes. It may exceed
	// width*BytesPerPixel when rows are padded.
	Stride() int

	// Format describes the surface's pixel layout.
	Format() PixelFormat

	// Bytes returns the backing byte buffer. The blitter writes rows
	// directly into it.
	Bytes() []byte

	// Present makes the current buffer contents visible. Surfaces that
	// scan out directly return nil without doing anything.
	Present() error
}

// MemorySurface is an in-memory Surface, used by tests and by callers that
// compose the splash into a larger image before display.
type MemorySurface struct {
	width  int
	height int
	stride int
	format PixelFormat
	buf    []byte
}

// NewMemorySurface allocates a zeroed surface with tightly packed rows.
func NewMemorySurface(width, height int, format PixelFormat) (*MemorySurface, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	iv := newInputValidator()
	if err := iv.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	stride := width * format.BytesPerPixel()
	return &MemorySurface{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		buf:    make([]byte, stride*height),
	}, nil
}

// Size returns the surface dimensions in pixels.
func (s *MemorySurface) Size() (int, int) { return s.width, s.height }

// Stride returns the row length in bytes.
func (s *MemorySurface) Stride() int { return s.stride }

// Format returns the surface's pixel layout.
func (s *MemorySurface) Format() PixelFormat { return s.format }

// Bytes returns the backing buffer.
func (s *MemorySurface) Bytes() []byte { return s.buf }

// Present is a no-op for memory surfaces.
func (s *MemorySurface) Present() error { return nil }
