// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "encoding/binary"

// RawCodec stores every pixel as a literal little-endian 16-bit value with no
// control bytes. Frame 0 of every animation is stored this way regardless of
// the store's declared method, since it has no predecessor to diff against;
// it is also selectable as an explicit fallback.
type RawCodec struct{}

// Method returns the compression method tag for raw encoding.
func (*RawCodec) Method() CompressionMethod {
	return MethodRaw
}

// Encode emits the frame as 2×N little-endian bytes. prev is ignored.
func (*RawCodec) Encode(curr, prev []Pixel) ([]byte, error) {
	out := make([]byte, len(curr)*2)
	for i, p := range curr {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(p))
	}
	return out, nil
}

// Decode overwrites dst with the payload's pixels. A short payload fills
// only the pixels it covers; excess payload bytes are ignored.
func (*RawCodec) Decode(payload []byte, dst []Pixel) {
	n := len(payload) / 2
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = Pixel(binary.LittleEndian.Uint16(payload[i*2:]))
	}
}
