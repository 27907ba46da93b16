// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "encoding/binary"

// PaletteLzssCodec encodes a static image as a ≤256-color palette followed by
// an LZSS-compressed stream of palette indices. It is valid only for
// single-frame content; animations never auto-select it.
//
// Payload layout:
//
//	uint16 LE   palette entry count (1-256)
//	uint16 LE   × count palette colors
//	bytes       LZSS stream of 8-bit palette indices
type PaletteLzssCodec struct{}

// Method returns the compression method tag for palette+LZSS encoding.
func (*PaletteLzssCodec) Method() CompressionMethod {
	return MethodPaletteLzss
}

// Encode builds the palette and compresses the index stream. prev is ignored;
// there is never a predecessor for static content.
func (*PaletteLzssCodec) Encode(curr, prev []Pixel) ([]byte, error) {
	if len(curr) == 0 {
		return nil, encodingError("PaletteLzssCodec.Encode", "empty frame", nil)
	}

	pal, err := buildPalette(curr)
	if err != nil {
		return nil, err
	}

	compressed := lzssCompress(pal.Indices)

	out := make([]byte, 2+len(pal.Colors)*2, 2+len(pal.Colors)*2+len(compressed))
	binary.LittleEndian.PutUint16(out, uint16(len(pal.Colors)))
	for i, c := range pal.Colors {
		binary.LittleEndian.PutUint16(out[2+i*2:], uint16(c))
	}
	out = append(out, compressed...)

	return out, nil
}

// Decode expands the index stream through the palette into dst. A truncated
// palette table stops the decode; indices past the palette end fall back to
// entry 0 so a corrupt stream still cannot read out of bounds.
func (*PaletteLzssCodec) Decode(payload []byte, dst []Pixel) {
	if len(payload) < 2 {
		return
	}

	count := int(binary.LittleEndian.Uint16(payload))
	if count == 0 || count > paletteMaxColors {
		return
	}
	if len(payload) < 2+count*2 {
		return
	}

	palette := make([]Pixel, count)
	for i := range palette {
		palette[i] = Pixel(binary.LittleEndian.Uint16(payload[2+i*2:]))
	}

	indices := make([]byte, len(dst))
	n := lzssDecompress(payload[2+count*2:], indices)

	for i := 0; i < n; i++ {
		idx := int(indices[i])
		if idx >= count {
			idx = 0
		}
		dst[i] = palette[idx]
	}
}
