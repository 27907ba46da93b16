// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "fmt"

// paletteMaxColors is the largest palette an 8-bit index stream can address.
const paletteMaxColors = 256

// Palette is an ordered set of distinct pixel values plus the index mapping
// of a frame, materialized only for palette+LZSS encoding.
type Palette struct {
	// Colors holds the distinct pixel values in first-seen order.
	Colors []Pixel

	// Indices maps each frame pixel to its palette entry.
	Indices []byte
}

// buildPalette scans a frame and assigns every distinct color a palette
// index in first-seen order. Images with more than 256 distinct colors are
// rejected; they must be quantized upstream before palette encoding applies.
func buildPalette(pixels []Pixel) (*Palette, error) {
	pal := &Palette{
		Colors:  make([]Pixel, 0, 64),
		Indices: make([]byte, len(pixels)),
	}

	lookup := make(map[Pixel]byte, 64)
	for i, p := range pixels {
		idx, ok := lookup[p]
		if !ok {
			if len(pal.Colors) >= paletteMaxColors {
				return nil, unsupportedError("buildPalette",
					fmt.Sprintf("image exceeds %d distinct colors", paletteMaxColors), nil)
			}
			idx = byte(len(pal.Colors))
			lookup[p] = idx
			pal.Colors = append(pal.Colors, p)
		}
		pal.Indices[i] = idx
	}

	return pal, nil
}
