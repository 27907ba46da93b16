// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"encoding/binary"
	"fmt"
)

// SparseXorCodec encodes only the changed pixels of a frame as (index, XOR
// value) records behind a 16-bit count header. It wins when very few pixels
// change per frame, since every record costs four bytes regardless of where
// the changes sit.
//
// Pixel indices are 16 bits wide, so the method is invalid for frames larger
// than 65535 pixels; Encode rejects such frames rather than emitting wrapped
// indices, and the method selector treats that rejection as infeasibility.
type SparseXorCodec struct{}

// sparseMaxPixels is the largest frame a 16-bit pixel index can address.
const sparseMaxPixels = 65535

// Method returns the compression method tag for sparse-XOR encoding.
func (*SparseXorCodec) Method() CompressionMethod {
	return MethodSparseXor
}

// Encode produces the changed-pixel records between curr and prev.
func (*SparseXorCodec) Encode(curr, prev []Pixel) ([]byte, error) {
	if len(prev) != len(curr) {
		return nil, encodingError("SparseXorCodec.Encode",
			"delta encoding requires a predecessor frame of equal size", nil)
	}
	if len(curr) > sparseMaxPixels {
		return nil, unsupportedError("SparseXorCodec.Encode",
			fmt.Sprintf("frame has %d pixels, 16-bit indices address at most %d",
				len(curr), sparseMaxPixels), nil)
	}

	changed := 0
	for i := range curr {
		if curr[i]^prev[i] != 0 {
			changed++
		}
	}

	out := make([]byte, 2, 2+changed*4)
	binary.LittleEndian.PutUint16(out, uint16(changed))

	for i := range curr {
		delta := uint16(curr[i] ^ prev[i])
		if delta == 0 {
			continue
		}
		var rec [4]byte
		binary.LittleEndian.PutUint16(rec[0:], uint16(i))
		binary.LittleEndian.PutUint16(rec[2:], delta)
		out = append(out, rec[:]...)
	}

	return out, nil
}

// Decode XOR-applies the records to dst. The record count is clamped to the
// records actually present in the payload, and records whose index falls
// outside dst are dropped.
func (*SparseXorCodec) Decode(payload []byte, dst []Pixel) {
	if len(payload) < 2 {
		return
	}

	count := int(binary.LittleEndian.Uint16(payload))
	if avail := (len(payload) - 2) / 4; count > avail {
		count = avail
	}

	for i := 0; i < count; i++ {
		rec := payload[2+i*4:]
		idx := int(binary.LittleEndian.Uint16(rec))
		if idx >= len(dst) {
			continue
		}
		dst[idx] ^= Pixel(binary.LittleEndian.Uint16(rec[2:]))
	}
}
