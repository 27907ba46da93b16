// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "encoding/binary"

// RleXorCodec encodes a frame as run-length-compressed XOR deltas against the
// previous reconstructed frame.
//
// Byte-stream grammar:
//
//	0x00        end of stream
//	0x01-0x7F   next v little-endian 16-bit words are XORed into the next
//	            v pixels
//	0x80-0xFF   skip (v & 0x7F) + 1 unchanged pixels
//
// Note the asymmetry with RleDirect: here the high-bit branch means skip,
// not repeat. Animations with mostly-static content decode in O(changed
// pixels) because unchanged runs cost one byte and no writes.
type RleXorCodec struct{}

const (
	rleMaxRun  = 127 // largest changed-pixel run per control byte
	rleMaxSkip = 128 // largest unchanged-pixel skip per control byte
)

// Method returns the compression method tag for RLE-XOR encoding.
func (*RleXorCodec) Method() CompressionMethod {
	return MethodRleXor
}

// Encode produces the delta stream between curr and prev.
func (*RleXorCodec) Encode(curr, prev []Pixel) ([]byte, error) {
	if len(prev) != len(curr) {
		return nil, encodingError("RleXorCodec.Encode",
			"delta encoding requires a predecessor frame of equal size", nil)
	}

	out := make([]byte, 0, len(curr)/8+1)
	i := 0

	for i < len(curr) {
		zeros := 0
		for i+zeros < len(curr) && zeros < rleMaxSkip {
			if curr[i+zeros]^prev[i+zeros] != 0 {
				break
			}
			zeros++
		}
		if zeros > 0 {
			out = append(out, 0x80|byte(zeros-1))
			i += zeros
		}

		nonzeros := 0
		for i+nonzeros < len(curr) && nonzeros < rleMaxRun {
			if curr[i+nonzeros]^prev[i+nonzeros] == 0 {
				break
			}
			nonzeros++
		}
		if nonzeros > 0 {
			out = append(out, byte(nonzeros))
			for j := 0; j < nonzeros; j++ {
				delta := uint16(curr[i+j] ^ prev[i+j])
				out = append(out, byte(delta), byte(delta>>8))
			}
			i += nonzeros
		}
	}

	out = append(out, 0x00)
	return out, nil
}

// Decode XOR-applies the delta stream to dst, which must still hold the
// previous frame. Cursor advances that would pass the end of dst are clamped,
// and runs that exceed the remaining payload are truncated to what is
// available.
func (*RleXorCodec) Decode(payload []byte, dst []Pixel) {
	pos := 0
	i := 0

	for i < len(payload) && pos < len(dst) {
		cmd := payload[i]
		i++

		switch {
		case cmd == 0x00:
			return
		case cmd&0x80 != 0:
			pos += int(cmd&0x7F) + 1
		default:
			n := int(cmd)
			if i+n*2 > len(payload) {
				n = (len(payload) - i) / 2
			}
			for j := 0; j < n && pos < len(dst); j++ {
				dst[pos] ^= Pixel(binary.LittleEndian.Uint16(payload[i:]))
				pos++
				i += 2
			}
		}
	}
}
