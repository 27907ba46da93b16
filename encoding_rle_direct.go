// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "encoding/binary"

// RleDirectCodec encodes literal pixel runs and repeated pixel values with no
// reference to the previous frame.
//
// Byte-stream grammar:
//
//	0x00        end of stream
//	0x01-0x7F   next v pixels are literal little-endian 16-bit values
//	0x80-0xFF   the following 16-bit value repeats (v & 0x7F) times
//
// The high-bit branch means repeat here, where RleXor uses it for skip. The
// asymmetry is deliberate: a direct overwrite stream has no notion of
// "unchanged", so the branch is repurposed for solid runs.
type RleDirectCodec struct{}

// rleRepeatThreshold is the shortest run worth a repeat command. Below it a
// repeat costs as much as the literals it replaces.
const rleRepeatThreshold = 3

// Method returns the compression method tag for RLE-direct encoding.
func (*RleDirectCodec) Method() CompressionMethod {
	return MethodRleDirect
}

// Encode produces the literal/repeat stream for curr. prev is ignored.
func (*RleDirectCodec) Encode(curr, prev []Pixel) ([]byte, error) {
	out := make([]byte, 0, len(curr)/4+1)
	i := 0

	for i < len(curr) {
		val := curr[i]
		run := 1
		for i+run < len(curr) && run < rleMaxRun {
			if curr[i+run] != val {
				break
			}
			run++
		}

		if run >= rleRepeatThreshold {
			out = append(out, 0x80|byte(run), byte(val), byte(val>>8))
			i += run
			continue
		}

		lit := 0
		for i+lit < len(curr) && lit < rleMaxRun {
			if i+lit+2 < len(curr) &&
				curr[i+lit] == curr[i+lit+1] &&
				curr[i+lit+1] == curr[i+lit+2] {
				break
			}
			lit++
		}
		if lit == 0 {
			lit = 1
		}

		out = append(out, byte(lit))
		for j := 0; j < lit; j++ {
			out = append(out, byte(curr[i+j]), byte(curr[i+j]>>8))
		}
		i += lit
	}

	out = append(out, 0x00)
	return out, nil
}

// Decode overwrites dst from the stream. Literal runs that exceed the
// remaining payload are truncated, repeats missing their value byte stop the
// decode, and writes never pass the end of dst.
func (*RleDirectCodec) Decode(payload []byte, dst []Pixel) {
	pos := 0
	i := 0

	for i < len(payload) && pos < len(dst) {
		cmd := payload[i]
		i++

		switch {
		case cmd == 0x00:
			return
		case cmd&0x80 != 0:
			repeat := int(cmd & 0x7F)
			if i+1 >= len(payload) {
				return
			}
			val := Pixel(binary.LittleEndian.Uint16(payload[i:]))
			i += 2
			for j := 0; j < repeat && pos < len(dst); j++ {
				dst[pos] = val
				pos++
			}
		default:
			n := int(cmd)
			if i+n*2 > len(payload) {
				n = (len(payload) - i) / 2
			}
			for j := 0; j < n && pos < len(dst); j++ {
				dst[pos] = Pixel(binary.LittleEndian.Uint16(payload[i:]))
				pos++
				i += 2
			}
		}
	}
}
