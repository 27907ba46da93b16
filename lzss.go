// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

// LZSS parameters shared by encoder and decoder. Back-references carry a
// 12-bit offset and a 4-bit (length − minimum) field, so the window and
// match bounds are fixed by the wire format.
const (
	lzssWindowSize = 4096
	lzssMinMatch   = 3
	lzssMaxMatch   = 18
)

// lzssCompress compresses a byte stream (palette indices) into groups of one
// flag byte followed by eight items. Flag bit set means the item is a literal
// byte; clear means a two-byte back-reference into the previous output:
// offset low 8 bits in the first byte, offset high 4 bits in the second
// byte's high nibble, length−3 in its low nibble.
func lzssCompress(data []byte) []byte {
	out := make([]byte, 0, len(data)/2+16)

	var flagByte byte
	items := make([]byte, 0, 16)
	bitPos := 0
	pos := 0

	flush := func() {
		out = append(out, flagByte)
		out = append(out, items...)
		flagByte = 0
		items = items[:0]
		bitPos = 0
	}

	for pos < len(data) {
		bestLen, bestOff := 0, 0

		// Offset 0 is unrepresentable, so the usable window is one short
		// of the nominal size.
		maxOff := pos
		if maxOff > lzssWindowSize-1 {
			maxOff = lzssWindowSize - 1
		}
		for off := 1; off <= maxOff; off++ {
			length := 0
			for length < lzssMaxMatch && pos+length < len(data) {
				// Overlapping matches are fine: position pos-off+length is
				// always behind the copy cursor.
				if data[pos-off+length] != data[pos+length] {
					break
				}
				length++
			}
			if length > bestLen {
				bestLen = length
				bestOff = off
			}
		}

		if bestLen >= lzssMinMatch {
			items = append(items,
				byte(bestOff),
				byte(bestOff>>4&0xF0)|byte(bestLen-lzssMinMatch),
			)
			pos += bestLen
		} else {
			flagByte |= 1 << bitPos
			items = append(items, data[pos])
			pos++
		}

		bitPos++
		if bitPos == 8 {
			flush()
		}
	}

	if bitPos > 0 {
		flush()
	}

	return out
}

// lzssDecompress expands a compressed stream into dst and returns the number
// of bytes produced. Output stops at the end of dst or of the payload,
// whichever comes first; back-references pointing before the start of the
// output read as zero bytes, and partial trailing items are dropped.
func lzssDecompress(payload []byte, dst []byte) int {
	pos := 0
	i := 0

	for i < len(payload) && pos < len(dst) {
		flags := payload[i]
		i++

		for bit := 0; bit < 8 && pos < len(dst); bit++ {
			if flags&(1<<bit) != 0 {
				if i >= len(payload) {
					return pos
				}
				dst[pos] = payload[i]
				pos++
				i++
				continue
			}

			if i+1 >= len(payload) {
				return pos
			}
			off := int(payload[i]) | int(payload[i+1]&0xF0)<<4
			length := int(payload[i+1]&0x0F) + lzssMinMatch
			i += 2

			if off == 0 {
				off = 1 // corrupt reference; keep the cursor moving
			}
			for j := 0; j < length && pos < len(dst); j++ {
				src := pos - off
				if src < 0 {
					dst[pos] = 0
				} else {
					dst[pos] = dst[src]
				}
				pos++
			}
		}
	}

	return pos
}
