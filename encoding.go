// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import "fmt"

// CompressionMethod identifies a frame payload encoding. The numeric values
// match the tags the generator embeds in its output and must not change.
type CompressionMethod uint8

const (
	// MethodRleXor encodes runs of XOR deltas against the previous frame.
	MethodRleXor CompressionMethod = iota

	// MethodRleDirect encodes literal runs and repeated pixel values with no
	// reference to the previous frame.
	MethodRleDirect

	// MethodSparseXor encodes (index, XOR value) records for changed pixels.
	// Only valid for frames of at most 65535 pixels.
	MethodSparseXor

	// MethodRaw stores every pixel as a literal little-endian 16-bit value.
	MethodRaw

	// MethodAuto asks the encoder to benchmark the candidate methods and
	// keep the smallest valid total. It never appears in a frame store.
	MethodAuto

	// MethodPaletteLzss stores a ≤256-color palette plus an LZSS-compressed
	// index stream. Valid only for single-frame (static) content.
	MethodPaletteLzss
)

// String returns the generator's name for the method.
func (m CompressionMethod) String() string {
	switch m {
	case MethodRleXor:
		return "rle_xor"
	case MethodRleDirect:
		return "rle_direct"
	case MethodSparseXor:
		return "sparse"
	case MethodRaw:
		return "raw"
	case MethodAuto:
		return "auto"
	case MethodPaletteLzss:
		return "palette_lzss"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// delta reports whether the method reconstructs a frame by XOR-updating the
// previous frame's buffer rather than overwriting it.
func (m CompressionMethod) delta() bool {
	return m == MethodRleXor || m == MethodSparseXor
}

// FrameCodec is the encode/decode pair for one compression method.
//
// Encode produces the payload for curr. Delta methods require prev, the
// reconstructed predecessor frame; overwrite methods ignore it.
//
// Decode applies a payload to dst, which for delta methods must still hold
// the previous frame. Decode clamps rather than trusts payload-declared
// counts: a truncated or corrupt payload stops the decode early but never
// reads or writes outside dst.
type FrameCodec interface {
	Method() CompressionMethod
	Encode(curr, prev []Pixel) ([]byte, error)
	Decode(payload []byte, dst []Pixel)
}

// codecFor resolves a method tag to its codec. Resolution happens once at
// frame-store construction; playback never branches on the tag again.
func codecFor(method CompressionMethod) (FrameCodec, error) {
	switch method {
	case MethodRleXor:
		return &RleXorCodec{}, nil
	case MethodRleDirect:
		return &RleDirectCodec{}, nil
	case MethodSparseXor:
		return &SparseXorCodec{}, nil
	case MethodRaw:
		return &RawCodec{}, nil
	case MethodPaletteLzss:
		return &PaletteLzssCodec{}, nil
	default:
		return nil, unsupportedError("codecFor",
			fmt.Sprintf("no codec for method %s", method), nil)
	}
}
