// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"encoding/binary"
	"math"

	"github.com/klauspost/compress/zstd"
)

// infeasibleCost marks a method that failed to encode at least one frame of
// the sequence. It must compare larger than every achievable total so that an
// invalid method can never win on a partial running sum.
const infeasibleCost = int64(math.MaxInt64)

// animationCandidates is the fixed evaluation order for animation
// auto-selection. Raw and PaletteLzss are special-cased elsewhere and never
// benchmarked, matching the original generator.
var animationCandidates = []CompressionMethod{MethodRleXor, MethodSparseXor, MethodRleDirect}

// MethodCost is one candidate's total encoded size across a frame sequence.
type MethodCost struct {
	// Method is the candidate compression method.
	Method CompressionMethod

	// TotalBytes is the summed payload size including frame 0 stored raw,
	// or infeasibleCost when the method cannot encode the sequence.
	TotalBytes int64

	// Feasible reports whether every frame encoded successfully.
	Feasible bool
}

// SelectMethod evaluates the candidate animation methods over the whole
// frame sequence and returns the one with the smallest valid total encoded
// size, plus the per-method costs. Frame 0 is always costed as Raw. Ties go
// to the earlier candidate in evaluation order (RleXor, SparseXor,
// RleDirect). This is a one-shot batch computation at encode time, not an
// adaptive per-frame choice.
func SelectMethod(frames [][]Pixel, width, height int) (CompressionMethod, []MethodCost, error) {
	iv := newInputValidator()
	if err := iv.ValidateFrameSequence(frames, width, height); err != nil {
		return 0, nil, err
	}

	frame0Size := int64(len(frames[0]) * 2)

	costs := make([]MethodCost, 0, len(animationCandidates))
	best := MethodCost{Method: animationCandidates[0], TotalBytes: infeasibleCost}

	for _, method := range animationCandidates {
		codec, err := codecFor(method)
		if err != nil {
			return 0, nil, err
		}

		cost := MethodCost{Method: method, TotalBytes: frame0Size, Feasible: true}
		for f := 1; f < len(frames); f++ {
			payload, err := codec.Encode(frames[f], frames[f-1])
			if err != nil {
				cost.TotalBytes = infeasibleCost
				cost.Feasible = false
				break
			}
			cost.TotalBytes += int64(len(payload))
		}
		costs = append(costs, cost)

		if cost.Feasible && cost.TotalBytes < best.TotalBytes {
			best = cost
		}
	}

	if best.TotalBytes == infeasibleCost {
		return 0, costs, unsupportedError("SelectMethod",
			"no candidate method can encode this sequence", nil)
	}

	return best.Method, costs, nil
}

// SizeReport summarizes what the selector measured, for the generator's
// build-time stats output.
type SizeReport struct {
	// RawBytes is the uncompressed size of the sequence (2 bytes per pixel).
	RawBytes int64

	// ZstdBytes is the size of the raw pixel stream after zstd compression,
	// a general-purpose reference point for the delta methods.
	ZstdBytes int64

	// Costs holds the per-candidate totals in evaluation order.
	Costs []MethodCost

	// Selected is the winning method and SelectedBytes its total.
	Selected      CompressionMethod
	SelectedBytes int64
}

// BuildSizeReport runs the selector and adds the raw and zstd reference
// sizes. Encode-time only; playback never calls it.
func BuildSizeReport(frames [][]Pixel, width, height int) (*SizeReport, error) {
	selected, costs, err := SelectMethod(frames, width, height)
	if err != nil {
		return nil, err
	}

	report := &SizeReport{
		Costs:    costs,
		Selected: selected,
	}
	for _, c := range costs {
		if c.Method == selected {
			report.SelectedBytes = c.TotalBytes
		}
	}

	raw := make([]byte, 0, len(frames)*len(frames[0])*2)
	for _, frame := range frames {
		for _, p := range frame {
			raw = binary.LittleEndian.AppendUint16(raw, uint16(p))
		}
	}
	report.RawBytes = int64(len(raw))

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, encodingError("BuildSizeReport", "failed to create zstd encoder", err)
	}
	defer enc.Close()
	report.ZstdBytes = int64(len(enc.EncodeAll(raw, nil)))

	return report, nil
}
