// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

// Package splash implements the xbootsplash frame codec and playback engine.
//
// The package delta-compresses short pixel animations (or a single static
// image) into compact frame stores at build time, and plays them back on a
// raw display surface during early boot with bounded per-frame cost and no
// allocation after initialization.
//
// # Encoding
//
//	store, err := splash.EncodeAnimation(frames, 64, 64, splash.EncodeOptions{
//		Method:   splash.MethodAuto,
//		Interval: 33 * time.Millisecond,
//		Loop:     true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Frame 0 is always stored raw; subsequent frames use the selected delta
// method. MethodAuto benchmarks the candidate methods over the whole sequence
// and keeps the smallest valid total. A static image may instead use
// EncodeStatic, which stores a color palette plus an LZSS-compressed index
// stream.
//
// # Playback
//
//	player, err := splash.NewPlayer(splash.PlayerConfig{
//		Store:   store,
//		Surface: surface, // an externally acquired display mapping
//		Cancel:  cancel,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	player.Run()
//
// Playback reconstructs each frame into a single reusable frame buffer and
// blits it to the surface, converting RGB565 into the surface's pixel format
// on the fly. Cancellation is cooperative: a CancelToken set from a signal
// handler is polled once per frame, so cancellation latency is bounded by one
// frame interval.
//
// # Kill switch
//
//	if splash.DisabledByCmdline(cmdline) {
//		return // exit 0 before touching any display resource
//	}
//
// The tokens "nosplash" and "xbootsplash=0" disable playback when they appear
// as whole whitespace-bounded words in the boot argument string.
package splash
