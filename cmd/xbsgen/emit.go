// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	splash "github.com/seb3773/xbootsplash"
)

type emitParams struct {
	pkgName    string
	varName    string
	offsetX    int
	offsetY    int
	background bool
	bgColor    splash.Pixel
}

// emitStore writes a Go source file declaring the store and the playback
// defaults. Payload bytes are emitted as string literals rather than byte
// slice literals, which keeps both the source file and the compiled binary
// compact for large animations.
func emitStore(w io.Writer, store *splash.FrameStore, p emitParams) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Code generated by xbsgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", p.pkgName)
	fmt.Fprintf(bw, "import (\n")
	fmt.Fprintf(bw, "\t\"time\"\n\n")
	fmt.Fprintf(bw, "\tsplash \"github.com/seb3773/xbootsplash\"\n")
	fmt.Fprintf(bw, ")\n\n")

	fmt.Fprintf(bw, "// %s playback defaults.\n", p.varName)
	fmt.Fprintf(bw, "const (\n")
	fmt.Fprintf(bw, "\t%sOffsetX = %d\n", p.varName, p.offsetX)
	fmt.Fprintf(bw, "\t%sOffsetY = %d\n", p.varName, p.offsetY)
	fmt.Fprintf(bw, "\t%sBackground = %t\n", p.varName, p.background)
	fmt.Fprintf(bw, "\t%sBackgroundColor = splash.Pixel(0x%04x)\n", p.varName, uint16(p.bgColor))
	fmt.Fprintf(bw, ")\n\n")

	fmt.Fprintf(bw, "var %s = &splash.FrameStore{\n", p.varName)
	fmt.Fprintf(bw, "\tWidth:    %d,\n", store.Width)
	fmt.Fprintf(bw, "\tHeight:   %d,\n", store.Height)
	fmt.Fprintf(bw, "\tMethod:   splash.%s,\n", methodIdent(store.Method))
	fmt.Fprintf(bw, "\tInterval: %d * time.Millisecond,\n", store.Interval/time.Millisecond)
	fmt.Fprintf(bw, "\tLoop:     %t,\n", store.Loop)
	fmt.Fprintf(bw, "\tPayloads: [][]byte{\n")
	for _, payload := range store.Payloads {
		fmt.Fprintf(bw, "\t\t[]byte(%q),\n", string(payload))
	}
	fmt.Fprintf(bw, "\t},\n")
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}

func methodIdent(m splash.CompressionMethod) string {
	switch m {
	case splash.MethodRleXor:
		return "MethodRleXor"
	case splash.MethodRleDirect:
		return "MethodRleDirect"
	case splash.MethodSparseXor:
		return "MethodSparseXor"
	case splash.MethodRaw:
		return "MethodRaw"
	case splash.MethodPaletteLzss:
		return "MethodPaletteLzss"
	default:
		return fmt.Sprintf("CompressionMethod(%d)", int(m))
	}
}
