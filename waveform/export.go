// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// RenderOpts configures the annotated C array rendering.
type RenderOpts struct {
	// ArrayName is the C identifier; defaults to "lut_custom".
	ArrayName string

	// Color enables ANSI coloring of the annotation comments. The caller is
	// responsible for passing a writer that understands ANSI sequences (see
	// go-colorable).
	Color bool
}

var commentColor = color.New(color.FgCyan)

// Render writes the encoded LUT as an annotated C array. The section
// grouping and byte order mirror the LUT layout exactly so the output can be
// audited against the controller documentation: the four pattern blocks, the
// L4 block, the timing groups with per-group frame counts, the frame rate,
// the voltages and the reserved tail.
func (m *Model) Render(w io.Writer, opts *RenderOpts) error {
	if opts == nil {
		opts = &RenderOpts{}
	}
	name := opts.ArrayName
	if name == "" {
		name = "lut_custom"
	}
	comment := func(s string) string {
		if opts.Color {
			return commentColor.Sprint(s)
		}
		return s
	}

	lut := m.EncodeLUT()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "const unsigned char %s[] PROGMEM = {\n", name)

	buf.WriteString("  " + comment("// VS L0-L3 (voltage patterns per transition)") + "\n")
	for t, p := range m.Patterns {
		steps := make([]string, len(p))
		for i, v := range p {
			steps[i] = v.String()
		}
		fmt.Fprintf(&buf, "  %s\n  ", comment(fmt.Sprintf("// %s: [%s]", Transition(t), strings.Join(steps, "→"))))
		writeBytes(&buf, lut[t*patternBlockLen:(t+1)*patternBlockLen])
		buf.WriteByte('\n')
	}

	buf.WriteString("  " + comment("// L4 (VCOM)") + "\n  ")
	writeBytes(&buf, lut[OffsetVCOMBlock:OffsetVCOMBlock+patternBlockLen])
	buf.WriteByte('\n')

	buf.WriteString("\n  " + comment("// TP/RP groups (global timing)") + "\n")
	for g, tg := range m.Timing {
		base := OffsetTiming + g*timingGroupLen
		buf.WriteString("  ")
		writeBytes(&buf, lut[base:base+timingGroupLen])
		note := fmt.Sprintf("  // G%d: A=%d B=%d C=%d D=%d RP=%d", g, tg.A, tg.B, tg.C, tg.D, tg.RP)
		if frames := tg.Frames(); frames > 0 {
			note += fmt.Sprintf(" (%d frames)", frames)
		}
		buf.WriteString(comment(note) + "\n")
	}

	buf.WriteString("\n  " + comment("// Frame rate") + "\n  ")
	writeBytes(&buf, lut[OffsetFrameRate:OffsetFrameRate+frameRateCopies])
	buf.WriteByte('\n')

	buf.WriteString("\n  " + comment("// Voltages (VGH, VSH1, VSH2, VSL, VCOM)") + "\n  ")
	writeBytes(&buf, lut[OffsetVGH:OffsetVCOM+1])
	buf.WriteByte('\n')

	buf.WriteString("\n  " + comment("// Reserved") + "\n  0x00,0x00\n};\n")

	_, err := buf.WriteTo(w)
	return err
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	for _, v := range b {
		fmt.Fprintf(buf, "0x%02X,", v)
	}
}
