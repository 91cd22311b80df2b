// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderDefault(t *testing.T) {
	want := strings.Join([]string{
		"const unsigned char lut_custom[] PROGMEM = {",
		"  // VS L0-L3 (voltage patterns per transition)",
		"  // Black → Black: [VSS→VSH1→VSS→VSH1]",
		"  0x11,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"  // Black → White: [VSL→VSL→VSL→VSS]",
		"  0xA8,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"  // White → Black: [VSH1→VSS→VSH1→VSS]",
		"  0x44,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"  // White → White: [VSS→VSL→VSS→VSL]",
		"  0x22,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"  // L4 (VCOM)",
		"  0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"",
		"  // TP/RP groups (global timing)",
		"  0x04,0x04,0x00,0x00,0x00,  // G0: A=4 B=4 C=0 D=0 RP=0 (8 frames)",
		"  0x02,0x02,0x00,0x00,0x00,  // G1: A=2 B=2 C=0 D=0 RP=0 (4 frames)",
		"  0x00,0x00,0x00,0x00,0x00,  // G2: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G3: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G4: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G5: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G6: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G7: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G8: A=0 B=0 C=0 D=0 RP=0",
		"  0x00,0x00,0x00,0x00,0x00,  // G9: A=0 B=0 C=0 D=0 RP=0",
		"",
		"  // Frame rate",
		"  0x88,0x88,0x88,0x88,0x88,",
		"",
		"  // Voltages (VGH, VSH1, VSH2, VSL, VCOM)",
		"  0x17,0x41,0xA8,0x32,0x30,",
		"",
		"  // Reserved",
		"  0x00,0x00",
		"};",
		"",
	}, "\n")

	var sb strings.Builder
	if err := NewModel().Render(&sb, nil); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if diff := cmp.Diff(sb.String(), want); diff != "" {
		t.Errorf("Render() difference (-got +want):\n%s", diff)
	}
}

func TestRenderArrayName(t *testing.T) {
	var sb strings.Builder
	if err := NewModel().Render(&sb, &RenderOpts{ArrayName: "lut_fast"}); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if !strings.HasPrefix(sb.String(), "const unsigned char lut_fast[] PROGMEM = {") {
		t.Errorf("Render() does not use the array name:\n%s", sb.String())
	}
}

// The rendered byte sections, stripped of annotations, must concatenate to
// the exact EncodeLUT output.
func TestRenderMirrorsLUT(t *testing.T) {
	for _, m := range []*Model{NewModel(), GrayscaleModel(), GrayscaleRevertModel()} {
		var sb strings.Builder
		if err := m.Render(&sb, nil); err != nil {
			t.Fatalf("Render() = %v", err)
		}

		var got []byte
		for _, line := range strings.Split(sb.String(), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "0x") {
				continue
			}
			if i := strings.Index(line, "//"); i >= 0 {
				line = strings.TrimSpace(line[:i])
			}
			for _, tok := range strings.Split(strings.TrimSuffix(line, ","), ",") {
				b, err := ParseByte(tok)
				if err != nil {
					t.Fatalf("ParseByte(%q) = %v", tok, err)
				}
				got = append(got, b)
			}
		}

		if diff := cmp.Diff(got, []byte(m.EncodeLUT())); diff != "" {
			t.Errorf("rendered bytes differ from EncodeLUT() (-got +want):\n%s", diff)
		}
	}
}
