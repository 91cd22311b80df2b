// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

// LUT contains the encoded waveform that is used to program the display.
type LUT []byte

// LUTSize is the size of an encoded LUT in bytes.
const LUTSize = 112

// Byte offsets of the LUT sections. Firmware programs bytes 0..104 through
// the write-LUT command and bytes 105..109 through the gate/source/VCOM
// voltage commands.
const (
	OffsetPatterns  = 0   // 4 transitions × 10 bytes
	OffsetVCOMBlock = 40  // L4 block, always zero
	OffsetTiming    = 50  // 10 groups × 5 bytes (A, B, C, D, RP)
	OffsetFrameRate = 100 // frame rate byte, 5 identical copies
	OffsetVGH       = 105
	OffsetVSH1      = 106
	OffsetVSH2      = 107
	OffsetVSL       = 108
	OffsetVCOM      = 109
	OffsetReserved  = 110 // 2 bytes, always zero
)

const (
	patternBlockLen = 10
	stepsPerByte    = 4
	timingGroupLen  = 5
	frameRateCopies = 5
)

// pack encodes the pattern into its 10-byte LUT block: four steps per byte,
// two bits per step, step 0 in bits 7-6. Unused step slots and bytes stay
// zero, which the wire format cannot distinguish from VSS.
func (p Pattern) pack() [patternBlockLen]byte {
	var block [patternBlockLen]byte
	for i, v := range p {
		if i >= MaxSteps {
			break
		}
		shift := uint(6 - (i%stepsPerByte)*2)
		block[i/stepsPerByte] |= v.bits() << shift
	}
	return block
}

// EncodeLUT serializes the model into the 112-byte lookup table. The
// encoding is deterministic and total: every model encodes successfully.
func (m *Model) EncodeLUT() LUT {
	lut := make(LUT, LUTSize)

	for t, p := range m.Patterns {
		block := p.pack()
		copy(lut[OffsetPatterns+t*patternBlockLen:], block[:])
	}

	// The L4 (VCOM waveform) block at 40..49 stays zero.

	for g, tg := range m.Timing {
		base := OffsetTiming + g*timingGroupLen
		lut[base] = tg.A
		lut[base+1] = tg.B
		lut[base+2] = tg.C
		lut[base+3] = tg.D
		lut[base+4] = tg.RP
	}

	for i := 0; i < frameRateCopies; i++ {
		lut[OffsetFrameRate+i] = m.FrameRate
	}

	lut[OffsetVGH] = m.Voltages.VGH
	lut[OffsetVSH1] = m.Voltages.VSH1
	lut[OffsetVSH2] = m.Voltages.VSH2
	lut[OffsetVSL] = m.Voltages.VSL
	lut[OffsetVCOM] = m.Voltages.VCOM

	// Bytes 110..111 are reserved and stay zero.

	return lut
}
