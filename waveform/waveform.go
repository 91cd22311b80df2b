// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Voltage is the 2-bit drive voltage code applied during one waveform step.
type Voltage uint8

// Valid Voltage codes.
const (
	VSS  Voltage = 0b00
	VSH1 Voltage = 0b01
	VSL  Voltage = 0b10
	VSH2 Voltage = 0b11
)

func (v Voltage) String() string {
	switch v {
	case VSS:
		return "VSS"
	case VSH1:
		return "VSH1"
	case VSL:
		return "VSL"
	case VSH2:
		return "VSH2"
	}
	return fmt.Sprintf("Voltage(%d)", uint8(v))
}

// Set sets the Voltage to the value represented by the string s. Set
// implements the flag.Value interface.
func (v *Voltage) Set(s string) error {
	switch s {
	case "VSS":
		*v = VSS
	case "VSH1":
		*v = VSH1
	case "VSL":
		*v = VSL
	case "VSH2":
		*v = VSH2
	default:
		return errors.Wrapf(ErrUnknownVoltage, "%q: expected VSS, VSH1, VSL or VSH2", s)
	}
	return nil
}

// bits returns the 2-bit wire code. Values outside the valid range encode as
// VSS; the hardware format has no invalid code to report.
func (v Voltage) bits() byte {
	if v > VSH2 {
		return byte(VSS)
	}
	return byte(v)
}

// Transition identifies one of the four pixel state changes a waveform
// applies to. The numeric order fixes the byte offsets in the encoded LUT.
type Transition uint8

// The four transitions, in LUT block order.
const (
	BlackToBlack Transition = iota
	BlackToWhite
	WhiteToBlack
	WhiteToWhite
)

// NumTransitions is the number of pixel transitions driven by the LUT.
const NumTransitions = 4

func (t Transition) String() string {
	switch t {
	case BlackToBlack:
		return "Black → Black"
	case BlackToWhite:
		return "Black → White"
	case WhiteToBlack:
		return "White → Black"
	case WhiteToWhite:
		return "White → White"
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}

// Set sets the Transition to the value represented by the string s. It
// accepts the block index ("0".."3") or the short form ("bb", "bw", "wb",
// "ww"). Set implements the flag.Value interface.
func (t *Transition) Set(s string) error {
	switch strings.ToLower(s) {
	case "0", "bb":
		*t = BlackToBlack
	case "1", "bw":
		*t = BlackToWhite
	case "2", "wb":
		*t = WhiteToBlack
	case "3", "ww":
		*t = WhiteToWhite
	default:
		return errors.Wrapf(ErrIndexOutOfRange, "transition %q: expected 0-3 or bb, bw, wb, ww", s)
	}
	return nil
}

// Pattern step count bounds. The cap comes from the LUT block size: 10 bytes
// at 4 steps per byte.
const (
	MinSteps = 1
	MaxSteps = 40
)

// Pattern is the ordered voltage step sequence driven for one transition.
// A valid pattern has between MinSteps and MaxSteps steps.
type Pattern []Voltage

// AppendStep appends a VSS step. It returns ErrCapacity if the pattern is
// already at MaxSteps; the pattern is left unchanged.
func (p *Pattern) AppendStep() error {
	if len(*p) >= MaxSteps {
		return errors.Wrapf(ErrCapacity, "pattern already has %d steps", MaxSteps)
	}
	*p = append(*p, VSS)
	return nil
}

// RemoveStep removes the step at index i. It returns ErrMinimumLength if
// only one step remains, or ErrIndexOutOfRange for an invalid index; the
// pattern is left unchanged on error.
func (p *Pattern) RemoveStep(i int) error {
	if len(*p) <= MinSteps {
		return errors.Wrap(ErrMinimumLength, "pattern must keep at least one step")
	}
	if i < 0 || i >= len(*p) {
		return errors.Wrapf(ErrIndexOutOfRange, "step %d of %d", i, len(*p))
	}
	*p = append((*p)[:i], (*p)[i+1:]...)
	return nil
}

// SetStep replaces the step at index i.
func (p Pattern) SetStep(i int, v Voltage) error {
	if i < 0 || i >= len(p) {
		return errors.Wrapf(ErrIndexOutOfRange, "step %d of %d", i, len(p))
	}
	if v > VSH2 {
		return errors.Wrapf(ErrUnknownVoltage, "code %d", uint8(v))
	}
	p[i] = v
	return nil
}

// TimingGroup is one entry of the global refresh schedule: four phase
// durations in frames plus a repeat count. The ten groups apply identically
// to all four transitions.
type TimingGroup struct {
	A, B, C, D byte // phase durations in frames
	RP         byte // repetitions beyond the first pass
}

// Frames returns the number of frames this group contributes to a refresh.
// RP of 0 means the phase sequence runs once.
func (g TimingGroup) Frames() int {
	return (int(g.A) + int(g.B) + int(g.C) + int(g.D)) * (int(g.RP) + 1)
}

// TimingField addresses one field of a TimingGroup.
type TimingField uint8

// TimingGroup fields, in LUT byte order.
const (
	PhaseA TimingField = iota
	PhaseB
	PhaseC
	PhaseD
	Repeat
)

func (f TimingField) String() string {
	switch f {
	case PhaseA:
		return "A"
	case PhaseB:
		return "B"
	case PhaseC:
		return "C"
	case PhaseD:
		return "D"
	case Repeat:
		return "RP"
	}
	return fmt.Sprintf("TimingField(%d)", uint8(f))
}

// Set sets the TimingField to the value represented by the string s. Set
// implements the flag.Value interface.
func (f *TimingField) Set(s string) error {
	switch strings.ToUpper(s) {
	case "A":
		*f = PhaseA
	case "B":
		*f = PhaseB
	case "C":
		*f = PhaseC
	case "D":
		*f = PhaseD
	case "RP":
		*f = Repeat
	default:
		return errors.Wrapf(ErrIndexOutOfRange, "timing field %q: expected A, B, C, D or RP", s)
	}
	return nil
}

// NumTimingGroups is the number of timing groups in the schedule.
const NumTimingGroups = 10

// Voltages holds the five hardware voltage settings programmed alongside the
// waveform.
type Voltages struct {
	VGH  byte // gate high voltage
	VSH1 byte // source high voltage 1
	VSH2 byte // source high voltage 2
	VSL  byte // source low voltage
	VCOM byte // common voltage
}

// Set sets the voltage rail identified by name. Valid names are VGH, VSH1,
// VSH2, VSL and VCOM.
func (v *Voltages) Set(name string, value byte) error {
	switch strings.ToUpper(name) {
	case "VGH":
		v.VGH = value
	case "VSH1":
		v.VSH1 = value
	case "VSH2":
		v.VSH2 = value
	case "VSL":
		v.VSL = value
	case "VCOM":
		v.VCOM = value
	default:
		return errors.Wrapf(ErrUnknownVoltage, "rail %q: expected VGH, VSH1, VSH2, VSL or VCOM", name)
	}
	return nil
}

// Model is a complete waveform configuration: one pattern per transition,
// the shared timing schedule, the voltage settings and the frame rate.
//
// The zero value is not a valid model (patterns must have at least one
// step); use NewModel or a preset.
type Model struct {
	Patterns  [NumTransitions]Pattern
	Timing    [NumTimingGroups]TimingGroup
	Voltages  Voltages
	FrameRate byte
}

// NewModel returns a model with the default configuration: short
// alternating-drive patterns and a two-group schedule.
func NewModel() *Model {
	return &Model{
		Patterns: [NumTransitions]Pattern{
			BlackToBlack: {VSS, VSH1, VSS, VSH1},
			BlackToWhite: {VSL, VSL, VSL, VSS},
			WhiteToBlack: {VSH1, VSS, VSH1, VSS},
			WhiteToWhite: {VSS, VSL, VSS, VSL},
		},
		Timing: [NumTimingGroups]TimingGroup{
			{A: 4, B: 4},
			{A: 2, B: 2},
		},
		Voltages:  defaultVoltages,
		FrameRate: 0x88,
	}
}

var defaultVoltages = Voltages{
	VGH:  0x17,
	VSH1: 0x41,
	VSH2: 0xA8,
	VSL:  0x32,
	VCOM: 0x30,
}

// AppendStep appends a VSS step to the pattern of transition t.
func (m *Model) AppendStep(t Transition) error {
	if t >= NumTransitions {
		return errors.Wrapf(ErrIndexOutOfRange, "transition %d", uint8(t))
	}
	return m.Patterns[t].AppendStep()
}

// RemoveStep removes step i from the pattern of transition t.
func (m *Model) RemoveStep(t Transition, i int) error {
	if t >= NumTransitions {
		return errors.Wrapf(ErrIndexOutOfRange, "transition %d", uint8(t))
	}
	return m.Patterns[t].RemoveStep(i)
}

// SetStep replaces step i of the pattern of transition t.
func (m *Model) SetStep(t Transition, i int, v Voltage) error {
	if t >= NumTransitions {
		return errors.Wrapf(ErrIndexOutOfRange, "transition %d", uint8(t))
	}
	return m.Patterns[t].SetStep(i, v)
}

// SetTiming sets one field of timing group g.
func (m *Model) SetTiming(g int, f TimingField, value byte) error {
	if g < 0 || g >= NumTimingGroups {
		return errors.Wrapf(ErrIndexOutOfRange, "timing group %d of %d", g, NumTimingGroups)
	}
	switch f {
	case PhaseA:
		m.Timing[g].A = value
	case PhaseB:
		m.Timing[g].B = value
	case PhaseC:
		m.Timing[g].C = value
	case PhaseD:
		m.Timing[g].D = value
	case Repeat:
		m.Timing[g].RP = value
	default:
		return errors.Wrapf(ErrIndexOutOfRange, "timing field %d", uint8(f))
	}
	return nil
}

// SetVoltage sets the voltage rail identified by name.
func (m *Model) SetVoltage(name string, value byte) error {
	return m.Voltages.Set(name, value)
}

// SetFrameRate sets the frame rate byte. 0 is valid; the estimator treats it
// as a fixed 50 ms per frame.
func (m *Model) SetFrameRate(value byte) {
	m.FrameRate = value
}

// ParseByte parses a decimal or 0x-prefixed hexadecimal string into a byte.
// Values outside [0, 255] or non-integer text return ErrInvalidNumeric.
func ParseByte(s string) (byte, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumeric, "%q", s)
	}
	return byte(v), nil
}
