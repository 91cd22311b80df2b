// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"github.com/pkg/errors"
)

// GrayscaleModel returns the fast grayscale refresh waveform. Its encoding
// reproduces the production firmware table byte for byte: light gray driven
// by interrupted VSH1 bursts, gray and dark gray by VSL sequences, three
// four-frame timing groups.
func GrayscaleModel() *Model {
	return &Model{
		Patterns: [NumTransitions]Pattern{
			// Black/white pixels are not driven during a grayscale pass.
			BlackToBlack: {VSS},
			BlackToWhite: {VSH1, VSH1, VSH1, VSS, VSH1, VSH1, VSH1, VSS, VSH1},
			WhiteToBlack: {VSL, VSL, VSL, VSL, VSL, VSL, VSS, VSS, VSL, VSL, VSL},
			WhiteToWhite: {VSL, VSL, VSS, VSL, VSS, VSL, VSS, VSL, VSS, VSL},
		},
		Timing: [NumTimingGroups]TimingGroup{
			{A: 1, B: 1, C: 1, D: 1},
			{A: 1, B: 1, C: 1, D: 1},
			{A: 1, B: 1, C: 1, D: 1},
		},
		Voltages:  defaultVoltages,
		FrameRate: 0x8F,
	}
}

// GrayscaleRevertModel returns the waveform that reverts a grayscale pass
// before the next black and white refresh.
func GrayscaleRevertModel() *Model {
	return &Model{
		Patterns: [NumTransitions]Pattern{
			BlackToBlack: {VSS},
			BlackToWhite: {VSH1, VSH1, VSH1, VSS, VSH1, VSH1, VSH1, VSS, VSH1, VSH1, VSH1, VSS, VSH1, VSH1, VSH1},
			WhiteToBlack: {VSL, VSL, VSL, VSS, VSL, VSL, VSL},
			WhiteToWhite: {VSH2, VSH2, VSH2, VSS, VSH2, VSH2, VSH2, VSS, VSH2, VSH2, VSH2, VSS, VSH2, VSH2, VSH2},
		},
		Timing: [NumTimingGroups]TimingGroup{
			{A: 1, B: 1, C: 1, D: 1, RP: 1},
			{A: 1, B: 1, C: 1, D: 1, RP: 1},
			{A: 1, B: 1, C: 1, D: 1},
			{A: 1, B: 1, C: 1, D: 1},
		},
		Voltages:  defaultVoltages,
		FrameRate: 0x8F,
	}
}

// ResetModel returns the minimal two-step starting point used when
// discarding an edited configuration.
func ResetModel() *Model {
	return &Model{
		Patterns: [NumTransitions]Pattern{
			BlackToBlack: {VSL, VSH1},
			BlackToWhite: {VSH2, VSH1},
			WhiteToBlack: {VSL, VSL},
			WhiteToWhite: {VSH1, VSS},
		},
		Timing: [NumTimingGroups]TimingGroup{
			{A: 10, B: 10},
			{A: 8, B: 8},
		},
		Voltages:  defaultVoltages,
		FrameRate: 0x88,
	}
}

// Preset returns the named preset model. Valid names are "default",
// "grayscale", "grayscale-revert" and "reset".
func Preset(name string) (*Model, error) {
	switch name {
	case "default":
		return NewModel(), nil
	case "grayscale":
		return GrayscaleModel(), nil
	case "grayscale-revert":
		return GrayscaleRevertModel(), nil
	case "reset":
		return ResetModel(), nil
	}
	return nil, errors.Errorf("unknown preset %q: expected default, grayscale, grayscale-revert or reset", name)
}
