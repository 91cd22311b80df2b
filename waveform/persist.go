// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// document is the JSON interchange schema. Pattern keys are the transition
// indices "0".."3"; timing groups are ten [A, B, C, D, RP] rows.
type document struct {
	VoltagePatterns map[string][]string `json:"voltage_patterns"`
	TimingGroups    [][]int             `json:"timing_groups"`
	FrameRate       *int                `json:"frame_rate"`
	Voltages        map[string]int      `json:"voltages"`
}

// MarshalJSON implements json.Marshaler.
func (m Model) MarshalJSON() ([]byte, error) {
	doc := document{
		VoltagePatterns: make(map[string][]string, NumTransitions),
		TimingGroups:    make([][]int, NumTimingGroups),
		FrameRate:       new(int),
		Voltages: map[string]int{
			"VGH":  int(m.Voltages.VGH),
			"VSH1": int(m.Voltages.VSH1),
			"VSH2": int(m.Voltages.VSH2),
			"VSL":  int(m.Voltages.VSL),
			"VCOM": int(m.Voltages.VCOM),
		},
	}
	*doc.FrameRate = int(m.FrameRate)

	for t, p := range m.Patterns {
		names := make([]string, len(p))
		for i, v := range p {
			names[i] = v.String()
		}
		doc.VoltagePatterns[strconv.Itoa(t)] = names
	}

	for g, tg := range m.Timing {
		doc.TimingGroups[g] = []int{int(tg.A), int(tg.B), int(tg.C), int(tg.D), int(tg.RP)}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Decoding is atomic: the
// receiver is replaced only after the whole document validated, so a failed
// decode leaves the previous model intact.
func (m *Model) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(ErrMalformedDocument, "%v", err)
	}

	var next Model

	if doc.VoltagePatterns == nil {
		return errors.Wrap(ErrMalformedDocument, "voltage_patterns missing")
	}
	if len(doc.VoltagePatterns) != NumTransitions {
		return errors.Wrapf(ErrMalformedDocument, "voltage_patterns: got %d transitions, want %d", len(doc.VoltagePatterns), NumTransitions)
	}
	for t := 0; t < NumTransitions; t++ {
		key := strconv.Itoa(t)
		names, ok := doc.VoltagePatterns[key]
		if !ok {
			return errors.Wrapf(ErrMalformedDocument, "voltage_patterns[%s] missing", key)
		}
		if len(names) < MinSteps || len(names) > MaxSteps {
			return errors.Wrapf(ErrMalformedDocument, "voltage_patterns[%s]: %d steps, want %d..%d", key, len(names), MinSteps, MaxSteps)
		}
		p := make(Pattern, len(names))
		for i, name := range names {
			if err := p[i].Set(name); err != nil {
				return errors.Wrapf(err, "voltage_patterns[%s][%d]", key, i)
			}
		}
		next.Patterns[t] = p
	}

	if doc.TimingGroups == nil {
		return errors.Wrap(ErrMalformedDocument, "timing_groups missing")
	}
	if len(doc.TimingGroups) != NumTimingGroups {
		return errors.Wrapf(ErrMalformedDocument, "timing_groups: got %d groups, want %d", len(doc.TimingGroups), NumTimingGroups)
	}
	for g, row := range doc.TimingGroups {
		if len(row) != timingGroupLen {
			return errors.Wrapf(ErrMalformedDocument, "timing_groups[%d]: got %d fields, want %d", g, len(row), timingGroupLen)
		}
		fields := [timingGroupLen]byte{}
		for i, v := range row {
			if v < 0 || v > 255 {
				return errors.Wrapf(ErrMalformedDocument, "timing_groups[%d][%d]: %d out of range", g, i, v)
			}
			fields[i] = byte(v)
		}
		next.Timing[g] = TimingGroup{A: fields[0], B: fields[1], C: fields[2], D: fields[3], RP: fields[4]}
	}

	if doc.FrameRate == nil {
		return errors.Wrap(ErrMalformedDocument, "frame_rate missing")
	}
	if *doc.FrameRate < 0 || *doc.FrameRate > 255 {
		return errors.Wrapf(ErrMalformedDocument, "frame_rate: %d out of range", *doc.FrameRate)
	}
	next.FrameRate = byte(*doc.FrameRate)

	if doc.Voltages == nil {
		return errors.Wrap(ErrMalformedDocument, "voltages missing")
	}
	if len(doc.Voltages) != 5 {
		return errors.Wrapf(ErrMalformedDocument, "voltages: got %d rails, want 5", len(doc.Voltages))
	}
	for _, name := range []string{"VGH", "VSH1", "VSH2", "VSL", "VCOM"} {
		v, ok := doc.Voltages[name]
		if !ok {
			return errors.Wrapf(ErrMalformedDocument, "voltages[%s] missing", name)
		}
		if v < 0 || v > 255 {
			return errors.Wrapf(ErrMalformedDocument, "voltages[%s]: %d out of range", name, v)
		}
		if err := next.Voltages.Set(name, byte(v)); err != nil {
			return err
		}
	}

	*m = next
	return nil
}

// SaveFile writes the model as an indented interchange document. The file is
// written to a temporary name in the same directory and renamed into place,
// so an existing file is never left truncated.
func (m *Model) SaveFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "writing temporary file")
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// LoadFile reads an interchange document and replaces the receiver with its
// contents. On any error the receiver is left unchanged.
func (m *Model) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var next Model
	if err := json.Unmarshal(data, &next); err != nil {
		return err
	}
	*m = next
	return nil
}
