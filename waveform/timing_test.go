// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"testing"
)

func TestTimingGroupFrames(t *testing.T) {
	for _, tc := range []struct {
		name string
		g    TimingGroup
		want int
	}{
		{name: "zero", g: TimingGroup{}, want: 0},
		{name: "no repeat", g: TimingGroup{A: 4, B: 4}, want: 8},
		{name: "repeat once", g: TimingGroup{A: 1, B: 1, C: 1, D: 1, RP: 1}, want: 8},
		{name: "max", g: TimingGroup{A: 255, B: 255, C: 255, D: 255, RP: 255}, want: 4 * 255 * 256},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.g.Frames(); got != tc.want {
				t.Errorf("Frames() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	for _, tc := range []struct {
		name       string
		timing     [NumTimingGroups]TimingGroup
		frameRate  byte
		wantFrames int
		wantMS     int
	}{
		{
			name:       "all zero groups",
			frameRate:  0x88,
			wantFrames: 0,
			wantMS:     0,
		},
		{
			// 8 frames at 2500/136 ≈ 18.38 ms, plus 10% margin.
			name:       "single group",
			timing:     [NumTimingGroups]TimingGroup{{A: 4, B: 4}},
			frameRate:  0x88,
			wantFrames: 8,
			wantMS:     161,
		},
		{
			name:       "frame rate zero uses 50ms frames",
			timing:     [NumTimingGroups]TimingGroup{{A: 4, B: 4}},
			frameRate:  0,
			wantFrames: 8,
			wantMS:     440,
		},
		{
			name:       "per-frame time clamps at 10ms",
			timing:     [NumTimingGroups]TimingGroup{{A: 4, B: 4}},
			frameRate:  255,
			wantFrames: 8,
			wantMS:     88,
		},
		{
			name: "repeats multiply",
			timing: [NumTimingGroups]TimingGroup{
				{A: 4, B: 4},
				{A: 2, B: 2, RP: 2},
			},
			frameRate:  0x88,
			wantFrames: 20,
			wantMS:     404,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel()
			m.Timing = tc.timing
			m.FrameRate = tc.frameRate

			frames, ms := m.Estimate()

			if frames != tc.wantFrames {
				t.Errorf("Estimate() frames = %d, want %d", frames, tc.wantFrames)
			}
			if ms != tc.wantMS {
				t.Errorf("Estimate() ms = %d, want %d", ms, tc.wantMS)
			}
		})
	}
}

func TestTimingSummary(t *testing.T) {
	m := NewModel()
	m.Timing = [NumTimingGroups]TimingGroup{{A: 4, B: 4}}

	want := "Total frames: 8 | Est. time: ~161ms"
	if got := m.TimingSummary(); got != want {
		t.Errorf("TimingSummary() = %q, want %q", got, want)
	}
}
