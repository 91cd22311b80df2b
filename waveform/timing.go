// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"fmt"
)

// Estimate computes the total frame count of one refresh and the estimated
// wall-clock duration in milliseconds. It is recomputed from the model on
// every call.
//
// A frame rate of 0 is treated as a fixed 50 ms per frame; otherwise the
// per-frame time is 2500/rate ms, clamped to at least 10 ms. The total is
// padded by 10% for controller overhead and truncated to a whole
// millisecond.
func (m *Model) Estimate() (totalFrames, estimatedMS int) {
	for _, g := range m.Timing {
		totalFrames += g.Frames()
	}

	msPerFrame := 50.0
	if m.FrameRate > 0 {
		msPerFrame = 2500 / float64(m.FrameRate)
		if msPerFrame < 10 {
			msPerFrame = 10
		}
	}

	estimatedMS = int(float64(totalFrames) * msPerFrame * 1.1)
	return totalFrames, estimatedMS
}

// TimingSummary returns a one-line human readable rendering of Estimate.
func (m *Model) TimingSummary() string {
	frames, ms := m.Estimate()
	return fmt.Sprintf("Total frames: %d | Est. time: ~%dms", frames, ms)
}
