// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveform

import (
	"github.com/pkg/errors"
)

// Errors returned by model mutations and document decoding. They are
// sentinels; match with errors.Is.
var (
	// ErrCapacity is returned when appending to a pattern that already has
	// MaxSteps steps.
	ErrCapacity = errors.New("pattern capacity exceeded")

	// ErrMinimumLength is returned when removing the last remaining step of
	// a pattern.
	ErrMinimumLength = errors.New("pattern minimum length violation")

	// ErrIndexOutOfRange is returned for step or group indices outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidNumeric is returned when a textual numeric field does not
	// parse as an integer in [0, 255].
	ErrInvalidNumeric = errors.New("invalid numeric input")

	// ErrMalformedDocument is returned when an interchange document is
	// missing fields or holds out-of-range values.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnknownVoltage is returned when a voltage name outside the
	// VSS/VSH1/VSL/VSH2 set is encountered.
	ErrUnknownVoltage = errors.New("unknown voltage symbol")
)
