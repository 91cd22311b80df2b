// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1677 contains tooling for SSD1677 e-paper display controllers.
//
// The waveform package models refresh-waveform configurations and encodes
// them into the 112-byte LUT blob the controller consumes; cmd/ssd1677lut is
// a command line front end for editing and inspecting such configurations.
package ssd1677
