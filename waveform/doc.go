// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package waveform models SSD1677 refresh-waveform configurations.
//
// A Model holds one voltage pattern per pixel transition, ten timing groups
// shared by all transitions, the source/gate voltage settings and the frame
// rate. EncodeLUT serializes a Model into the 112-byte lookup table the
// controller loads through the write-LUT command (0x32), and Estimate
// predicts the refresh duration from the same data.
//
// Datasheet:
//
// https://www.solomon-systech.com/product/ssd1677/
package waveform
