// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ssd1677lut edits, inspects and encodes SSD1677 refresh-waveform
// configurations stored as JSON documents.
package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := NewCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
	})
	return nil
}
