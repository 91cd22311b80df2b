// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epd-tools/ssd1677/waveform"
)

var (
	logLevel = "info"
)

// NewCommand returns the root ssd1677lut command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssd1677lut",
		Short: "ssd1677lut edits and encodes SSD1677 e-paper waveform LUTs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
		SilenceUsage: true,
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.AddCommand(
		NewInitCommand(),
		NewDumpCommand(),
		NewEncodeCommand(),
		NewInfoCommand(),
		NewSetCommand(),
		NewPatternCommand(),
	)

	return cmd
}

// loadModel reads the document at file, or returns the named preset when
// file is empty.
func loadModel(file, preset string) (*waveform.Model, error) {
	if file == "" {
		return waveform.Preset(preset)
	}
	m := &waveform.Model{}
	if err := m.LoadFile(file); err != nil {
		return nil, errors.Wrapf(err, "loading %s", file)
	}
	logrus.Debugf("loaded %s", file)
	return m, nil
}

// mutateFile loads file, applies fn and saves the result atomically. The
// file is not touched when fn fails.
func mutateFile(file string, fn func(*waveform.Model) error) error {
	m := &waveform.Model{}
	if err := m.LoadFile(file); err != nil {
		return errors.Wrapf(err, "loading %s", file)
	}
	if err := fn(m); err != nil {
		return err
	}
	if err := m.SaveFile(file); err != nil {
		return errors.Wrapf(err, "saving %s", file)
	}
	logrus.Infof("%s | %s", file, m.TimingSummary())
	return nil
}

// NewInitCommand .
func NewInitCommand() *cobra.Command {
	var (
		preset string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a preset waveform configuration as a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			if !force {
				if _, err := os.Stat(file); err == nil {
					return errors.Errorf("%s already exists, use --force to overwrite", file)
				}
			}
			m, err := waveform.Preset(preset)
			if err != nil {
				return err
			}
			if err := m.SaveFile(file); err != nil {
				return err
			}
			logrus.Infof("wrote %s preset to %s", preset, file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "preset to start from (default, grayscale, grayscale-revert, reset)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// NewDumpCommand .
func NewDumpCommand() *cobra.Command {
	var (
		preset    string
		arrayName string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the annotated C array for a configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			m, err := loadModel(file, preset)
			if err != nil {
				return err
			}
			return m.Render(colorable.NewColorableStdout(), &waveform.RenderOpts{
				ArrayName: arrayName,
				Color:     !noColor,
			})
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "preset to dump when no file is given")
	cmd.Flags().StringVar(&arrayName, "name", "lut_custom", "C array identifier")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}

// NewEncodeCommand .
func NewEncodeCommand() *cobra.Command {
	var (
		preset string
		output string
	)

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a configuration into the 112-byte LUT",
		Long: `Encode a configuration into the 112-byte LUT.
The raw bytes are written to the file given with --output, or printed as hex
rows on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			m, err := loadModel(file, preset)
			if err != nil {
				return err
			}
			lut := m.EncodeLUT()
			if output != "" {
				if err := os.WriteFile(output, lut, 0644); err != nil {
					return err
				}
				logrus.Infof("wrote %d bytes to %s", len(lut), output)
				return nil
			}
			for i := 0; i < len(lut); i += 16 {
				end := i + 16
				if end > len(lut) {
					end = len(lut)
				}
				cmd.Printf("%3d: % X\n", i, []byte(lut[i:end]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "preset to encode when no file is given")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write raw bytes to this file")

	return cmd
}

// NewInfoCommand .
func NewInfoCommand() *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print the refresh timing estimate for a configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			m, err := loadModel(file, preset)
			if err != nil {
				return err
			}
			cmd.Printf("%s\n", m.TimingSummary())
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "preset to inspect when no file is given")

	return cmd
}

// NewSetCommand .
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a numeric field of a configuration document",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "frame-rate <file> <value>",
			Short: "Set the frame rate byte",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := waveform.ParseByte(args[1])
				if err != nil {
					return err
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					m.SetFrameRate(value)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "voltage <file> <rail> <value>",
			Short: "Set a voltage rail (VGH, VSH1, VSH2, VSL, VCOM)",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := waveform.ParseByte(args[2])
				if err != nil {
					return err
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					return m.SetVoltage(args[1], value)
				})
			},
		},
		&cobra.Command{
			Use:   "timing <file> <group> <field> <value>",
			Short: "Set a timing group field (A, B, C, D, RP)",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				group, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.Errorf("invalid group %q", args[1])
				}
				var field waveform.TimingField
				if err := field.Set(args[2]); err != nil {
					return err
				}
				value, err := waveform.ParseByte(args[3])
				if err != nil {
					return err
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					return m.SetTiming(group, field, value)
				})
			},
		},
	)

	return cmd
}

// NewPatternCommand .
func NewPatternCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Edit the voltage pattern of a transition",
		Long: `Edit the voltage pattern of a transition.
Transitions are addressed by index (0-3) or short form (bb, bw, wb, ww).`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "append <file> <transition>",
			Short: "Append a VSS step to a pattern",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var tr waveform.Transition
				if err := tr.Set(args[1]); err != nil {
					return err
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					return m.AppendStep(tr)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <file> <transition> <index>",
			Short: "Remove a step from a pattern",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				var tr waveform.Transition
				if err := tr.Set(args[1]); err != nil {
					return err
				}
				i, err := strconv.Atoi(args[2])
				if err != nil {
					return errors.Errorf("invalid step index %q", args[2])
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					return m.RemoveStep(tr, i)
				})
			},
		},
		&cobra.Command{
			Use:   "set <file> <transition> <index> <voltage>",
			Short: "Set a pattern step to a voltage (VSS, VSH1, VSL, VSH2)",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				var tr waveform.Transition
				if err := tr.Set(args[1]); err != nil {
					return err
				}
				i, err := strconv.Atoi(args[2])
				if err != nil {
					return errors.Errorf("invalid step index %q", args[2])
				}
				var v waveform.Voltage
				if err := v.Set(args[3]); err != nil {
					return err
				}
				return mutateFile(args[0], func(m *waveform.Model) error {
					return m.SetStep(tr, i, v)
				})
			},
		},
	)

	return cmd
}
