// Package config holds the run configuration and its sources.
//
// Values are layered the usual way: defaults, then an optional config file,
// then INTAKE_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ColorMode controls whether console output is colorized.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Defaults for the output naming.
const (
	DefaultOutputPrefix = "output_"
	DefaultReportName   = "summary.txt"
	DefaultLogName      = "automation.log"
)

// Config holds settings for one run.
type Config struct {
	// InputDir is the folder to scan.
	InputDir string
	// ColorMode selects console colors.
	ColorMode ColorMode
	// OutputPrefix prefixes the timestamped output folder name.
	OutputPrefix string
	// ReportName is the file name of the summary report.
	ReportName string
	// LogName is the file name of the persisted log.
	LogName string
	// Debug prints each classification decision to the console.
	Debug bool
	// Now is the clock used for timestamps and output naming.
	Now func() time.Time
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ColorMode:    ColorAuto,
		OutputPrefix: DefaultOutputPrefix,
		ReportName:   DefaultReportName,
		LogName:      DefaultLogName,
		Now:          time.Now,
	}
}

// Validate checks the configuration for values the run cannot work with.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be one of auto, always, never", c.ColorMode)
	}

	if c.OutputPrefix == "" {
		return errors.New("output prefix cannot be empty")
	}

	for name, value := range map[string]string{
		"output prefix": c.OutputPrefix,
		"report name":   c.ReportName,
		"log name":      c.LogName,
	} {
		if err := plainName(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}

	if c.ReportName == c.LogName {
		return fmt.Errorf("report and log names must differ, both are %q", c.ReportName)
	}

	if c.Now == nil {
		c.Now = time.Now
	}

	return nil
}

// plainName rejects empty names and names that would escape the output folder.
func plainName(name string) error {
	switch {
	case name == "":
		return errors.New("cannot be empty")
	case name == "." || name == "..":
		return errors.New("must not be a relative directory")
	case strings.ContainsAny(name, `/\`):
		return errors.New("must not contain path separators")
	default:
		return nil
	}
}
