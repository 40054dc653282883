package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunnerberg/heattally/internal/domain"
	"github.com/sunnerberg/heattally/internal/parse"
)

// Config holds CLI configuration for heattally.
type Config struct {
	// Input is the path to the ballot export (TSV or XLSX).
	Input string

	// Title is the report heading.
	Title string

	// Output is the report destination path; empty means stdout.
	Output string

	// Chart is the path for a PNG totals chart; empty disables charting.
	Chart string

	// Strict makes the process exit non-zero when any ballot is invalid.
	Strict bool

	// Watch re-runs the tally when the input file changes.
	Watch bool

	// Quiet raises the log level to error.
	Quiet bool

	Rules  domain.Rules
	Schema parse.Schema
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Title:  "HEAT RESULTS",
		Strict: true,
		Rules:  domain.DefaultRules(),
		Schema: parse.DefaultSchema(),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
// The required sum is always derived from the point set so that a custom set
// (e.g. a 10-song final) stays coherent regardless of where it was configured.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}
	if c.Schema.SongColumnPrefix == "" {
		return fmt.Errorf("song-prefix is required")
	}

	sum := 0
	for _, p := range c.Rules.PointValues {
		sum += p
	}
	c.Rules.RequiredSum = sum

	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInts sets an int slice if non-empty and flag not changed.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setIntsFromString parses a comma-separated list of ints and sets the
// destination. Used for environment variables that come as strings.
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		out = append(out, i)
	}
	*dst = out
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
