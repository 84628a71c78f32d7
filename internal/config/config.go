// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"kmotif/core/neighbor"
)

var ErrInvalid = errors.New("invalid config")

// Config holds run-wide settings shared by every subcommand. Values come from
// defaults, then an optional YAML file, then explicitly set flags.
type Config struct {
	Alphabet        string `yaml:"alphabet"`
	Threads         int    `yaml:"threads"` // 0 = all CPUs
	Output          string `yaml:"output"`  // text | json
	Quiet           bool   `yaml:"quiet"`
	Verbose         bool   `yaml:"verbose"`
	NoMatchExitCode int    `yaml:"no_match_exit_code"` // exit code for an empty result
}

func Default() Config {
	return Config{
		Alphabet: "ACGT",
		Output:   "text",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every violation at once.
func (c Config) Validate() error {
	if err := c.violations(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (c Config) violations() error {
	var err error
	if _, aerr := neighbor.NewAlphabet(c.Alphabet); aerr != nil {
		err = multierr.Append(err, fmt.Errorf("alphabet: %w", aerr))
	}
	if c.Threads < 0 {
		err = multierr.Append(err, errors.New("threads must be >= 0"))
	}
	switch c.Output {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("invalid output %q", c.Output))
	}
	if c.Quiet && c.Verbose {
		err = multierr.Append(err, errors.New("quiet conflicts with verbose"))
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		err = multierr.Append(err, errors.New("no_match_exit_code must be between 0 and 255"))
	}
	return err
}

// Alpha returns the substitution alphabet. Call after Validate.
func (c Config) Alpha() neighbor.Alphabet {
	a, err := neighbor.NewAlphabet(c.Alphabet)
	if err != nil {
		return neighbor.DNA
	}
	return a
}
