package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cohesivestack/valgo"
	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/coro-sh/domaingen/internal/valgoutil"
	"github.com/coro-sh/domaingen/log"
	"github.com/coro-sh/domaingen/rng"
)

// Config controls a generation run. The positional count and seed are not
// part of it; they are always given on the command line.
type Config struct {
	Logger    LoggerConfig `yaml:"logger"`
	Algorithm string       `yaml:"algorithm"` // default: mt19937
	Output    OutputConfig `yaml:"output"`
}

func (c *Config) InitDefaults() {
	c.Logger.InitDefaults()
	c.Algorithm = string(rng.Default)
	c.Output.InitDefaults()
}

// LoadFile decodes the yaml file at path over c. Keys present in the file
// replace the current values and unknown keys are rejected. The result is not
// validated.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validation() *valgo.Validation {
	v := valgo.New()
	v.In("logger", c.Logger.Validation())
	v.Is(valgoutil.OneOfValidator(c.Algorithm, rng.AlgorithmNames(), "algorithm"))
	v.In("output", c.Output.Validation())
	return v
}

// Component configs

type LoggerConfig struct {
	Level      string `yaml:"level"`      // default: warn
	Structured bool   `yaml:"structured"` // default: false
}

func (c *LoggerConfig) InitDefaults() {
	c.Level = "warn"
	c.Structured = false
}

func (c *LoggerConfig) Validation() *valgo.Validation {
	return valgo.Is(valgo.String(c.Level, "level").Passing(func(_ string) bool {
		_, ok := log.ParseLevel(c.Level)
		return ok
	}, "Must be one of [debug, info, warn, error]"))
}

type OutputConfig struct {
	// Path is the file to write to. Empty writes to stdout.
	Path      string `yaml:"path"`
	Gzip      bool   `yaml:"gzip"`
	GzipLevel int    `yaml:"gzipLevel"` // default: -1 (gzip default compression)
}

func (c *OutputConfig) InitDefaults() {
	c.GzipLevel = gzip.DefaultCompression
}

func (c *OutputConfig) Validation() *valgo.Validation {
	v := valgo.New()
	if c.Gzip {
		v.Is(valgo.Int(c.GzipLevel, "gzipLevel").
			GreaterOrEqualTo(gzip.HuffmanOnly, "Must be between -2 and 9").
			LessOrEqualTo(gzip.BestCompression, "Must be between -2 and 9"))
	}
	return v
}
