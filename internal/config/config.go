// Package config provides the settings of a referee run.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Quiet  = 0
	Normal = 1
	Trace  = 2 // also echo the engine protocol
)

// Config holds all program configuration.
type Config struct {
	// Sub-configurations
	Engine EngineConfig
	Game   GameConfig
	Output OutputConfig

	Verbosity int // 0=nothing, 1=progress, 2=protocol trace

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine:     *NewEngineConfig(),
		Game:       *NewGameConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
