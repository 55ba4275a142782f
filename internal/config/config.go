// Package config provides application configuration.
package config

import (
	"log/slog"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel        = "INFO"
	DefaultPipelineCommand = "graphrag-pipeline"
	DefaultEnvFile         = ".env"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// PipelineKind selects the collaborator a resolved request is handed to.
type PipelineKind string

// PipelineKind values.
const (
	PipelineExec PipelineKind = "exec"
	PipelineEcho PipelineKind = "echo"
)

// AppConfig holds the runtime configuration of the command.
type AppConfig struct {
	logLevel        string
	logFormat       LogFormat
	pipeline        PipelineKind
	pipelineCommand []string
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:        DefaultLogLevel,
		logFormat:       LogFormatPretty,
		pipeline:        PipelineExec,
		pipelineCommand: []string{DefaultPipelineCommand},
	}
}

// LogLevel returns the configured log level name.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Pipeline returns the selected pipeline kind.
func (c AppConfig) Pipeline() PipelineKind { return c.pipeline }

// PipelineCommand returns the program and leading arguments used by the
// exec pipeline.
func (c AppConfig) PipelineCommand() []string {
	out := make([]string, len(c.pipelineCommand))
	copy(out, c.pipelineCommand)
	return out
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithPipeline sets the pipeline kind.
func WithPipeline(kind PipelineKind) AppConfigOption {
	return func(c *AppConfig) { c.pipeline = kind }
}

// WithPipelineCommand sets the exec pipeline command. Empty commands are ignored.
func WithPipelineCommand(command []string) AppConfigOption {
	return func(c *AppConfig) {
		if len(command) > 0 {
			c.pipelineCommand = append([]string(nil), command...)
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes describing the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("pipeline", string(c.pipeline)),
		slog.String("pipeline_command", strings.Join(c.pipelineCommand, " ")),
	}
}
