package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by LoadFromEnv.
const EnvPrefix = "GRAPHRAG"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: GRAPHRAG_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: GRAPHRAG_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Pipeline selects where resolved runs are sent (exec or echo).
	// Env: GRAPHRAG_PIPELINE (default: exec)
	Pipeline string `envconfig:"PIPELINE" default:"exec"`

	// PipelineCommand is the command line of the external indexing
	// pipeline, split on whitespace.
	// Env: GRAPHRAG_PIPELINE_COMMAND (default: graphrag-pipeline)
	PipelineCommand string `envconfig:"PIPELINE_COMMAND" default:"graphrag-pipeline"`
}

// LoadFromEnv loads configuration from GRAPHRAG_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize trims and lower-cases enumerated values.
func (e EnvConfig) Normalize() EnvConfig {
	e.LogLevel = strings.ToUpper(strings.TrimSpace(e.LogLevel))
	e.LogFormat = strings.ToLower(strings.TrimSpace(e.LogFormat))
	e.Pipeline = strings.ToLower(strings.TrimSpace(e.Pipeline))
	return e
}

// Validate reports values that cannot be mapped onto an AppConfig.
// It expects a normalized EnvConfig.
func (e EnvConfig) Validate() error {
	if _, err := ParsePipelineKind(e.Pipeline); err != nil {
		return err
	}
	if e.Pipeline == string(PipelineExec) && len(strings.Fields(e.PipelineCommand)) == 0 {
		return fmt.Errorf("%s_PIPELINE_COMMAND is empty", EnvPrefix)
	}
	return nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if kind, err := ParsePipelineKind(e.Pipeline); err == nil {
		cfg = applyOption(cfg, WithPipeline(kind))
	}
	cfg = applyOption(cfg, WithPipelineCommand(strings.Fields(e.PipelineCommand)))

	return cfg
}

// ParsePipelineKind parses a pipeline kind name.
func ParsePipelineKind(s string) (PipelineKind, error) {
	switch PipelineKind(strings.ToLower(strings.TrimSpace(s))) {
	case PipelineExec:
		return PipelineExec, nil
	case PipelineEcho:
		return PipelineEcho, nil
	default:
		return "", fmt.Errorf("unknown pipeline %q (want exec or echo)", s)
	}
}

func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
