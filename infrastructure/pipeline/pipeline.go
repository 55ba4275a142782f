package pipeline

import (
	"fmt"
	"io"

	"github.com/helixml/graphrag-index/domain/indexrun"
	"github.com/helixml/graphrag-index/internal/config"
	"github.com/helixml/graphrag-index/internal/log"
)

// New returns the pipeline selected by cfg.
func New(cfg config.AppConfig, stdout io.Writer, logger *log.Logger) (indexrun.Pipeline, error) {
	switch cfg.Pipeline() {
	case config.PipelineEcho:
		return NewEcho(stdout), nil
	case config.PipelineExec:
		p, err := NewExec(cfg.PipelineCommand(), stdout, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown pipeline %q", cfg.Pipeline())
	}
}
