package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/helixml/graphrag-index/application/service"
	"github.com/helixml/graphrag-index/infrastructure/pipeline"
	"github.com/helixml/graphrag-index/internal/config"
	"github.com/helixml/graphrag-index/internal/log"
	"github.com/helixml/graphrag-index/internal/resolver"
)

// runIndex resolves args before loading any configuration, so usage
// errors never depend on the environment.
func runIndex(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	req, err := resolver.Resolve(args)
	if errors.Is(err, resolver.ErrHelp) {
		_, err := io.WriteString(stdout, resolver.Usage())
		return err
	}
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewLogger(cfg, stderr)
	if req.Verbose() {
		logger.EnableDebug()
	}
	logger.Slog().LogAttrs(ctx, slog.LevelDebug, "configuration loaded", cfg.LogAttrs()...)

	p, err := pipeline.New(cfg, stdout, logger)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	return service.NewDispatcher(p, logger).Dispatch(ctx, req)
}
