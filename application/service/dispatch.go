// Package service provides the application services of the indexing CLI.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helixml/graphrag-index/domain/indexrun"
	"github.com/helixml/graphrag-index/internal/log"
)

// Dispatcher forwards resolved run requests to the indexing pipeline.
type Dispatcher struct {
	pipeline indexrun.Pipeline
	logger   *log.Logger
	newRunID func() string
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithRunIDGenerator overrides how run correlation IDs are generated.
func WithRunIDGenerator(fn func() string) DispatcherOption {
	return func(d *Dispatcher) {
		if fn != nil {
			d.newRunID = fn
		}
	}
}

// NewDispatcher creates a Dispatcher sending requests to pipeline.
func NewDispatcher(pipeline indexrun.Pipeline, logger *log.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		pipeline: pipeline,
		logger:   logger,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch forwards req to the pipeline exactly once. Pipeline errors are
// returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, req indexrun.RunRequest) error {
	if req.Verbose() {
		d.logger.EnableDebug()
	}

	ctx = log.WithCorrelationID(ctx, d.newRunID())
	logger := d.logger.WithContext(ctx).Slog()
	logger.LogAttrs(ctx, slog.LevelDebug, "dispatching run", req.LogAttrs()...)

	if err := d.pipeline.RunIndex(ctx, req); err != nil {
		return err
	}

	logger.Debug("run finished")
	return nil
}
