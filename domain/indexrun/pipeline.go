package indexrun

import "context"

// Pipeline is the external indexing pipeline entry point. It owns all
// indexing, caching, reporting and output emission.
type Pipeline interface {
	RunIndex(ctx context.Context, req RunRequest) error
}

// PipelineFunc adapts a function to the Pipeline interface.
type PipelineFunc func(ctx context.Context, req RunRequest) error

// RunIndex calls f(ctx, req).
func (f PipelineFunc) RunIndex(ctx context.Context, req RunRequest) error {
	return f(ctx, req)
}
