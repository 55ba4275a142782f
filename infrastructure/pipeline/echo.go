package pipeline

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/helixml/graphrag-index/domain/indexrun"
)

// Echo writes each request as a YAML document instead of running it.
type Echo struct {
	w io.Writer
}

// NewEcho creates an Echo pipeline writing to w.
func NewEcho(w io.Writer) *Echo {
	return &Echo{w: w}
}

// RunIndex encodes req to the writer.
func (e *Echo) RunIndex(_ context.Context, req indexrun.RunRequest) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(NewParameters(req)); err != nil {
		return fmt.Errorf("encode run request: %w", err)
	}
	return enc.Close()
}
