// Package indexrun describes a single request to run the indexing pipeline.
package indexrun

import (
	"log/slog"
	"strings"
)

// DefaultEmit is the declared default for the emit format list. It is
// forwarded verbatim and never interpreted here.
const DefaultEmit = "parque"

// RunRequest is the normalized set of parameters for one indexing run.
// It is immutable once constructed.
type RunRequest struct {
	root            string
	config          string
	hasConfig       bool
	resume          string
	hasResume       bool
	verbose         bool
	memProfile      bool
	noCache         bool
	reporter        ReporterKind
	hasReporter     bool
	emit            string
	dryRun          bool
	init            bool
	overlayDefaults bool
	cli             bool
}

// NewRunRequest creates a RunRequest for root with the given options applied.
func NewRunRequest(root string, opts ...Option) RunRequest {
	r := RunRequest{
		root: root,
		emit: DefaultEmit,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Root returns the data root directory.
func (r RunRequest) Root() string { return r.root }

// Config returns the configuration file path, if one was given.
func (r RunRequest) Config() (string, bool) { return r.config, r.hasConfig }

// Resume returns the identifier of the run to resume, if one was given.
func (r RunRequest) Resume() (string, bool) { return r.resume, r.hasResume }

// Verbose reports whether verbose logging was requested.
func (r RunRequest) Verbose() bool { return r.verbose }

// MemProfile reports whether memory profiling was requested.
func (r RunRequest) MemProfile() bool { return r.memProfile }

// NoCache reports whether the LLM cache should be disabled.
func (r RunRequest) NoCache() bool { return r.noCache }

// Reporter returns the selected reporter. When absent the pipeline
// chooses its own default.
func (r RunRequest) Reporter() (ReporterKind, bool) { return r.reporter, r.hasReporter }

// Emit returns the raw comma-separated emit token.
func (r RunRequest) Emit() string { return r.emit }

// EmitFormats splits the emit token on commas. Order and content are kept
// as given; empty entries are preserved.
func (r RunRequest) EmitFormats() []string {
	return strings.Split(r.emit, ",")
}

// DryRun reports whether the pipeline should only inspect its configuration.
func (r RunRequest) DryRun() bool { return r.dryRun }

// Init reports whether an initial configuration should be created.
func (r RunRequest) Init() bool { return r.init }

// OverlayDefaults reports whether default values should be overlaid on the
// configuration file.
func (r RunRequest) OverlayDefaults() bool { return r.overlayDefaults }

// CLI reports whether the request originated from the command line.
func (r RunRequest) CLI() bool { return r.cli }

// LogAttrs returns slog attributes describing the request.
func (r RunRequest) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("root", r.root),
		slog.Bool("verbose", r.verbose),
		slog.Bool("mem_profile", r.memProfile),
		slog.Bool("no_cache", r.noCache),
		slog.String("emit", r.emit),
		slog.Bool("dry_run", r.dryRun),
		slog.Bool("init", r.init),
		slog.Bool("overlay_defaults", r.overlayDefaults),
		slog.Bool("cli", r.cli),
	}
	if r.hasConfig {
		attrs = append(attrs, slog.String("config", r.config))
	}
	if r.hasResume {
		attrs = append(attrs, slog.String("resume", r.resume))
	}
	if r.hasReporter {
		attrs = append(attrs, slog.String("reporter", r.reporter.String()))
	}
	return attrs
}
