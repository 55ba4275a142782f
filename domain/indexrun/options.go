package indexrun

// Option configures a RunRequest during construction.
type Option func(*RunRequest)

// WithConfig sets the configuration file path.
func WithConfig(path string) Option {
	return func(r *RunRequest) {
		r.config = path
		r.hasConfig = true
	}
}

// WithResume sets the run identifier to resume from.
func WithResume(runID string) Option {
	return func(r *RunRequest) {
		r.resume = runID
		r.hasResume = true
	}
}

// WithVerbose sets verbose logging.
func WithVerbose(v bool) Option {
	return func(r *RunRequest) { r.verbose = v }
}

// WithMemProfile sets memory profiling.
func WithMemProfile(v bool) Option {
	return func(r *RunRequest) { r.memProfile = v }
}

// WithNoCache disables the LLM cache.
func WithNoCache(v bool) Option {
	return func(r *RunRequest) { r.noCache = v }
}

// WithReporter selects the progress reporter.
func WithReporter(k ReporterKind) Option {
	return func(r *RunRequest) {
		r.reporter = k
		r.hasReporter = true
	}
}

// WithEmit sets the raw emit token.
func WithEmit(emit string) Option {
	return func(r *RunRequest) { r.emit = emit }
}

// WithDryRun sets dry-run mode.
func WithDryRun(v bool) Option {
	return func(r *RunRequest) { r.dryRun = v }
}

// WithInit requests creation of an initial configuration.
func WithInit(v bool) Option {
	return func(r *RunRequest) { r.init = v }
}

// WithOverlayDefaults overlays defaults on the configuration file.
func WithOverlayDefaults(v bool) Option {
	return func(r *RunRequest) { r.overlayDefaults = v }
}

// FromCLI marks the request as originating from the command line.
func FromCLI() Option {
	return func(r *RunRequest) { r.cli = true }
}
