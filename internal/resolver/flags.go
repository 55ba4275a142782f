package resolver

import (
	"errors"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/helixml/graphrag-index/domain/indexrun"
)

// Program is the command name shown in usage output.
const Program = "graphrag-index"

// Flag names.
const (
	flagRoot            = "root"
	flagConfig          = "config"
	flagVerbose         = "verbose"
	flagMemProfile      = "mem-profile"
	flagResume          = "resume"
	flagReporter        = "reporter"
	flagEmit            = "emit"
	flagDryRun          = "dry-run"
	flagNoCache         = "no-cache"
	flagInit            = "init"
	flagOverlayDefaults = "overlay-defaults"
)

var errFlagTakesNoValue = errors.New("flag takes no value")

// presence is a boolean flag that can only be switched on by naming it.
type presence bool

func (p *presence) Set(s string) error {
	if s != "true" {
		return errFlagTakesNoValue
	}
	*p = true
	return nil
}

func (p *presence) String() string { return strconv.FormatBool(bool(*p)) }

func (p *presence) Type() string { return "bool" }

// values holds the raw parsed flag values for one call to Resolve.
type values struct {
	root            string
	config          string
	verbose         presence
	memProfile      presence
	resume          string
	reporter        string
	emit            string
	dryRun          presence
	noCache         presence
	init            presence
	overlayDefaults presence
}

// newFlagSet declares the flag schema, binding every flag into v.
func newFlagSet(v *values) *pflag.FlagSet {
	fs := pflag.NewFlagSet(Program, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVar(&v.root, flagRoot, "", "The root directory to use for input data and output data")
	fs.StringVar(&v.config, flagConfig, "", "The configuration yaml file to use when running the pipeline")
	presenceVar(fs, &v.verbose, flagVerbose, "v", "Runs the pipeline with verbose logging")
	presenceVar(fs, &v.memProfile, flagMemProfile, "", "Runs the pipeline with memory profiling")
	fs.StringVar(&v.resume, flagResume, "", "Resume a given data run leveraging Parquet output files")
	fs.StringVar(&v.reporter, flagReporter, "", "The progress reporter to use. One of: rich, print, none")
	fs.StringVar(&v.emit, flagEmit, indexrun.DefaultEmit, "A comma-separated list of data formats to emit. Possible values: [parquet|csv]")
	presenceVar(fs, &v.dryRun, flagDryRun, "", "Run the pipeline without actually executing any steps and inspect the configuration")
	presenceVar(fs, &v.noCache, flagNoCache, "", "Disable LLM cache")
	presenceVar(fs, &v.init, flagInit, "", "Create an initial configuration in the given path")
	presenceVar(fs, &v.overlayDefaults, flagOverlayDefaults, "", "Overlay default configuration values on a provided configuration file (--config)")

	return fs
}

func presenceVar(fs *pflag.FlagSet, p *presence, name, shorthand, usage string) {
	f := fs.VarPF(p, name, shorthand, usage)
	f.NoOptDefVal = "true"
}

// Usage returns the help text for the command-line surface.
func Usage() string {
	var v values
	fs := newFlagSet(&v)
	fs.BoolP("help", "h", false, "show this help message and exit")
	return "usage: " + Program + " --root ROOT [flags]\n\nFlags:\n" + fs.FlagUsages()
}
