// Package resolver turns raw command-line arguments into a validated
// indexrun.RunRequest.
package resolver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/helixml/graphrag-index/domain/indexrun"
)

// ErrHelp is returned when help was requested.
var ErrHelp = pflag.ErrHelp

// Resolve parses args and returns the normalized request.
//
// Failures are *UsageError, except for -h/--help which returns ErrHelp.
// Checks run in order: syntax, required --root, --reporter choice, then
// the --overlay-defaults/--config dependency. A value flag followed by an
// argument that looks like a flag is a syntax error.
func Resolve(args []string) (indexrun.RunRequest, error) {
	var v values
	fs := newFlagSet(&v)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return indexrun.RunRequest{}, ErrHelp
		}
		return indexrun.RunRequest{}, &UsageError{msg: err.Error(), err: err}
	}
	if err := checkSeparateValues(fs, args); err != nil {
		return indexrun.RunRequest{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return indexrun.RunRequest{}, newUsageError("unrecognized arguments: " + strings.Join(rest, " "))
	}

	if !fs.Changed(flagRoot) {
		return indexrun.RunRequest{}, newUsageError("root is required", "--"+flagRoot)
	}

	opts := []indexrun.Option{
		indexrun.WithEmit(v.emit),
		indexrun.WithVerbose(bool(v.verbose)),
		indexrun.WithMemProfile(bool(v.memProfile)),
		indexrun.WithNoCache(bool(v.noCache)),
		indexrun.WithDryRun(bool(v.dryRun)),
		indexrun.WithInit(bool(v.init)),
		indexrun.WithOverlayDefaults(bool(v.overlayDefaults)),
		indexrun.FromCLI(),
	}

	if fs.Changed(flagReporter) {
		kind, err := indexrun.ParseReporterKind(v.reporter)
		if err != nil {
			return indexrun.RunRequest{}, &UsageError{
				Flags: []string{"--" + flagReporter},
				msg:   fmt.Sprintf("argument --%s: %v", flagReporter, err),
				err:   err,
			}
		}
		opts = append(opts, indexrun.WithReporter(kind))
	}

	if bool(v.overlayDefaults) && v.config == "" {
		return indexrun.RunRequest{}, newUsageError(
			"--overlay-defaults requires --config", "--"+flagOverlayDefaults, "--"+flagConfig)
	}

	if fs.Changed(flagConfig) {
		opts = append(opts, indexrun.WithConfig(v.config))
	}
	if fs.Changed(flagResume) {
		opts = append(opts, indexrun.WithResume(v.resume))
	}

	return indexrun.NewRunRequest(v.root, opts...), nil
}

// checkSeparateValues rejects a value flag whose separate argument looks like
// another flag, so "--root -v" never reads "-v" as the root. Values given as
// "--root=-v" are taken literally.
func checkSeparateValues(fs *pflag.FlagSet, args []string) error {
	for i := 0; i < len(args)-1; i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
			continue
		}
		f := fs.Lookup(arg[2:])
		if f == nil || f.NoOptDefVal != "" {
			continue
		}
		if looksLikeFlag(args[i+1]) {
			return newUsageError(fmt.Sprintf("argument %s: expected one argument", arg), arg)
		}
		i++
	}
	return nil
}

// looksLikeFlag reports whether s would be read as an option. A lone "-" and
// negative numbers are values.
func looksLikeFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}
