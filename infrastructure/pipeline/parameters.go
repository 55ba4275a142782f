// Package pipeline provides collaborators that receive resolved index runs.
package pipeline

import "github.com/helixml/graphrag-index/domain/indexrun"

// Parameters is a RunRequest in the named-parameter shape the indexing
// pipeline accepts. Absent optional values are nil.
type Parameters struct {
	Root            string  `yaml:"root"`
	Verbose         bool    `yaml:"verbose"`
	Resume          *string `yaml:"resume"`
	MemProfile      bool    `yaml:"memprofile"`
	NoCache         bool    `yaml:"nocache"`
	Reporter        *string `yaml:"reporter"`
	Config          *string `yaml:"config"`
	Emit            string  `yaml:"emit"`
	DryRun          bool    `yaml:"dryrun"`
	Init            bool    `yaml:"init"`
	OverlayDefaults bool    `yaml:"overlay_defaults"`
	CLI             bool    `yaml:"cli"`
}

// NewParameters converts req into pipeline parameters.
func NewParameters(req indexrun.RunRequest) Parameters {
	p := Parameters{
		Root:            req.Root(),
		Verbose:         req.Verbose(),
		MemProfile:      req.MemProfile(),
		NoCache:         req.NoCache(),
		Emit:            req.Emit(),
		DryRun:          req.DryRun(),
		Init:            req.Init(),
		OverlayDefaults: req.OverlayDefaults(),
		CLI:             req.CLI(),
	}
	if v, ok := req.Resume(); ok {
		p.Resume = &v
	}
	if v, ok := req.Reporter(); ok {
		s := v.String()
		p.Reporter = &s
	}
	if v, ok := req.Config(); ok {
		p.Config = &v
	}
	return p
}

// Args renders the parameters as command-line arguments. Values use the
// --name=value form so that values starting with a dash survive; false
// booleans and absent values are omitted.
func (p Parameters) Args() []string {
	args := []string{"--root=" + p.Root}
	args = appendBool(args, "verbose", p.Verbose)
	args = appendOptional(args, "resume", p.Resume)
	args = appendBool(args, "memprofile", p.MemProfile)
	args = appendBool(args, "nocache", p.NoCache)
	args = appendOptional(args, "reporter", p.Reporter)
	args = appendOptional(args, "config", p.Config)
	args = append(args, "--emit="+p.Emit)
	args = appendBool(args, "dryrun", p.DryRun)
	args = appendBool(args, "init", p.Init)
	args = appendBool(args, "overlay_defaults", p.OverlayDefaults)
	args = appendBool(args, "cli", p.CLI)
	return args
}

func appendBool(args []string, name string, v bool) []string {
	if !v {
		return args
	}
	return append(args, "--"+name)
}

func appendOptional(args []string, name string, v *string) []string {
	if v == nil {
		return args
	}
	return append(args, "--"+name+"="+*v)
}
