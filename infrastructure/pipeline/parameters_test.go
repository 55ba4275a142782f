package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/graphrag-index/domain/indexrun"
)

func TestNewParameters_Defaults(t *testing.T) {
	p := NewParameters(indexrun.NewRunRequest("/data", indexrun.FromCLI()))

	assert.Equal(t, "/data", p.Root)
	assert.Nil(t, p.Resume)
	assert.Nil(t, p.Reporter)
	assert.Nil(t, p.Config)
	assert.Equal(t, indexrun.DefaultEmit, p.Emit)
	assert.True(t, p.CLI)
	assert.Equal(t, []string{"--root=/data", "--emit=parque", "--cli"}, p.Args())
}

func TestNewParameters_AllFields(t *testing.T) {
	req := indexrun.NewRunRequest("/data",
		indexrun.WithVerbose(true),
		indexrun.WithResume("-20240101"),
		indexrun.WithMemProfile(true),
		indexrun.WithNoCache(true),
		indexrun.WithReporter(indexrun.ReporterNone),
		indexrun.WithConfig("settings.yaml"),
		indexrun.WithEmit("parquet,csv"),
		indexrun.WithDryRun(true),
		indexrun.WithInit(true),
		indexrun.WithOverlayDefaults(true),
		indexrun.FromCLI(),
	)

	p := NewParameters(req)
	require.NotNil(t, p.Reporter)
	assert.Equal(t, "none", *p.Reporter)

	assert.Equal(t, []string{
		"--root=/data",
		"--verbose",
		"--resume=-20240101",
		"--memprofile",
		"--nocache",
		"--reporter=none",
		"--config=settings.yaml",
		"--emit=parquet,csv",
		"--dryrun",
		"--init",
		"--overlay_defaults",
		"--cli",
	}, p.Args())
}

func TestParameters_EmptyOptionalValueKept(t *testing.T) {
	p := NewParameters(indexrun.NewRunRequest("/data", indexrun.WithConfig("")))
	assert.Contains(t, p.Args(), "--config=")
}
