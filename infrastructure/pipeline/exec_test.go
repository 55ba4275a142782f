package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/graphrag-index/domain/indexrun"
	"github.com/helixml/graphrag-index/internal/config"
	"github.com/helixml/graphrag-index/internal/log"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

// shellCommand returns a command running script; the request arguments
// become the script's positional parameters.
func shellCommand(script string) []string {
	return []string{"sh", "-c", script, "pipeline"}
}

func TestNewExec_EmptyCommand(t *testing.T) {
	_, err := NewExec(nil, nil, log.Discard())
	assert.ErrorIs(t, err, ErrNoCommand)

	_, err = NewExec([]string{""}, nil, log.Discard())
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestExec_RunIndex_PassesParameters(t *testing.T) {
	requireShell(t)
	var stdout bytes.Buffer
	p, err := NewExec(shellCommand(`printf '%s\n' "$@"`), &stdout, log.Discard())
	require.NoError(t, err)

	req := indexrun.NewRunRequest("/my data", indexrun.WithReporter(indexrun.ReporterRich), indexrun.FromCLI())
	require.NoError(t, p.RunIndex(context.Background(), req))

	assert.Equal(t, "--root=/my data\n--reporter=rich\n--emit=parque\n--cli\n", stdout.String())
}

func TestExec_RunIndex_StreamsStderrToLogger(t *testing.T) {
	requireShell(t)
	var logs bytes.Buffer
	logger := log.NewLoggerWithWriter(&logs, config.LogFormatJSON, "INFO")
	p, err := NewExec(shellCommand(`echo "loading settings" >&2`), nil, logger)
	require.NoError(t, err)

	ctx := log.WithCorrelationID(context.Background(), "run-7")
	require.NoError(t, p.RunIndex(ctx, indexrun.NewRunRequest("/data")))

	assert.Contains(t, logs.String(), `"msg":"loading settings"`)
	assert.Contains(t, logs.String(), `"pipeline":"sh"`)
	assert.Contains(t, logs.String(), `"correlation_id":"run-7"`)
}

func TestExec_RunIndex_ExitCodePropagates(t *testing.T) {
	requireShell(t)
	p, err := NewExec(shellCommand(`exit 3`), nil, log.Discard())
	require.NoError(t, err)

	err = p.RunIndex(context.Background(), indexrun.NewRunRequest("/data"))

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "got %T: %v", err, err)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExec_RunIndex_OverlongStderrLine(t *testing.T) {
	requireShell(t)
	var stdout, logs bytes.Buffer
	logger := log.NewLoggerWithWriter(&logs, config.LogFormatJSON, "INFO")
	script := `head -c 2000000 /dev/zero | tr '\0' a >&2; echo >&2; echo "after" >&2; echo done`
	p, err := NewExec(shellCommand(script), &stdout, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, p.RunIndex(ctx, indexrun.NewRunRequest("/data")))

	assert.NoError(t, ctx.Err(), "pipeline should exit on its own")
	assert.Equal(t, "done\n", stdout.String())
	assert.Contains(t, logs.String(), `"msg":"pipeline stderr no longer logged"`)
	assert.NotContains(t, logs.String(), `"msg":"after"`)
}

func TestExec_RunIndex_MissingProgram(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewLoggerWithWriter(&logs, config.LogFormatJSON, "INFO")
	p, err := NewExec([]string{"graphrag-pipeline-does-not-exist"}, nil, logger)
	require.NoError(t, err)

	err = p.RunIndex(context.Background(), indexrun.NewRunRequest("/data"))
	assert.Error(t, err)

	var exitErr *exec.ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, logs.String(), `"msg":"pipeline failed to start"`)
}

func TestNew(t *testing.T) {
	echo, err := New(config.NewAppConfigWithOptions(config.WithPipeline(config.PipelineEcho)), nil, log.Discard())
	require.NoError(t, err)
	assert.IsType(t, &Echo{}, echo)

	ex, err := New(config.NewAppConfig(), nil, log.Discard())
	require.NoError(t, err)
	assert.IsType(t, &Exec{}, ex)

	_, err = New(config.NewAppConfigWithOptions(config.WithPipeline("queue")), nil, log.Discard())
	assert.Error(t, err)
}
