package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/helixml/graphrag-index/domain/indexrun"
	"github.com/helixml/graphrag-index/internal/log"
)

// ErrNoCommand indicates an Exec pipeline without a program to run.
var ErrNoCommand = errors.New("pipeline command is empty")

const maxStderrLine = 1024 * 1024

// Exec runs the indexing pipeline as an external process. The request is
// appended to the command as named parameters.
type Exec struct {
	command []string
	stdout  io.Writer
	logger  *log.Logger
}

// NewExec creates an Exec pipeline. command holds the program followed by
// any leading arguments. The child's stdout is copied to stdout and each
// stderr line is logged.
func NewExec(command []string, stdout io.Writer, logger *log.Logger) (*Exec, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, ErrNoCommand
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &Exec{
		command: append([]string(nil), command...),
		stdout:  stdout,
		logger:  logger,
	}, nil
}

// RunIndex starts the pipeline process and waits for it to exit. A non-zero
// exit is returned as the unmodified *exec.ExitError.
func (e *Exec) RunIndex(ctx context.Context, req indexrun.RunRequest) error {
	args := append(append([]string(nil), e.command[1:]...), NewParameters(req).Args()...)
	cmd := exec.CommandContext(ctx, e.command[0], args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipeline stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("pipeline stderr: %w", err)
	}

	name := e.command[0]
	e.logger.DebugContext(ctx, "starting pipeline", "pipeline", name, "args", args)

	if err := cmd.Start(); err != nil {
		e.logger.ErrorContext(ctx, "pipeline failed to start", "pipeline", name, "error", err)
		return fmt.Errorf("start pipeline %s: %w", name, err)
	}

	// Both pipes must be drained before Wait closes them, and a reader that
	// gives up early keeps discarding so the child never blocks on a full pipe.
	var g errgroup.Group
	g.Go(func() error {
		if _, err := io.Copy(e.stdout, stdout); err != nil {
			_, _ = io.Copy(io.Discard, stdout)
			return err
		}
		return nil
	})
	g.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 0, 64*1024), maxStderrLine)
		for scanner.Scan() {
			e.logger.InfoContext(ctx, scanner.Text(), "pipeline", name)
		}
		// An overlong line ends logging but not the run.
		if err := scanner.Err(); err != nil {
			e.logger.WarnContext(ctx, "pipeline stderr no longer logged", "pipeline", name, "error", err)
			_, _ = io.Copy(io.Discard, stderr)
		}
		return nil
	})
	streamErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return err
	}
	if streamErr != nil {
		return fmt.Errorf("read pipeline output: %w", streamErr)
	}
	return nil
}
