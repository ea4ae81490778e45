package ui

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"periscope/internal/logging"
)

var commandContext = exec.CommandContext

// DefaultTimeout bounds a build when the caller does not supply one.
const DefaultTimeout = 180 * time.Second

// Builder invokes the external asset build command.
type Builder struct {
	dir     string
	command string
	args    []string
	logger  *slog.Logger
}

// NewBuilder constructs a builder that runs command with args inside dir.
func NewBuilder(dir, command string, args []string, logger *slog.Logger) *Builder {
	return &Builder{
		dir:     dir,
		command: command,
		args:    args,
		logger:  logging.NewComponentLogger(logger, "ui-build"),
	}
}

// Build runs the asset build bounded by timeout and reports whether it
// completed successfully within the deadline. Deadline expiry kills the
// build process and is reported as false, never as a fault.
func (b *Builder) Build(ctx context.Context, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	buildCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := commandContext(buildCtx, b.command, b.args...)
	cmd.Dir = b.dir

	start := time.Now()
	b.logger.Info("starting UI build",
		logging.String("command", b.command),
		logging.Duration("timeout", timeout))

	output, err := cmd.CombinedOutput()
	elapsed := time.Since(start)
	if err != nil {
		attrs := []logging.Attr{
			logging.Error(err),
			logging.Duration("elapsed", elapsed),
		}
		if buildCtx.Err() != nil {
			attrs = append(attrs, logging.String("cause", "deadline exceeded"))
		}
		if len(output) > 0 {
			attrs = append(attrs, logging.String("output", string(output)))
		}
		b.logger.Error("UI build failed", logging.Args(attrs...)...)
		return false
	}

	b.logger.Info("UI build complete", logging.Duration("elapsed", elapsed))
	return true
}
