// Package pm runs the external package manager and build commands.
package pm

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// run executes one short-lived command and blocks until it exits. Output is
// passed through to the logger line by line; the exit status is the only
// signal consulted.
func run(ctx context.Context, logger ports.Logger, command []string, dir string) error {
	if len(command) == 0 {
		return zerr.New("empty command")
	}

	//nolint:gosec // G204: command comes from the user's own tether.yaml
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &logWriter{logger: logger, level: "info"}
	cmd.Stderr = &logWriter{logger: logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards child process output to the structured logger.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "error" {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
