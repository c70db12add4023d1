package pm

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.Builder using os/exec.
type Builder struct {
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(logger ports.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build runs the one-shot build command and blocks until it exits. The
// sentinel stays in the chain so the entrypoint can suppress double reporting
// of build failures.
func (b *Builder) Build(ctx context.Context, command []string, dir string) error {
	if err := run(ctx, b.logger, command, dir); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}

// Watch launches the continuous build command. The child inherits the
// controlling terminal's stdin, stdout and stderr directly so interactive
// watch tools behave exactly as they would when run by hand.
func (b *Builder) Watch(ctx context.Context, command []string, dir string) (ports.WatchProcess, error) {
	if len(command) == 0 {
		return nil, zerr.Wrap(zerr.New("empty command"), domain.ErrWatchStartFailed.Error())
	}

	//nolint:gosec // G204: command comes from the user's own tether.yaml
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// Cancellation is handled by Stop; the session must restore projects
	// before the child is torn down by the context.
	cmd.Cancel = func() error { return nil }

	if err := cmd.Start(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchStartFailed.Error())
	}

	p := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		p.err = cmd.Wait()
		close(p.done)
	}()

	return p, nil
}

// process is a handle to the running watch child.
type process struct {
	cmd      *exec.Cmd
	done     chan struct{}
	err      error
	stopOnce sync.Once
}

// Wait blocks until the child exits.
func (p *process) Wait() error {
	<-p.done
	return p.err
}

// Stop asks the child to terminate with SIGTERM. Stopping an already exited
// child is a no-op.
func (p *process) Stop() error {
	var err error
	p.stopOnce.Do(func() {
		select {
		case <-p.done:
			return
		default:
		}
		if sigErr := p.cmd.Process.Signal(syscall.SIGTERM); sigErr != nil && !errors.Is(sigErr, os.ErrProcessDone) {
			err = zerr.Wrap(sigErr, "failed to signal watch process")
		}
	})
	return err
}
