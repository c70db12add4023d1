package pm

import (
	"context"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer using os/exec.
type Installer struct {
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install runs the package manager install command with the project root as
// working directory. A non-empty localRef is appended as the final argument.
func (i *Installer) Install(ctx context.Context, command []string, projectRoot, localRef string) error {
	argv := command
	if localRef != "" {
		argv = append(append([]string{}, command...), localRef)
	}

	if err := run(ctx, i.logger, argv, projectRoot); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "dir", projectRoot)
	}

	return nil
}
