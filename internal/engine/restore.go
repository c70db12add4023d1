package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Restorer reverses a link using the captured state.
type Restorer struct {
	manifests ports.ManifestStore
	installer ports.Installer
	logger    ports.Logger
}

// NewRestorer creates a new Restorer.
func NewRestorer(manifests ports.ManifestStore, installer ports.Installer, logger ports.Logger) *Restorer {
	return &Restorer{manifests: manifests, installer: installer, logger: logger}
}

// Restore rewrites the dependency entry back to the original specifier in the
// originally recorded section, writes back every captured lock artifact, and
// runs a reconciliation install. The manifest and lock rewrite always runs to
// completion; a reconciliation failure is reported as a warning with manual
// recovery instructions, never escalated, because the durable part of the
// rollback has already been persisted by then.
func (r *Restorer) Restore(ctx context.Context, cfg *domain.Config, st *domain.LinkState) error {
	if st.WasAlreadyLocal {
		return nil
	}

	var errs error

	// Re-read the current manifest rather than replaying the captured one so
	// unrelated edits made while linked are not clobbered.
	if m, err := r.manifests.Load(st.Project.RootPath); err == nil {
		if st.LinkedDigest != 0 && m.Digest != st.LinkedDigest {
			r.logger.Warn(fmt.Sprintf("%s: manifest changed while linked; restoring only the %s entry", st.Project.Label, cfg.LibraryName))
		}
	} else {
		errs = errors.Join(errs, err)
	}

	if err := r.manifests.Rewrite(st.Project.RootPath, st.OriginalSection, cfg.LibraryName, st.OriginalSpecifier); err != nil {
		errs = errors.Join(errs, err)
	}

	if err := r.manifests.RestoreLocks(st.Project.RootPath, st.Locks); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return zerr.With(zerr.Wrap(errs, domain.ErrRestoreFailed.Error()), "project", st.Project.Label)
	}

	if err := r.installer.Install(ctx, cfg.InstallCommand, st.Project.RootPath, ""); err != nil {
		r.logger.Warn(fmt.Sprintf("%s: %s", st.Project.Label, domain.ErrRestoreInstallFailed.Error()))
		r.logger.Warn(ManualRecovery(cfg, st))
	}

	return nil
}

// ManualRecovery describes the exact manifest edit needed to finish a rollback
// by hand.
func ManualRecovery(cfg *domain.Config, st *domain.LinkState) string {
	manifestPath := filepath.Join(st.Project.RootPath, domain.ManifestFileName)
	return fmt.Sprintf(
		"to recover manually: set %q to %q in the %q section of %s, then run %q in %s",
		cfg.LibraryName,
		st.OriginalSpecifier,
		st.OriginalSection,
		manifestPath,
		strings.Join(cfg.InstallCommand, " "),
		st.Project.RootPath,
	)
}
