package engine

import (
	"context"
	"fmt"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Linker rewrites a project's dependency to the local build output and
// installs it.
type Linker struct {
	manifests ports.ManifestStore
	installer ports.Installer
	logger    ports.Logger
}

// NewLinker creates a new Linker.
func NewLinker(manifests ports.ManifestStore, installer ports.Installer, logger ports.Logger) *Linker {
	return &Linker{manifests: manifests, installer: installer, logger: logger}
}

// Link points the project's dependency entry at the local build output, in
// the same section state capture recorded, then runs the install command in
// the project root. A project that already used a local reference is left
// untouched. An install failure marks the state degraded but is not fatal:
// the manifest was already mutated and must be reverted regardless.
func (lk *Linker) Link(ctx context.Context, cfg *domain.Config, st *domain.LinkState) error {
	if st.WasAlreadyLocal {
		return nil
	}

	localRef := cfg.LocalReference(st.Project.RootPath)
	lk.logger.Info(fmt.Sprintf("linking %s: %s -> %s", st.Project.Label, st.OriginalSpecifier, localRef))

	if err := lk.manifests.Rewrite(st.Project.RootPath, st.OriginalSection, cfg.LibraryName, localRef); err != nil {
		return zerr.With(err, "project", st.Project.Label)
	}

	if m, err := lk.manifests.Load(st.Project.RootPath); err == nil {
		st.LinkedDigest = m.Digest
	}

	if err := lk.installer.Install(ctx, cfg.InstallCommand, st.Project.RootPath, localRef); err != nil {
		st.InstallDegraded = true
		return zerr.With(err, "project", st.Project.Label)
	}

	return nil
}
