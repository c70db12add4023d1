package engine

import (
	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Capturer snapshots a project's pre-link state.
type Capturer struct {
	manifests ports.ManifestStore
}

// NewCapturer creates a new Capturer.
func NewCapturer(manifests ports.ManifestStore) *Capturer {
	return &Capturer{manifests: manifests}
}

// Capture reads the project's manifest and every present lock artifact, in
// full, before any mutation happens. A failure here excludes the project from
// linking: a project whose rollback state is incomplete must never be mutated.
func (c *Capturer) Capture(project domain.CandidateProject, library string) (*domain.LinkState, error) {
	m, err := c.manifests.Load(project.RootPath)
	if err != nil {
		return nil, zerr.With(err, "project", project.Label)
	}

	section, spec, ok := m.Dependency(library)
	if !ok {
		return nil, zerr.With(domain.ErrDependencyNotDeclared, "project", project.Label)
	}

	locks, err := c.manifests.CaptureLocks(project.RootPath)
	if err != nil {
		return nil, zerr.With(err, "project", project.Label)
	}

	return &domain.LinkState{
		Project:           project,
		OriginalSpecifier: spec,
		OriginalSection:   section,
		WasAlreadyLocal:   domain.IsLocalSpecifier(spec),
		Locks:             locks,
		ManifestDigest:    m.Digest,
	}, nil
}
