// Package engine implements the linking and restoration workflow.
package engine

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
)

// Locator discovers which candidate directories consume the library.
type Locator struct {
	manifests ports.ManifestStore
	logger    ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(manifests ports.ManifestStore, logger ports.Logger) *Locator {
	return &Locator{manifests: manifests, logger: logger}
}

// Discover probes each candidate group's aliases in order and returns one
// CandidateProject per group that declares the library as a direct or
// development dependency. The first matching alias wins, so a single logical
// project is never reported twice. Unreadable or malformed manifests are
// treated as no match, never as a fatal error.
func (l *Locator) Discover(cfg *domain.Config) []domain.CandidateProject {
	var projects []domain.CandidateProject

	for _, group := range cfg.Groups {
		for _, alias := range group.Aliases {
			dir := filepath.Join(cfg.SearchRoot, alias)

			m, err := l.manifests.Load(dir)
			if err != nil {
				continue
			}

			section, spec, ok := m.Dependency(cfg.LibraryName)
			if !ok {
				continue
			}

			l.logger.Info(fmt.Sprintf("found %s at %s (%s: %s)", group.Label, alias, section, spec))
			projects = append(projects, domain.CandidateProject{
				RootPath:    dir,
				Label:       group.Label,
				MatchedName: alias,
			})
			break
		}
	}

	return projects
}
