// Package manifest implements the project manifest and lock artifact store.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore against the real filesystem.
type Store struct{}

// NewStore creates a new manifest store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the manifest at the project root.
func (s *Store) Load(projectRoot string) (*ports.Manifest, error) {
	path := filepath.Join(projectRoot, domain.ManifestFileName)

	//nolint:gosec // G304: path is a configured project root plus a fixed name
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var parsed struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	return &ports.Manifest{
		Path:            path,
		Digest:          xxhash.Sum64(data),
		Dependencies:    parsed.Dependencies,
		DevDependencies: parsed.DevDependencies,
	}, nil
}

// Rewrite re-reads the current manifest, sets the named dependency in the
// given section to the specifier, and persists the result. Key order is
// preserved; formatting is normalized to two-space indentation with a
// trailing newline.
func (s *Store) Rewrite(projectRoot string, section domain.Section, name, specifier string) error {
	path := filepath.Join(projectRoot, domain.ManifestFileName)

	//nolint:gosec // G304: path is a configured project root plus a fixed name
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var doc object
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	if err := doc.setDependency(section, name, specifier); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	out, err := doc.render()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, out, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	return nil
}

// CaptureLocks reads every recognized lock artifact present at the project
// root, in full, before any mutation happens anywhere in the project.
func (s *Store) CaptureLocks(projectRoot string) (domain.LockSnapshot, error) {
	snapshot := make(domain.LockSnapshot)

	for _, name := range domain.LockArtifactNames {
		path := filepath.Join(projectRoot, name)

		//nolint:gosec // G304: fixed artifact names under the project root
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			// Never link a project whose rollback state is incomplete.
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLockCaptureFailed.Error()), "artifact", name)
		}
		snapshot[name] = data
	}

	return snapshot, nil
}

// RestoreLocks overwrites each captured artifact with its snapshot content.
// Artifacts are written in the fixed recognition order; one failure does not
// stop the others.
func (s *Store) RestoreLocks(projectRoot string, snapshot domain.LockSnapshot) error {
	var errs error

	for _, name := range domain.LockArtifactNames {
		data, ok := snapshot[name]
		if !ok {
			continue
		}

		path := filepath.Join(projectRoot, name)
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrLockRestoreFailed.Error()), "artifact", name))
		}
	}

	return errs
}
