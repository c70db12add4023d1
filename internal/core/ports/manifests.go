package ports

import "go.trai.ch/tether/internal/core/domain"

// Manifest is the parsed view of a project manifest.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path string

	// Digest is the xxhash digest of the raw file contents.
	Digest uint64

	// Dependencies and DevDependencies map package names to version specifiers.
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Dependency returns the section and specifier declaring the given package.
// Direct dependencies shadow development dependencies.
func (m *Manifest) Dependency(name string) (domain.Section, string, bool) {
	if spec, ok := m.Dependencies[name]; ok {
		return domain.SectionDependencies, spec, true
	}
	if spec, ok := m.DevDependencies[name]; ok {
		return domain.SectionDevDependencies, spec, true
	}
	return "", "", false
}

// ManifestStore reads and rewrites project manifests and lock artifacts.
//
//go:generate mockgen -source=manifests.go -destination=mocks/mock_manifests.go -package=mocks
type ManifestStore interface {
	// Load reads and parses the manifest at the project root.
	Load(projectRoot string) (*Manifest, error)

	// Rewrite re-reads the current manifest, sets the named dependency in the
	// given section to the specifier, and persists the result with key order
	// preserved and a trailing newline. Other sections are left untouched.
	Rewrite(projectRoot string, section domain.Section, name, specifier string) error

	// CaptureLocks reads every recognized lock artifact present at the project
	// root, in full. A read failure for a present artifact is an error; an
	// absent artifact is not.
	CaptureLocks(projectRoot string) (domain.LockSnapshot, error)

	// RestoreLocks overwrites each captured artifact with its snapshot content.
	RestoreLocks(projectRoot string, snapshot domain.LockSnapshot) error
}
