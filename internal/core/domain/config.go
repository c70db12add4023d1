package domain

import "path/filepath"

// Config is the fully resolved session configuration produced by the config
// loader. All paths are absolute.
type Config struct {
	// LibraryName is the package name consumers declare, e.g. "@acme/widgets".
	LibraryName string

	// LibraryRoot is the directory containing the tether file.
	LibraryRoot string

	// DistDir is the library's build output directory.
	DistDir string

	// BuildCommand is the one-shot build command, argv form.
	BuildCommand []string

	// WatchCommand is the continuous build command, argv form.
	WatchCommand []string

	// InstallCommand is the package manager install command, argv form.
	// A local path reference is appended to link; the bare command reconciles.
	InstallCommand []string

	// SearchRoot is the directory whose children are candidate projects.
	SearchRoot string

	// Groups are the ordered candidate groups to probe during discovery.
	Groups []CandidateGroup
}

// LocalReference returns the specifier that points a project at the library's
// build output, relative to the project root where possible.
func (c *Config) LocalReference(projectRoot string) string {
	rel, err := filepath.Rel(projectRoot, c.DistDir)
	if err != nil {
		return "file:" + c.DistDir
	}
	return "file:" + filepath.ToSlash(rel)
}
