package domain

const (
	// TetherFileName is the name of the session configuration file.
	TetherFileName = "tether.yaml"

	// ManifestFileName is the name of a project's manifest file.
	ManifestFileName = "package.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LockArtifactNames is the fixed set of recognized lock artifact file names,
// in capture order. Lock artifacts are opaque text restored byte for byte.
var LockArtifactNames = []string{
	"package-lock.json",
	"npm-shrinkwrap.json",
	"yarn.lock",
	"pnpm-lock.yaml",
}
