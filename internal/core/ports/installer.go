package ports

import "context"

// Installer invokes the package manager's install command for a project.
// The exit status is the only signal consulted; output is passed through.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the install command with the project root as working
	// directory. A non-empty localRef is appended to link the project against
	// the local build output; an empty localRef reconciles the installed tree
	// with the manifest and lock state on disk.
	Install(ctx context.Context, command []string, projectRoot, localRef string) error
}
