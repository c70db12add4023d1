package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFailed is returned when the one-shot library build exits non-zero.
	// It aborts the session before any project is touched.
	ErrBuildFailed = zerr.New("library build failed")

	// ErrWatchStartFailed is returned when the continuous build process cannot be launched.
	ErrWatchStartFailed = zerr.New("failed to start watch process")

	// ErrConfigNotFound is returned when no tether file is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find tether.yaml")

	// ErrConfigReadFailed is returned when the tether file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read tether.yaml")

	// ErrConfigParseFailed is returned when the tether file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse tether.yaml")

	// ErrMissingLibraryName is returned when the tether file does not name the library.
	ErrMissingLibraryName = zerr.New("tether.yaml must set library.name")

	// ErrManifestReadFailed is returned when a project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a project manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestWriteFailed is returned when a project manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrDependencyNotDeclared is returned when a manifest no longer declares the library.
	ErrDependencyNotDeclared = zerr.New("library is not declared in manifest")

	// ErrLockCaptureFailed is returned when a lock artifact exists but cannot be
	// read in full. The project is excluded from linking: a project whose
	// rollback state is incomplete must never be mutated.
	ErrLockCaptureFailed = zerr.New("failed to capture lock artifact")

	// ErrLockRestoreFailed is returned when a captured lock artifact cannot be written back.
	ErrLockRestoreFailed = zerr.New("failed to restore lock artifact")

	// ErrInstallFailed is returned when the link-time install command exits non-zero.
	ErrInstallFailed = zerr.New("install command failed")

	// ErrRestoreInstallFailed is returned when the restore-time reconciliation
	// install exits non-zero. The manifest and lock rollback has already been
	// persisted by then, so this is reported as a warning, never escalated.
	ErrRestoreInstallFailed = zerr.New("reconciliation install failed")

	// ErrRestoreFailed is returned when the durable part of a rollback (manifest
	// or lock rewrite) fails for a project.
	ErrRestoreFailed = zerr.New("failed to restore project")
)
