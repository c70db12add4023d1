package ports

import "context"

// WatchProcess is a handle to the supervised continuous build child.
type WatchProcess interface {
	// Wait blocks until the child exits and returns its exit error, if any.
	Wait() error

	// Stop asks the child to terminate. Calling Stop after the child has
	// already exited is a no-op.
	Stop() error
}

// Builder runs the library's own build commands.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build runs the one-shot build command and blocks until it exits.
	// A non-zero exit is an error.
	Build(ctx context.Context, command []string, dir string) error

	// Watch launches the continuous build command attached to the controlling
	// terminal's input and output and returns a handle to the running child.
	Watch(ctx context.Context, command []string, dir string) (WatchProcess, error)
}
