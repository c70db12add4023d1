// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/tether/internal/core/domain"

// ConfigLoader defines the interface for loading the session configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to find the tether file and returns the resolved
	// session configuration with defaults applied.
	Load(cwd string) (*domain.Config, error)
}
