package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tether/internal/adapters/config"
	"go.trai.ch/tether/internal/adapters/distwatch"
	"go.trai.ch/tether/internal/adapters/logger"
	"go.trai.ch/tether/internal/adapters/manifest"
	"go.trai.ch/tether/internal/adapters/pm"
	"go.trai.ch/tether/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the main application Graft node.
	NodeID graft.ID = "app.main"

	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the fully wired application with the shared adapters the
// CLI entrypoint needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			pm.InstallerNodeID,
			pm.BuilderNodeID,
			distwatch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[ports.Builder](ctx)
			if err != nil {
				return nil, err
			}
			observer, err := graft.Dep[*distwatch.Observer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, manifests, installer, builder, observer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
