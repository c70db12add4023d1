// Package app implements the application layer for tether.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tether/internal/adapters/distwatch"
	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/tether/internal/engine"
	"go.trai.ch/tether/internal/ui/style"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic. A session moves through
// building, discovering, linking, watching and cleanup; cleanup runs exactly
// once regardless of which termination trigger fires first.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestStore
	installer    ports.Installer
	builder      ports.Builder
	observer     *distwatch.Observer
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestStore,
	installer ports.Installer,
	builder ports.Builder,
	observer *distwatch.Observer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		installer:    installer,
		builder:      builder,
		observer:     observer,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithStdout redirects status output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// Up runs a full session: build the library once, link every discovered
// consumer against the local build output, supervise the watch build, and
// restore everything on the first termination trigger.
func (a *App) Up(ctx context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return err
	}

	// Build once before anything is touched. A broken build must never be
	// linked into sibling projects.
	a.logger.Info(fmt.Sprintf("building %s...", cfg.LibraryName))
	if err := a.builder.Build(ctx, cfg.BuildCommand, cfg.LibraryRoot); err != nil {
		return err
	}

	locator := engine.NewLocator(a.manifests, a.logger)
	projects := locator.Discover(cfg)

	session := engine.NewSession(engine.NewRestorer(a.manifests, a.installer, a.logger), a.logger)

	if len(projects) == 0 {
		a.logger.Info("no sibling projects consume " + cfg.LibraryName + "; running watch only")
	}

	capturer := engine.NewCapturer(a.manifests)
	linker := engine.NewLinker(a.manifests, a.installer, a.logger)

	for _, project := range projects {
		st, err := capturer.Capture(project, cfg.LibraryName)
		if err != nil {
			// Never link a project whose rollback state is incomplete.
			a.logger.Error(err)
			continue
		}

		session.Track(st)

		if st.WasAlreadyLocal {
			a.logger.Info(fmt.Sprintf("%s already uses a local reference; leaving untouched", project.Label))
			continue
		}

		if err := linker.Link(ctx, cfg, st); err != nil {
			// Non-fatal: the state stays tracked so restoration still runs.
			a.logger.Error(err)
		}
	}

	if err := a.watch(ctx, cfg); err != nil {
		session.Cleanup(context.WithoutCancel(ctx), cfg)
		return err
	}

	// Cleanup must finish even though the surrounding context is canceled by
	// the termination signal by now.
	session.Cleanup(context.WithoutCancel(ctx), cfg)
	a.logger.Info("session closed")

	return nil
}

// watch launches the continuous build and blocks until a termination signal
// arrives or the child exits on its own. Both triggers converge here.
func (a *App) watch(ctx context.Context, cfg *domain.Config) error {
	proc, err := a.builder.Watch(ctx, cfg.WatchCommand, cfg.LibraryRoot)
	if err != nil {
		return err
	}

	a.logger.Info("watch running; interrupt to stop and restore")

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	g, gctx := errgroup.WithContext(watchCtx)

	// Observer routine: informational only, stops when the phase ends.
	g.Go(func() error {
		return a.observer.Run(gctx, cfg.DistDir)
	})

	// Watch routine: blocks on the child's lifetime. The child's own exit,
	// for any reason, ends the watching phase.
	g.Go(func() error {
		defer stopWatching()
		if err := proc.Wait(); err != nil && ctx.Err() == nil {
			a.logger.Warn("watch process exited: " + err.Error())
		}
		return nil
	})

	// Termination routine: converts the phase ending into child shutdown.
	g.Go(func() error {
		<-gctx.Done()
		return proc.Stop()
	})

	return g.Wait()
}

// Status reports discovery results without touching anything.
func (a *App) Status(_ context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return err
	}

	locator := engine.NewLocator(a.manifests, a.logger)
	projects := locator.Discover(cfg)

	if len(projects) == 0 {
		fmt.Fprintf(a.stdout, "%s no consumers of %s found under %s\n",
			lipgloss.NewStyle().Foreground(style.Slate).Render(style.Circle),
			cfg.LibraryName, cfg.SearchRoot)
		return nil
	}

	for _, project := range projects {
		m, err := a.manifests.Load(project.RootPath)
		if err != nil {
			fmt.Fprintf(a.stdout, "%s %s (%s): unreadable manifest\n",
				lipgloss.NewStyle().Foreground(style.Red).Render(style.Cross),
				project.Label, project.MatchedName)
			continue
		}

		section, spec, _ := m.Dependency(cfg.LibraryName)
		icon := lipgloss.NewStyle().Foreground(style.Teal).Render(style.Dot)
		note := ""
		if domain.IsLocalSpecifier(spec) {
			icon = lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)
			note = " (already local)"
		}
		fmt.Fprintf(a.stdout, "%s %s (%s) %s: %s%s\n", icon, project.Label, project.MatchedName, section, spec, note)
	}

	return nil
}
