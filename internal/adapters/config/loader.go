// Package config provides the configuration loader for tether.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/tether/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the tether file omits a setting.
var (
	defaultDist    = "dist"
	defaultBuild   = []string{"npm", "run", "build"}
	defaultWatch   = []string{"npm", "run", "watch"}
	defaultInstall = []string{"npm", "install"}
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd to find tether.yaml and returns the resolved
// session configuration.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G304: path is discovered under the user's own tree
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var tf Tetherfile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.resolve(filepath.Dir(configPath), &tf)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.TetherFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) resolve(libraryRoot string, tf *Tetherfile) (*domain.Config, error) {
	if tf.Library.Name == "" {
		return nil, zerr.With(domain.ErrMissingLibraryName, "path", filepath.Join(libraryRoot, domain.TetherFileName))
	}

	cfg := &domain.Config{
		LibraryName:    tf.Library.Name,
		LibraryRoot:    libraryRoot,
		DistDir:        filepath.Join(libraryRoot, orDefault(tf.Library.Dist, defaultDist)),
		BuildCommand:   orDefaultSlice(tf.Library.Build, defaultBuild),
		WatchCommand:   orDefaultSlice(tf.Library.Watch, defaultWatch),
		InstallCommand: orDefaultSlice(tf.Install.Command, defaultInstall),
	}

	searchRoot := tf.Projects.Root
	if searchRoot == "" {
		// Siblings of the library by default.
		searchRoot = ".."
	}
	if !filepath.IsAbs(searchRoot) {
		searchRoot = filepath.Join(libraryRoot, searchRoot)
	}
	cfg.SearchRoot = searchRoot

	for _, g := range tf.Projects.Groups {
		if g.Label == "" || len(g.Aliases) == 0 {
			l.Logger.Warn("skipping candidate group without label or aliases")
			continue
		}
		cfg.Groups = append(cfg.Groups, domain.CandidateGroup{
			Label:   g.Label,
			Aliases: g.Aliases,
		})
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultSlice(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
