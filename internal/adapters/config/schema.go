package config

// Tetherfile represents the structure of the tether.yaml configuration file.
type Tetherfile struct {
	Version  string      `yaml:"version"`
	Library  LibraryDTO  `yaml:"library"`
	Install  InstallDTO  `yaml:"install"`
	Projects ProjectsDTO `yaml:"projects"`
}

// LibraryDTO describes the library under development.
type LibraryDTO struct {
	Name  string   `yaml:"name"`
	Dist  string   `yaml:"dist"`
	Build []string `yaml:"build"`
	Watch []string `yaml:"watch"`
}

// InstallDTO describes the package manager invocation.
type InstallDTO struct {
	Command []string `yaml:"command"`
}

// ProjectsDTO describes where candidate projects live and how to probe them.
type ProjectsDTO struct {
	Root   string     `yaml:"root"`
	Groups []GroupDTO `yaml:"groups"`
}

// GroupDTO represents one candidate group in the configuration.
type GroupDTO struct {
	Label   string   `yaml:"label"`
	Aliases []string `yaml:"aliases"`
}
