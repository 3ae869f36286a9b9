package config

// Pinchfile represents the structure of the pinch.yaml configuration file.
type Pinchfile struct {
	Version   string     `yaml:"version"`
	Root      string     `yaml:"root"`
	Manifests []string   `yaml:"manifests"`
	Policy    *PolicyDTO `yaml:"policy"`
}

// PolicyDTO represents the policy block in the configuration.
type PolicyDTO struct {
	Operators []string `yaml:"operators"`
	Forbid    []string `yaml:"forbid"`
	Require   []string `yaml:"require"`
	Drift     string   `yaml:"drift"`
}
