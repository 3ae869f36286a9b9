package ports

import "go.trai.ch/pinch/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and reads the configuration starting from the given
	// working directory. When no pinch.yaml exists up the tree, it
	// returns a standalone project rooted at cwd with default settings.
	Load(cwd string) (*domain.Project, error)
}
