package domain

// Project is the resolved configuration a run operates on.
type Project struct {
	// Root is the directory that anchors manifest resolution and the
	// .pinch metadata directory. In workspace mode it is the directory
	// containing pinch.yaml; in standalone mode it is the working
	// directory.
	Root string

	// Patterns are the manifest glob patterns, relative to Root.
	Patterns []string

	// Policy configures the checker.
	Policy Policy

	// Standalone is set when no pinch.yaml was found and defaults apply.
	Standalone bool
}
