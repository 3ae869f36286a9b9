package ports

// ManifestResolver defines the interface for resolving manifest paths.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type ManifestResolver interface {
	// Resolve expands the given patterns to a sorted list of unique
	// manifest paths relative to root. A literal path that matches no
	// file is an error; a glob with no matches resolves to nothing.
	Resolve(patterns []string, root string) ([]string, error)
}
