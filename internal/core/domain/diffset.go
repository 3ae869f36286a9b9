package domain

import "slices"

// ManifestDiff is the set difference between two manifests, keyed by
// canonical package name. Line order never influences the result.
type ManifestDiff struct {
	Added   []Declaration
	Removed []Declaration
	Changed []ConstraintChange
}

// ConstraintChange records a package whose constraint differs between
// the two manifests.
type ConstraintChange struct {
	Name string
	From Constraint
	To   Constraint
}

// Empty reports whether the two manifests declare the same set.
func (d ManifestDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffManifests compares two manifests as sets. A package present in both
// with a different constraint spelling lands in Changed; results are
// ordered by canonical name so output is deterministic.
func DiffManifests(before, after *Manifest) ManifestDiff {
	var diff ManifestDiff

	beforeSet := declarationsByName(before)
	afterSet := declarationsByName(after)

	for _, name := range sortedNames(afterSet) {
		decl := afterSet[name]
		old, ok := beforeSet[name]
		switch {
		case !ok:
			diff.Added = append(diff.Added, decl)
		case old.Constraint.String() != decl.Constraint.String():
			diff.Changed = append(diff.Changed, ConstraintChange{
				Name: name,
				From: old.Constraint,
				To:   decl.Constraint,
			})
		}
	}
	for _, name := range sortedNames(beforeSet) {
		if _, ok := afterSet[name]; !ok {
			diff.Removed = append(diff.Removed, beforeSet[name])
		}
	}

	return diff
}

func declarationsByName(m *Manifest) map[string]Declaration {
	set := make(map[string]Declaration)
	for _, decl := range m.Declarations() {
		// First declaration wins; duplicates are the checker's concern.
		if _, ok := set[decl.Canonical()]; !ok {
			set[decl.Canonical()] = decl
		}
	}
	return set
}

func sortedNames(set map[string]Declaration) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
