package domain

import "time"

// Snapshot is the recorded state of one manifest, used by the drift rule
// to report divergence since the last `pinch snapshot`.
type Snapshot struct {
	Path         string    `json:"path,omitzero"`
	Digest       string    `json:"digest,omitzero"`
	TakenAt      time.Time `json:"taken_at,omitzero"`
	Declarations []Pinned  `json:"declarations,omitzero"`
}

// Pinned is one declaration as recorded in a snapshot. Constraint keeps
// the manifest spelling ("~=1.20.9") so snapshots stay diffable by hand.
type Pinned struct {
	Name       string `json:"name,omitzero"`
	Constraint string `json:"constraint,omitzero"`
}

// SnapshotOf captures a manifest's declarations with the given digest.
func SnapshotOf(m *Manifest, digest string, takenAt time.Time) Snapshot {
	snap := Snapshot{
		Path:    m.Path,
		Digest:  digest,
		TakenAt: takenAt,
	}
	for _, decl := range m.Declarations() {
		snap.Declarations = append(snap.Declarations, Pinned{
			Name:       decl.Name.String(),
			Constraint: decl.Constraint.String(),
		})
	}
	return snap
}
