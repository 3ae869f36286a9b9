package reqfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinch/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the manifest loader Graft node.
	LoaderNodeID graft.ID = "adapter.manifest_loader"
	// WriterNodeID is the unique identifier for the manifest writer Graft node.
	WriterNodeID graft.ID = "adapter.manifest_writer"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewLoader(), nil
		},
	})

	// Writer Node
	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestWriter, error) {
			return NewWriter(), nil
		},
	})
}
