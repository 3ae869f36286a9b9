package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinch/internal/adapters/cas"
	"go.trai.ch/pinch/internal/adapters/config"
	"go.trai.ch/pinch/internal/adapters/fs"
	"go.trai.ch/pinch/internal/adapters/logger"
	"go.trai.ch/pinch/internal/adapters/reqfile"
	"go.trai.ch/pinch/internal/adapters/watcher"
	"go.trai.ch/pinch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			reqfile.LoaderNodeID,
			reqfile.WriterNodeID,
			watcher.WatcherNodeID,
			watcher.DigestCacheNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ManifestResolver](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	digests, err := graft.Dep[*watcher.DigestCache](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, log, resolver, loader, writer, hasher, store, fsWatcher, digests), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
