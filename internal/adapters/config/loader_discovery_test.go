package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinch/internal/adapters/config"
	"go.trai.ch/pinch/internal/core/domain"
	"go.trai.ch/pinch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoad_WorkspaceDiscovery(t *testing.T) {
	// Structure:
	// root/
	//   pinch.yaml
	//   services/
	//     api/ (cwd for test)
	tmpDir := t.TempDir()

	createFile(t, tmpDir, domain.ConfigFileName, `
version: "1"
manifests: ["services/*/requirements_test.txt"]
`)

	apiDir := filepath.Join(tmpDir, "services", "api")
	require.NoError(t, os.MkdirAll(apiDir, domain.DirPerm))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	// Load from deep inside the tree, should find the root config.
	project, err := loader.Load(apiDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, project.Root)
	assert.False(t, project.Standalone)
	assert.Equal(t, []string{"services/*/requirements_test.txt"}, project.Patterns)
}

func TestLoad_NearestConfigWins(t *testing.T) {
	// Structure:
	// root/
	//   pinch.yaml (manifests: outer)
	//   vendored/
	//     pinch.yaml (manifests: inner)  <- cwd
	tmpDir := t.TempDir()

	createFile(t, tmpDir, domain.ConfigFileName, `
version: "1"
manifests: ["outer*.txt"]
`)

	innerDir := filepath.Join(tmpDir, "vendored")
	require.NoError(t, os.MkdirAll(innerDir, domain.DirPerm))
	createFile(t, innerDir, domain.ConfigFileName, `
version: "1"
manifests: ["inner*.txt"]
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load(innerDir)
	require.NoError(t, err)

	assert.Equal(t, innerDir, project.Root)
	assert.Equal(t, []string{"inner*.txt"}, project.Patterns)
}

func TestLoad_StandaloneDefaults(t *testing.T) {
	// No pinch.yaml anywhere above the temp dir.
	tmpDir := t.TempDir()

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.True(t, project.Standalone)
	assert.Equal(t, tmpDir, project.Root)
	assert.Equal(t, []string{domain.DefaultManifestPattern}, project.Patterns)
	assert.Equal(t, domain.DefaultPolicy(), project.Policy)
}

func TestLoad_RootOverride(t *testing.T) {
	// Structure:
	// root/
	//   manifests/
	//   config/
	//     pinch.yaml (root: ..)
	tmpDir := t.TempDir()

	configDir := filepath.Join(tmpDir, "config")
	require.NoError(t, os.MkdirAll(configDir, domain.DirPerm))
	createFile(t, configDir, domain.ConfigFileName, `
version: "1"
root: ..
manifests: ["manifests/*.txt"]
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load(configDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, project.Root)
}

func TestLoad_AbsoluteRootOverride(t *testing.T) {
	tmpDir := t.TempDir()
	otherDir := t.TempDir()

	createFile(t, tmpDir, domain.ConfigFileName, `
version: "1"
root: `+otherDir+`
manifests: ["requirements_test.txt"]
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	project, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, otherDir, project.Root)
}
