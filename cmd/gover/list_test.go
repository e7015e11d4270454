package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/gover/internal/index"
	"github.com/conn-castle/gover/internal/install"
)

func TestListEmpty(t *testing.T) {
	t.Setenv(install.EnvRoot, filepath.Join(t.TempDir(), "gover"))

	stdout, stderr, code := runCLI(t, "list")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "no Go toolchain versions installed")
}

func TestListInstalled(t *testing.T) {
	root := t.TempDir()
	t.Setenv(install.EnvRoot, root)
	require.NoError(t, os.Mkdir(filepath.Join(root, "1.21.13"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "1.22.4"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "1.23rc1"), 0o755))
	require.NoError(t, os.Symlink("1.22.4", filepath.Join(root, "stable")))
	require.NoError(t, os.Symlink("1.23rc1", filepath.Join(root, "prerelease")))

	stdout, stderr, code := runCLI(t, "list")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "1.21.13\n1.22.4 (stable)\n1.23rc1 (prerelease)\n", stdout)
}

func TestListRemote(t *testing.T) {
	p := hostPlatform(t)
	t.Setenv(install.EnvRoot, filepath.Join(t.TempDir(), "gover"))
	startReleaseServer(t, []index.Release{
		release(p, "go1.23rc2", false),
		release(p, "go1.22.3", true),
	}, nil)

	stdout, stderr, code := runCLI(t, "list", "--remote")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "1.23rc2 (prerelease)\n1.22.3\n", stdout)
}
