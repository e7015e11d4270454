package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/gover/internal/doctor"
	"github.com/conn-castle/gover/internal/install"
)

func TestDoctorPasses(t *testing.T) {
	t.Setenv(install.EnvRoot, t.TempDir())
	t.Setenv(doctor.EnvNoNetwork, "1")

	stdout, stderr, code := runCLI(t, "doctor")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Checking environment")
	assert.Contains(t, stdout, "platform:")
	assert.Contains(t, stdout, "install root:")
	assert.Contains(t, stdout, "reachability probe skipped")
	assert.Contains(t, stdout, "Environment check passed.")
}

func TestDoctorFailsOnConflictingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gover")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0o644))
	t.Setenv(install.EnvRoot, root)
	t.Setenv(doctor.EnvNoNetwork, "1")

	stdout, stderr, code := runCLI(t, "doctor")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "exists but is not a directory")
	assert.Contains(t, stdout, "hint:")
	assert.Contains(t, stdout, "Environment check failed.")
	assert.Contains(t, stderr, "environment check failed")
}

func TestDoctorProbesIndex(t *testing.T) {
	t.Setenv(install.EnvRoot, t.TempDir())
	startReleaseServer(t, nil, nil)

	stdout, stderr, code := runCLI(t, "doctor")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "is reachable")
}
