package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuuki/foldergen/internal/identity"
	"github.com/yuuki/foldergen/internal/workspace"
)

func execute(t *testing.T, fsys afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(fsys, identity.Static("alice"))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestRunPrintsConfirmation(t *testing.T) {
	base := t.TempDir()

	stdout, _, err := execute(t, afero.NewOsFs(), "--base-dir", base)
	require.NoError(t, err)
	assert.Equal(t, "Folder and files created successfully!\n", stdout)

	message, err := os.ReadFile(filepath.Join(base, workspace.DefaultFolderName, workspace.MessageFileName))
	require.NoError(t, err)
	assert.Equal(t, workspace.MessageText, string(message))
}

func TestRunDefaultsToWorkingDirectory(t *testing.T) {
	base := t.TempDir()
	chdir(t, base)

	for i := 0; i < 2; i++ {
		_, _, err := execute(t, afero.NewOsFs())
		require.NoError(t, err, "run %d", i+1)
	}

	entries, err := os.ReadDir(filepath.Join(base, workspace.DefaultFolderName))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunFailureSuppressesConfirmation(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	stdout, stderr, err := execute(t, fsys, "--base-dir", "/home/alice")
	require.Error(t, err)
	assert.True(t, workspace.IsFilesystemError(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to create folder and files")
}

func TestRunCreateConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()

	stdout, _, err := execute(t, fsys, "--create-config", "--config-output", "/etc/foldergen/foldergen.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Created default configuration at /etc/foldergen/foldergen.yaml\n", stdout)

	exists, err := afero.Exists(fsys, "/etc/foldergen/foldergen.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunRejectsArguments(t *testing.T) {
	stdout, stderr, err := execute(t, afero.NewMemMapFs(), "extra")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Invalid command line")
	assert.Contains(t, stderr, "extra")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	stdout, stderr, err := execute(t, afero.NewMemMapFs(), "--bogus")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Invalid command line")
	assert.Contains(t, stderr, "bogus")
}

func TestRunLogsConfigLoadFailure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/bad.yaml", []byte("folder_name: [unterminated\n"), 0644))

	stdout, stderr, err := execute(t, fsys, "--config", "/etc/bad.yaml", "--base-dir", "/home/alice")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to load configuration")

	exists, err := afero.Exists(fsys, "/home/alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, afero.NewMemMapFs(), "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", stdout)
}
