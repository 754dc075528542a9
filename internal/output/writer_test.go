package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackupCopiesExistingDocument(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "README.md")
	bak := filepath.Join(dir, "README.md.bak")
	require.NoError(t, os.WriteFile(out, []byte("# previous version\n"), 0o644))

	require.NoError(t, Backup(out, bak))

	data, err := os.ReadFile(bak)
	require.NoError(t, err)
	require.Equal(t, "# previous version\n", string(data))
}

func TestBackupOverwritesPriorBackup(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "README.md")
	bak := filepath.Join(dir, "README.md.bak")
	require.NoError(t, os.WriteFile(out, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(bak, []byte("stale backup"), 0o644))

	require.NoError(t, Backup(out, bak))

	data, err := os.ReadFile(bak)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestBackupWithoutDocumentIsNoop(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "README.md")
	bak := filepath.Join(dir, "README.md.bak")

	require.NoError(t, Backup(out, bak))

	_, err := os.Stat(bak)
	require.True(t, os.IsNotExist(err), "no backup file should be created")
}

func TestWriteReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))

	require.NoError(t, Write(out, "generated"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "generated", string(data))
}
