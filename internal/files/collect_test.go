package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, entries map[string]string) {
	t.Helper()
	for name, content := range entries {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestCollectAllSortsByPath(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"c.txt":     "C",
		"a.txt":     "A",
		"sub/b.txt": "B",
	})

	// Deliberately unsorted input.
	got := CollectAll(context.Background(), dir, []string{"c.txt", "sub/b.txt", "a.txt"}, 2)

	require.Equal(t, []TrackedFile{
		{Path: "a.txt", Content: "A"},
		{Path: "c.txt", Content: "C"},
		{Path: "sub/b.txt", Content: "B"},
	}, got)
}

func TestCollectAllDeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	entries := map[string]string{}
	paths := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		name := filepath.Join("pkg", string(rune('a'+i%26))+"_"+string(rune('0'+i/26))+".go")
		entries[name] = "package pkg\n"
		paths = append(paths, name)
	}
	writeTree(t, dir, entries)

	first := CollectAll(context.Background(), dir, paths, 8)
	second := CollectAll(context.Background(), dir, paths, 3)
	require.Equal(t, first, second)
}

func TestCollectAllEmptyInput(t *testing.T) {
	got := CollectAll(context.Background(), t.TempDir(), nil, 4)
	require.Empty(t, got)
}
