package testutil

import (
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

// PopulateTree writes a set of files under root, creating parent
// directories as needed. Keys are slash-separated paths relative to
// root, values are file contents.
func PopulateTree(t *testing.T, fs *MemoryFS, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range files {
		full := path.Join(root, rel)
		require.NoError(t, fs.MkdirAll(path.Dir(full), 0755))
		require.NoError(t, fs.WriteFile(full, []byte(content), 0644))
	}
}

// RequireFileContent asserts that a file exists with exactly the given
// content.
func RequireFileContent(t *testing.T, fs *MemoryFS, p, want string) {
	t.Helper()
	data, err := fs.ReadFile(p)
	require.NoError(t, err, "expected file %s to exist", p)
	require.Equal(t, want, string(data), "unexpected content in %s", p)
}

// RequireAbsent asserts that nothing exists at the given path.
func RequireAbsent(t *testing.T, fs *MemoryFS, p string) {
	t.Helper()
	_, err := fs.Lstat(p)
	require.Error(t, err, "expected %s to be absent", p)
}
