package cleanup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dsoerrors "github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/testutil"
)

func TestRemoveTree(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, "/standalone", map[string]string{
		"client.exe":          "binary",
		"settings/client.ini": "cfg",
	})

	removed, err := New(fs).RemoveTree("/standalone")
	require.NoError(t, err)
	assert.True(t, removed)
	testutil.RequireAbsent(t, fs, "/standalone")
}

func TestRemoveTreeAbsentIsNoOp(t *testing.T) {
	fs := testutil.NewMemoryFS()

	removed, err := New(fs).RemoveTree("/never-existed")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveTreeSkipsSymlink(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, "/real", map[string]string{"file.txt": "x"})
	require.NoError(t, fs.Symlink("/real", "/alias"))

	removed, err := New(fs).RemoveTree("/alias")
	require.NoError(t, err)
	assert.False(t, removed)

	// The link target is untouched
	testutil.RequireFileContent(t, fs, "/real/file.txt", "x")
}

func TestRemoveTreeLocked(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, "/standalone", map[string]string{"held.dat": "x"})
	fs.InjectError("/standalone/held.dat", errors.New("file in use"))

	_, err := New(fs).RemoveTree("/standalone")
	require.Error(t, err)
	assert.True(t, dsoerrors.IsErrorCode(err, dsoerrors.ErrCleanupFailed))
}

func TestRemoveShortcutFile(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, "/home/Desktop", map[string]string{
		"Drakensang Online.lnk": "shortcut",
	})

	removed, err := New(fs).RemoveShortcut("/home/Desktop/Drakensang Online.lnk")
	require.NoError(t, err)
	assert.True(t, removed)
	testutil.RequireAbsent(t, fs, "/home/Desktop/Drakensang Online.lnk")
}

func TestRemoveShortcutFolder(t *testing.T) {
	// The Start Menu entry is a folder containing the actual .lnk
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, "/home/StartMenu/Drakensang Online", map[string]string{
		"Drakensang Online.lnk": "shortcut",
	})

	removed, err := New(fs).RemoveShortcut("/home/StartMenu/Drakensang Online")
	require.NoError(t, err)
	assert.True(t, removed)
	testutil.RequireAbsent(t, fs, "/home/StartMenu/Drakensang Online")
}

func TestRemoveShortcutAbsentIsNoOp(t *testing.T) {
	fs := testutil.NewMemoryFS()

	removed, err := New(fs).RemoveShortcut("/home/Desktop/gone.lnk")
	require.NoError(t, err)
	assert.False(t, removed)
}
