package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Game: config.Game{
			Name: "Drakensang Online",
			Dir:  "Drakensang Online",
		},
		Paths: config.Paths{
			SourceCandidates: []string{
				"/c/Program Files (x86)/Drakensang Online",
				"/c/Program Files/Drakensang Online",
			},
			SteamRoots: []string{
				"/c/Program Files (x86)/Steam",
			},
		},
		Shortcuts: config.Shortcuts{
			Names: []string{"Drakensang Online.lnk", "Drakensang Online.url"},
		},
	}
}

func TestResolveProbesCandidates(t *testing.T) {
	fs := testutil.NewMemoryFS()
	// Only the second candidate exists
	require.NoError(t, fs.MkdirAll("/c/Program Files/Drakensang Online", 0755))
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Steam/steamapps/common/Drakensang Online", 0755))

	paths, err := NewResolver(fs, testConfig()).WithHomeDir("/home/user").Resolve()
	require.NoError(t, err)

	assert.Equal(t, "/c/Program Files/Drakensang Online", paths.StandaloneRoot)
	assert.Equal(t,
		filepath.Join("/c/Program Files (x86)/Steam", "steamapps", "common", "Drakensang Online"),
		paths.SteamRoot)
}

func TestResolveExplicitSourceWins(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/d/Games/DSO", 0755))
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Drakensang Online", 0755))
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Steam/steamapps/common/Drakensang Online", 0755))

	cfg := testConfig()
	cfg.Paths.Source = "/d/Games/DSO"

	paths, err := NewResolver(fs, cfg).WithHomeDir("/home/user").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/d/Games/DSO", paths.StandaloneRoot)
}

func TestResolveExplicitSourceMissing(t *testing.T) {
	fs := testutil.NewMemoryFS()
	cfg := testConfig()
	cfg.Paths.Source = "/d/Games/DSO"

	_, err := NewResolver(fs, cfg).Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
	assert.Contains(t, err.Error(), "/d/Games/DSO")
}

func TestResolveNoStandaloneInstall(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := NewResolver(fs, testConfig()).Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.NotNil(t, details["candidates"])
}

func TestResolveNoSteamInstall(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Drakensang Online", 0755))
	// Steam root exists but the game was never installed there
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Steam/steamapps/common", 0755))

	_, err := NewResolver(fs, testConfig()).Resolve()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
	assert.Contains(t, err.Error(), "Steam")
}

func TestResolveFindsGameInSecondaryLibrary(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Drakensang Online", 0755))
	require.NoError(t, fs.MkdirAll("/c/Program Files (x86)/Steam/steamapps", 0755))
	require.NoError(t, fs.WriteFile(
		"/c/Program Files (x86)/Steam/steamapps/libraryfolders.vdf",
		[]byte(`"libraryfolders"
{
	"0"
	{
		"path"		"/c/Program Files (x86)/Steam"
	}
	"1"
	{
		"path"		"/d/SteamLibrary"
	}
}
`), 0644))
	require.NoError(t, fs.MkdirAll("/d/SteamLibrary/steamapps/common/Drakensang Online", 0755))

	paths, err := NewResolver(fs, testConfig()).WithHomeDir("/home/user").Resolve()
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join("/d/SteamLibrary", "steamapps", "common", "Drakensang Online"),
		paths.SteamRoot)
}

func TestShortcutCandidates(t *testing.T) {
	fs := testutil.NewMemoryFS()
	r := NewResolver(fs, testConfig()).WithHomeDir("/home/user")

	candidates := r.ShortcutCandidates()
	require.Len(t, candidates, 4)
	assert.Contains(t, candidates, filepath.Join("/home/user", "Desktop", "Drakensang Online.lnk"))
	assert.Contains(t, candidates, filepath.Join("/home/user", "Desktop", "Drakensang Online.url"))
	assert.Contains(t, candidates, filepath.Join(
		"/home/user", "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs",
		"Drakensang Online.lnk"))
}

func TestScanVDFPaths(t *testing.T) {
	content := `"libraryfolders"
{
	"0"
	{
		"path"		"C:\\Program Files (x86)\\Steam"
		"label"		""
	}
	"1"
	{
		"path"		"D:\\SteamLibrary"
	}
}
`
	paths := scanVDFPaths(content)
	assert.Equal(t, []string{
		`C:\Program Files (x86)\Steam`,
		`D:\SteamLibrary`,
	}, paths)
}

func TestScanVDFPathsNoMatches(t *testing.T) {
	assert.Empty(t, scanVDFPaths(`"libraryfolders" {}`))
}
