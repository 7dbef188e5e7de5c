package migrate

import (
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/paths"
	"github.com/Nexriel/DsoMiti/pkg/process"
	"github.com/Nexriel/DsoMiti/pkg/testutil"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

const (
	sourceRoot = "/c/Drakensang Online"
	steamGame  = "/c/Steam/steamapps/common/Drakensang Online"
	desktopLnk = "/home/user/Desktop/Drakensang Online.lnk"
)

var gameFiles = map[string]string{
	"client.exe":           "binary",
	"settings/client.ini":  "resolution=1080",
	"local/credentials.db": "secret",
}

func migrationConfig() *config.Config {
	return &config.Config{
		Game: config.Game{Name: "Drakensang Online", Dir: "Drakensang Online"},
		Paths: config.Paths{
			SourceCandidates: []string{sourceRoot},
			SteamRoots:       []string{"/c/Steam"},
		},
		CopySets:  []config.CopySet{{Name: "game data", Path: "."}},
		Shortcuts: config.Shortcuts{Names: []string{"Drakensang Online.lnk"}},
	}
}

func setupInstall(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	fs := testutil.NewMemoryFS()
	testutil.PopulateTree(t, fs, sourceRoot, gameFiles)
	require.NoError(t, fs.MkdirAll(steamGame, 0755))
	testutil.PopulateTree(t, fs, "/home/user/Desktop", map[string]string{
		"Drakensang Online.lnk": "shortcut",
	})
	return fs
}

func newEnv(t *testing.T, fs *testutil.MemoryFS, cfg *config.Config) *Env {
	t.Helper()
	resolved, err := paths.NewResolver(fs, cfg).WithHomeDir("/home/user").Resolve()
	require.NoError(t, err)
	return &Env{
		FS:     fs,
		Paths:  resolved,
		Config: cfg,
		Log:    types.NewRunLog(zerolog.Nop()),
	}
}

func TestMigrationEndToEnd(t *testing.T) {
	fs := setupInstall(t)
	cfg := migrationConfig()
	env := newEnv(t, fs, cfg)

	result, err := NewOrchestrator().Run(BuildPlan(cfg, nil), env)
	require.NoError(t, err)
	require.True(t, result.Success, "run should succeed: %v", result.Err())
	assert.Equal(t, types.RunCompleted, result.State)

	// Every file landed in the Steam installation, content intact
	for rel, content := range gameFiles {
		testutil.RequireFileContent(t, fs, steamGame+"/"+rel, content)
	}

	// The standalone installation and its shortcut are gone
	testutil.RequireAbsent(t, fs, sourceRoot)
	testutil.RequireAbsent(t, fs, desktopLnk)

	// The absent Start Menu candidate is reported as a no-op, not a failure
	var absentLogged bool
	for _, entry := range result.Entries {
		if entry.Operation == "remove shortcuts" && entry.Level == types.SeverityInfo {
			absentLogged = true
		}
		assert.NotEqual(t, types.SeverityError, entry.Level, "unexpected error entry: %s", entry)
	}
	assert.True(t, absentLogged)
}

func TestMigrationLockedFileLeavesSourceIntact(t *testing.T) {
	fs := setupInstall(t)
	fs.InjectError(sourceRoot+"/local/credentials.db", errors.New(errors.ErrFileAccess, "file in use"))

	cfg := migrationConfig()
	env := newEnv(t, fs, cfg)

	result, err := NewOrchestrator().Run(BuildPlan(cfg, nil), env)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, types.RunAborted, result.State)
	assert.True(t, errors.IsErrorCode(result.Err(), errors.ErrCriticalOperation))

	// The unlocked files were still copied over
	testutil.RequireFileContent(t, fs, steamGame+"/client.exe", "binary")

	// Nothing was deleted: the source tree and shortcut survive in full
	for rel, content := range gameFiles {
		testutil.RequireFileContent(t, fs, sourceRoot+"/"+rel, content)
	}
	testutil.RequireFileContent(t, fs, desktopLnk, "shortcut")

	// Both destructive operations were skipped
	results := result.Results
	require.Len(t, results, 3)
	assert.Equal(t, types.StatusFailed, results[0].Status)
	assert.Equal(t, types.StatusSkipped, results[1].Status)
	assert.Equal(t, types.StatusSkipped, results[2].Status)
}

func TestMigrationRerunIdempotent(t *testing.T) {
	fs := setupInstall(t)
	cfg := migrationConfig()

	first, err := NewOrchestrator().Run(BuildPlan(cfg, nil), newEnv(t, fs, cfg))
	require.NoError(t, err)
	require.True(t, first.Success)

	// A reinstalled standalone copy migrates cleanly a second time: the
	// copy overwrites, the absent shortcut is a no-op.
	testutil.PopulateTree(t, fs, sourceRoot, gameFiles)

	second, err := NewOrchestrator().Run(BuildPlan(cfg, nil), newEnv(t, fs, cfg))
	require.NoError(t, err)
	assert.True(t, second.Success, "second run should succeed: %v", second.Err())

	for rel, content := range gameFiles {
		testutil.RequireFileContent(t, fs, steamGame+"/"+rel, content)
	}
	testutil.RequireAbsent(t, fs, sourceRoot)
}

type runningProcess struct{ name string }

func (p runningProcess) Pid() int           { return 4242 }
func (p runningProcess) PPid() int          { return 1 }
func (p runningProcess) Executable() string { return p.name }

func TestMigrationAbortsWhileGameRunning(t *testing.T) {
	fs := setupInstall(t)
	cfg := migrationConfig()
	cfg.Preflight = config.Preflight{
		CheckRunning: true,
		Processes:    []string{"drakensangonline.exe"},
	}
	env := newEnv(t, fs, cfg)

	checker := process.NewCheckerWithList(func() ([]ps.Process, error) {
		return []ps.Process{runningProcess{name: "DrakensangOnline.exe"}}, nil
	})

	result, err := NewOrchestrator().Run(BuildPlan(cfg, checker), env)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, types.RunAborted, result.State)
	assert.True(t, errors.IsErrorCode(result.Err(), errors.ErrCriticalOperation))
	assert.True(t, errors.IsErrorCode(result.Failed()[0].Err, errors.ErrGameRunning))

	// Aborted before any mutation: no copies, no deletions
	testutil.RequireAbsent(t, fs, steamGame+"/client.exe")
	testutil.RequireFileContent(t, fs, sourceRoot+"/client.exe", "binary")
	testutil.RequireFileContent(t, fs, desktopLnk, "shortcut")
}
