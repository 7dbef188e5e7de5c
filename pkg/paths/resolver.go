package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/logging"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// Resolver locates installation directories on the local filesystem.
type Resolver struct {
	fs     types.FS
	cfg    *config.Config
	logger zerolog.Logger

	// homeDir is overridable in tests; defaults to the user home.
	homeDir string
}

// NewResolver creates a resolver probing through the given filesystem.
func NewResolver(fs types.FS, cfg *config.Config) *Resolver {
	return &Resolver{
		fs:      fs,
		cfg:     cfg,
		logger:  logging.GetLogger("paths.resolver"),
		homeDir: xdg.Home,
	}
}

// WithHomeDir overrides the home directory used for shortcut locations.
func (r *Resolver) WithHomeDir(home string) *Resolver {
	r.homeDir = home
	return r
}

// Resolve produces the installation paths for a run, or a
// PATH_NOT_FOUND error naming the root that could not be located.
// Resolution performs no writes.
func (r *Resolver) Resolve() (types.InstallPaths, error) {
	source, err := r.resolveSource()
	if err != nil {
		return types.InstallPaths{}, err
	}

	steam, err := r.resolveSteam()
	if err != nil {
		return types.InstallPaths{}, err
	}

	paths := types.InstallPaths{
		StandaloneRoot: source,
		SteamRoot:      steam,
		Shortcuts:      r.ShortcutCandidates(),
	}

	r.logger.Info().
		Str("source", paths.StandaloneRoot).
		Str("steam", paths.SteamRoot).
		Int("shortcut_candidates", len(paths.Shortcuts)).
		Msg("Installation paths resolved")

	return paths, nil
}

// resolveSource finds the standalone installation root.
func (r *Resolver) resolveSource() (string, error) {
	if explicit := r.cfg.Paths.Source; explicit != "" {
		if r.isDir(explicit) {
			return explicit, nil
		}
		return "", errors.Newf(errors.ErrPathNotFound,
			"configured standalone installation does not exist: %s", explicit)
	}

	for _, candidate := range r.cfg.Paths.SourceCandidates {
		if r.isDir(candidate) {
			r.logger.Debug().Str("path", candidate).Msg("Standalone installation found")
			return candidate, nil
		}
	}

	return "", errors.New(errors.ErrPathNotFound,
		"standalone installation not found").
		WithDetail("candidates", r.cfg.Paths.SourceCandidates)
}

// resolveSteam finds the Steam copy of the game, scanning every known
// Steam library for steamapps/common/<game dir>.
func (r *Resolver) resolveSteam() (string, error) {
	if explicit := r.cfg.Paths.Steam; explicit != "" {
		if r.isDir(explicit) {
			return explicit, nil
		}
		return "", errors.Newf(errors.ErrPathNotFound,
			"configured Steam installation does not exist: %s", explicit)
	}

	libraries := r.steamLibraries()
	for _, lib := range libraries {
		gameDir := filepath.Join(lib, "steamapps", "common", r.cfg.Game.Dir)
		if r.isDir(gameDir) {
			r.logger.Debug().Str("path", gameDir).Msg("Steam installation found")
			return gameDir, nil
		}
	}

	return "", errors.Newf(errors.ErrPathNotFound,
		"Steam copy of %s not found; install the game through Steam first", r.cfg.Game.Name).
		WithDetail("libraries", libraries)
}

// steamLibraries returns all Steam library roots: the configured ones
// plus any extra libraries each lists in libraryfolders.vdf.
func (r *Resolver) steamLibraries() []string {
	seen := make(map[string]bool)
	var libraries []string

	add := func(lib string) {
		if lib != "" && !seen[lib] {
			seen[lib] = true
			libraries = append(libraries, lib)
		}
	}

	for _, root := range r.cfg.Paths.SteamRoots {
		if !r.isDir(root) {
			continue
		}
		add(root)
		vdf := filepath.Join(root, "steamapps", "libraryfolders.vdf")
		for _, extra := range r.parseLibraryFolders(vdf) {
			add(extra)
		}
	}

	return libraries
}

// parseLibraryFolders extracts the "path" values from a
// libraryfolders.vdf. A minimal line scan is enough: the format is
// stable key-value pairs and only the path entries matter here.
func (r *Resolver) parseLibraryFolders(path string) []string {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil
	}
	return scanVDFPaths(string(data))
}

// ShortcutCandidates returns every shortcut path cleanup should try:
// each configured name on the Desktop and in the Start Menu programs
// folder. Entries need not exist.
func (r *Resolver) ShortcutCandidates() []string {
	dirs := []string{
		filepath.Join(r.homeDir, "Desktop"),
		filepath.Join(r.homeDir, "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs"),
	}

	var candidates []string
	for _, dir := range dirs {
		for _, name := range r.cfg.Shortcuts.Names {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return candidates
}

func (r *Resolver) isDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}
