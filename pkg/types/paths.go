package types

// InstallPaths holds the resolved filesystem locations a migration run
// works with. It is built once by the path resolver and read-only for
// the rest of the run.
type InstallPaths struct {
	// StandaloneRoot is the root directory of the standalone
	// installation (the migration source).
	StandaloneRoot string

	// SteamRoot is the root directory of the Steam-managed
	// installation (the migration destination).
	SteamRoot string

	// Shortcuts are the shortcut artifacts the standalone installer
	// left behind. Entries are candidates: they need not exist, and
	// removing an absent one is a no-op.
	Shortcuts []string
}
