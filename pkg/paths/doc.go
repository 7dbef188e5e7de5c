// Package paths locates the two installation roots a migration works
// between: the standalone install (source) and the Steam-managed
// install (destination), plus the shortcut artifacts cleanup removes.
//
// Resolution is read-only probing. Explicit configuration always wins
// over probing; probing checks the configured candidate directories and
// every Steam library listed in libraryfolders.vdf.
package paths
