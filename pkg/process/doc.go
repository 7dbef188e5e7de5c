// Package process checks whether the game client is running before the
// migration touches any files. An open client holds locks on exactly
// the files being migrated, so copying while it runs is the dominant
// failure mode.
package process
