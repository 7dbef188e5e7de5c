// Package config loads dsomiti's layered configuration: embedded
// defaults, then an optional user file (TOML or YAML), then DSOMITI_*
// environment variables, then explicit overrides from command-line
// flags. Later layers win.
package config
