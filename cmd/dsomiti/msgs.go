package dsomiti

// Short messages (one-liners)
const (
	MsgRootShort = "Migrate a standalone Drakensang Online installation into Steam"
	MsgRootLong  = `dsomiti moves the user data of a standalone Drakensang Online
installation (saves, credentials, settings) into the Steam copy of the
game, then removes the obsolete standalone installation and its
shortcuts.

Copying always happens before anything is deleted, every step is
idempotent, and nothing destructive runs after any failure: if a file
cannot be copied, the standalone installation is left in place so you
can fix the cause (usually the game still running) and re-run.`

	MsgMigrateShort   = "Run the migration"
	MsgPlanShort      = "Show what the migration would do without changing anything"
	MsgGenConfigShort = "Print a starting-point configuration file"
	MsgVersionShort   = "Print version information"

	MsgConfirmPrompt  = "Proceed with the migration?"
	MsgAborted        = "Migration cancelled, nothing was changed."
	MsgNeedConfirmTTY = "standard input is not a terminal; re-run with --yes to confirm non-interactively"
)
