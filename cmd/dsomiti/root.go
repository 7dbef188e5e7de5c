package dsomiti

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nexriel/DsoMiti/internal/version"
	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/logging"
)

// rootFlags holds the persistent flag values shared by all commands.
type rootFlags struct {
	verbosity  int
	dryRun     bool
	yes        bool
	configFile string
	source     string
	steam      string
}

// loadConfig builds the merged configuration, applying flag overrides
// on top of file and environment values.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	overrides := make(map[string]interface{})
	if f.source != "" {
		overrides["paths.source"] = f.source
	}
	if f.steam != "" {
		overrides["paths.steam"] = f.steam
	}
	return config.Load(config.LoadOptions{
		File:      f.configFile,
		Overrides: overrides,
	})
}

// NewRootCmd builds the dsomiti command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "dsomiti",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default: dsomiti.toml in the XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&flags.source, "source", "", "Standalone installation directory (skips probing)")
	rootCmd.PersistentFlags().StringVar(&flags.steam, "steam", "", "Steam game directory (skips probing)")

	rootCmd.AddCommand(
		newMigrateCmd(flags),
		newPlanCmd(flags),
		newGenConfigCmd(flags),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dsomiti version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
