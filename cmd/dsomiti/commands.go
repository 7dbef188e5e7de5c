package dsomiti

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Nexriel/DsoMiti/pkg/config"
	"github.com/Nexriel/DsoMiti/pkg/errors"
	"github.com/Nexriel/DsoMiti/pkg/filesystem"
	"github.com/Nexriel/DsoMiti/pkg/logging"
	"github.com/Nexriel/DsoMiti/pkg/migrate"
	"github.com/Nexriel/DsoMiti/pkg/paths"
	"github.com/Nexriel/DsoMiti/pkg/process"
	"github.com/Nexriel/DsoMiti/pkg/style"
	"github.com/Nexriel/DsoMiti/pkg/types"
)

// buildRun assembles everything a run needs: merged config, resolved
// paths, plan and environment.
func buildRun(flags *rootFlags) (*migrate.Plan, *migrate.Env, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	fs := filesystem.NewOS()
	installPaths, err := paths.NewResolver(fs, cfg).Resolve()
	if err != nil {
		return nil, nil, err
	}

	env := &migrate.Env{
		FS:     fs,
		Paths:  installPaths,
		Config: cfg,
		Log:    types.NewRunLog(logging.GetLogger("run")),
		DryRun: flags.dryRun,
	}
	plan := migrate.BuildPlan(cfg, process.NewChecker())

	return plan, env, nil
}

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: MsgMigrateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, env, err := buildRun(flags)
			if err != nil {
				return err
			}

			renderer := style.NewRenderer(style.FormatAuto)
			fmt.Println(renderer.RenderPlan(plan, env))
			fmt.Println()

			if !flags.dryRun && !flags.yes {
				fmt.Println(renderInstructions(style.FormatAuto))
				if err := confirm(); err != nil {
					return err
				}
			}

			result, err := migrate.NewOrchestrator().Run(plan, env)
			if err != nil {
				return err
			}

			fmt.Println(renderer.RenderReport(result))
			if flags.dryRun {
				fmt.Println("DRY RUN MODE - No changes were made")
			}

			// Non-zero exit when the run did not fully succeed
			return result.Err()
		},
	}
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: MsgPlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, env, err := buildRun(flags)
			if err != nil {
				return err
			}
			fmt.Println(style.NewRenderer(style.FormatAuto).RenderPlan(plan, env))
			return nil
		},
	}
}

func newGenConfigCmd(flags *rootFlags) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				fmt.Println(config.GenerateConfigContent())
				return nil
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			rendered, err := config.RenderEffective(cfg)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, "Print the merged configuration instead of the commented defaults")
	return cmd
}

// confirm asks the user to go ahead. Outside a terminal the prompt
// cannot be answered, so --yes is required there.
func confirm() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New(errors.ErrInvalidInput, MsgNeedConfirmTTY)
	}

	ok, err := pterm.DefaultInteractiveConfirm.Show(MsgConfirmPrompt)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "confirmation prompt failed")
	}
	if !ok {
		return errors.New(errors.ErrInvalidInput, MsgAborted)
	}
	return nil
}
