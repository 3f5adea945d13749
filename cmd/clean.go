package cmd

import (
	"fmt"

	"github.com/demo-actions/demo-actions/internal/actions"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [demo]",
	Short: "Delete the actions file of a demo",
	Long: `Delete <demo>.json so the demo plays back without scheduled commands.

If no demo is given, uses the DEMO_ACTIONS_DEMO environment variable.
Succeeds when the file does not exist.

Examples:
  demo-actions clean                 # uses DEMO_ACTIONS_DEMO from env
  demo-actions clean match.dem       # explicit path`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	demo, err := resolveDemo(args, cfg)
	if err != nil {
		return err
	}

	if err := actions.Remove(demo); err != nil {
		return err
	}
	log.WithField("path", actions.FilePath(demo)).Debug("actions file removed")

	fmt.Fprintf(cmd.ErrOrStderr(), "demo-actions: removed actions for %s\n", demo)
	return nil
}
