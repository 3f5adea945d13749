package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/demo-actions/demo-actions/internal/actions"
	"github.com/demo-actions/demo-actions/internal/plan"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	generateDemoFlag   string
	generateDryRunFlag bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <plan.yaml>...",
	Short: "Write actions files from YAML plans",
	Long: `Generate the actions file of each plan's demo.

A plan names a demo and lists the actions to schedule, in order:

  demo: C:\demos\match.dem
  actions:
    - skip_ahead: {from: 64, to: 5000}
    - spectate: {tick: 5000, player: "76561198000000001"}
    - pause: 6000
    - exec: {tick: 6100, cmd: "say hi"}
    - stop: 9000

The file is written next to the demo as <demo>.json and replaces any
existing one.

Examples:
  demo-actions generate highlights.yaml
  demo-actions generate a.yaml b.yaml
  demo-actions generate --demo other.dem highlights.yaml
  demo-actions generate --dry-run highlights.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	generateCmd.Flags().StringVar(&generateDemoFlag, "demo", "",
		"demo path to use instead of the plan's (single plan only)")
	generateCmd.Flags().BoolVar(&generateDryRunFlag, "dry-run", false,
		"print the actions JSON to stdout instead of writing the file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateDemoFlag != "" && len(args) > 1 {
		return errors.New("--demo can only be used with a single plan")
	}

	_, log, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := generatePlan(cmd, log, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func generatePlan(cmd *cobra.Command, log *logrus.Logger, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve plan path: %w", err)
	}

	p, err := plan.LoadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	demo := p.Demo
	if generateDemoFlag != "" {
		demo = generateDemoFlag
	}
	b := p.Apply(actions.New(demo))

	log.WithFields(logrus.Fields{
		"plan":    absPath,
		"steps":   len(p.Steps),
		"actions": b.Len(),
		"target":  b.Path(),
	}).Debug("plan applied")

	if generateDryRunFlag {
		data, err := actions.Encode(b.Actions())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := b.Commit(); err != nil {
		return err
	}
	log.WithField("path", b.Path()).Info("actions file written")

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d action(s) to %s\n", b.Len(), b.Path())
	return nil
}
