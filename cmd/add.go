package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/demo-actions/demo-actions/internal/actions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	addSkipAheadFlags []string
	addSpectateFlags  []string
	addPauseFlags     []int
	addExecFlags      []string
	addStopFlags      []int
)

var addCmd = &cobra.Command{
	Use:   "add [demo] [flags]",
	Short: "Write an actions file from command-line flags",
	Long: `Build the actions file of a demo from flags and write it to <demo>.json,
replacing any existing file.

Flags may be repeated. Actions are scheduled in this order regardless of the
order of the flags: skip-ahead, spectate, pause, exec, stop.

If no demo is given, DEMO_ACTIONS_DEMO is used. When no flag is given
nothing is written.

Examples:
  demo-actions add match.dem --skip-ahead 64:5000 --stop 9000
  demo-actions add match.dem --spectate 5000:76561198000000001 --pause 5100
  demo-actions add match.dem --exec "6000:say hello world"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	addCmd.Flags().StringArrayVar(&addSkipAheadFlags, "skip-ahead", nil,
		"jump playback, as <start-tick>:<target-tick>")
	addCmd.Flags().StringArrayVar(&addSpectateFlags, "spectate", nil,
		"focus the camera on a player, as <tick>:<account-id>")
	addCmd.Flags().IntSliceVar(&addPauseFlags, "pause", nil, "pause playback at tick")
	addCmd.Flags().StringArrayVar(&addExecFlags, "exec", nil,
		"run a console command, as <tick>:<command>")
	addCmd.Flags().IntSliceVar(&addStopFlags, "stop", nil, "stop playback at tick")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	demo, err := resolveDemo(args, cfg)
	if err != nil {
		return err
	}

	b := actions.New(demo)

	for _, v := range addSkipAheadFlags {
		start, target, err := splitTick(v)
		if err != nil {
			return fmt.Errorf("--skip-ahead %q: %w", v, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(target))
		if err != nil {
			return fmt.Errorf("--skip-ahead %q: invalid target tick %q", v, target)
		}
		b.SkipAhead(start, to)
	}
	for _, v := range addSpectateFlags {
		tick, player, err := splitTick(v)
		if err != nil {
			return fmt.Errorf("--spectate %q: %w", v, err)
		}
		if strings.TrimSpace(player) == "" {
			return fmt.Errorf("--spectate %q: account id must be non-empty", v)
		}
		b.SpectatePlayer(tick, player)
	}
	for _, tick := range addPauseFlags {
		b.PausePlayback(tick)
	}
	for _, v := range addExecFlags {
		tick, command, err := splitTick(v)
		if err != nil {
			return fmt.Errorf("--exec %q: %w", v, err)
		}
		if strings.TrimSpace(command) == "" {
			return fmt.Errorf("--exec %q: command must be non-empty", v)
		}
		b.Command(tick, command)
	}
	for _, tick := range addStopFlags {
		b.StopPlayback(tick)
	}

	log.WithFields(logrus.Fields{
		"demo":    demo,
		"actions": b.Len(),
	}).Debug("actions built from flags")

	if b.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "demo-actions: no actions to write")
		return nil
	}

	if err := b.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d action(s) to %s\n", b.Len(), b.Path())
	return nil
}

// splitTick splits "<tick>:<rest>" at the first colon. rest may itself
// contain colons.
func splitTick(v string) (int, string, error) {
	tickStr, rest, ok := strings.Cut(v, ":")
	if !ok {
		return 0, "", fmt.Errorf("expected <tick>:<value>")
	}
	tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
	if err != nil {
		return 0, "", fmt.Errorf("invalid tick %q", tickStr)
	}
	return tick, rest, nil
}
