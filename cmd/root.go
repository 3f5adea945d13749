// Package cmd implements the demo-actions Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/demo-actions/demo-actions/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var logLevelFlag string

var rootCmd = &cobra.Command{
	Use:   "demo-actions",
	Short: "Generate timed console command files for demo playback",
	Long: `demo-actions - Generate timed console command files for demo playback

Builds the <demo>.json file read by the playback plugin, which executes each
listed console command when the demo reaches the given tick. Ticks lower
than 64 are raised to 64.

Examples:
  # Generate the actions file from a YAML plan
  demo-actions generate highlights.yaml

  # Build one from flags
  demo-actions add match.dem --skip-ahead 64:5000 --spectate 5000:76561198000000001 --stop 9000

  # Inspect and remove it
  demo-actions show match.dem
  demo-actions clean match.dem`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("demo-actions version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"diagnostic log level: trace, debug, info, warn, error (default from DEMO_ACTIONS_LOG_LEVEL)")
}

// loadEnv reads the environment configuration and builds the diagnostic
// logger for cmd. The --log-level flag wins over DEMO_ACTIONS_LOG_LEVEL.
func loadEnv(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}

	log, err := config.NewLogger(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

// resolveDemo returns the demo path from args, falling back to
// DEMO_ACTIONS_DEMO.
func resolveDemo(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Demo == "" {
		return "", fmt.Errorf("no demo specified: pass a demo path or set %s", config.DemoEnvVar)
	}
	return cfg.Demo, nil
}
