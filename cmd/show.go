package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/demo-actions/demo-actions/internal/actions"
	"github.com/spf13/cobra"
)

var showFormatFlag string

var showCmd = &cobra.Command{
	Use:   "show [demo]",
	Short: "Print the actions file of a demo",
	Long: `Print the actions scheduled in <demo>.json, in file order.

If no demo is given, DEMO_ACTIONS_DEMO is used.

Formats:
  text   Human-readable table (default)
  json   The file's JSON array

Examples:
  demo-actions show match.dem
  demo-actions show --format json match.dem`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	showCmd.Flags().StringVar(&showFormatFlag, "format", "text", "Output format: text, json")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(showFormatFlag)
	switch format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", showFormatFlag)
	}

	cfg, log, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	demo, err := resolveDemo(args, cfg)
	if err != nil {
		return err
	}

	path := actions.FilePath(demo)
	list, err := actions.ReadFile(path)
	if err != nil {
		return err
	}
	log.WithField("path", path).Debugf("read %d action(s)", len(list))

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := actions.Encode(list)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "text":
		formatShowText(out, path, list, resolveColor(cfg.Color, out))
	}

	return nil
}

// formatShowText writes one line per action, tick right-aligned.
func formatShowText(w io.Writer, path string, list []actions.Action, color colorMode) {
	fmt.Fprintf(w, "%s %s\n", bold(path, color), dim(fmt.Sprintf("(%d action(s))", len(list)), color))

	width := 0
	for _, a := range list {
		if n := len(fmt.Sprint(a.Tick)); n > width {
			width = n
		}
	}
	for _, a := range list {
		fmt.Fprintf(w, "  %s  %s\n", cyan(fmt.Sprintf("%*d", width, a.Tick), color), a.Cmd)
	}
}
