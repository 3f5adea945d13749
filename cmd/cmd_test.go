package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// isolateEnv clears every DEMO_ACTIONS_* variable and NO_COLOR for the
// duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DEMO_ACTIONS_COLOR",
		"DEMO_ACTIONS_LOG_LEVEL",
		"DEMO_ACTIONS_LOG_FORMAT",
		"DEMO_ACTIONS_DEMO",
		"NO_COLOR",
	} {
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

// makeRoot creates a fresh root command holding sub, with captured
// stdout and stderr. This avoids global state contamination between tests.
func makeRoot(sub *cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	logLevelFlag = ""

	root := &cobra.Command{
		Use:           "demo-actions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "diagnostic log level")
	root.AddCommand(sub)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root, stdout, stderr
}
