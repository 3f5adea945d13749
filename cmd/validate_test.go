package cmd

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeValidateCmd runs a fresh validate command with the given args.
func executeValidateCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	validateFormatFlag = "text"

	v := &cobra.Command{
		Use:  "validate <plan.yaml>...",
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	v.Flags().StringVar(&validateFormatFlag, "format", "text", "Output format: text, json")

	root, stdout, stderr := makeRoot(v)
	root.SetArgs(append([]string{"validate"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidate_ValidFile(t *testing.T) {
	_, stderr, err := executeValidateCmd(t, "../testdata/plans/valid.yaml")
	require.NoError(t, err)

	assert.Contains(t, stderr, "✓ ../testdata/plans/valid.yaml: valid (7 action(s) for C:\\Users\\player\\Documents\\demos\\mirage.dem)")
}

func TestValidate_InvalidFile(t *testing.T) {
	result := validateFile("../testdata/plans/invalid.yaml")

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "demo must be non-empty")
}

func TestValidate_BadYAML(t *testing.T) {
	result := validateFile("../testdata/plans/bad-yaml.yaml")

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "failed to parse plan")
}

func TestValidate_UnknownField(t *testing.T) {
	result := validateFile("../testdata/plans/unknown-field.yaml")

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "field rewind not found")
}

func TestValidate_FileNotFound(t *testing.T) {
	result := validateFile("nonexistent-file-xyz.yaml")

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "failed to open plan file")
}

func TestValidate_MultipleFiles_MixedResults(t *testing.T) {
	_, stderr, err := executeValidateCmd(t,
		"../testdata/plans/valid.yaml",
		"../testdata/plans/invalid.yaml",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 plan file(s) invalid")

	assert.Contains(t, stderr, "✗ ../testdata/plans/invalid.yaml:")
	assert.Contains(t, stderr, "Result: 1/2 files valid")
}

func TestValidate_JSONFormat(t *testing.T) {
	stdout, _, err := executeValidateCmd(t, "--format", "json",
		"../testdata/plans/valid.yaml",
		"../testdata/plans/bad-yaml.yaml",
	)
	require.Error(t, err)

	var results []ValidationResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 2)

	assert.True(t, results[0].Valid)
	assert.Equal(t, 7, results[0].Actions)
	assert.Empty(t, results[0].Errors)

	assert.False(t, results[1].Valid)
	assert.NotEmpty(t, results[1].Errors)
}

func TestValidate_InvalidFormat(t *testing.T) {
	_, _, err := executeValidateCmd(t, "--format", "xml", "../testdata/plans/valid.yaml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}
