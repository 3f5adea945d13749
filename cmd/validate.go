package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/demo-actions/demo-actions/internal/plan"
	"github.com/spf13/cobra"
)

// ValidationResult represents the validation outcome for a single plan file.
type ValidationResult struct {
	File    string   `json:"file"`
	Valid   bool     `json:"valid"`
	Demo    string   `json:"demo,omitempty"`
	Actions int      `json:"actions,omitempty"`
	Errors  []string `json:"errors"`
}

var validateFormatFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <plan.yaml>...",
	Short: "Validate plan files without writing anything",
	Long: `Validate one or more plan YAML files without writing actions files.

Checks the YAML structure (unknown fields are rejected), that a demo is set,
and that every step sets exactly one action with its required fields.
Ticks below 64 are accepted: they are raised to 64 when generating.

Exits with an error if any file is invalid.

Formats:
  text   Human-readable output to stderr (default)
  json   Structured JSON to stdout

Examples:
  demo-actions validate highlights.yaml
  demo-actions validate a.yaml b.yaml c.yaml
  demo-actions validate --format json highlights.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	validateCmd.Flags().StringVar(&validateFormatFlag, "format", "text",
		"Output format: text, json")
	rootCmd.AddCommand(validateCmd)
}

// runValidate iterates over file args, validates each independently, and
// outputs results in the chosen format.
func runValidate(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(validateFormatFlag)
	switch format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", validateFormatFlag)
	}

	results := make([]ValidationResult, 0, len(args))
	invalid := 0

	for _, path := range args {
		result := validateFile(path)
		results = append(results, result)
		if !result.Valid {
			invalid++
		}
	}

	switch format {
	case "text":
		formatValidateText(cmd.ErrOrStderr(), results)
	case "json":
		if err := formatValidateJSON(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d plan file(s) invalid", invalid, len(results))
	}

	return nil
}

// validateFile validates a single plan file and returns a ValidationResult.
func validateFile(path string) ValidationResult {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ValidationResult{
			File:   path,
			Valid:  false,
			Errors: []string{fmt.Sprintf("failed to resolve path: %v", err)},
		}
	}

	p, err := plan.LoadFile(absPath)
	if err != nil {
		return ValidationResult{
			File:   path,
			Valid:  false,
			Errors: []string{err.Error()},
		}
	}

	return ValidationResult{
		File:    path,
		Valid:   true,
		Demo:    p.Demo,
		Actions: p.Build().Len(),
		Errors:  []string{},
	}
}

// formatValidateText writes human-readable validation results to w.
func formatValidateText(w io.Writer, results []ValidationResult) {
	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
			fmt.Fprintf(w, "✓ %s: valid (%d action(s) for %s)\n", r.File, r.Actions, r.Demo)
		} else {
			fmt.Fprintf(w, "✗ %s:\n", r.File)
			for _, e := range r.Errors {
				fmt.Fprintf(w, "  - %s\n", e)
			}
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(w, "\nResult: %d/%d files valid\n", validCount, len(results))
	}
}

// formatValidateJSON writes JSON-encoded validation results to w.
func formatValidateJSON(w io.Writer, results []ValidationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
