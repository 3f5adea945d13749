package actions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Encode serializes actions as a JSON array indented with two spaces, in
// the given order. HTML characters are not escaped so commands appear in
// the file exactly as scheduled.
func Encode(actions []Action) ([]byte, error) {
	if actions == nil {
		actions = []Action{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(actions); err != nil {
		return nil, fmt.Errorf("failed to marshal actions: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses an actions file from r.
func Decode(r io.Reader) ([]Action, error) {
	var actions []Action
	if err := json.NewDecoder(r).Decode(&actions); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty actions file")
		}
		return nil, fmt.Errorf("failed to parse actions file: %w", err)
	}
	return actions, nil
}

// ReadFile loads the actions stored at path.
func ReadFile(path string) ([]Action, error) {
	f, err := os.Open(path) //nolint:gosec // path derived from user-supplied demo path
	if err != nil {
		return nil, fmt.Errorf("failed to open actions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Remove deletes the actions file of demoPath.
// Does not return an error if the file doesn't exist.
func Remove(demoPath string) error {
	err := os.Remove(FilePath(demoPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete actions file: %w", err)
	}
	return nil
}
