package plan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a plan from the given reader with strict field validation.
// Unknown fields in the YAML will cause an error.
func Load(r io.Reader) (*Plan, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var p Plan
	if err := decoder.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty plan file")
		}
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	return &p, nil
}

// LoadFile loads a plan from the given file path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path) //nolint:gosec // File path comes from user input, expected behavior
	if err != nil {
		return nil, fmt.Errorf("failed to open plan file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
