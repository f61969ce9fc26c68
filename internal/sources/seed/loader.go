package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads a seed file from disk.
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file.
// ${VAR} references are expanded from the environment before parsing.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var file File
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return file, nil
}
