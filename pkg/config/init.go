package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleConfig is the annotated configuration written by `ftouch init`.
const sampleConfig = `# ftouch configuration file
#
# Every option can be overridden with an environment variable using the
# FTOUCH_ prefix, e.g. FTOUCH_LOGGING_LEVEL=DEBUG.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Log format: text, json
  format: text
  # Log destination: stdout, stderr, or a file path
  output: stderr

output:
  # Default format of the show command: table, json, yaml
  format: table

defaults:
  # Never create missing files (equivalent to always passing -c)
  no_create: false
`

// InitConfig writes a sample config file at the default location.
// Returns the path written to.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	return path, InitConfigToPath(path, force)
}

// InitConfigToPath writes a sample config file at the given path.
// Refuses to overwrite an existing file unless force is set.
func InitConfigToPath(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
