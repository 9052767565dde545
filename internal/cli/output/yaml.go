package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes data as two-space-indented YAML to the writer.
func PrintYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
