package descriptor

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPlugin reads and decodes a plugin descriptor document. Unknown keys
// are tolerated; a YAML syntax error is returned as-is for the caller to
// report.
func LoadPlugin(path string) (PluginDescriptor, error) {
	var d PluginDescriptor
	if err := loadYAML(path, &d); err != nil {
		return PluginDescriptor{}, err
	}
	return d, nil
}

// LoadVersion reads and decodes a version descriptor document.
func LoadVersion(path string) (VersionDescriptor, error) {
	var d VersionDescriptor
	if err := loadYAML(path, &d); err != nil {
		return VersionDescriptor{}, err
	}
	return d, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read descriptor: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse descriptor: %w", err)
	}
	return nil
}

// Normalize collapses the null spellings YAML authors reach for into the
// empty string: explicit null, the bare or quoted tilde, the literal "null",
// surrounding quote characters, and whitespace. A normalized empty value is
// indistinguishable from an absent field, so every rule treats "explicitly
// null" and "omitted" the same way.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	switch s {
	case "~", "null", "Null", "NULL":
		return ""
	}
	return s
}

// Present reports whether a scalar survives normalization.
func Present(s string) bool {
	return Normalize(s) != ""
}
