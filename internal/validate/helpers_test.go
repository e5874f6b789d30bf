package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"registrylint/internal/registry"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

const testChecksum = "sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

// validPluginFields are the scalar lines of a fully valid plugin descriptor
// for a plugin named docker with a single 3.0.0 release.
func validPluginFields() map[string]string {
	return map[string]string{
		"name":        "docker",
		"description": "Docker image helpers",
		"author":      "Jane Doe",
		"repository":  "https://github.com/example/glide-docker",
		"license":     "MIT",
		"latest":      "3.0.0",
		"stable":      "3.0.0",
	}
}

// pluginYAML renders fields plus a categories block into a descriptor body.
func pluginYAML(fields map[string]string, categories []string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, fields[k])
	}
	if categories != nil {
		b.WriteString("categories:\n")
		for _, c := range categories {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}
	return b.String()
}

// writeDockerFixture lays down a fully valid docker plugin (descriptor,
// version file, taxonomy) under root and returns its paths.
func writeDockerFixture(t *testing.T, root string) registry.Paths {
	t.Helper()

	writeFile(t, filepath.Join(root, "categories.yaml"), "- id: tooling\n  name: Tooling\n- id: vcs\n")
	writeFile(t, filepath.Join(root, "plugins", "docker", "plugin.yaml"),
		pluginYAML(validPluginFields(), []string{"tooling"}))
	writeFile(t, filepath.Join(root, "plugins", "docker", "versions", "3.0.0.yaml"),
		fmt.Sprintf(`version: 3.0.0
releaseDate: 2024-05-01
minGlideVersion: 1.2.0
releaseURL: https://github.com/example/glide-docker/releases/download/3.0.0/docker.tar.gz
checksums:
  linux-amd64: %s
  darwin-arm64: %s
`, testChecksum, testChecksum))

	p, err := registry.Resolve(root)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func findingsByLevel(findings []Finding, level Level) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Level == level {
			out = append(out, f)
		}
	}
	return out
}

func reportErrors(r Report) []Finding {
	return findingsByLevel(r.Findings, LevelError)
}

func reportWarnings(r Report) []Finding {
	return findingsByLevel(r.Findings, LevelWarning)
}
