package validate

import (
	"path/filepath"
	"strings"
	"testing"

	"registrylint/internal/registry"
)

var testCategories = registry.CategorySet{"tooling": {}, "vcs": {}}

func TestPlugin_Valid(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")

	r := Plugin(pluginFile, testCategories)
	if errs := reportErrors(r); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if warns := reportWarnings(r); len(warns) != 0 {
		t.Fatalf("expected no warnings, got %v", warns)
	}
}

func TestPlugin_EachRequiredFieldMissing(t *testing.T) {
	for _, field := range []string{"name", "description", "author", "repository", "license", "latest", "stable"} {
		t.Run(field, func(t *testing.T) {
			root := t.TempDir()
			p := writeDockerFixture(t, root)

			fields := validPluginFields()
			delete(fields, field)
			pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
			writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

			r := Plugin(pluginFile, testCategories)
			var named []Finding
			for _, f := range reportErrors(r) {
				if strings.Contains(f.Message, `"`+field+`"`) {
					named = append(named, f)
				}
			}
			if len(named) == 0 {
				t.Fatalf("expected an error naming field %q, got %v", field, r.Findings)
			}
		})
	}
}

func TestPlugin_NullFieldIsMissing(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	fields := validPluginFields()
	fields["author"] = "~"
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

	r := Plugin(pluginFile, testCategories)
	errs := reportErrors(r)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, `"author"`) {
		t.Fatalf("expected single missing-author error, got %v", errs)
	}
}

func TestPlugin_NameMismatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "categories.yaml"), "- id: tooling\n")
	fields := validPluginFields()
	fields["name"] = "bar"
	pluginFile := filepath.Join(root, "plugins", "foo", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))
	writeFile(t, filepath.Join(root, "plugins", "foo", "versions", "3.0.0.yaml"), "version: 3.0.0\n")

	r := Plugin(pluginFile, testCategories)
	errs := reportErrors(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, `"bar"`) || !strings.Contains(errs[0].Message, `"foo"`) {
		t.Errorf("mismatch error should name both sides: %v", errs[0])
	}
}

func TestPlugin_UnknownCategory(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(validPluginFields(), []string{"tooling", "bogus"}))

	r := Plugin(pluginFile, testCategories)
	errs := reportErrors(r)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, `"bogus"`) {
		t.Fatalf("expected single unknown-category error, got %v", errs)
	}
}

func TestPlugin_NoCategories(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(validPluginFields(), nil))

	r := Plugin(pluginFile, testCategories)
	if errs := reportErrors(r); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	warns := reportWarnings(r)
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "no categories") {
		t.Fatalf("expected no-categories warning, got %v", warns)
	}
}

func TestPlugin_EmptyCategoryList(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(validPluginFields(), []string{}))

	r := Plugin(pluginFile, testCategories)
	warns := reportWarnings(r)
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "no categories") {
		t.Fatalf("expected no-categories warning, got %v", warns)
	}
}

func TestPlugin_NonGitHubRepository(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	fields := validPluginFields()
	fields["repository"] = "https://gitlab.com/example/glide-docker"
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

	r := Plugin(pluginFile, testCategories)
	if errs := reportErrors(r); len(errs) != 0 {
		t.Fatalf("non-GitHub repository must not be an error, got %v", errs)
	}
	warns := reportWarnings(r)
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "not hosted on GitHub") {
		t.Fatalf("expected non-GitHub warning, got %v", warns)
	}
}

func TestPlugin_MissingLatestVersionFile(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	fields := validPluginFields()
	fields["latest"] = "9.9.9"
	fields["stable"] = "3.0.0"
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

	r := Plugin(pluginFile, testCategories)
	errs := reportErrors(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "9.9.9.yaml") {
		t.Errorf("error should reference the missing path: %v", errs[0])
	}
}

func TestPlugin_StableEqualsLatest_SingleError(t *testing.T) {
	// Both pointers name the same missing version; the stable check is
	// skipped so the mistake is reported once.
	p := writeDockerFixture(t, t.TempDir())
	fields := validPluginFields()
	fields["latest"] = "9.9.9"
	fields["stable"] = "9.9.9"
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

	r := Plugin(pluginFile, testCategories)
	if errs := reportErrors(r); len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
}

func TestPlugin_DistinctMissingPointers_TwoErrors(t *testing.T) {
	p := writeDockerFixture(t, t.TempDir())
	fields := validPluginFields()
	fields["latest"] = "9.9.9"
	fields["stable"] = "8.8.8"
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")
	writeFile(t, pluginFile, pluginYAML(fields, []string{"tooling"}))

	r := Plugin(pluginFile, testCategories)
	if errs := reportErrors(r); len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
}

func TestPlugin_Unparsable(t *testing.T) {
	root := t.TempDir()
	pluginFile := filepath.Join(root, "plugins", "docker", "plugin.yaml")
	writeFile(t, pluginFile, "name: [unclosed\n")

	r := Plugin(pluginFile, testCategories)
	if len(r.Findings) != 1 || r.Findings[0].Level != LevelError {
		t.Fatalf("unparsable document should yield a single error, got %v", r.Findings)
	}
}

func TestPlugin_EmptyCategorySetFailsEveryReference(t *testing.T) {
	// A missing taxonomy degrades to an empty set: every category reference
	// then fails rather than being skipped.
	p := writeDockerFixture(t, t.TempDir())
	pluginFile := filepath.Join(p.PluginsDir, "docker", "plugin.yaml")

	r := Plugin(pluginFile, registry.CategorySet{})
	errs := reportErrors(r)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, `"tooling"`) {
		t.Fatalf("expected category error against empty set, got %v", errs)
	}
}
