package validate

import (
	"path/filepath"
	"strings"

	"registrylint/internal/registry"
	"registrylint/pkg/descriptor"
)

const githubPrefix = "https://github.com/"

// Plugin validates a single plugin descriptor against the category taxonomy
// and its sibling version files. Every rule runs and reports independently;
// only an unparsable document stops early.
func Plugin(path string, cats registry.CategorySet) Report {
	var r Report

	d, err := descriptor.LoadPlugin(path)
	if err != nil {
		r.Errorf("%s: %v", path, err)
		return r
	}

	for _, f := range d.RequiredFields() {
		if descriptor.Present(f.Value) {
			r.Infof("%s: field %q present", path, f.Name)
		} else {
			r.Errorf("%s: required field %q is missing", path, f.Name)
		}
	}

	dirName := registry.PluginName(path)
	if name := descriptor.Normalize(d.Name); name != "" && name != dirName {
		r.Errorf("%s: name %q does not match plugin directory %q", path, name, dirName)
	}

	categories := cleanCategories(d.Categories)
	if len(categories) == 0 {
		r.Warnf("%s: no categories defined", path)
	}
	for _, cat := range categories {
		if cats.Has(cat) {
			r.Infof("%s: category %q is valid", path, cat)
		} else {
			r.Errorf("%s: unknown category %q", path, cat)
		}
	}

	if repo := descriptor.Normalize(d.Repository); repo != "" {
		if strings.HasPrefix(repo, githubPrefix) {
			r.Infof("%s: repository is hosted on GitHub", path)
		} else {
			r.Warnf("%s: repository %q is not hosted on GitHub", path, repo)
		}
	}

	latest := descriptor.Normalize(d.Latest)
	if latest != "" {
		checkVersionPointer(&r, path, "latest", latest)
	}
	if stable := descriptor.Normalize(d.Stable); stable != "" && stable != latest {
		checkVersionPointer(&r, path, "stable", stable)
	}

	return r
}

func checkVersionPointer(r *Report, pluginFile, field, version string) {
	candidate, ok := registry.VersionFileFor(pluginFile, version)
	if !ok {
		r.Errorf("%s: %s points at %q but %s does not exist", pluginFile, field, version, candidate)
		return
	}
	r.Infof("%s: %s version file exists (%s)", pluginFile, field, filepath.Base(candidate))
}

func cleanCategories(raw []string) []string {
	var out []string
	for _, c := range raw {
		if v := descriptor.Normalize(c); v != "" {
			out = append(out, v)
		}
	}
	return out
}
