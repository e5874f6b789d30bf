package validate

import (
	"context"
	"fmt"

	"registrylint/internal/registry"
)

// Prober reports whether a URL answers with an acceptable HTTP status.
// Satisfied by *netcheck.Checker; injected so tests can stub the network.
type Prober interface {
	Probe(ctx context.Context, url string) bool
}

// Options controls a validation run. The zero value validates offline.
type Options struct {
	CheckURLs bool
	Prober    Prober
	Ctx       context.Context
}

// Context returns the run context, defaulting to context.Background.
func (o Options) Context() context.Context {
	if o.Ctx != nil {
		return o.Ctx
	}
	return context.Background()
}

// FileReport pairs one descriptor path with its findings.
type FileReport struct {
	Path     string    `json:"path"`
	Findings []Finding `json:"findings"`
}

// Summary aggregates a whole-registry run.
type Summary struct {
	Plugins  int `json:"plugins"`
	Versions int `json:"versions"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

type collector struct {
	reports []FileReport
	summary Summary
}

func (c *collector) record(path string, r Report) {
	c.reports = append(c.reports, FileReport{Path: path, Findings: r.Findings})
	c.summary.Errors += r.Errors()
	c.summary.Warnings += r.Warnings()
}

// Run validates every descriptor under the registry root in deterministic,
// sorted order and returns per-file reports plus the aggregate summary.
// I/O problems while listing directories surface as the returned error; rule
// outcomes never do.
func Run(paths registry.Paths, opts Options) ([]FileReport, Summary, error) {
	var c collector

	var top Report
	taxonomyExists, err := registry.FileExists(paths.CategoriesFile)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("stat taxonomy file: %w", err)
	}
	if !taxonomyExists {
		top.Errorf("%s: category taxonomy not found", paths.CategoriesFile)
	}
	cats := registry.LoadCategories(paths.CategoriesFile)

	pluginFiles, err := paths.PluginFiles()
	if err != nil {
		return nil, Summary{}, err
	}
	if len(pluginFiles) == 0 {
		top.Warnf("%s: no plugin descriptors found", paths.PluginsDir)
	}
	if len(top.Findings) > 0 {
		c.record(paths.Root, top)
	}

	for _, pluginFile := range pluginFiles {
		if err := c.validatePlugin(pluginFile, cats, opts); err != nil {
			return nil, Summary{}, err
		}
	}

	return c.reports, c.summary, nil
}

// RunPlugin validates one named plugin and its versions using the same rules
// as a full run.
func RunPlugin(paths registry.Paths, name string, opts Options) ([]FileReport, Summary, error) {
	pluginFile, ok := paths.PluginFile(name)
	if !ok {
		return nil, Summary{}, fmt.Errorf("plugin %q not found under %s", name, paths.PluginsDir)
	}

	var c collector
	cats := registry.LoadCategories(paths.CategoriesFile)
	if err := c.validatePlugin(pluginFile, cats, opts); err != nil {
		return nil, Summary{}, err
	}
	return c.reports, c.summary, nil
}

func (c *collector) validatePlugin(pluginFile string, cats registry.CategorySet, opts Options) error {
	c.summary.Plugins++
	c.record(pluginFile, Plugin(pluginFile, cats))

	versionFiles, err := registry.VersionFiles(pluginFile)
	if err != nil {
		return err
	}
	if len(versionFiles) == 0 {
		var r Report
		r.Warnf("%s: no version descriptors found", registry.VersionsDir(pluginFile))
		c.record(registry.VersionsDir(pluginFile), r)
		return nil
	}

	for _, versionFile := range versionFiles {
		c.summary.Versions++
		c.record(versionFile, Version(versionFile, opts))
	}
	return nil
}
