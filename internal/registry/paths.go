// Package registry resolves the on-disk layout of a plugin registry checkout
// and loads its category taxonomy.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Paths captures canonical locations inside a registry checkout.
type Paths struct {
	Root           string
	CategoriesFile string
	PluginsDir     string
}

// Resolve determines the registry root using the optional --registry flag or
// the current working directory when the flag is empty.
func Resolve(registryFlag string) (Paths, error) {
	var (
		root string
		err  error
	)

	if registryFlag != "" {
		root, err = filepath.Abs(registryFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return Paths{}, fmt.Errorf("resolve registry root: %w", err)
	}

	return newPaths(root), nil
}

func newPaths(root string) Paths {
	return Paths{
		Root:           root,
		CategoriesFile: filepath.Join(root, "categories.yaml"),
		PluginsDir:     filepath.Join(root, "plugins"),
	}
}

// Descriptor file extensions accepted, in probe order.
var yamlExts = []string{".yaml", ".yml"}

// PluginFiles returns every plugin descriptor under the plugins directory,
// sorted by path so validation order is deterministic. A missing plugins
// directory yields an empty list, not an error.
func (p Paths) PluginFiles() ([]string, error) {
	entries, err := os.ReadDir(p.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list plugins dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(p.PluginsDir, entry.Name())
		for _, ext := range yamlExts {
			candidate := filepath.Join(dir, "plugin"+ext)
			ok, err := FileExists(candidate)
			if err != nil {
				return nil, err
			}
			if ok {
				files = append(files, candidate)
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// PluginFile returns the descriptor path for a named plugin and whether it
// exists on disk.
func (p Paths) PluginFile(name string) (string, bool) {
	dir := filepath.Join(p.PluginsDir, name)
	for _, ext := range yamlExts {
		candidate := filepath.Join(dir, "plugin"+ext)
		if ok, err := FileExists(candidate); err == nil && ok {
			return candidate, true
		}
	}
	return filepath.Join(dir, "plugin"+yamlExts[0]), false
}

// PluginName returns the plugin directory base name for a descriptor path.
// The directory name is the plugin's implicit identity.
func PluginName(pluginFile string) string {
	return filepath.Base(filepath.Dir(pluginFile))
}

// VersionsDir returns the versions directory sitting next to a plugin
// descriptor.
func VersionsDir(pluginFile string) string {
	return filepath.Join(filepath.Dir(pluginFile), "versions")
}

// VersionFiles returns every version descriptor for one plugin, sorted by
// path. A missing versions directory yields an empty list.
func VersionFiles(pluginFile string) ([]string, error) {
	dir := VersionsDir(pluginFile)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list versions dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// VersionFileFor probes for the descriptor of a named version next to a
// plugin descriptor. When no spelling exists it reports the .yaml candidate
// so callers can name the missing path.
func VersionFileFor(pluginFile, version string) (string, bool) {
	dir := VersionsDir(pluginFile)
	for _, ext := range yamlExts {
		candidate := filepath.Join(dir, version+ext)
		if ok, err := FileExists(candidate); err == nil && ok {
			return candidate, true
		}
	}
	return filepath.Join(dir, version+yamlExts[0]), false
}

// GlobalDir returns the user-level registrylint directory (~/.registrylint).
// It creates the directory if it does not exist.
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".registrylint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns the global logs directory (~/.registrylint/logs).
// Run logs live outside the registry tree so validation never mutates it.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
