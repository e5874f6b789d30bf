// Package descriptor loads and models the YAML metadata documents that make
// up a plugin registry: one plugin.yaml per plugin plus one <version>.yaml
// per release under the plugin's versions directory.
package descriptor

// Platforms is the fixed set of OS/architecture keys a version descriptor may
// carry checksums for, in report order.
var Platforms = []string{
	"darwin-amd64",
	"darwin-arm64",
	"linux-amd64",
	"linux-arm64",
	"windows-amd64",
}

// RecommendedPlatforms are the platforms a release is expected to cover.
// A missing checksum for one of these is advisory, not fatal.
var RecommendedPlatforms = []string{
	"darwin-arm64",
	"linux-amd64",
}

// TypeBuiltin marks a version that ships with the host application. Builtin
// versions carry no release URL or checksums.
const TypeBuiltin = "builtin"

// Field is a named scalar extracted from a descriptor document.
type Field struct {
	Name  string
	Value string
}

// PluginDescriptor is the top-level metadata for one plugin.
type PluginDescriptor struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Repository  string   `yaml:"repository"`
	License     string   `yaml:"license"`
	Categories  []string `yaml:"categories"`
	Latest      string   `yaml:"latest"`
	Stable      string   `yaml:"stable"`
}

// RequiredFields returns the scalar fields every plugin descriptor must
// define, in validation order.
func (d PluginDescriptor) RequiredFields() []Field {
	return []Field{
		{Name: "name", Value: d.Name},
		{Name: "description", Value: d.Description},
		{Name: "author", Value: d.Author},
		{Name: "repository", Value: d.Repository},
		{Name: "license", Value: d.License},
		{Name: "latest", Value: d.Latest},
		{Name: "stable", Value: d.Stable},
	}
}

// VersionDescriptor is the metadata for one released version of a plugin.
type VersionDescriptor struct {
	Version         string            `yaml:"version"`
	Type            string            `yaml:"type"`
	ReleaseDate     string            `yaml:"releaseDate"`
	MinGlideVersion string            `yaml:"minGlideVersion"`
	ReleaseURL      string            `yaml:"releaseURL"`
	Checksums       map[string]string `yaml:"checksums"`
}

// RequiredFields returns the scalar fields every version descriptor must
// define, in validation order.
func (d VersionDescriptor) RequiredFields() []Field {
	return []Field{
		{Name: "version", Value: d.Version},
		{Name: "releaseDate", Value: d.ReleaseDate},
		{Name: "minGlideVersion", Value: d.MinGlideVersion},
	}
}

// IsBuiltin reports whether the version is exempt from URL and checksum rules.
func (d VersionDescriptor) IsBuiltin() bool {
	return Normalize(d.Type) == TypeBuiltin
}

// Checksum returns the normalized checksum for a platform and whether one is
// present.
func (d VersionDescriptor) Checksum(platform string) (string, bool) {
	v := Normalize(d.Checksums[platform])
	return v, v != ""
}
