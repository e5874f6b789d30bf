package validate

import (
	"path/filepath"
	"strings"

	"registrylint/pkg/descriptor"
)

// Version validates a single version descriptor. Builtin versions take a
// terminal branch after the identity checks: they carry no release URL or
// checksums, so those rules are skipped entirely.
func Version(path string, opts Options) Report {
	var r Report

	d, err := descriptor.LoadVersion(path)
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

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if version := descriptor.Normalize(d.Version); version != "" && version != base {
		r.Errorf("%s: version %q does not match file name %q", path, version, base)
	}

	if d.IsBuiltin() {
		r.Infof("%s: builtin version, skipping checksum and URL validation", path)
		return r
	}

	if releaseURL := descriptor.Normalize(d.ReleaseURL); releaseURL == "" {
		r.Errorf("%s: required field %q is missing", path, "releaseURL")
	} else {
		r.Infof("%s: field %q present", path, "releaseURL")
		if opts.CheckURLs && opts.Prober != nil {
			if opts.Prober.Probe(opts.Context(), releaseURL) {
				r.Infof("%s: release URL is reachable", path)
			} else {
				r.Errorf("%s: release URL %q is unreachable", path, releaseURL)
			}
		}
	}

	found := false
	for _, platform := range descriptor.Platforms {
		sum, ok := d.Checksum(platform)
		if !ok {
			continue
		}
		found = true
		if ValidChecksum(sum) {
			r.Infof("%s: checksum for %s is well formed", path, platform)
		} else {
			r.Errorf("%s: checksum for %s must match sha256:<64 lowercase hex chars>", path, platform)
		}
	}
	if !found {
		r.Errorf("%s: no checksums defined", path)
	}

	for _, platform := range descriptor.RecommendedPlatforms {
		if _, ok := d.Checksum(platform); !ok {
			r.Warnf("%s: no checksum for recommended platform %s", path, platform)
		}
	}

	return r
}
