package validate

import "regexp"

// checksumPattern is the canonical checksum shape: a sha256 prefix and
// exactly 64 lowercase hex digits. Uppercase digests and wrong lengths do
// not count.
var checksumPattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

// ValidChecksum reports whether s is a canonically formatted checksum.
func ValidChecksum(s string) bool {
	return checksumPattern.MatchString(s)
}
