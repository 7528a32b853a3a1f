package mechconf

import (
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedMajorVersion is the document major version handled by Parse.
const SupportedMajorVersion = "v1"

// canonicalVersion turns a document version such as "1.0.0" or "1" into a
// canonical semantic version ("v1.0.0"). It reports false for text that is
// not a semantic version.
func canonicalVersion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	if !semver.IsValid(s) {
		return "", false
	}
	return semver.Canonical(s), true
}

// SupportsVersion reports whether a document declaring version v can be
// read by the strict parser.
func SupportsVersion(v string) bool {
	c, ok := canonicalVersion(v)
	return ok && semver.Major(c) == SupportedMajorVersion
}
