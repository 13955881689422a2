package deps

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ConstraintKind classifies a version constraint.
type ConstraintKind string

const (
	KindAny     ConstraintKind = "any"
	KindCaret   ConstraintKind = "caret"
	KindExact   ConstraintKind = "exact"
	KindRange   ConstraintKind = "range"
	KindSDK     ConstraintKind = "sdk"
	KindGit     ConstraintKind = "git"
	KindPath    ConstraintKind = "path"
	KindInvalid ConstraintKind = "invalid"
)

// Classify returns the kind of constraint a dependency declares.
func Classify(d Dependency) ConstraintKind {
	switch d.Source {
	case SourceSDK:
		return KindSDK
	case SourceGit:
		return KindGit
	case SourcePath:
		return KindPath
	}

	c := strings.Trim(strings.TrimSpace(d.Constraint), `"'`)
	switch {
	case c == "" || c == "any":
		return KindAny
	case strings.HasPrefix(c, "^"):
		if validVersion(c[1:]) {
			return KindCaret
		}
		return KindInvalid
	case strings.ContainsAny(c, "<>="):
		for _, part := range strings.Fields(c) {
			if !validVersion(strings.TrimLeft(part, "<>=")) {
				return KindInvalid
			}
		}
		return KindRange
	case validVersion(c):
		return KindExact
	}
	return KindInvalid
}

// validVersion reports whether v is a pub version such as 1.2.3 or 1.2.3+4.
func validVersion(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	return semver.IsValid("v" + v)
}
