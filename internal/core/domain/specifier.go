package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// localSpecifierPrefixes are the specifier schemes that denote a filesystem
// reference rather than a registry version.
var localSpecifierPrefixes = []string{"file:", "link:", "portal:"}

// IsLocalSpecifier reports whether a version specifier denotes a local
// filesystem reference. Projects whose declaration is already local are left
// untouched for the whole session.
func IsLocalSpecifier(spec string) bool {
	for _, prefix := range localSpecifierPrefixes {
		if strings.HasPrefix(spec, prefix) {
			return true
		}
	}
	return strings.HasPrefix(spec, "./") ||
		strings.HasPrefix(spec, "../") ||
		strings.HasPrefix(spec, "/")
}

// IsRegistrySpecifier reports whether a version specifier parses as a semver
// version or range. Used for reporting only; anything that is not local is
// treated as restorable regardless of whether the registry would accept it.
func IsRegistrySpecifier(spec string) bool {
	if IsLocalSpecifier(spec) {
		return false
	}
	_, err := semver.NewConstraint(spec)
	return err == nil
}
