package design

import "strings"

// ResolveFromPath returns the variant whose home route marker appears as a
// segment of path. The boolean is false when no marker matches, meaning the
// stored variant should apply unchanged.
func ResolveFromPath(path string) (Variant, bool) {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		for _, m := range variants {
			if seg == m.HomeRoute {
				return m.Variant, true
			}
		}
	}
	return "", false
}

// IsHomePath reports whether path is one of the themed home pages.
func IsHomePath(path string) bool {
	_, ok := ResolveFromPath(path)
	return ok
}
