// Package pathenv reads the process environment's executable search path
// and home directory as opaque strings and resolves command names against
// them. It never inspects the environment beyond PATH and HOME.
package pathenv

import (
	"os"
	"path/filepath"
	"strings"
)

// Lookup searches path (a colon-separated PATH-style string) for an
// executable regular file named name. Empty segments are ignored. The first
// match wins; its full path is returned.
func Lookup(path, name string) (string, bool) {
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Mode()&0o111 != 0 {
			return candidate, true
		}
	}
	return "", false
}

// All returns every non-directory entry name with an execute bit visible
// across every segment of path, deduplicated, for use as a tab-completion
// catalog. Symlinks are not followed, so every symlink entry is included.
// Order is PATH order, first occurrence wins.
func All(path string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			name := entry.Name()
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ExpandHome expands a cd-style target starting with "~" using home. A bare
// "~" becomes home; "~/rest" becomes home joined with rest. Targets that
// don't start with "~" are returned unchanged.
func ExpandHome(target, home string) string {
	if target == "~" {
		return home
	}
	if strings.HasPrefix(target, "~/") {
		return filepath.Join(home, strings.TrimPrefix(target, "~/"))
	}
	return target
}
