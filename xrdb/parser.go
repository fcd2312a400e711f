// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xrdb

import (
	"strings"
)

// parseQuery folds the dump into a table one line at a time. Later
// lines win, matching the top-to-bottom precedence of the dump. Lines
// that fail the format are skipped, never fatal: the dump grammar is
// not guaranteed stable across xrdb versions and partial data beats
// total failure.
func parseQuery(input string) map[resourceKey]string {
	table := make(map[resourceKey]string)
	lines := strings.Split(input, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		// a value ending in a backslash continues on the next
		// physical line; the marker itself is not part of the value
		for strings.HasSuffix(line, `\`) {
			line = strings.TrimSuffix(line, `\`)
			if i+1 >= len(lines) {
				break
			}
			i++
			line += lines[i]
		}
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		table[key] = value
	}
	return table
}

// parseLine splits one logical line into (component, property) and
// value. It reports false for blank lines, comments, lines without the
// `:` separator, and resource names without a `.` or `*` qualifier
// (component and property cannot be disambiguated without one).
func parseLine(line string) (resourceKey, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "!") {
		return resourceKey{}, "", false
	}
	name, value, found := strings.Cut(line, ":")
	if !found {
		return resourceKey{}, "", false
	}
	// xrdb emits both `.` (exact) and `*` (loose) qualifiers; we treat
	// them as equivalent and split on whichever comes last
	cut := strings.LastIndexAny(name, ".*")
	if cut < 0 {
		return resourceKey{}, "", false
	}
	key := resourceKey{
		component: name[:cut],
		property:  strings.TrimSpace(name[cut+1:]),
	}
	return key, strings.TrimSpace(value), true
}
