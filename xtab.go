// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package xtab provides read-only query facades over the textual dumps
// produced by the X utilities xrdb and xmodmap. The xrdb package answers
// resource lookups, the xmodmap package answers keysym and modifier
// lookups, and the stores and web packages add snapshot persistence and
// a small JSON query server on top of them.
package xtab

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
