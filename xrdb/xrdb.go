// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package xrdb is a read-only facade over the X resource database as
// dumped by `xrdb -query`. A facade owns one in-memory table built from
// a single dump; every Read replaces the table wholesale. The wildcard
// resolution of the resource database itself is assumed to have been
// applied by xrdb before the dump reaches us, so Query is an exact match
// with no prefix or wildcard semantics.
//
// An Xrdb is not safe for concurrent use. Callers that need concurrent
// queries must serialize Read against Query themselves.
package xrdb

import (
	"sort"

	"github.com/mdhender/xtab/invoke"
	"github.com/spf13/afero"
)

// Entry is one resource from the dump, the parsed form of a
// `component.property: value` line.
type Entry struct {
	Component string `json:"component"`
	Property  string `json:"property"`
	Value     string `json:"value"`
}

type resourceKey struct {
	component string
	property  string
}

// Xrdb holds the most recently read resource table.
type Xrdb struct {
	table map[resourceKey]string
}

// New returns a facade with an empty table. No I/O happens until Read.
func New() *Xrdb {
	return &Xrdb{table: make(map[resourceKey]string)}
}

// Read invokes `xrdb -query` and rebuilds the table from its output.
// On an invocation error the prior table is left untouched. A dump with
// no parsable lines is not an error; it yields an empty table.
func (x *Xrdb) Read() error {
	output, err := invoke.Output("xrdb", "-query")
	if err != nil {
		return err
	}
	x.table = parseQuery(output)
	return nil
}

// ReadFile rebuilds the table from a saved dump file instead of
// invoking xrdb. Used for offline queries and tests.
func (x *Xrdb) ReadFile(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	x.table = parseQuery(string(data))
	return nil
}

// Query returns the value for an exact, case-sensitive match on
// component and property. The second return is false when no entry
// matches; a miss is never an error.
func (x *Xrdb) Query(component, property string) (string, bool) {
	value, ok := x.table[resourceKey{component: component, property: property}]
	return value, ok
}

// Len returns the number of entries in the current table. Callers that
// need to detect a degraded parse (the parser silently skips malformed
// lines) can compare sizes across reads.
func (x *Xrdb) Len() int {
	return len(x.table)
}

// Entries returns the table as a slice sorted by component then
// property. The slice is freshly allocated; mutating it does not touch
// the table.
func (x *Xrdb) Entries() []Entry {
	entries := make([]Entry, 0, len(x.table))
	for key, value := range x.table {
		entries = append(entries, Entry{Component: key.component, Property: key.property, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Component != entries[j].Component {
			return entries[i].Component < entries[j].Component
		}
		return entries[i].Property < entries[j].Property
	})
	return entries
}
