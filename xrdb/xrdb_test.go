// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package xrdb_test

import (
	"errors"
	"testing"

	"github.com/mdhender/xtab/invoke"
	"github.com/mdhender/xtab/xrdb"
	"github.com/spf13/afero"
)

func writeDump(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dump: %v", err)
	}
}

func TestQueryHitAndMiss(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDump(t, fs, "/xrdb.out", "dwm.color1:\t#282828\n")

	resources := xrdb.New()
	if err := resources.ReadFile(fs, "/xrdb.out"); err != nil {
		t.Fatalf("read: %v", err)
	}

	value, ok := resources.Query("dwm", "color1")
	if !ok {
		t.Fatal("query dwm.color1: want hit, got miss")
	}
	if value != "#282828" {
		t.Errorf("value: want %q, got %q", "#282828", value)
	}

	if _, ok := resources.Query("dwm", "color2"); ok {
		t.Error("query dwm.color2: want miss, got hit")
	}
	if _, ok := resources.Query("DWM", "color1"); ok {
		t.Error("query is case-sensitive: want miss for DWM")
	}
}

func TestQueryBeforeRead(t *testing.T) {
	resources := xrdb.New()
	if _, ok := resources.Query("dwm", "color1"); ok {
		t.Error("query on empty table: want miss")
	}
	if resources.Len() != 0 {
		t.Errorf("len: want 0, got %d", resources.Len())
	}
}

func TestReadReplacesTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDump(t, fs, "/first.out", "dwm.color1: #282828\ndwm.color2: #ebdbb2\n")
	writeDump(t, fs, "/second.out", "dwm.color1: #000000\n")

	resources := xrdb.New()
	if err := resources.ReadFile(fs, "/first.out"); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if err := resources.ReadFile(fs, "/second.out"); err != nil {
		t.Fatalf("second read: %v", err)
	}

	// full rebuild, never a merge: color2 must be gone
	if _, ok := resources.Query("dwm", "color2"); ok {
		t.Error("query dwm.color2: want miss after rebuild")
	}
	if value, _ := resources.Query("dwm", "color1"); value != "#000000" {
		t.Errorf("color1: want %q, got %q", "#000000", value)
	}
	if resources.Len() != 1 {
		t.Errorf("len: want 1, got %d", resources.Len())
	}
}

func TestReadIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDump(t, fs, "/xrdb.out", "dwm.color1: #282828\ndwm.color2: #ebdbb2\n")

	resources := xrdb.New()
	for i := 0; i < 2; i++ {
		if err := resources.ReadFile(fs, "/xrdb.out"); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if resources.Len() != 2 {
			t.Fatalf("read %d: len: want 2, got %d", i, resources.Len())
		}
		if value, _ := resources.Query("dwm", "color1"); value != "#282828" {
			t.Errorf("read %d: color1: want %q, got %q", i, "#282828", value)
		}
	}
}

func TestEntriesSorted(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDump(t, fs, "/xrdb.out", "st.font: monospace\ndwm.color1: #282828\ndwm.color0: #1d2021\n")

	resources := xrdb.New()
	if err := resources.ReadFile(fs, "/xrdb.out"); err != nil {
		t.Fatalf("read: %v", err)
	}

	entries := resources.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries: want 3, got %d", len(entries))
	}
	want := []xrdb.Entry{
		{Component: "dwm", Property: "color0", Value: "#1d2021"},
		{Component: "dwm", Property: "color1", Value: "#282828"},
		{Component: "st", Property: "font", Value: "monospace"},
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Errorf("entries[%d]: want %+v, got %+v", i, want[i], entry)
		}
	}
}

func TestFailedReadLeavesTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDump(t, fs, "/xrdb.out", "dwm.color1: #282828\n")

	resources := xrdb.New()
	if err := resources.ReadFile(fs, "/xrdb.out"); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := resources.ReadFile(fs, "/does-not-exist"); err == nil {
		t.Fatal("read missing file: want error")
	}

	// the failed read must not have touched the prior table
	if value, ok := resources.Query("dwm", "color1"); !ok || value != "#282828" {
		t.Errorf("color1 after failed read: want hit %q, got %q (%v)", "#282828", value, ok)
	}

	// a failed invocation leaves the table alone too; Read only runs
	// here when xrdb itself is absent so the error is deterministic
	if _, err := invoke.Output("xrdb", "-query"); err != nil {
		err := resources.Read()
		var invErr *invoke.Error
		if !errors.As(err, &invErr) {
			t.Fatalf("read: want *invoke.Error, got %T", err)
		}
		if value, ok := resources.Query("dwm", "color1"); !ok || value != "#282828" {
			t.Errorf("color1 after failed invoke: want hit, got %q (%v)", value, ok)
		}
	}
}
