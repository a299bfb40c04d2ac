package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseSteps(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 1},
		{raw: " 3 ", want: 3},
		{raw: "0", wantErr: true},
		{raw: "-2", wantErr: true},
		{raw: "two", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseSteps(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseSteps(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseSteps(%q) = %d, %v; want %d", tc.raw, got, err, tc.want)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if _, err := parseVersion(""); err == nil {
		t.Fatalf("expected error for missing version")
	}
	if v, err := parseVersion("1771776034"); err != nil || v != 1771776034 {
		t.Fatalf("unexpected version: %d, %v", v, err)
	}
	if _, err := parseTarget("-1"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestCreateMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1771776034, 0)

	files, err := createMigrationFiles(dir, []string{"Add", "market notes!"}, now)
	if err != nil {
		t.Fatalf("create files: %v", err)
	}
	want := []string{
		filepath.Join(dir, "1771776034_add_market_notes.up.sql"),
		filepath.Join(dir, "1771776034_add_market_notes.down.sql"),
	}
	for i, file := range want {
		if files[i] != file {
			t.Fatalf("unexpected file name: %s", files[i])
		}
		if _, err := os.Stat(file); err != nil {
			t.Fatalf("expected %s to exist: %v", file, err)
		}
	}

	if _, err := createMigrationFiles(dir, []string{"add market notes"}, now); err == nil {
		t.Fatalf("expected error when files already exist")
	}
	if _, err := createMigrationFiles(dir, []string{"  ", "!!"}, now); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
