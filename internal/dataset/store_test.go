// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/focusnest/internal/config"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestStoreLoadAndCurrent(t *testing.T) {
	path := writeTempCSV(t, "age,willing_to_subscribe\n25,Yes\n31,No\n")
	store := NewStore(config.DatasetConfig{Path: path})

	if _, ok := store.Current(); ok {
		t.Fatal("Current() = ok before Load()")
	}

	table, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", table.Rows())
	}

	current, ok := store.Current()
	if !ok {
		t.Fatal("Current() = !ok after Load()")
	}
	if current != table {
		t.Error("Current() returned a different snapshot than Load()")
	}
}

func TestStoreLoadFailureKeepsSnapshot(t *testing.T) {
	path := writeTempCSV(t, "age\n25\n")
	store := NewStore(config.DatasetConfig{Path: path})

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Corrupt the file so the next load fails, then confirm the old
	// snapshot stays installed.
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("Load() = nil error for empty file")
	}

	current, ok := store.Current()
	if !ok {
		t.Fatal("Current() = !ok after failed reload")
	}
	if current != first {
		t.Error("failed reload replaced the active snapshot")
	}
}

func TestStoreReplace(t *testing.T) {
	path := writeTempCSV(t, "age\n25\n31\n")
	store := NewStore(config.DatasetConfig{Path: path})

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	uploaded, err := LoadCSV(strings.NewReader("age\n40\n50\n60\n"), "", "upload.csv")
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	prev := store.Replace(uploaded)
	if prev != first {
		t.Error("Replace() did not return the previous snapshot")
	}

	current, _ := store.Current()
	if current.Rows() != 3 {
		t.Errorf("current.Rows() = %d, want 3", current.Rows())
	}
}
