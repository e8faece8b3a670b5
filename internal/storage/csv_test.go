// ABOUTME: Tests for the CSV-backed store.
// ABOUTME: Round-trips entries through a temp file and checks upsert rules.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCSV(t *testing.T) *CSVStore {
	t.Helper()
	s, err := NewCSVStore(filepath.Join(t.TempDir(), "wellness_data.csv"))
	if err != nil {
		t.Fatalf("NewCSVStore() error: %v", err)
	}
	return s
}

func TestCSVLoadMissingFile(t *testing.T) {
	s := newTestCSV(t)
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("missing file should load as empty, got %d entries", len(entries))
	}
}

func TestCSVUpsertAndGet(t *testing.T) {
	s := newTestCSV(t)

	e, err := s.Upsert("2024-06-15", map[string]string{"gym": "1", "run_km": "5"})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if e.Date != "2024-06-15" {
		t.Errorf("Date = %s", e.Date)
	}

	got, err := s.Get("2024-06-15")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if v, _ := got.Get("gym"); v != "1" {
		t.Errorf("gym = %s, want 1", v)
	}
	if got.ID != e.ID {
		t.Errorf("ID changed across reload: %s vs %s", got.ID, e.ID)
	}
}

func TestCSVUpsertOverwritesInPlace(t *testing.T) {
	s := newTestCSV(t)

	first, err := s.Upsert("2024-06-15", map[string]string{"gym": "1", "notes": "keep me"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Upsert("2024-06-15", map[string]string{"gym": "0", "run_km": "3"})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (at most one per date)", len(entries))
	}

	e := entries[0]
	if v, _ := e.Get("gym"); v != "0" {
		t.Errorf("gym = %s, want overwritten 0", v)
	}
	if v, _ := e.Get("notes"); v != "keep me" {
		t.Errorf("notes = %s, want preserved", v)
	}
	if v, _ := e.Get("run_km"); v != "3" {
		t.Errorf("run_km = %s, want 3", v)
	}
	if e.ID != first.ID {
		t.Error("upsert must preserve the entry ID")
	}
}

func TestCSVUpsertInvalidDate(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("15/06/2024", map[string]string{"gym": "1"}); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestCSVGetNotFound(t *testing.T) {
	s := newTestCSV(t)
	_, err := s.Get("2024-06-15")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() = %v, want ErrNotFound", err)
	}
}

func TestCSVDelete(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("2024-06-15", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("2024-06-15"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get("2024-06-15"); !errors.Is(err, ErrNotFound) {
		t.Error("entry should be gone after delete")
	}
	if err := s.Delete("2024-06-15"); !errors.Is(err, ErrNotFound) {
		t.Error("second delete should report not found")
	}
}

func TestCSVLoadSortsAscending(t *testing.T) {
	s := newTestCSV(t)
	for _, date := range []string{"2024-06-17", "2024-06-15", "2024-06-16"} {
		if _, err := s.Upsert(date, map[string]string{"gym": "1"}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-06-15", "2024-06-16", "2024-06-17"}
	for i, w := range want {
		if entries[i].Date != w {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Date, w)
		}
	}
}

func TestCSVHeaderIsUnionOfFields(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("2024-06-15", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Upsert("2024-06-16", map[string]string{"run_km": "5"}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	header := strings.SplitN(string(raw), "\n", 2)[0]
	if header != "id,date,timestamp,gym,run_km" {
		t.Errorf("header = %q", header)
	}
}

func TestCSVSurvivesCommasAndNewlines(t *testing.T) {
	s := newTestCSV(t)
	notes := "slept badly, woke up twice\nstill tired"
	if _, err := s.Upsert("2024-06-15", map[string]string{"notes": notes}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get("2024-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Get("notes"); v != notes {
		t.Errorf("notes = %q, want round-tripped original", v)
	}
}
