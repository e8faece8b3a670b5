// ABOUTME: Tests for export/import across store backends.
// ABOUTME: Round-trips JSON envelopes and checks Markdown rendering.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := newTestCSV(t)
	if _, err := src.Upsert("2024-06-15", map[string]string{"gym": "1", "notes": "good day"}); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Upsert("2024-06-16", map[string]string{"run_km": "5"}); err != nil {
		t.Fatal(err)
	}

	out, err := ExportJSON(src, nil)
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var envelope ExportData
	if err := json.Unmarshal(out, &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if envelope.Version != "1.0" || envelope.Tool != "wellness" {
		t.Errorf("envelope = %s/%s", envelope.Version, envelope.Tool)
	}
	if len(envelope.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(envelope.Entries))
	}

	// Import into a fresh SQLite store: backends share the envelope.
	dst := newTestDB(t)
	if err := ImportJSON(dst, out); err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}

	got, err := dst.Get("2024-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Get("notes"); v != "good day" {
		t.Errorf("notes = %q after cross-backend import", v)
	}
}

func TestExportYAML(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("2024-06-15", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}

	out, err := ExportYAML(s, nil)
	if err != nil {
		t.Fatalf("ExportYAML() error: %v", err)
	}
	if !strings.Contains(string(out), "2024-06-15") {
		t.Error("YAML export should contain the entry date")
	}
}

func TestExportJSONSince(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("2023-01-01", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Upsert("2024-06-15", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := ExportJSON(s, &since)
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var envelope ExportData
	if err := json.Unmarshal(out, &envelope); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(envelope.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 after since filter", len(envelope.Entries))
	}
	if envelope.Entries[0].Date != "2024-06-15" {
		t.Errorf("kept entry = %s, want 2024-06-15", envelope.Entries[0].Date)
	}
}

func TestExportMarkdown(t *testing.T) {
	s := newTestCSV(t)
	if _, err := s.Upsert("2024-06-15", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Upsert("2023-01-01", map[string]string{"gym": "1"}); err != nil {
		t.Fatal(err)
	}

	md, err := ExportMarkdown(s, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown() error: %v", err)
	}
	if !strings.Contains(md, "| 2024-06-15 | gym | 1 |") {
		t.Errorf("markdown missing entry row:\n%s", md)
	}

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	md, err = ExportMarkdown(s, &since)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(md, "2023-01-01") {
		t.Error("--since filter should drop older entries")
	}
}

func TestImportJSONMalformed(t *testing.T) {
	s := newTestCSV(t)
	if err := ImportJSON(s, []byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
