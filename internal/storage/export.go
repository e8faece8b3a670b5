// ABOUTME: Export and import envelope for wellness log data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for wellness data.
type ExportData struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Entries    []*models.Entry `json:"entries" yaml:"entries"`
}

func newExportData(entries []*models.Entry) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "wellness",
		Entries:    entries,
	}
}

// filterSince keeps entries dated on or after since. A nil since keeps
// everything; entries with unparseable dates are dropped from filtered output.
func filterSince(entries []*models.Entry, since *time.Time) []*models.Entry {
	if since == nil {
		return entries
	}
	out := make([]*models.Entry, 0, len(entries))
	for _, e := range entries {
		d, err := time.Parse(models.DateFormat, e.Date)
		if err != nil || d.Before(*since) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ExportJSON serializes the store to indented JSON, optionally limited
// to entries on or after since.
func ExportJSON(s Store, since *time.Time) ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	data.Entries = filterSince(data.Entries, since)
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ExportYAML serializes the store to YAML, optionally limited to
// entries on or after since.
func ExportYAML(s Store, since *time.Time) ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	data.Entries = filterSince(data.Entries, since)
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ExportMarkdown renders the log as a long-format Markdown table,
// optionally limited to entries on or after since.
func ExportMarkdown(s Store, since *time.Time) (string, error) {
	entries, err := s.Load()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# Wellness Log\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString("| Date | Field | Value |\n")
	b.WriteString("|------|-------|-------|\n")

	for _, e := range filterSince(entries, since) {
		for _, name := range e.FieldNames() {
			value := strings.ReplaceAll(e.Fields[name], "\n", " ")
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", e.Date, name, value))
		}
	}

	return b.String(), nil
}

// ImportJSON parses an export envelope and merges it into the store.
func ImportJSON(s Store, data []byte) error {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("parse import: %w", err)
	}
	return s.ImportData(&export)
}
