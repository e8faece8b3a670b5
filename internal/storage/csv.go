// ABOUTME: CSV-backed store: one flat file, one row per date.
// ABOUTME: Load-mutate-save with last-writer-wins, no locking.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

// reservedColumns lead every CSV header, in this order, before the
// sorted union of field names.
var reservedColumns = []string{"id", "date", "timestamp"}

// CSVStore persists the log as a single CSV file. Writes go through
// load-mutate-save; concurrent writers race with last-writer-wins, an
// accepted limitation of the format.
type CSVStore struct {
	path string
}

// Compile-time check that CSVStore implements Store.
var _ Store = (*CSVStore)(nil)

// NewCSVStore creates a CSV-backed store at path, creating the parent
// directory if needed. The file itself is created on first write.
func NewCSVStore(path string) (*CSVStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &CSVStore{path: path}, nil
}

// Close releases resources. For CSVStore this is a no-op.
func (s *CSVStore) Close() error {
	return nil
}

// Path returns the backing file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads every entry from the file, sorted by date ascending.
// A missing file is an empty log, not an error.
func (s *CSVStore) Load() ([]*models.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var entries []*models.Entry
	for _, row := range records[1:] {
		date := cell(row, "date")
		if date == "" {
			continue
		}
		e := &models.Entry{Date: date, Fields: map[string]string{}}

		if id, err := uuid.Parse(cell(row, "id")); err == nil {
			e.ID = id
		} else {
			e.ID = uuid.New()
		}
		if ts, err := time.Parse(time.RFC3339, cell(row, "timestamp")); err == nil {
			e.Timestamp = ts
		} else if ts, err := time.Parse(models.DateFormat, date); err == nil {
			e.Timestamp = ts
		}

		for name, i := range col {
			if name == "id" || name == "date" || name == "timestamp" {
				continue
			}
			if i < len(row) && row[i] != "" {
				e.Fields[name] = row[i]
			}
		}
		entries = append(entries, e)
	}

	models.SortEntries(entries)
	return entries, nil
}

// Get returns the entry for a date, or ErrNotFound.
func (s *CSVStore) Get(date string) (*models.Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Date == date {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
}

// Upsert creates or updates the entry for a date, overwriting the named
// fields in place and preserving the others.
func (s *CSVStore) Upsert(date string, fields map[string]string) (*models.Entry, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date: %s", date)
	}

	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	var target *models.Entry
	for _, e := range entries {
		if e.Date == date {
			target = e
			break
		}
	}
	if target == nil {
		target = models.NewEntry(date)
		entries = append(entries, target)
		models.SortEntries(entries)
	}
	target.Merge(fields)

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes the entry for a date.
func (s *CSVStore) Delete(date string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return s.save(kept)
}

// save rewrites the whole file with a header covering the union of all
// field names. Writes to a temp file and renames for atomicity against
// readers (not against concurrent writers).
func (s *CSVStore) save(entries []*models.Entry) error {
	fieldSet := map[string]bool{}
	for _, e := range entries {
		for name := range e.Fields {
			fieldSet[name] = true
		}
	}
	fieldNames := make([]string, 0, len(fieldSet))
	for name := range fieldSet {
		fieldNames = append(fieldNames, name)
	}
	sort.Strings(fieldNames)

	header := append(append([]string{}, reservedColumns...), fieldNames...)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".wellness-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		row := make([]string, 0, len(header))
		row = append(row, e.ID.String(), e.Date, e.Timestamp.Format(time.RFC3339))
		for _, name := range fieldNames {
			row = append(row, e.Fields[name])
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// GetAllData retrieves all entries for export.
func (s *CSVStore) GetAllData() (*ExportData, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return newExportData(entries), nil
}

// ImportData merges entries from an export envelope into the file.
func (s *CSVStore) ImportData(data *ExportData) error {
	for _, e := range data.Entries {
		if _, err := s.Upsert(e.Date, e.Fields); err != nil {
			return fmt.Errorf("import entry %s: %w", e.Date, err)
		}
	}
	return nil
}
