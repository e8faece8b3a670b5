// ABOUTME: Entry CRUD operations for SQLite storage.
// ABOUTME: Implements Store interface methods over entries/entry_fields.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/models"
)

// Load retrieves every entry, sorted by date ascending.
func (d *DB) Load() ([]*models.Entry, error) {
	rows, err := d.db.Query(`
		SELECT id, date, timestamp
		FROM entries
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	byID := map[string]*models.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		byID[e.ID.String()] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	frows, err := d.db.Query(`SELECT entry_id, name, value FROM entry_fields`)
	if err != nil {
		return nil, fmt.Errorf("list entry fields: %w", err)
	}
	defer frows.Close()

	for frows.Next() {
		var entryID, name, value string
		if err := frows.Scan(&entryID, &name, &value); err != nil {
			return nil, fmt.Errorf("scan entry field: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.Set(name, value)
		}
	}
	if err := frows.Err(); err != nil {
		return nil, fmt.Errorf("list entry fields: %w", err)
	}

	return entries, nil
}

// Get retrieves the entry for a date, or ErrNotFound.
func (d *DB) Get(date string) (*models.Entry, error) {
	row := d.db.QueryRow(`
		SELECT id, date, timestamp
		FROM entries
		WHERE date = ?
	`, date)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
		}
		return nil, err
	}

	rows, err := d.db.Query(`SELECT name, value FROM entry_fields WHERE entry_id = ?`, e.ID.String())
	if err != nil {
		return nil, fmt.Errorf("get entry fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan entry field: %w", err)
		}
		e.Set(name, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get entry fields: %w", err)
	}

	return e, nil
}

// Upsert creates or updates the entry for a date inside one transaction.
// Named fields overwrite in place; unnamed fields are preserved.
func (d *DB) Upsert(date string, fields map[string]string) (*models.Entry, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date: %s", date)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	e := models.NewEntry(date)
	var existingID string
	err = tx.QueryRow(`SELECT id FROM entries WHERE date = ?`, date).Scan(&existingID)
	switch {
	case err == nil:
		if id, perr := uuid.Parse(existingID); perr == nil {
			e.ID = id
		}
		_, err = tx.Exec(`UPDATE entries SET timestamp = ? WHERE id = ?`,
			e.Timestamp.Format(time.RFC3339), existingID)
		if err != nil {
			return nil, fmt.Errorf("update entry: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.Exec(`INSERT INTO entries (id, date, timestamp) VALUES (?, ?, ?)`,
			e.ID.String(), e.Date, e.Timestamp.Format(time.RFC3339))
		if err != nil {
			return nil, fmt.Errorf("insert entry: %w", err)
		}
	default:
		return nil, fmt.Errorf("find entry: %w", err)
	}

	for name, value := range fields {
		_, err = tx.Exec(`
			INSERT INTO entry_fields (entry_id, name, value) VALUES (?, ?, ?)
			ON CONFLICT (entry_id, name) DO UPDATE SET value = excluded.value
		`, e.ID.String(), name, value)
		if err != nil {
			return nil, fmt.Errorf("upsert field %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert: %w", err)
	}

	return d.Get(date)
}

// Delete removes the entry for a date and its fields.
func (d *DB) Delete(date string) error {
	result, err := d.db.Exec(`DELETE FROM entries WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	return nil
}

// GetAllData retrieves all entries for export.
func (d *DB) GetAllData() (*ExportData, error) {
	entries, err := d.Load()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return newExportData(entries), nil
}

// ImportData merges entries from an export envelope.
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Entries {
		if _, err := d.Upsert(e.Date, e.Fields); err != nil {
			return fmt.Errorf("import entry %s: %w", e.Date, err)
		}
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanEntry.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry reads one entry row without its fields.
func scanEntry(s scanner) (*models.Entry, error) {
	var idStr, date, ts string
	if err := s.Scan(&idStr, &date, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	e := &models.Entry{Date: date, Fields: map[string]string{}}
	if id, err := uuid.Parse(idStr); err == nil {
		e.ID = id
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		e.Timestamp = t
	}
	return e, nil
}
