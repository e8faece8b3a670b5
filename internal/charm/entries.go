// ABOUTME: Entry CRUD operations for Charm KV storage.
// ABOUTME: Implements the Store contract with date-keyed JSON values.
package charm

import (
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/storage"
)

// Compile-time check that Client implements Store.
var _ storage.Store = (*Client)(nil)

func entryKey(date string) string {
	return EntryPrefix + date
}

// Load retrieves every entry, sorted by date ascending.
func (c *Client) Load() ([]*models.Entry, error) {
	allData, err := c.listByPrefix(EntryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	var entries []*models.Entry
	for _, data := range allData {
		e, err := unmarshalJSON[models.Entry](data)
		if err != nil {
			continue // Skip invalid entries
		}
		entries = append(entries, e)
	}

	models.SortEntries(entries)
	return entries, nil
}

// Get retrieves the entry for a date, or storage.ErrNotFound.
func (c *Client) Get(date string) (*models.Entry, error) {
	ok, err := c.has(entryKey(date))
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}

	data, err := c.get(entryKey(date))
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	e, err := unmarshalJSON[models.Entry](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	return e, nil
}

// Upsert creates or updates the entry for a date.
func (c *Client) Upsert(date string, fields map[string]string) (*models.Entry, error) {
	if !models.ValidDate(date) {
		return nil, fmt.Errorf("invalid date: %s", date)
	}

	e, err := c.Get(date)
	if err != nil {
		e = models.NewEntry(date)
	}
	e.Merge(fields)

	data, err := marshalJSON(e)
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}
	if err := c.set(entryKey(date), data); err != nil {
		return nil, fmt.Errorf("store entry: %w", err)
	}
	return e, nil
}

// Delete removes the entry for a date.
func (c *Client) Delete(date string) error {
	ok, err := c.has(entryKey(date))
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, date)
	}
	if err := c.delete(entryKey(date)); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// GetAllData retrieves all entries for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	entries, err := c.Load()
	if err != nil {
		return nil, err
	}
	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "wellness",
		Entries:    entries,
	}, nil
}

// ImportData merges entries from an export envelope.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, e := range data.Entries {
		if _, err := c.Upsert(e.Date, e.Fields); err != nil {
			return fmt.Errorf("import entry %s: %w", e.Date, err)
		}
	}
	return nil
}
