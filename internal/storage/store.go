// ABOUTME: Store interface for wellness log persistence.
// ABOUTME: Defines the contract shared by the CSV, SQLite, and Charm backends.
package storage

import (
	"errors"

	"github.com/harperreed/wellness/internal/models"
)

// ErrNotFound marks a lookup for a date with no entry.
var ErrNotFound = errors.New("entry not found")

// Store defines the storage interface for the daily wellness log.
// All backends guarantee at most one entry per date: Upsert overwrites
// the named fields of an existing entry in place and preserves the rest.
type Store interface {
	// Load returns every entry, sorted by date ascending.
	Load() ([]*models.Entry, error)

	// Get returns the entry for a date, or ErrNotFound.
	Get(date string) (*models.Entry, error)

	// Upsert creates or updates the entry for a date and returns it.
	Upsert(date string, fields map[string]string) (*models.Entry, error)

	// Delete removes the entry for a date, or returns ErrNotFound.
	Delete(date string) error

	// GetAllData retrieves all data for export.
	GetAllData() (*ExportData, error)

	// ImportData imports entries from an export envelope.
	ImportData(data *ExportData) error

	// Close releases backend resources.
	Close() error
}
