// ABOUTME: Entry model for the daily wellness log.
// ABOUTME: One date-keyed row of tracked metrics with raw string fields.
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the canonical calendar-date layout used throughout.
const DateFormat = "2006-01-02"

// Entry represents one day's wellness log. Fields hold raw stored values
// keyed by field name; coercion to typed values happens in the schema layer.
type Entry struct {
	ID        uuid.UUID         `json:"id" yaml:"id"`
	Date      string            `json:"date" yaml:"date"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Fields    map[string]string `json:"fields" yaml:"fields"`
}

// NewEntry creates a new Entry for the given date with a generated UUID.
// The timestamp is set to midnight of the entry date so same-date upserts
// stay stable regardless of when they were written.
func NewEntry(date string) *Entry {
	ts, err := time.Parse(DateFormat, date)
	if err != nil {
		ts = time.Now()
	}
	return &Entry{
		ID:        uuid.New(),
		Date:      date,
		Timestamp: ts,
		Fields:    map[string]string{},
	}
}

// Get returns the raw value for a field and whether it is present.
// Empty strings count as absent; the CSV backend cannot distinguish
// an empty cell from a missing one.
func (e *Entry) Get(name string) (string, bool) {
	v, ok := e.Fields[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Set stores a raw field value, allocating the map if needed.
func (e *Entry) Set(name, value string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[name] = value
}

// Merge applies updates onto the entry, overwriting named fields in place
// and preserving the rest. The timestamp is refreshed from the entry date.
func (e *Entry) Merge(updates map[string]string) {
	for k, v := range updates {
		e.Set(k, v)
	}
	if ts, err := time.Parse(DateFormat, e.Date); err == nil {
		e.Timestamp = ts
	}
}

// FieldNames returns the entry's field names in sorted order.
func (e *Entry) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// ShiftDay returns the date delta days away from day, in YYYY-MM-DD form.
// A malformed input is returned unchanged.
func ShiftDay(day string, delta int) string {
	t, err := time.Parse(DateFormat, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, delta).Format(DateFormat)
}

// SortEntries orders entries by date ascending.
func SortEntries(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
