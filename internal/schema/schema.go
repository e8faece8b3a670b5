// ABOUTME: Schema document loading for the wellness log.
// ABOUTME: YAML document describing app settings, form blocks, and stats.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the declarative configuration consumed by the form and
// chart layers. Loaded once at startup and immutable afterwards.
type Document struct {
	App    App     `yaml:"app"`
	Blocks []Block `yaml:"blocks"`
	Stats  []Stat  `yaml:"stats"`
}

// App holds top-level application settings.
type App struct {
	Title    string `yaml:"title,omitempty"`
	DataFile string `yaml:"data_file,omitempty"`
}

// Block groups fields into one save unit of the entry form.
type Block struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	Expanded  bool    `yaml:"expanded,omitempty"`
	SaveLabel string  `yaml:"save_label,omitempty"`
	NCols     int     `yaml:"n_cols,omitempty"`
	Fields    []Field `yaml:"fields"`
}

// Stat describes one chart over a single metric column.
type Stat struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label,omitempty"`
	Column      string   `yaml:"column"`
	PlotType    string   `yaml:"plot_type,omitempty"` // "time_series" or "calendar"
	Description string   `yaml:"description,omitempty"`
	Threshold   *float64 `yaml:"threshold,omitempty"`
}

// Load reads and parses a schema document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &doc, nil
}

// LoadOrDefault loads the schema at path, falling back to the built-in
// default document when the file does not exist.
func LoadOrDefault(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Field looks up a field definition by name across all blocks.
func (d *Document) Field(name string) (*Field, bool) {
	for bi := range d.Blocks {
		for fi := range d.Blocks[bi].Fields {
			if d.Blocks[bi].Fields[fi].Name == name {
				return &d.Blocks[bi].Fields[fi], true
			}
		}
	}
	return nil, false
}

// Stat looks up a chart definition by ID.
func (d *Document) Stat(id string) (*Stat, bool) {
	for i := range d.Stats {
		if d.Stats[i].ID == id {
			return &d.Stats[i], true
		}
	}
	return nil, false
}

// FieldNames returns every field name in block order.
func (d *Document) FieldNames() []string {
	var names []string
	for _, b := range d.Blocks {
		for _, f := range b.Fields {
			names = append(names, f.Name)
		}
	}
	return names
}

func fptr(f float64) *float64 { return &f }

// Default returns the built-in schema so the tool works with zero setup.
// Users override it with a schema.yaml in the config directory.
func Default() *Document {
	return &Document{
		App: App{Title: "Daily Wellness Tracker"},
		Blocks: []Block{
			{
				ID:        "sleep",
				Title:     "Sleep & Recovery",
				Expanded:  true,
				SaveLabel: "Save sleep",
				NCols:     2,
				Fields: []Field{
					{Name: "sleep_hours", Label: "Sleep (hours)", Type: TypeNumber, Subtype: "float", Min: fptr(0), Max: fptr(14), Step: fptr(0.25)},
					{Name: "sleep_quality", Label: "Sleep quality", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "wake_time", Label: "Wake time", Type: TypeTime, Default: "now"},
					{Name: "hrv", Label: "HRV (ms)", Type: TypeNumber, Subtype: "int", AllowNone: true, Placeholder: "Leave blank if not measured"},
					{Name: "fasting_glucose", Label: "Fasting glucose", Type: TypeNumber, Subtype: "int", AllowNone: true},
				},
			},
			{
				ID:        "activity",
				Title:     "Activity",
				Expanded:  true,
				SaveLabel: "Save activity",
				NCols:     2,
				Fields: []Field{
					{Name: "gym", Label: "Gym session", Type: TypeCheckbox, Default: false},
					{Name: "morning_exercise", Label: "Morning exercise", Type: TypeCheckbox, Default: false},
					{Name: "run_km", Label: "Run (km)", Type: TypeNumber, Subtype: "float", Min: fptr(0), Default: 0},
					{Name: "walking_steps", Label: "Steps", Type: TypeNumber, Subtype: "int", Min: fptr(0), Default: 0},
					{Name: "meditation", Label: "Meditation", Type: TypeCheckbox, Default: false},
				},
			},
			{
				ID:        "mind",
				Title:     "Mind & Mood",
				Expanded:  false,
				SaveLabel: "Save ratings",
				NCols:     2,
				Fields: []Field{
					{Name: "motivation", Label: "Motivation", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "mental_clarity", Label: "Mental clarity", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "mood_content", Label: "Contentment", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "productivity", Label: "Productivity", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "fatigue", Label: "Fatigue", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "stress", Label: "Stress", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
					{Name: "overstimulation", Label: "Overstimulation", Type: TypeSlider, Min: fptr(0), Max: fptr(10), Default: 5},
				},
			},
			{
				ID:        "habits",
				Title:     "Habits & Notes",
				Expanded:  false,
				SaveLabel: "Save habits",
				Fields: []Field{
					{Name: "compulsive_behavior", Label: "Compulsive behavior", Type: TypeCheckbox, Default: false},
					{Name: "cannabis", Label: "Cannabis (g)", Type: TypeNumber, Subtype: "float", Min: fptr(0), Default: 0},
					{Name: "caffeine", Label: "Caffeine", Type: TypeSelect, Options: []string{"none", "morning only", "afternoon", "evening"}},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, MaxChars: 2000},
				},
			},
		},
		Stats: []Stat{
			{ID: "sleep_hours", Label: "Sleep", Column: "sleep_hours", PlotType: "time_series", Description: "Hours of sleep"},
			{ID: "hrv", Label: "HRV", Column: "hrv", PlotType: "time_series", Description: "Heart rate variability"},
			{ID: "vibe", Label: "Overall vibe", Column: "subjective_average", PlotType: "time_series", Description: "Subjective wellbeing average"},
			{ID: "gym", Label: "Gym", Column: "gym", PlotType: "calendar", Description: "Gym sessions"},
			{ID: "meditation", Label: "Meditation", Column: "meditation", PlotType: "calendar", Description: "Meditation practice"},
		},
	}
}
