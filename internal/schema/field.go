// ABOUTME: Field definitions and stored-value coercion for form fields.
// ABOUTME: Initial() resolves stored/default/fallback into a typed value.
package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldType enumerates the supported form widget types.
type FieldType string

const (
	TypeNumber   FieldType = "number"
	TypeCheckbox FieldType = "checkbox"
	TypeSelect   FieldType = "select"
	TypeSlider   FieldType = "slider"
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeTime     FieldType = "time"
)

// TimeFormat is the wall-clock layout for time fields.
const TimeFormat = "15:04:05"

// Field describes one form field. Loaded from the schema document once
// at startup and never mutated.
type Field struct {
	Name        string    `yaml:"name"`
	Label       string    `yaml:"label"`
	Type        FieldType `yaml:"type"`
	Subtype     string    `yaml:"subtype,omitempty"` // "int" or "float" for number fields
	Default     any       `yaml:"default,omitempty"`
	Min         *float64  `yaml:"min,omitempty"`
	Max         *float64  `yaml:"max,omitempty"`
	Step        *float64  `yaml:"step,omitempty"`
	Options     []string  `yaml:"options,omitempty"`
	AllowNone   bool      `yaml:"allow_none,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty"`
	MaxChars    int       `yaml:"max_chars,omitempty"`
	Col         int       `yaml:"col,omitempty"`
}

// Value is the typed result of coercing a stored value through a field.
// Exactly the members relevant to Kind are meaningful.
type Value struct {
	Kind FieldType

	Num   float64   // number, slider
	IsInt bool      // number subtype int, slider
	Set   bool      // false when a number is absent or cleared
	Bool  bool      // checkbox
	Str   string    // text, textarea, select; raw round-trip for cleared numbers
	Clock time.Time // time
}

// missing reports whether a raw value is one of the "empty" spellings.
func missing(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "nan":
		return true
	}
	return false
}

// truthy matches the accepted boolean spellings, case-insensitive.
func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y":
		return true
	}
	return false
}

// defaultString renders the schema default as a raw stored value.
func (f *Field) defaultString() (string, bool) {
	if f.Default == nil {
		return "", false
	}
	switch v := f.Default.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}
		return "0", true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// Initial resolves the starting value for a field, preferring the stored
// value when present and non-missing, then the schema default, then a
// type-specific fallback. Pure: the clock is threaded in via now.
// Never fails; malformed input degrades to the typed fallback.
func (f *Field) Initial(stored string, hasStored bool, now time.Time) Value {
	raw := stored
	hasRaw := hasStored && !missing(stored)
	if !hasRaw {
		raw, hasRaw = f.defaultString()
		if hasRaw && missing(raw) {
			hasRaw = false
		}
	}

	switch f.Type {
	case TypeNumber:
		return f.initialNumber(raw, hasRaw)
	case TypeCheckbox:
		return f.initialCheckbox(stored, hasStored)
	case TypeSelect:
		return f.initialSelect(raw, hasRaw)
	case TypeSlider:
		return f.initialSlider(raw, hasRaw)
	case TypeText, TypeTextarea:
		v := Value{Kind: f.Type, Set: hasRaw}
		if hasRaw {
			v.Str = raw
		}
		return v
	case TypeTime:
		return f.initialTime(raw, hasRaw, now)
	}

	// Unknown type: pass the raw value through as text.
	return Value{Kind: TypeText, Str: raw, Set: hasRaw}
}

func (f *Field) initialNumber(raw string, hasRaw bool) Value {
	v := Value{Kind: TypeNumber, IsInt: f.Subtype == "int"}
	if !hasRaw {
		v.Str = ""
		return v
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) {
		// Keep the raw text so an explicit clear round-trips.
		v.Str = raw
		return v
	}
	if v.IsInt {
		n = math.Trunc(n)
	}
	v.Num = n
	v.Set = true
	v.Str = raw
	return v
}

func (f *Field) initialCheckbox(stored string, hasStored bool) Value {
	v := Value{Kind: TypeCheckbox, Set: true}
	if !hasStored || missing(stored) {
		if d, ok := f.defaultString(); ok {
			v.Bool = truthy(d)
		}
		return v
	}
	v.Bool = truthy(stored)
	return v
}

func (f *Field) initialSelect(raw string, hasRaw bool) Value {
	v := Value{Kind: TypeSelect, Set: true}
	if hasRaw {
		for _, opt := range f.Options {
			if raw == opt {
				v.Str = raw
				return v
			}
		}
	}
	if len(f.Options) > 0 {
		v.Str = f.Options[0]
	}
	return v
}

func (f *Field) initialSlider(raw string, hasRaw bool) Value {
	v := Value{Kind: TypeSlider, IsInt: true, Set: true}
	if hasRaw {
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsNaN(n) {
			v.Num = math.Trunc(n)
			return v
		}
	}
	// Cascade: default, then minimum, then zero. A slider never carries
	// a non-numeric value out of here.
	if d, ok := f.defaultString(); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(d), 64); err == nil && !math.IsNaN(n) {
			v.Num = math.Trunc(n)
			return v
		}
	}
	if f.Min != nil {
		v.Num = math.Trunc(*f.Min)
		return v
	}
	v.Num = 0
	return v
}

func (f *Field) initialTime(raw string, hasRaw bool, now time.Time) Value {
	v := Value{Kind: TypeTime, Set: true}
	if hasRaw && raw != "now" {
		if t, err := time.Parse(TimeFormat, strings.TrimSpace(raw)); err == nil {
			v.Clock = time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, now.Location())
			return v
		}
	}
	v.Clock = now
	return v
}

// Normalize maps user input to the stored representation for this field,
// applying the same degradation policy as Initial: the result is always
// storable, never an error.
func (f *Field) Normalize(raw string, now time.Time) string {
	v := f.Initial(raw, true, now)
	switch f.Type {
	case TypeNumber:
		if !v.Set {
			return ""
		}
		return formatNum(v.Num, v.IsInt)
	case TypeCheckbox:
		if v.Bool {
			return "1"
		}
		return "0"
	case TypeSelect:
		return v.Str
	case TypeSlider:
		return strconv.Itoa(int(v.Num))
	case TypeTime:
		return v.Clock.Format(TimeFormat)
	default:
		return v.Str
	}
}

// Display renders a coerced value for human output.
func (v Value) Display() string {
	switch v.Kind {
	case TypeNumber, TypeSlider:
		if !v.Set && v.Kind == TypeNumber {
			return "-"
		}
		return formatNum(v.Num, v.IsInt)
	case TypeCheckbox:
		if v.Bool {
			return "yes"
		}
		return "no"
	case TypeTime:
		return v.Clock.Format(TimeFormat)
	default:
		if v.Str == "" {
			return "-"
		}
		return v.Str
	}
}

func formatNum(n float64, isInt bool) string {
	if isInt {
		return strconv.Itoa(int(n))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
