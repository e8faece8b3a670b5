// ABOUTME: Composite activity score and subjective wellbeing average.
// ABOUTME: Both degrade to sentinel values (0 / NaN) instead of failing.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Truthy reports whether a raw stored value reads as true.
// Accepts the usual boolean spellings plus any non-zero number.
func Truthy(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "none", "nan", "false", "f", "no", "n", "0":
		return false
	case "1", "true", "t", "yes", "y":
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f != 0
}

// numField parses a numeric field, treating missing or malformed values as 0.
func (e *Entry) numField(name string) float64 {
	raw, ok := e.Get(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}

// boolField parses a boolean field, treating missing values as false.
func (e *Entry) boolField(name string) bool {
	raw, ok := e.Get(name)
	return ok && Truthy(raw)
}

// ActivityScore computes the composite activity score used to color
// calendar cells. Positive contributions: gym +3, run distance x2,
// steps over 5000 +2 (over 2000 +1), morning exercise +2, meditation +1.
// Negative: compulsive behavior -2, any cannabis -1.
func (e *Entry) ActivityScore() float64 {
	score := 0.0

	if e.boolField("gym") {
		score += 3
	}
	score += e.numField("run_km") * 2

	steps := e.numField("walking_steps")
	if steps > 5000 {
		score += 2
	} else if steps > 2000 {
		score += 1
	}

	if e.boolField("morning_exercise") {
		score += 2
	}
	if e.boolField("meditation") {
		score += 1
	}

	if e.boolField("compulsive_behavior") {
		score -= 2
	}
	if e.numField("cannabis") > 0 {
		score -= 1
	}

	return score
}

// subjectiveFields are the self-rated 0-10 metrics behind SubjectiveAverage.
// The inverted ones count as (10 - value) so higher is always better.
var subjectiveFields = []struct {
	name     string
	inverted bool
}{
	{"motivation", false},
	{"mental_clarity", false},
	{"mood_content", false},
	{"productivity", false},
	{"fatigue", true},
	{"stress", true},
	{"overstimulation", true},
}

// SubjectiveAverage computes the overall "vibe" score for an entry,
// rounded to one decimal. Returns NaN when any input is missing or
// non-numeric; callers test with math.IsNaN, never an error.
func (e *Entry) SubjectiveAverage() float64 {
	sum := 0.0
	for _, f := range subjectiveFields {
		raw, ok := e.Get(f.name)
		if !ok {
			return math.NaN()
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) {
			return math.NaN()
		}
		if f.inverted {
			v = 10.0 - v
		}
		sum += v
	}
	return math.Round(sum/float64(len(subjectiveFields))*10) / 10
}
