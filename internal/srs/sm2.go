package srs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/example/vocabsrs/pkg/models"
)

// MinEaseFactor is the floor below which EF never drops.
const MinEaseFactor = 1.3

// Result is the scheduling triple produced by an algorithm update.
// Interval is in days for Classic and minutes for the session variants.
type Result struct {
	EaseFactor  float64
	Interval    int
	Repetitions int
}

// ApplyTo copies the triple onto the record's scheduling fields.
func (r Result) ApplyTo(rec *models.ItemRecord) {
	rec.EaseFactor = r.EaseFactor
	rec.Interval = r.Interval
	rec.Repetitions = r.Repetitions
}

// ClampQuality forces q into the valid 0-5 range.
func ClampQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}

// ParseQuality coerces a textual quality signal into an int. Values
// that fail coercion entirely are reported as ErrInvalidQuality;
// out-of-range numerics are left to ClampQuality.
func ParseQuality(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if v, err := strconv.Atoi(trimmed); err == nil {
		return v, nil
	}
	// Graders occasionally emit floats ("4.0").
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
}

// UpdateClassic applies the SM-2 transition to the record's scheduling
// state for one review of the given quality (0-5, clamped). It is pure:
// the record is not mutated and no next-due time is computed here; the
// caller owns the day-to-seconds conversion.
func UpdateClassic(rec models.ItemRecord, quality int) Result {
	q := float64(ClampQuality(quality))

	// EF moves on every review, reset or not.
	ef := rec.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}

	if q < 3 {
		// Failed recall resets the repetition run.
		return Result{EaseFactor: ef, Interval: 1, Repetitions: 0}
	}

	reps := rec.Repetitions + 1
	var interval int
	switch reps {
	case 1:
		interval = 1
	case 2:
		interval = 6
	default:
		// Previous interval times the new EF, rounded half away
		// from zero.
		interval = int(math.Round(float64(rec.Interval) * ef))
	}
	return Result{EaseFactor: ef, Interval: interval, Repetitions: reps}
}

// QualityFromRatio maps a usage ratio to an SM-2 quality grade.
// Thresholds are inclusive lower bounds, checked high to low.
func QualityFromRatio(correctUses, totalUses int) int {
	if totalUses == 0 {
		return 0
	}
	ratio := float64(correctUses) / float64(totalUses)
	switch {
	case ratio == 1.0:
		return 5
	case ratio >= 0.9:
		return 4
	case ratio >= 0.7:
		return 3
	case ratio >= 0.5:
		return 2
	case ratio >= 0.3:
		return 1
	default:
		return 0
	}
}

// EffectivenessScore maps usage counters onto the 1-5 review scale
// consumed by the session variants. A never-used word scores the
// middle grade.
func EffectivenessScore(correctUses, totalUses int) int {
	if totalUses == 0 {
		return 3
	}
	ratio := float64(correctUses) / float64(totalUses)
	score := int(math.Round(ratio * 5))
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
