package srs

import (
	"testing"

	"github.com/example/vocabsrs/pkg/models"
)

func TestSessionIntervalBaseTable(t *testing.T) {
	tests := []struct {
		repetitions, want int
	}{
		{0, 5},
		{1, 20},
		{2, 60},
		{3, 240},
		{4, 1440}, // the 24h retention checkpoint
		{5, 4320},
		{6, 10080},
		{7, 43200},
		{8, 43200},  // past the table, defaults to a month
		{20, 43200},
	}
	for _, tt := range tests {
		if got := SessionInterval(tt.repetitions, 5); got != tt.want {
			t.Errorf("SessionInterval(%d, 5) = %d, want %d", tt.repetitions, got, tt.want)
		}
	}
}

func TestSessionIntervalMultipliers(t *testing.T) {
	tests := []struct {
		name                string
		repetitions, quality int
		want                int
	}{
		{"perfect keeps base", 4, 5, 1440},
		{"good keeps base", 4, 4, 1440},
		{"effortful scales 0.8", 2, 3, 48},
		{"familiar-miss scales 0.6, low reps no demotion", 1, 2, 12},
		{"familiar-miss demotes mature word by two stages", 4, 2, 36}, // base(2)=60 × 0.6
		{"familiar-miss demotes rep 5 to rep 3", 5, 2, 144},           // base(3)=240 × 0.6
		{"blackout scales 0.3, rep 1 keeps lookup", 1, 0, 6},
		{"blackout resets mature word to stage 0", 6, 1, 1},    // base(0)=5 × 0.3, floored
		{"blackout resets rep 2 to stage 0", 2, 0, 1},
	}
	for _, tt := range tests {
		if got := SessionInterval(tt.repetitions, tt.quality); got != tt.want {
			t.Errorf("%s: SessionInterval(%d, %d) = %d, want %d",
				tt.name, tt.repetitions, tt.quality, got, tt.want)
		}
	}
}

// Scorer fixtures use epoch milliseconds throughout.

func TestPriorityScoreOverdueTerm(t *testing.T) {
	now := int64(100 * hourMillis)

	// Overdue by 5 hours, no other term matching: repetitions high,
	// accuracy fine, last seen far outside the 20-28h window.
	rec := models.ItemRecord{
		Word:         "w",
		NextDue:      now - 5*hourMillis,
		TimeLastSeen: now - 50*hourMillis,
		Repetitions:  6,
		CorrectUses:  9,
		TotalUses:    10,
	}
	if got := PriorityScore(rec, now); got != 150 {
		t.Errorf("PriorityScore = %v, want 150 (100 + 5h×10)", got)
	}
}

func TestPriorityScoreOverdueCap(t *testing.T) {
	now := int64(2000 * hourMillis)
	rec := models.ItemRecord{
		Word:         "w",
		NextDue:      now - 1000*hourMillis, // massively overdue
		TimeLastSeen: now - 50*hourMillis,
		Repetitions:  6,
		CorrectUses:  9,
		TotalUses:    10,
	}
	if got := PriorityScore(rec, now); got != 300 {
		t.Errorf("PriorityScore = %v, want cap 300", got)
	}
}

func TestPriorityScoreRetentionWindow(t *testing.T) {
	now := int64(100 * hourMillis)
	rec := models.ItemRecord{
		Word:         "w",
		NextDue:      now + 10*hourMillis, // not due
		TimeLastSeen: now - 24*hourMillis, // dead center of the window
		Repetitions:  6,
		CorrectUses:  9,
		TotalUses:    10,
	}
	if got := PriorityScore(rec, now); got != 150 {
		t.Errorf("PriorityScore = %v, want 150 (retention window only)", got)
	}
}

func TestPriorityScoreAcquisitionTerm(t *testing.T) {
	now := int64(100 * hourMillis)
	for reps := 0; reps <= 4; reps++ {
		rec := models.ItemRecord{
			Word:         "w",
			NextDue:      now + 10*hourMillis,
			TimeLastSeen: now - 10*hourMillis,
			Repetitions:  reps,
			CorrectUses:  9,
			TotalUses:    10,
		}
		want := float64(5-reps) * 20
		if got := PriorityScore(rec, now); got != want {
			t.Errorf("reps %d: PriorityScore = %v, want %v", reps, got, want)
		}
	}
}

func TestPriorityScoreAccuracyAndRecency(t *testing.T) {
	now := int64(100 * hourMillis)
	rec := models.ItemRecord{
		Word:         "w",
		NextDue:      now + 10*hourMillis,
		TimeLastSeen: now - hourMillis, // within 2h → +30
		Repetitions:  6,
		CorrectUses:  1,
		TotalUses:    2, // accuracy 0.5 → +25
	}
	if got := PriorityScore(rec, now); got != 55 {
		t.Errorf("PriorityScore = %v, want 55 (25 accuracy + 30 recency)", got)
	}
}

func TestIsReviewable(t *testing.T) {
	now := int64(100 * hourMillis)
	sessionStart := now - hourMillis

	tests := []struct {
		name string
		rec  models.ItemRecord
		want bool
	}{
		{
			"overdue",
			models.ItemRecord{NextDue: now - 1, TimeLastSeen: now - 50*hourMillis, Repetitions: 9},
			true,
		},
		{
			"seen this session",
			models.ItemRecord{NextDue: now + 48*hourMillis, TimeLastSeen: now - 30*60*1000, Repetitions: 9},
			true,
		},
		{
			"retention window",
			models.ItemRecord{NextDue: now + 48*hourMillis, TimeLastSeen: now - 22*hourMillis, Repetitions: 9},
			true,
		},
		{
			"low reps due within six hours",
			models.ItemRecord{NextDue: now + 5*hourMillis, TimeLastSeen: now - 10*hourMillis, Repetitions: 3},
			true,
		},
		{
			"low reps but due too far out",
			models.ItemRecord{NextDue: now + 7*hourMillis, TimeLastSeen: now - 10*hourMillis, Repetitions: 3},
			false,
		},
		{
			"mature, not due, outside window",
			models.ItemRecord{NextDue: now + 5*hourMillis, TimeLastSeen: now - 10*hourMillis, Repetitions: 4},
			false,
		},
	}
	for _, tt := range tests {
		if got := IsReviewable(tt.rec, now, sessionStart); got != tt.want {
			t.Errorf("%s: IsReviewable = %v, want %v", tt.name, got, tt.want)
		}
	}
}
