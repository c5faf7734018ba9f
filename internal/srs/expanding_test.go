package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/example/vocabsrs/pkg/models"
)

var expT0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestUpdateExpandingScheduleDeltas(t *testing.T) {
	// Six good reviews from a fresh record walk the fixed schedule:
	// offsets [2,5,8,12,16,20] yield interval deltas [2,3,3,4,4,4].
	rec := models.NewItem("w")
	want := []int{2, 3, 3, 4, 4, 4}

	for i, wantInterval := range want {
		res, err := UpdateExpanding(rec, 4, expT0)
		if err != nil {
			t.Fatalf("review %d: %v", i+1, err)
		}
		if res.Interval != wantInterval {
			t.Errorf("review %d: Interval = %d, want %d", i+1, res.Interval, wantInterval)
		}
		if res.Repetitions != i+1 {
			t.Errorf("review %d: Repetitions = %d, want %d", i+1, res.Repetitions, i+1)
		}
		if wantDue := expT0.Unix() + int64(wantInterval)*60; res.NextDue != wantDue {
			t.Errorf("review %d: NextDue = %d, want %d", i+1, res.NextDue, wantDue)
		}
		res.ApplyTo(&rec)
	}

	// Seventh good review graduates to the 24h checkpoint.
	res, err := UpdateExpanding(rec, 5, expT0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Interval != 1440 {
		t.Errorf("seventh review: Interval = %d, want 1440", res.Interval)
	}
	if res.Repetitions != 7 {
		t.Errorf("seventh review: Repetitions = %d, want 7", res.Repetitions)
	}
}

func TestUpdateExpandingWeakRecallHalves(t *testing.T) {
	// Quality 2 adjusts to 1, below the success threshold: the 2-minute
	// first interval halves to 1.
	rec := models.NewItem("w")
	res, err := UpdateExpanding(rec, 2, expT0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Interval != 1 {
		t.Errorf("Interval = %d, want 1", res.Interval)
	}

	// At repetition 3 the delta is 4 minutes; weak recall halves to 2.
	rec = models.ItemRecord{Word: "w", EaseFactor: 2.5, Interval: 3, Repetitions: 3}
	res, err = UpdateExpanding(rec, 3, expT0) // adjusted 2 < 3
	if err != nil {
		t.Fatal(err)
	}
	if res.Interval != 2 {
		t.Errorf("Interval = %d, want 2", res.Interval)
	}
}

func TestUpdateExpandingPostScheduleRetry(t *testing.T) {
	rec := models.ItemRecord{Word: "w", EaseFactor: 2.5, Interval: 4, Repetitions: 6}
	res, err := UpdateExpanding(rec, 2, expT0) // adjusted 1 < 3
	if err != nil {
		t.Fatal(err)
	}
	if res.Interval != 720 {
		t.Errorf("Interval = %d, want 720 (12h retry)", res.Interval)
	}
	if res.Repetitions != 7 {
		t.Errorf("Repetitions = %d, want 7", res.Repetitions)
	}
}

func TestUpdateExpandingEFNudge(t *testing.T) {
	// adjusted quality - 2 gives a nudge of -0.2 to +0.2.
	tests := []struct {
		quality int
		want    float64
	}{
		{5, 2.7},
		{4, 2.6},
		{3, 2.5},
		{2, 2.4},
		{1, 2.3},
	}
	for _, tt := range tests {
		rec := models.ItemRecord{Word: "w", EaseFactor: 2.5, Interval: 1, Repetitions: 0}
		res, err := UpdateExpanding(rec, tt.quality, expT0)
		if err != nil {
			t.Fatal(err)
		}
		assertFloat(t, "EaseFactor", res.EaseFactor, tt.want)
	}
}

func TestUpdateExpandingEFFloor(t *testing.T) {
	rec := models.ItemRecord{Word: "w", EaseFactor: 1.35, Interval: 1, Repetitions: 0}
	res, err := UpdateExpanding(rec, 1, expT0)
	if err != nil {
		t.Fatal(err)
	}
	if res.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", res.EaseFactor, MinEaseFactor)
	}
}

func TestUpdateExpandingMissingWord(t *testing.T) {
	_, err := UpdateExpanding(models.ItemRecord{}, 4, expT0)
	if !errors.Is(err, ErrMissingWord) {
		t.Errorf("err = %v, want ErrMissingWord", err)
	}
}
