package srs

import (
	"time"

	"github.com/example/vocabsrs/pkg/models"
)

// retrievalSchedule holds the fixed retrieval offsets in minutes from
// first exposure, covering two 10-minute learning sessions separated
// by a 10-minute break.
var retrievalSchedule = [...]int{2, 5, 8, 12, 16, 20}

// ExpandingResult extends Result with the next-due time that the
// expanding-retrieval schedule computes itself (epoch seconds).
type ExpandingResult struct {
	Result
	NextDue int64
}

// UpdateExpanding advances a record through the expanding-retrieval
// schedule. Quality is on the 1-5 review scale; it is shifted down by
// one internally. While the word is still inside the 30-minute window
// the interval is the delta to the next scheduled retrieval point,
// halved (minimum 1 minute) on weak recall. Once the schedule is
// exhausted the word moves to the 24-hour checkpoint, or a 12-hour
// retry on weak recall. Intervals are minutes.
//
// Unlike the other variants this one owns its next-due computation.
// A record without a word key cannot be written back; that is reported
// as ErrMissingWord rather than retried.
func UpdateExpanding(rec models.ItemRecord, quality int, now time.Time) (ExpandingResult, error) {
	if rec.Word == "" {
		return ExpandingResult{}, ErrMissingWord
	}

	if quality < 1 {
		quality = 1
	} else if quality > 5 {
		quality = 5
	}
	adjusted := quality - 1

	reps := rec.Repetitions
	var interval int

	if reps < len(retrievalSchedule) {
		next := retrievalSchedule[reps]
		if reps > 0 {
			interval = next - retrievalSchedule[reps-1]
		} else {
			interval = next
		}
		if adjusted < 3 {
			interval = max(1, interval/2)
		}
		reps++
	} else {
		reps++
		if adjusted >= 3 {
			interval = 1440
		} else {
			interval = 720
		}
	}

	// Linear EF nudge in [-0.2, +0.2].
	ef := rec.EaseFactor + 0.1*float64(adjusted-2)
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}

	return ExpandingResult{
		Result:  Result{EaseFactor: ef, Interval: interval, Repetitions: reps},
		NextDue: now.Unix() + int64(interval)*60,
	}, nil
}
