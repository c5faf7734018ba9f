package srs

import "github.com/example/vocabsrs/pkg/models"

// Base review intervals in minutes, keyed by pre-update repetitions.
// Tuned for rapid acquisition: repetitions 0-3 stay inside the same
// session and day, repetition 4 lands on the 24-hour retention
// checkpoint, the rest back off toward a month.
var sessionBaseIntervals = map[int]int{
	0: 5,
	1: 20,
	2: 60,
	3: 240,
	4: 1440,
	5: 4320,
	6: 10080,
	7: 43200,
}

const maxSessionInterval = 43200

func sessionBase(repetitions int) int {
	if v, ok := sessionBaseIntervals[repetitions]; ok {
		return v
	}
	return maxSessionInterval
}

// SessionInterval computes the next review interval in minutes for the
// session-optimized schedule. It looks up the base interval from the
// pre-update repetitions count, then scales it by a quality-dependent
// multiplier; poor recall on a mature word first demotes the lookup.
// Only the interval is returned; repetitions and EF bookkeeping stay
// with the caller.
func SessionInterval(repetitions, quality int) int {
	base := sessionBase(repetitions)
	var multiplier float64

	switch {
	case quality >= 4:
		multiplier = 1.0
	case quality == 3:
		multiplier = 0.8
	case quality == 2:
		multiplier = 0.6
		if repetitions >= 4 {
			// Back the word up two stages so it re-earns the
			// 24h checkpoint.
			repetitions = max(0, repetitions-2)
			base = sessionBase(repetitions)
		}
	default: // quality 0 or 1
		multiplier = 0.3
		if repetitions >= 2 {
			repetitions = 0
			base = sessionBase(repetitions)
		}
	}

	return int(float64(base) * multiplier)
}

// Time arithmetic below is in epoch milliseconds, unlike the seconds
// stored on ItemRecord. Callers convert at the boundary.
const hourMillis = 1000 * 60 * 60

// PriorityScore ranks a word's urgency at the given instant; higher is
// more urgent. Terms are additive and independently capped. The
// record's NextDue and TimeLastSeen must already be converted to epoch
// milliseconds.
func PriorityScore(rec models.ItemRecord, nowMillis int64) float64 {
	score := 0.0

	// Overdue words dominate, capped at 300.
	if rec.NextDue <= nowMillis {
		overdueHours := float64(nowMillis-rec.NextDue) / hourMillis
		score += 100 + min(overdueHours*10, 200)
	}

	// The 20-28 hour window brackets the 24h retention checkpoint.
	hoursSinceLast := float64(nowMillis-rec.TimeLastSeen) / hourMillis
	if hoursSinceLast >= 20 && hoursSinceLast <= 28 {
		score += 150
	}

	// Words still in acquisition get a boost that fades with progress.
	if rec.Repetitions <= 4 {
		score += float64(5-rec.Repetitions) * 20
	}

	// Struggling words surface sooner.
	if rec.TotalUses > 0 {
		if acc := rec.Accuracy(); acc < 0.7 {
			score += (1 - acc) * 50
		}
	}

	// Session-continuity bonus for words touched in the last two hours.
	if hoursSinceLast <= 2 {
		score += 30
	}

	return score
}

// IsReviewable reports whether a word may be offered for review in the
// current session. Any single condition qualifies. Times are epoch
// milliseconds, including the record's NextDue and TimeLastSeen.
func IsReviewable(rec models.ItemRecord, nowMillis, sessionStartMillis int64) bool {
	// Overdue words are always available.
	if rec.NextDue <= nowMillis {
		return true
	}

	// Words learned in the current session, for rapid reinforcement.
	if rec.TimeLastSeen >= sessionStartMillis {
		return true
	}

	// Approaching the 24h critical window.
	hoursSinceLast := float64(nowMillis-rec.TimeLastSeen) / hourMillis
	if hoursSinceLast >= 20 && hoursSinceLast <= 28 {
		return true
	}

	// Low-repetition words may surface up to six hours early.
	if rec.Repetitions <= 3 {
		hoursUntilDue := float64(rec.NextDue-nowMillis) / hourMillis
		if hoursUntilDue <= 6 {
			return true
		}
	}

	return false
}
