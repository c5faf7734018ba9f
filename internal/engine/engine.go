// Package engine exposes the scheduling query surface consumed by an
// experiment driver: apply a review, list due words, rank by priority,
// sample at random. All mutation funnels through the injected Store.
package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/example/vocabsrs/internal/picker"
	"github.com/example/vocabsrs/internal/srs"
	"github.com/example/vocabsrs/pkg/models"
)

// Store is what the engine requires from a vocabulary store. The
// sqlx-backed implementation lives in internal/database; tests use an
// in-memory fake.
type Store interface {
	Get(word string) (models.ItemRecord, error)
	GetAll() ([]models.ItemRecord, error)
	Add(word string) error
	Update(word string, changes models.ItemChanges) error
}

const (
	daySeconds    = 24 * 60 * 60
	minuteSeconds = 60
)

// Engine schedules vocabulary reviews over a Store.
type Engine struct {
	store Store
	log   *bolt.Logger
	rng   *rand.Rand
	now   func() time.Time
}

// New creates an Engine. The store handle and logger are injected;
// the engine holds no global state.
func New(store Store, log *bolt.Logger) *Engine {
	return &Engine{
		store: store,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
}

// AddWord registers a word with default scheduling state. Adding an
// existing word is a no-op.
func (e *Engine) AddWord(word string) error {
	return e.store.Add(word)
}

// Update applies one review of the given quality (0-5) to a word under
// the chosen algorithm and persists the new scheduling state in a
// single write. On any error the stored record is left untouched.
// Quality is clamped into range; the expanding variant reads it on the
// 1-5 scale, so a 0 is lifted to 1 there.
func (e *Engine) Update(word string, quality int, algo srs.Algorithm) (models.ItemRecord, error) {
	if !algo.IsValid() {
		return models.ItemRecord{}, fmt.Errorf("%w: %d", srs.ErrUnknownAlgorithm, int(algo))
	}

	rec, err := e.store.Get(word)
	if err != nil {
		return models.ItemRecord{}, err
	}

	now := e.now()
	nowSec := now.Unix()
	quality = srs.ClampQuality(quality)

	var (
		res     srs.Result
		nextDue int64
	)
	switch algo {
	case srs.Classic:
		res = srs.UpdateClassic(rec, quality)
		nextDue = nowSec + int64(res.Interval)*daySeconds
	case srs.SessionOptimized:
		// The interval function owns only the table lookup; the
		// repetition run and EF stay with the engine. EF is not
		// touched on this path: quality feeds the multiplier only.
		interval := srs.SessionInterval(rec.Repetitions, quality)
		reps := 0
		if quality >= 3 {
			reps = rec.Repetitions + 1
		}
		res = srs.Result{EaseFactor: rec.EaseFactor, Interval: interval, Repetitions: reps}
		nextDue = nowSec + int64(interval)*minuteSeconds
	case srs.ExpandingRetrieval:
		exp, err := srs.UpdateExpanding(rec, max(1, quality), now)
		if err != nil {
			e.log.Warn().Str("word", word).Err(err).Msg("expanding update skipped")
			return models.ItemRecord{}, err
		}
		res = exp.Result
		nextDue = exp.NextDue
	}

	changes := models.ItemChanges{
		TimeLastSeen: &nowSec,
		NextDue:      &nextDue,
		EaseFactor:   &res.EaseFactor,
		Interval:     &res.Interval,
		Repetitions:  &res.Repetitions,
	}
	if err := e.store.Update(word, changes); err != nil {
		return models.ItemRecord{}, err
	}
	changes.Apply(&rec)

	e.log.Debug().
		Str("word", rec.Word).
		Str("algorithm", algo.String()).
		Int("quality", quality).
		Int("interval", res.Interval).
		Int("repetitions", res.Repetitions).
		Str("ef", models.FormatEF(res.EaseFactor)).
		Msg("review applied")

	return rec, nil
}

// RecordUsage logs one observed use of a word, updating the usage
// counters and last-seen time. The quality grader is external; this
// only tracks exposure.
func (e *Engine) RecordUsage(word string, correct bool) (models.ItemRecord, error) {
	rec, err := e.store.Get(word)
	if err != nil {
		return models.ItemRecord{}, err
	}

	nowSec := e.now().Unix()
	total := rec.TotalUses + 1
	correctUses := rec.CorrectUses
	if correct {
		correctUses++
	}

	changes := models.ItemChanges{
		TimeLastSeen: &nowSec,
		CorrectUses:  &correctUses,
		TotalUses:    &total,
	}
	if err := e.store.Update(word, changes); err != nil {
		return models.ItemRecord{}, err
	}
	changes.Apply(&rec)
	return rec, nil
}

// ReviewFromUsage derives a quality grade from the word's accumulated
// usage counters and applies it under the chosen algorithm. Classic
// uses the ratio-threshold grade; the minute-grained variants use the
// 1-5 effectiveness score.
func (e *Engine) ReviewFromUsage(word string, algo srs.Algorithm) (models.ItemRecord, error) {
	rec, err := e.store.Get(word)
	if err != nil {
		return models.ItemRecord{}, err
	}

	var quality int
	if algo == srs.Classic {
		quality = srs.QualityFromRatio(rec.CorrectUses, rec.TotalUses)
	} else {
		quality = srs.EffectivenessScore(rec.CorrectUses, rec.TotalUses)
	}
	return e.Update(word, quality, algo)
}

// Word returns one record, or models.ErrUnknownWord.
func (e *Engine) Word(word string) (models.ItemRecord, error) {
	return e.store.Get(word)
}

// Words returns every record in the vocabulary, ordered by word.
func (e *Engine) Words() ([]models.ItemRecord, error) {
	return e.store.GetAll()
}

// DueWords returns up to limit words due for review right now, oldest
// overdue first.
func (e *Engine) DueWords(limit int) ([]models.ItemRecord, error) {
	items, err := e.store.GetAll()
	if err != nil {
		return nil, err
	}
	return picker.Due(items, e.now().Unix(), limit), nil
}

// PriorityRanked returns up to limit words ordered by descending
// session priority at the given instant.
func (e *Engine) PriorityRanked(now time.Time, limit int) ([]models.ItemRecord, error) {
	items, err := e.store.GetAll()
	if err != nil {
		return nil, err
	}

	// The scorer works in epoch milliseconds; the store keeps seconds.
	nowMillis := now.UnixMilli()
	type scored struct {
		rec   models.ItemRecord
		score float64
	}
	ranked := make([]scored, len(items))
	for i, it := range items {
		ranked[i] = scored{rec: it, score: srs.PriorityScore(toMillis(it), nowMillis)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return strings.ToLower(ranked[i].rec.Word) < strings.ToLower(ranked[j].rec.Word)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]models.ItemRecord, len(ranked))
	for i, s := range ranked {
		out[i] = s.rec
	}
	return out, nil
}

// SessionReviewable returns the words available for review in a
// session that started at sessionStart.
func (e *Engine) SessionReviewable(now, sessionStart time.Time) ([]models.ItemRecord, error) {
	items, err := e.store.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.ItemRecord, 0, len(items))
	for _, it := range items {
		if srs.IsReviewable(toMillis(it), now.UnixMilli(), sessionStart.UnixMilli()) {
			out = append(out, it)
		}
	}
	return out, nil
}

// RandomSample returns up to limit words drawn without replacement.
func (e *Engine) RandomSample(limit int) ([]models.ItemRecord, error) {
	items, err := e.store.GetAll()
	if err != nil {
		return nil, err
	}
	return picker.Random(items, limit, e.rng), nil
}

// toMillis converts a record's second-grained timestamps to the
// millisecond convention the session scorer expects.
func toMillis(rec models.ItemRecord) models.ItemRecord {
	rec.TimeLastSeen *= 1000
	rec.NextDue *= 1000
	return rec
}
