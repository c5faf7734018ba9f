// Package picker selects vocabulary items for review. Every function
// is a pure filter-sort-truncate pipeline over a snapshot of records;
// nothing here touches the store.
package picker

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/example/vocabsrs/pkg/models"
)

// Due returns the items eligible for review at now (epoch seconds),
// ordered oldest-overdue first. Ties on next_due break by word so the
// order is deterministic. A negative limit means no truncation.
func Due(items []models.ItemRecord, now int64, limit int) []models.ItemRecord {
	due := make([]models.ItemRecord, 0, len(items))
	for _, it := range items {
		if it.NextDue <= now {
			due = append(due, it)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].NextDue != due[j].NextDue {
			return due[i].NextDue < due[j].NextDue
		}
		return strings.ToLower(due[i].Word) < strings.ToLower(due[j].Word)
	})
	return truncate(due, limit)
}

// ByRepetitions returns items whose repetitions count lies in
// [minReps, maxReps], sorted ascending by repetitions. A negative
// maxReps means no upper bound.
func ByRepetitions(items []models.ItemRecord, minReps, maxReps, limit int) []models.ItemRecord {
	out := make([]models.ItemRecord, 0, len(items))
	for _, it := range items {
		if it.Repetitions >= minReps && (maxReps < 0 || it.Repetitions <= maxReps) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Repetitions < out[j].Repetitions
	})
	return truncate(out, limit)
}

// ByEaseFactor returns items whose EF lies in [minEF, maxEF], sorted
// ascending by EF (hardest words first). A non-positive maxEF means no
// upper bound; EF itself never drops below 1.3.
func ByEaseFactor(items []models.ItemRecord, minEF, maxEF float64, limit int) []models.ItemRecord {
	out := make([]models.ItemRecord, 0, len(items))
	for _, it := range items {
		if it.EaseFactor >= minEF && (maxEF <= 0 || it.EaseFactor <= maxEF) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EaseFactor < out[j].EaseFactor
	})
	return truncate(out, limit)
}

// ByUsageRatio returns items whose correct-usage ratio lies in
// [minRatio, maxRatio], sorted ascending by ratio. A never-used word
// counts as ratio 0.
func ByUsageRatio(items []models.ItemRecord, minRatio, maxRatio float64, limit int) []models.ItemRecord {
	out := make([]models.ItemRecord, 0, len(items))
	for _, it := range items {
		r := it.Accuracy()
		if r >= minRatio && r <= maxRatio {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Accuracy() < out[j].Accuracy()
	})
	return truncate(out, limit)
}

// Random returns up to limit items sampled without replacement.
func Random(items []models.ItemRecord, limit int, rng *rand.Rand) []models.ItemRecord {
	out := make([]models.ItemRecord, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return truncate(out, limit)
}

func truncate(items []models.ItemRecord, limit int) []models.ItemRecord {
	if limit < 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
