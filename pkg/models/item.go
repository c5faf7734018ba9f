package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors shared by the store and the engine.
// Use errors.Is to check: errors.Is(err, models.ErrUnknownWord)
var (
	ErrMalformedRecord = errors.New("vocabsrs: malformed record field")
	ErrUnknownWord     = errors.New("vocabsrs: unknown word")
)

// Default scheduling state for a word that just entered the vocabulary.
const (
	DefaultEaseFactor  = 2.5
	DefaultInterval    = 1
	DefaultRepetitions = 0
)

// ItemRecord is the persisted scheduling state of one learnable word.
// Times are epoch seconds; zero means never seen / immediately due.
// The interval unit depends on the algorithm that last wrote it
// (days for Classic, minutes for the session variants).
type ItemRecord struct {
	Word         string  `db:"word" json:"word"`
	TimeLastSeen int64   `db:"time_last_seen" json:"time_last_seen"`
	CorrectUses  int     `db:"correct_uses" json:"correct_uses"`
	TotalUses    int     `db:"total_uses" json:"total_uses"`
	NextDue      int64   `db:"next_due" json:"next_due"`
	EaseFactor   float64 `db:"EF" json:"EF"`
	Interval     int     `db:"interval" json:"interval"`
	Repetitions  int     `db:"repetitions" json:"repetitions"`
}

// NewItem creates a record with the initial scheduling defaults.
func NewItem(word string) ItemRecord {
	return ItemRecord{
		Word:       word,
		EaseFactor: DefaultEaseFactor,
		Interval:   DefaultInterval,
	}
}

// Accuracy returns correct_uses / total_uses, or 0 when the word has
// never been used.
func (r ItemRecord) Accuracy() float64 {
	if r.TotalUses == 0 {
		return 0
	}
	return float64(r.CorrectUses) / float64(r.TotalUses)
}

// Key returns the word's canonical store key. Lookup is case-insensitive.
func (r ItemRecord) Key() string {
	return strings.ToLower(r.Word)
}

// ItemChanges is a partial update of an ItemRecord. Nil fields are
// left untouched by the store.
type ItemChanges struct {
	TimeLastSeen *int64
	CorrectUses  *int
	TotalUses    *int
	NextDue      *int64
	EaseFactor   *float64
	Interval     *int
	Repetitions  *int
}

// IsZero reports whether the change set carries no fields.
func (c ItemChanges) IsZero() bool {
	return c.TimeLastSeen == nil && c.CorrectUses == nil && c.TotalUses == nil &&
		c.NextDue == nil && c.EaseFactor == nil && c.Interval == nil && c.Repetitions == nil
}

// Apply copies the set fields onto rec.
func (c ItemChanges) Apply(rec *ItemRecord) {
	if c.TimeLastSeen != nil {
		rec.TimeLastSeen = *c.TimeLastSeen
	}
	if c.CorrectUses != nil {
		rec.CorrectUses = *c.CorrectUses
	}
	if c.TotalUses != nil {
		rec.TotalUses = *c.TotalUses
	}
	if c.NextDue != nil {
		rec.NextDue = *c.NextDue
	}
	if c.EaseFactor != nil {
		rec.EaseFactor = *c.EaseFactor
	}
	if c.Interval != nil {
		rec.Interval = *c.Interval
	}
	if c.Repetitions != nil {
		rec.Repetitions = *c.Repetitions
	}
}

// RawItem is an ItemRecord as it comes off the store, every numeric
// field still text. The reference data set persisted all fields as
// strings, so parsing happens in exactly one place: Parse.
type RawItem struct {
	Word         string `db:"word"`
	TimeLastSeen string `db:"time_last_seen"`
	CorrectUses  string `db:"correct_uses"`
	TotalUses    string `db:"total_uses"`
	NextDue      string `db:"next_due"`
	EaseFactor   string `db:"EF"`
	Interval     string `db:"interval"`
	Repetitions  string `db:"repetitions"`
}

// Parse converts the raw row into a typed ItemRecord. An unparsable
// field fails with ErrMalformedRecord naming that field; the field,
// not the record, is the unit of failure.
func (raw RawItem) Parse() (ItemRecord, error) {
	rec := ItemRecord{Word: raw.Word}

	var err error
	if rec.TimeLastSeen, err = parseInt64Field("time_last_seen", raw.TimeLastSeen); err != nil {
		return ItemRecord{}, err
	}
	if rec.CorrectUses, err = parseIntField("correct_uses", raw.CorrectUses); err != nil {
		return ItemRecord{}, err
	}
	if rec.TotalUses, err = parseIntField("total_uses", raw.TotalUses); err != nil {
		return ItemRecord{}, err
	}
	if rec.NextDue, err = parseInt64Field("next_due", raw.NextDue); err != nil {
		return ItemRecord{}, err
	}
	if rec.EaseFactor, err = parseFloatField("EF", raw.EaseFactor); err != nil {
		return ItemRecord{}, err
	}
	if rec.Interval, err = parseIntField("interval", raw.Interval); err != nil {
		return ItemRecord{}, err
	}
	if rec.Repetitions, err = parseIntField("repetitions", raw.Repetitions); err != nil {
		return ItemRecord{}, err
	}
	return rec, nil
}

// Raw converts the record back to its text-persisted form. EF is
// formatted with the shortest representation that round-trips, so
// precision survives a write/read cycle.
func (r ItemRecord) Raw() RawItem {
	return RawItem{
		Word:         r.Word,
		TimeLastSeen: strconv.FormatInt(r.TimeLastSeen, 10),
		CorrectUses:  strconv.Itoa(r.CorrectUses),
		TotalUses:    strconv.Itoa(r.TotalUses),
		NextDue:      strconv.FormatInt(r.NextDue, 10),
		EaseFactor:   FormatEF(r.EaseFactor),
		Interval:     strconv.Itoa(r.Interval),
		Repetitions:  strconv.Itoa(r.Repetitions),
	}
}

// FormatEF renders an ease factor for persistence.
func FormatEF(ef float64) string {
	return strconv.FormatFloat(ef, 'f', -1, 64)
}

func parseIntField(field, value string) (int, error) {
	v, err := parseInt64Field(field, value)
	return int(v), err
}

func parseInt64Field(field, value string) (int64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Some writers persisted counters as floats ("3.0").
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int64(f)) {
			return 0, fmt.Errorf("%w: %s=%q", ErrMalformedRecord, field, value)
		}
		return int64(f), nil
	}
	return v, nil
}

func parseFloatField(field, value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return DefaultEaseFactor, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedRecord, field, value)
	}
	return v, nil
}
