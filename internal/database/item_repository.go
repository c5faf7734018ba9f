package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabsrs/pkg/models"
)

// itemColumns is the persisted field set, in schema order. "EF" is
// quoted so postgres keeps the historical upper-case column name.
const itemColumns = `word, time_last_seen, correct_uses, total_uses, next_due, "EF", interval, repetitions`

// ItemRepository handles database operations for vocabulary items.
// Word lookup is case-insensitive.
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a repository over the given connection.
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Get returns the record for a word, or models.ErrUnknownWord.
func (r *ItemRepository) Get(word string) (models.ItemRecord, error) {
	var raw models.RawItem
	query := r.db.Rebind(`SELECT ` + itemColumns + ` FROM words WHERE LOWER(word) = LOWER(?)`)
	if err := r.db.Get(&raw, query, word); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ItemRecord{}, fmt.Errorf("%w: %q", models.ErrUnknownWord, word)
		}
		return models.ItemRecord{}, fmt.Errorf("failed to get word %q: %v", word, err)
	}
	return raw.Parse()
}

// GetAll returns every record in the vocabulary, ordered by word.
func (r *ItemRepository) GetAll() ([]models.ItemRecord, error) {
	var raws []models.RawItem
	if err := r.db.Select(&raws, `SELECT `+itemColumns+` FROM words ORDER BY word`); err != nil {
		return nil, fmt.Errorf("failed to list words: %v", err)
	}
	items := make([]models.ItemRecord, 0, len(raws))
	for _, raw := range raws {
		rec, err := raw.Parse()
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, nil
}

// Add inserts a word with default scheduling state. Inserting a word
// that already exists (in any casing) is a no-op.
func (r *ItemRepository) Add(word string) error {
	raw := models.NewItem(word).Raw()

	var query string
	if r.db.DriverName() == "sqlite3" {
		query = `INSERT OR IGNORE INTO words (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	} else {
		query = `INSERT INTO words (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (LOWER(word)) DO NOTHING`
	}

	_, err := r.db.Exec(r.db.Rebind(query),
		raw.Word,
		raw.TimeLastSeen,
		raw.CorrectUses,
		raw.TotalUses,
		raw.NextDue,
		raw.EaseFactor,
		raw.Interval,
		raw.Repetitions,
	)
	if err != nil {
		return fmt.Errorf("failed to add word %q: %v", word, err)
	}
	return nil
}

// Update applies a partial field set to one word inside a single
// transaction, so concurrent writers to the same word serialize on the
// row and a failed update leaves the record untouched. Updating a
// missing word returns models.ErrUnknownWord without creating a
// partial record.
func (r *ItemRepository) Update(word string, changes models.ItemChanges) error {
	if changes.IsZero() {
		return nil
	}

	set, args := buildSet(changes)
	args = append(args, word)
	query := r.db.Rebind(`UPDATE words SET ` + set + ` WHERE LOWER(word) = LOWER(?)`)

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin update for %q: %v", word, err)
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update word %q: %v", word, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update word %q: %v", word, err)
	}
	if n == 0 {
		tx.Rollback()
		return fmt.Errorf("%w: %q", models.ErrUnknownWord, word)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update for %q: %v", word, err)
	}
	return nil
}

// buildSet renders the non-nil change fields as a SET clause. Values
// go out as text, matching the column types.
func buildSet(c models.ItemChanges) (string, []interface{}) {
	var (
		set  string
		args []interface{}
	)
	add := func(column, value string) {
		if set != "" {
			set += ", "
		}
		set += column + " = ?"
		args = append(args, value)
	}

	if c.TimeLastSeen != nil {
		add("time_last_seen", strconv.FormatInt(*c.TimeLastSeen, 10))
	}
	if c.CorrectUses != nil {
		add("correct_uses", strconv.Itoa(*c.CorrectUses))
	}
	if c.TotalUses != nil {
		add("total_uses", strconv.Itoa(*c.TotalUses))
	}
	if c.NextDue != nil {
		add("next_due", strconv.FormatInt(*c.NextDue, 10))
	}
	if c.EaseFactor != nil {
		add(`"EF"`, models.FormatEF(*c.EaseFactor))
	}
	if c.Interval != nil {
		add("interval", strconv.Itoa(*c.Interval))
	}
	if c.Repetitions != nil {
		add("repetitions", strconv.Itoa(*c.Repetitions))
	}
	return set, args
}
