// Package importer brings vocabulary into the store from Excel or CSV
// files. New words enter with default scheduling state; a CSV carrying
// the full persisted schema also restores scheduling fields, which is
// how a vocabulary exported from the reference CSV store is migrated.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabsrs/internal/engine"
	"github.com/example/vocabsrs/pkg/models"
)

// Config defines where the words come from.
type Config struct {
	FilePath   string
	WordColumn string // Excel column holding the word, default "A"
	SheetName  string // default "Sheet1"
	StartRow   int    // 1-based, default 2 (skip header)
}

// DefaultConfig returns the import defaults.
func DefaultConfig() Config {
	return Config{
		WordColumn: "A",
		SheetName:  "Sheet1",
		StartRow:   2,
	}
}

// Result summarizes an import run.
type Result struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports vocabulary from the configured file. The
// extension decides the format.
func ImportWords(store engine.Store, cfg Config) (*Result, error) {
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		return importFromCSV(store, cfg)
	default:
		return importFromExcel(store, cfg)
	}
}

func importFromExcel(store engine.Store, cfg Config) (*Result, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", cfg.SheetName, err)
	}

	col, err := excelize.ColumnNameToNumber(cfg.WordColumn)
	if err != nil {
		return nil, fmt.Errorf("bad word column %q: %v", cfg.WordColumn, err)
	}

	result := &Result{}
	start := cfg.StartRow
	if start < 1 {
		start = 1
	}
	for i, row := range rows {
		if i+1 < start {
			continue
		}
		if col > len(row) {
			continue
		}
		word := strings.TrimSpace(row[col-1])
		if word == "" {
			continue
		}
		result.TotalProcessed++
		addWord(store, word, result)
	}
	return result, nil
}

// fullSchemaHeader is the persisted field order of the reference
// vocabulary CSV.
var fullSchemaHeader = []string{
	"word", "time_last_seen", "correct_uses", "total_uses",
	"next_due", "EF", "interval", "repetitions",
}

func importFromCSV(store engine.Store, cfg Config) (*Result, error) {
	f, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %v", err)
	}

	result := &Result{}
	if isFullSchema(first) {
		return result, importFullSchema(store, reader, result)
	}

	// Plain word list; the first row may itself be a word.
	if !strings.EqualFold(strings.TrimSpace(first[0]), "word") {
		if word := strings.TrimSpace(first[0]); word != "" {
			result.TotalProcessed++
			addWord(store, word, result)
		}
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}
		word := strings.TrimSpace(row[0])
		if word == "" {
			continue
		}
		result.TotalProcessed++
		addWord(store, word, result)
	}
	return result, nil
}

func isFullSchema(header []string) bool {
	if len(header) != len(fullSchemaHeader) {
		return false
	}
	for i, name := range fullSchemaHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return false
		}
	}
	return true
}

// importFullSchema restores records exported from the reference CSV
// store, scheduling state included.
func importFullSchema(store engine.Store, reader *csv.Reader, result *Result) error {
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV: %v", err)
		}
		if len(row) != len(fullSchemaHeader) {
			result.Errors = append(result.Errors, fmt.Sprintf("row has %d fields, want %d", len(row), len(fullSchemaHeader)))
			continue
		}
		result.TotalProcessed++

		raw := models.RawItem{
			Word:         strings.TrimSpace(row[0]),
			TimeLastSeen: row[1],
			CorrectUses:  row[2],
			TotalUses:    row[3],
			NextDue:      row[4],
			EaseFactor:   row[5],
			Interval:     row[6],
			Repetitions:  row[7],
		}
		rec, err := raw.Parse()
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Skipped++
			continue
		}
		if rec.Word == "" {
			result.Skipped++
			continue
		}

		if err := store.Add(rec.Word); err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Skipped++
			continue
		}
		if err := store.Update(rec.Word, models.ItemChanges{
			TimeLastSeen: &rec.TimeLastSeen,
			CorrectUses:  &rec.CorrectUses,
			TotalUses:    &rec.TotalUses,
			NextDue:      &rec.NextDue,
			EaseFactor:   &rec.EaseFactor,
			Interval:     &rec.Interval,
			Repetitions:  &rec.Repetitions,
		}); err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.Skipped++
			continue
		}
		result.Created++
	}
}

func addWord(store engine.Store, word string, result *Result) {
	if _, err := store.Get(word); err == nil {
		result.Skipped++
		return
	}
	if err := store.Add(word); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", word, err))
		return
	}
	result.Created++
}
