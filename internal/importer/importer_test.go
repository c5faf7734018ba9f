package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/vocabsrs/pkg/models"
)

type memStore struct {
	items map[string]models.ItemRecord
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]models.ItemRecord)}
}

func (s *memStore) Get(word string) (models.ItemRecord, error) {
	rec, ok := s.items[strings.ToLower(word)]
	if !ok {
		return models.ItemRecord{}, fmt.Errorf("%w: %q", models.ErrUnknownWord, word)
	}
	return rec, nil
}

func (s *memStore) GetAll() ([]models.ItemRecord, error) {
	out := make([]models.ItemRecord, 0, len(s.items))
	for _, rec := range s.items {
		out = append(out, rec)
	}
	return out, nil
}

func (s *memStore) Add(word string) error {
	key := strings.ToLower(word)
	if _, ok := s.items[key]; !ok {
		s.items[key] = models.NewItem(word)
	}
	return nil
}

func (s *memStore) Update(word string, changes models.ItemChanges) error {
	key := strings.ToLower(word)
	rec, ok := s.items[key]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrUnknownWord, word)
	}
	changes.Apply(&rec)
	s.items[key] = rec
	return nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportWordListCSV(t *testing.T) {
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.FilePath = writeFile(t, "list.csv", "word\nserendipity\nephemeral\n\nserendipity\n")

	result, err := ImportWords(store, cfg)
	if err != nil {
		t.Fatalf("ImportWords: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("Created = %d, want 2", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (duplicate)", result.Skipped)
	}

	rec, err := store.Get("ephemeral")
	if err != nil {
		t.Fatal(err)
	}
	if rec.EaseFactor != models.DefaultEaseFactor {
		t.Errorf("imported word missing defaults: %+v", rec)
	}
}

func TestImportHeaderlessWordList(t *testing.T) {
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.FilePath = writeFile(t, "list.csv", "serendipity\nephemeral\n")

	result, err := ImportWords(store, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Created != 2 {
		t.Errorf("Created = %d, want 2 (first row is a word, not a header)", result.Created)
	}
}

func TestImportFullSchemaCSV(t *testing.T) {
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.FilePath = writeFile(t, "vocab.csv",
		"word,time_last_seen,correct_uses,total_uses,next_due,EF,interval,repetitions\n"+
			"serendipity,1717410000,7,9,1717496400,2.36,6,2\n"+
			"broken,x,0,0,0,2.5,1,0\n")

	result, err := ImportWords(store, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Created != 1 {
		t.Errorf("Created = %d, want 1", result.Created)
	}
	if result.Skipped != 1 || len(result.Errors) != 1 {
		t.Errorf("malformed row: Skipped = %d, Errors = %v", result.Skipped, result.Errors)
	}

	rec, err := store.Get("serendipity")
	if err != nil {
		t.Fatal(err)
	}
	if rec.EaseFactor != 2.36 || rec.Interval != 6 || rec.Repetitions != 2 {
		t.Errorf("scheduling state not restored: %+v", rec)
	}
	if rec.CorrectUses != 7 || rec.TotalUses != 9 {
		t.Errorf("counters not restored: %+v", rec)
	}
}

func TestImportEmptyCSV(t *testing.T) {
	store := newMemStore()
	cfg := DefaultConfig()
	cfg.FilePath = writeFile(t, "empty.csv", "")

	result, err := ImportWords(store, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalProcessed != 0 {
		t.Errorf("TotalProcessed = %d, want 0", result.TotalProcessed)
	}
}
