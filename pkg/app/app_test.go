package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	records map[string]*entry.Entry

	failPut    bool
	failDelete bool
	putCount   int
}

func newMemoryPersistence(entries ...*entry.Entry) *memoryPersistence {
	mp := &memoryPersistence{records: make(map[string]*entry.Entry)}
	for _, e := range entries {
		if e == nil || e.ID == "" {
			continue
		}
		mp.records[e.ID] = e.Clone()
	}
	return mp
}

func (m *memoryPersistence) GetAll(_ context.Context) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entry.Entry, 0, len(m.records))
	for _, e := range m.records {
		out = append(out, e.Clone())
	}
	return out
}

func (m *memoryPersistence) Get(id string) (*entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e.Clone(), nil
}

func (m *memoryPersistence) Put(e *entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCount++
	if m.failPut {
		return &store.StorageError{Op: "put", Key: e.ID, Err: errors.New("disk full")}
	}
	if e.ID == "" {
		return &store.StorageError{Op: "put", Err: errors.New("entry id required")}
	}
	m.records[e.ID] = e.Clone()
	return nil
}

func (m *memoryPersistence) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return &store.StorageError{Op: "delete", Key: id, Err: errors.New("io failure")}
	}
	delete(m.records, id)
	return nil
}

func (m *memoryPersistence) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]*entry.Entry)
	return nil
}

func mk(id, date, text string) *entry.Entry {
	d, _ := entry.ParseDate(date)
	e := entry.New(d, text)
	e.ID = id
	return e
}

func TestLoadSortsNewestFirst(t *testing.T) {
	s := New(newMemoryPersistence(
		mk("100", "2024-01-01", "old"),
		mk("300", "2024-01-03", "new"),
		mk("200", "2024-01-02", "mid"),
	), nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := s.Entries()
	if len(got) != 3 || got[0].ID != "300" || got[1].ID != "200" || got[2].ID != "100" {
		t.Fatalf("load order wrong: %v", got)
	}
}

func TestSaveNewPrepends(t *testing.T) {
	mp := newMemoryPersistence(mk("100", "2024-01-01", "old"))
	s := New(mp, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	saved, err := s.Save(context.Background(), entry.Draft{Text: "fresh"})
	if err != nil {
		t.Fatal(err)
	}
	got := s.Entries()
	if len(got) != 2 || got[0].ID != saved.ID {
		t.Fatalf("expected new entry first, got %v", got)
	}
	if _, err := mp.Get(saved.ID); err != nil {
		t.Fatalf("entry not persisted: %v", err)
	}
}

func TestSaveExistingReplacesInPlace(t *testing.T) {
	mp := newMemoryPersistence(
		mk("200", "2024-01-02", "keep me second"),
		mk("300", "2024-01-03", "original"),
	)
	s := New(mp, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	d, _ := entry.ParseDate("2024-01-03")
	if _, err := s.Save(context.Background(), entry.Draft{ID: "300", Date: d, Text: "edited"}); err != nil {
		t.Fatal(err)
	}
	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("edit must not grow the list: %v", got)
	}
	if got[0].ID != "300" || got[0].Text != "edited" {
		t.Fatalf("edit did not replace in place: %+v", got[0])
	}
	stored, _ := mp.Get("300")
	if stored.Text != "edited" {
		t.Fatalf("store holds stale text %q", stored.Text)
	}
}

func TestSaveRejectsEmptyDraft(t *testing.T) {
	mp := newMemoryPersistence()
	s := New(mp, nil)
	_ = s.Load(context.Background())
	if _, err := s.Save(context.Background(), entry.Draft{Text: "   "}); !errors.Is(err, entry.ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if mp.putCount != 0 {
		t.Fatal("validation failure must not reach the store")
	}
}

func TestSaveFailureLeavesListUntouched(t *testing.T) {
	mp := newMemoryPersistence(mk("100", "2024-01-01", "only"))
	s := New(mp, nil)
	_ = s.Load(context.Background())
	before := s.Entries()

	mp.failPut = true
	_, err := s.Save(context.Background(), entry.Draft{Text: "doomed"})
	var se *store.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	after := s.Entries()
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Fatalf("list changed after failed save: %v vs %v", before, after)
	}
}

func TestRemove(t *testing.T) {
	mp := newMemoryPersistence(mk("100", "2024-01-01", "bye"))
	s := New(mp, nil)
	_ = s.Load(context.Background())
	if err := s.Remove(context.Background(), "100"); err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Fatal("entry still in list after remove")
	}
	if _, err := mp.Get("100"); !errors.Is(err, store.ErrNotFound) {
		t.Fatal("entry still in store after remove")
	}
	// Unknown id: no-op.
	if err := s.Remove(context.Background(), "nope"); err != nil {
		t.Fatalf("unknown remove: %v", err)
	}
}

func TestRemoveFailureKeepsEntry(t *testing.T) {
	mp := newMemoryPersistence(mk("100", "2024-01-01", "stay"))
	s := New(mp, nil)
	_ = s.Load(context.Background())
	mp.failDelete = true
	if err := s.Remove(context.Background(), "100"); err == nil {
		t.Fatal("expected delete error")
	}
	if len(s.Entries()) != 1 {
		t.Fatal("entry dropped from list despite failed delete")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := New(newMemoryPersistence(
		mk("100", "2024-01-01", "first"),
		mk("200", "2024-01-02", "second"),
		mk("300", "2024-01-03", "third"),
	), nil)
	_ = src.Load(ctx)

	doc, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatal(err)
	}

	dst := New(newMemoryPersistence(), nil)
	_ = dst.Load(ctx)
	n, err := dst.ImportReplace(ctx, doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("imported %d, want 3", n)
	}

	want := map[string]string{"100": "first", "200": "second", "300": "third"}
	got := dst.Entries()
	if len(got) != len(want) {
		t.Fatalf("round trip count = %d", len(got))
	}
	for _, e := range got {
		if want[e.ID] != e.Text {
			t.Errorf("entry %s text = %q, want %q", e.ID, e.Text, want[e.ID])
		}
	}
}

func TestImportReplaceWipesExisting(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryPersistence(mk("900", "2024-05-05", "doomed")), nil)
	_ = s.Load(ctx)

	doc, _ := json.Marshal([]*entry.Entry{mk("100", "2024-01-01", "kept")})
	if _, err := s.ImportReplace(ctx, doc); err != nil {
		t.Fatal(err)
	}
	got := s.Entries()
	if len(got) != 1 || got[0].ID != "100" {
		t.Fatalf("store not replaced: %v", got)
	}
}

func TestImportParseErrorAbortsBeforeClear(t *testing.T) {
	ctx := context.Background()
	s := New(newMemoryPersistence(mk("100", "2024-01-01", "precious")), nil)
	_ = s.Load(ctx)

	_, err := s.ImportReplace(ctx, []byte(`{"not":"an array"`))
	if !errors.Is(err, ErrImportParse) {
		t.Fatalf("expected ErrImportParse, got %v", err)
	}
	if len(s.Entries()) != 1 {
		t.Fatal("store was cleared despite parse failure")
	}
}

func TestMigrationCopiesLegacyJournal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	legacy := []*entry.Entry{
		mk("100", "2024-01-01", "from the old days"),
		mk("200", "2024-01-02", "also old"),
	}
	data, _ := json.Marshal(legacy)
	if err := os.WriteFile(filepath.Join(dir, "journal.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	mp := newMemoryPersistence()
	s := New(mp, nil)
	s.LegacyDir = dir
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	if got := len(s.Entries()); got != 2 {
		t.Fatalf("migrated %d entries, want 2", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "journal.json")); !os.IsNotExist(err) {
		t.Error("legacy file still present")
	}
	if _, err := os.Stat(filepath.Join(dir, "journal.json.bak")); err != nil {
		t.Error("backup file missing")
	}
}

func TestMigrationSkipsWhenAbsent(t *testing.T) {
	s := New(newMemoryPersistence(), nil)
	s.LegacyDir = t.TempDir()
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Fatal("unexpected entries")
	}
}

func TestMigrationRunsOncePerProcess(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	data, _ := json.Marshal([]*entry.Entry{mk("100", "2024-01-01", "x")})
	if err := os.WriteFile(filepath.Join(dir, "journal.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	mp := newMemoryPersistence()
	s := New(mp, nil)
	s.LegacyDir = dir
	_ = s.Load(ctx)
	first := mp.putCount

	// Drop a fresh legacy file; a second Load in the same process must not
	// pick it up.
	if err := os.WriteFile(filepath.Join(dir, "journal.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	_ = s.Load(ctx)
	if mp.putCount != first {
		t.Fatal("migration ran twice in one process")
	}
}

func TestMigrationPreservesEarlierBackup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "journal.json.bak"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal([]*entry.Entry{mk("100", "2024-01-01", "x")})
	if err := os.WriteFile(filepath.Join(dir, "journal.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(newMemoryPersistence(), nil)
	s.LegacyDir = dir
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	bak, err := os.ReadFile(filepath.Join(dir, "journal.json.bak"))
	if err != nil {
		t.Fatal(err)
	}
	if string(bak) != "[]" {
		t.Fatal("earlier backup was overwritten")
	}
	if _, err := os.Stat(filepath.Join(dir, "journal.json")); !os.IsNotExist(err) {
		t.Error("legacy file still present")
	}
}
