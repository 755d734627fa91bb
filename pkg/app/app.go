// Package app holds the journal service: the one component that reads and
// writes persistence. It keeps the canonical in-memory entry list all views
// render from, updated only after the store confirms a write.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/logging"
	"github.com/momolog/momo/pkg/store"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotFound      = errors.New("app: entry not found")

	// ErrImportParse rejects a malformed import document. It is always
	// raised before the store is touched.
	ErrImportParse = errors.New("app: import document malformed")
)

// Service provides high-level operations over the journal so the CLI and
// TUI can share logic. Not safe for concurrent use; both frontends drive it
// from a single goroutine.
type Service struct {
	Persistence store.Persistence
	Log         logging.Logger

	// LegacyDir, when set, is checked once on Load for a pre-keyed-store
	// flat journal file to migrate.
	LegacyDir string

	entries  []*entry.Entry
	migrated bool
}

func New(p store.Persistence, log logging.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{Persistence: p, Log: log}
}

// Load reads every stored entry, newest first. The legacy migration runs
// first so migrated records are part of the same load.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.migrateLegacy(ctx); err != nil {
		// The legacy file is left in place; next start retries.
		s.log().Warn(ctx, "legacy migration failed", "err", err)
	}
	all := s.Persistence.GetAll(ctx)
	entry.SortNewestFirst(all)
	s.entries = all
	return nil
}

// Entries returns a snapshot of the current list, newest first.
func (s *Service) Entries() []*entry.Entry {
	return append([]*entry.Entry(nil), s.entries...)
}

// Entry finds one entry by id in the loaded list.
func (s *Service) Entry(id string) (*entry.Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// Save validates the draft and persists the result. The in-memory list is
// updated only after the store confirms: replaced in place when the id is
// already present, prepended otherwise. A store failure leaves the list
// exactly as it was.
func (s *Service) Save(ctx context.Context, d entry.Draft) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	e, err := d.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(e); err != nil {
		return nil, err
	}
	for i, cur := range s.entries {
		if cur.ID == e.ID {
			s.entries[i] = e
			return e, nil
		}
	}
	s.entries = append([]*entry.Entry{e}, s.entries...)
	return e, nil
}

// Remove deletes the entry. Removing an id the store never held is a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Delete(id); err != nil {
		return err
	}
	for i, cur := range s.entries {
		if cur.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return nil
}

// ExportAll serializes the full journal as a JSON array.
func (s *Service) ExportAll(ctx context.Context) ([]byte, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	all := s.Persistence.GetAll(ctx)
	entry.SortNewestFirst(all)
	return json.MarshalIndent(all, "", "  ")
}

// ImportReplace parses doc, wipes the store, and writes every imported
// entry. Parsing happens before the destructive clear, so a malformed
// document aborts cleanly. The write loop itself is best effort: diskv has
// no multi-key transaction, so a failure mid-loop leaves the entries
// written so far. The list is reloaded from the store afterwards either
// way, so views always match disk. Returns the number written.
func (s *Service) ImportReplace(ctx context.Context, doc []byte) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	var imported []*entry.Entry
	if err := json.Unmarshal(doc, &imported); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	if err := s.Persistence.Clear(); err != nil {
		return 0, err
	}

	var firstErr error
	written := 0
	for _, e := range imported {
		if e == nil {
			continue
		}
		if e.ID == "" {
			e.ID = entry.NewID()
		}
		if err := s.Persistence.Put(e); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.log().Error(ctx, "import write failed", "id", e.ID, "err", err)
			continue
		}
		written++
	}

	all := s.Persistence.GetAll(ctx)
	entry.SortNewestFirst(all)
	s.entries = all
	return written, firstErr
}

func (s *Service) log() logging.Logger {
	if s.Log == nil {
		return logging.Discard()
	}
	return s.Log
}
