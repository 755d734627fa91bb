package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/momolog/momo/pkg/entry"
)

const (
	legacyFile   = "journal.json"
	legacyBackup = "journal.json.bak"
)

// migrateLegacy copies a pre-keyed-store flat journal (one JSON array in
// journal.json) into the keyed store, entry by entry. The legacy file is
// preserved as journal.json.bak and removed from its old name, which also
// serves as the done marker: once it is gone the whole step is a stat and a
// return. Runs at most once per process. Upsert semantics make a rerun
// after a mid-copy crash safe.
func (s *Service) migrateLegacy(ctx context.Context) error {
	if s.migrated || s.LegacyDir == "" {
		return nil
	}
	s.migrated = true

	path := filepath.Join(s.LegacyDir, legacyFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read legacy journal: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		// Nothing to copy; archive the empty file so we stop looking at it.
		return s.archiveLegacy(path)
	}

	var legacy []*entry.Entry
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("parse legacy journal: %w", err)
	}

	copied := 0
	for _, e := range legacy {
		if e == nil {
			continue
		}
		if e.ID == "" {
			e.ID = entry.NewID()
		}
		if err := s.Persistence.Put(e); err != nil {
			return fmt.Errorf("copy legacy entry %s: %w", e.ID, err)
		}
		copied++
	}
	s.log().Info(ctx, "migrated legacy journal", "entries", copied)

	return s.archiveLegacy(path)
}

func (s *Service) archiveLegacy(path string) error {
	bak := filepath.Join(s.LegacyDir, legacyBackup)
	if _, err := os.Stat(bak); errors.Is(err, fs.ErrNotExist) {
		return os.Rename(path, bak)
	}
	// A backup from an earlier run exists; keep it and just clear the
	// legacy name.
	return os.Remove(path)
}
