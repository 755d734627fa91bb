package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/logging"
)

// Persistence is durable keyed storage for entries. Order of GetAll is
// unspecified; callers sort.
type Persistence interface {
	GetAll(ctx context.Context) []*entry.Entry
	Get(id string) (*entry.Entry, error)
	Put(e *entry.Entry) error
	Delete(id string) error
	Clear() error
}

const (
	entriesDir = "entries"
	tmpDir     = "tmp"
)

// Load creates a Persistence backed by diskv rooted under the configured
// base path. Creating the base path is idempotent; failure to create it is
// ErrStorageUnavailable.
func Load(cfg Config, log logging.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = logging.Discard()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, fmt.Errorf("%w: no base path configured", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(filepath.Join(basePath, entriesDir), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath: filepath.Join(basePath, entriesDir),
			// TempDir on the same filesystem makes each write an atomic rename.
			TempDir:      filepath.Join(basePath, tmpDir),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      log,
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      logging.Logger
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	// The key is canonical; a hand-edited record cannot change its own id.
	e.ID = key
	return e, nil
}

func (p *persistence) GetAll(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			p.log.Warn(ctx, "skipping unreadable record", "key", key, "err", err)
			continue
		}
		all = append(all, e)
	}
	return all
}

func (p *persistence) Get(id string) (*entry.Entry, error) {
	if !p.d.Has(id) {
		return nil, ErrNotFound
	}
	e, err := p.read(id)
	if err != nil {
		return nil, &StorageError{Op: "get", Key: id, Err: err}
	}
	return e, nil
}

func (p *persistence) Put(e *entry.Entry) error {
	if e == nil || e.ID == "" {
		return &StorageError{Op: "put", Err: errors.New("entry id required")}
	}
	data, err := json.Marshal(e)
	if err != nil {
		return &StorageError{Op: "put", Key: e.ID, Err: err}
	}
	if err := p.d.Write(e.ID, data); err != nil {
		return &StorageError{Op: "put", Key: e.ID, Err: err}
	}
	return nil
}

func (p *persistence) Delete(id string) error {
	if id == "" {
		return nil
	}
	if err := p.d.Erase(id); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &StorageError{Op: "delete", Key: id, Err: err}
	}
	return nil
}

func (p *persistence) Clear() error {
	if err := p.d.EraseAll(); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	// EraseAll removes the directory itself; recreate so the store stays open.
	if err := os.MkdirAll(filepath.Join(p.basePath, entriesDir), 0o755); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
