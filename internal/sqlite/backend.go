// Package sqlite implements the SQLite storage backend for farmstock: the
// species tables behind the herd repository and the Commodity price table.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

var _ types.Store = (*Backend)(nil)
var _ types.PriceSource = (*Backend)(nil)

// Backend implements types.Store and types.PriceSource on a single SQLite
// file. It is opened once per process by Attach and released by Detach.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	path     string
	log      *zap.Logger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
// A nil logger discards log output.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log.Named("sqlite")}
}

// Attach opens the database file in config.DataDir, creating the directory,
// the file and any missing tables. The Commodity table is seeded from
// config.Prices when empty.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %w", types.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, config.DatabaseFile())
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", types.ErrStorage, dbPath, err)
	}
	// One connection keeps every statement on the same file handle.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("%w: create schema: %w", types.ErrStorage, err)
		}
	}

	if err := seedCommodities(db, config.Prices); err != nil {
		db.Close()
		return fmt.Errorf("%w: %w", types.ErrStorage, err)
	}

	b.db = db
	b.config = config
	b.path = dbPath
	b.attached = true

	b.log.Debug("attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the SQLite connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("%w: close: %w", types.ErrStorage, err)
		}
		b.db = nil
	}

	b.attached = false
	b.log.Debug("detached", zap.String("path", b.path))
	return nil
}

// Path returns the database file path, or "" when detached.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return ""
	}
	return b.path
}

// conn returns the open database or ErrStoreDetached.
// The caller must hold b.mu.
func (b *Backend) conn() (*sql.DB, error) {
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}
