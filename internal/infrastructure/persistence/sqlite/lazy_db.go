package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/logging"
)

// LazyDB implements port.DatabaseProvider with lazy initialization.
// The connection is opened on first access, deferring the WASM compilation
// and migration cost until a command actually reads or writes settings.
type LazyDB struct {
	dbPath string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy database provider for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		err := l.db.Close()
		l.db = nil
		return err
	}
	return nil
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
