package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/anatolykoptev/go_jobcoach/internal/engine"
)

// Store is the key-value persistence collaborator. Values are JSON
// documents; callers read and write whole values, there are no transactions.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("key not found")

// Package-level store, set from main.go.
var store Store

// SetStore sets the package-level store.
func SetStore(s Store) { store = s }

// GetStore returns the package-level store (may be nil).
func GetStore() Store { return store }

// OpenStore picks Postgres when a database URL is configured and SQLite in
// the data directory otherwise.
func OpenStore(ctx context.Context, c engine.Config) (Store, error) {
	if c.DatabaseURL != "" {
		return ConnectPostgresStore(ctx, c.DatabaseURL)
	}
	return OpenSQLiteStore(filepath.Join(c.DataDir, "jobcoach.db"))
}

func requireStore() (Store, error) {
	if store == nil {
		return nil, errors.New("store not initialized")
	}
	return store, nil
}

// getJSON decodes the value at key into v. found is false for a missing key.
func getJSON(ctx context.Context, s Store, key string, v any) (found bool, err error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	engine.IncrStoreReads()
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func putJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, data); err != nil {
		return err
	}
	engine.IncrStoreWrites()
	return nil
}
