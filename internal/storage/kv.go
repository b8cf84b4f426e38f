// Package storage provides the key-value persistence boundary for the game:
// a get/set-by-key string store backed by SQLite, with an in-memory fallback
// so a broken database never takes the game down.
package storage

import "github.com/charmbracelet/log"

// KV is the minimal string store the game persists into. Callers treat
// missing keys and I/O failures the same way: fall back to defaults and keep
// playing.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// OpenDefault opens the SQLite store at dbPath, falling back to an
// in-memory store when the database cannot be opened. Scores then live
// only for the process lifetime.
func OpenDefault(dbPath string, logger *log.Logger) KV {
	kv, err := Open(dbPath)
	if err != nil {
		if logger != nil {
			logger.Warn("could not open database, scores will not persist", "path", dbPath, "error", err)
		}
		return NewMemory()
	}
	return kv
}
