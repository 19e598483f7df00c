// Package store defines the port the ledger uses to keep its sequence
// durable. Implementations live in subpackages (csvfile, memory) and in
// internal/storage for the SQLite backend.
package store

import (
	"context"

	"trackerd/internal/core"
)

// Store persists the full ordered transaction sequence. LoadAll is called
// once at startup; Persist after every ledger mutation with the complete
// current sequence, so implementations own no incremental state.
type Store interface {
	LoadAll(ctx context.Context) ([]core.Transaction, error)
	Persist(ctx context.Context, transactions []core.Transaction) error
	Close() error
}
