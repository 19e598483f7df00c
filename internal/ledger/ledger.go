// Package ledger holds the ordered transaction sequence and the aggregation
// over it. The ledger exclusively owns the sequence: all mutation goes
// through Append, DeleteAt and Reset, each of which persists the full
// sequence through the durable store before it is considered committed.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"trackerd/internal/core"
	"trackerd/internal/store"
)

// Ledger is safe for concurrent use. One mutex serializes every
// read-modify-write against the backing store so concurrent appends cannot
// lose an update and concurrent deletes cannot mis-index.
type Ledger struct {
	mu      sync.Mutex
	entries []core.Transaction
	store   store.Store
}

// Open loads the durable sequence and returns a ledger over it.
func Open(ctx context.Context, st store.Store) (*Ledger, error) {
	entries, err := st.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	slog.InfoContext(ctx, "Ledger loaded", "count", len(entries))
	return &Ledger{entries: entries, store: st}, nil
}

// Append adds a transaction to the end of the sequence and returns its
// zero-based position. No dedup, no merging.
func (l *Ledger) Append(ctx context.Context, tx core.Transaction) (int, error) {
	if err := tx.Validate(); err != nil {
		return 0, fmt.Errorf("append transaction: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, tx)
	if err := l.persistLocked(ctx); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		return 0, fmt.Errorf("append transaction: %w", err)
	}
	return len(l.entries) - 1, nil
}

// DeleteAt removes the entry at the given zero-based position, shifting
// subsequent indices down by one. The ledger is unchanged when the index is
// out of range or the persist fails.
func (l *Ledger) DeleteAt(ctx context.Context, index int) (core.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.entries) {
		return core.Transaction{}, fmt.Errorf("delete at %d (len %d): %w", index, len(l.entries), core.ErrIndexOutOfRange)
	}

	removed := l.entries[index]
	remaining := make([]core.Transaction, 0, len(l.entries)-1)
	remaining = append(remaining, l.entries[:index]...)
	remaining = append(remaining, l.entries[index+1:]...)

	previous := l.entries
	l.entries = remaining
	if err := l.persistLocked(ctx); err != nil {
		l.entries = previous
		return core.Transaction{}, fmt.Errorf("delete at %d: %w", index, err)
	}
	return removed, nil
}

// Reset clears all entries. Irreversible within the process.
func (l *Ledger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	previous := l.entries
	l.entries = nil
	if err := l.persistLocked(ctx); err != nil {
		l.entries = previous
		return fmt.Errorf("reset ledger: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current ordered sequence for read-only
// aggregation. The copy is taken under the mutex, so it never observes a
// torn write.
func (l *Ledger) Snapshot() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]core.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the current number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Ledger) persistLocked(ctx context.Context) error {
	snapshot := make([]core.Transaction, len(l.entries))
	copy(snapshot, l.entries)
	if err := l.store.Persist(ctx, snapshot); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
