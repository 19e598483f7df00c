// Package memory provides an in-memory Store for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"trackerd/internal/core"
)

type Store struct {
	mu           sync.Mutex
	transactions []core.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) LoadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func (s *Store) Persist(_ context.Context, transactions []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = make([]core.Transaction, len(transactions))
	copy(s.transactions, transactions)
	return nil
}

func (s *Store) Close() error { return nil }
