// Package csvfile persists the ledger as a single CSV file with the header
// Amount,Category,Type,Date — one transaction per row, amounts as decimal
// text, dates in ISO-8601 form.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"trackerd/internal/core"
)

var header = []string{"Amount", "Category", "Type", "Date"}

type Store struct {
	path string
}

// New creates a CSV store at path, creating the parent directory and an
// empty file with the header row if none exists yet.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("initialize csv file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat csv file: %w", err)
	}
	return s, nil
}

func (s *Store) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var transactions []core.Transaction
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		tx, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		transactions = append(transactions, tx)
	}

	slog.DebugContext(ctx, "Loaded transactions from CSV", "path", s.path, "count", len(transactions))
	return transactions, nil
}

func (s *Store) Persist(ctx context.Context, transactions []core.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeAll(transactions); err != nil {
		return fmt.Errorf("persist csv file: %w", err)
	}
	slog.DebugContext(ctx, "Persisted transactions to CSV", "path", s.path, "count", len(transactions))
	return nil
}

func (s *Store) Close() error { return nil }

// writeAll rewrites the whole file atomically: write to a temp file in the
// same directory, then rename over the target.
func (s *Store) writeAll(transactions []core.Transaction) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".transactions-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.Amount.String(),
			tx.Category,
			string(tx.Type),
			tx.Date.String(),
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace csv file: %w", err)
	}
	return nil
}

func parseRecord(record []string) (core.Transaction, error) {
	amount, err := decimal.NewFromString(record[0])
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse amount %q: %w", record[0], err)
	}
	txType := core.TransactionType(record[2])
	if err := txType.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("parse type %q: %w", record[2], err)
	}
	date, err := core.ParseDate(record[3])
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse date %q: %w", record[3], err)
	}
	tx := core.Transaction{
		Amount:   amount,
		Type:     txType,
		Category: record[1],
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}
