// Package worker consumes ledger events and mirrors them to a spreadsheet.
// The mirror is one-way and append-oriented: appends become new rows, a
// reset clears the sheet, deletes are logged for manual reconciliation.
package worker

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"trackerd/internal/amqp"
	"trackerd/internal/core"
	"trackerd/internal/log"
	"trackerd/internal/sheets"
)

type Mirror struct {
	sink   sheets.LedgerMirror
	logger *log.Logger
}

func NewMirror(sink sheets.LedgerMirror, logger *log.Logger) *Mirror {
	return &Mirror{
		sink:   sink,
		logger: logger.WithComponent(log.ComponentMirror),
	}
}

// Run consumes events from the queue until ctx is done.
func (m *Mirror) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeLedgerEvents(ctx, m.HandleEvent)
}

// HandleEvent applies one ledger event to the mirror. A returned error
// causes the delivery to be requeued.
func (m *Mirror) HandleEvent(ctx context.Context, ev *amqp.LedgerEvent) error {
	switch ev.Op {
	case amqp.OpAppend:
		tx, err := transactionFromPayload(ev.Transaction)
		if err != nil {
			return fmt.Errorf("decode append event: %w", err)
		}
		if err := m.sink.AppendRow(ctx, tx); err != nil {
			return fmt.Errorf("mirror append: %w", err)
		}
		return nil
	case amqp.OpDelete:
		// The mirror is append-only; a row deleted in the ledger has to be
		// removed from the spreadsheet by hand.
		m.logger.InfoContext(ctx, "Ledger delete received; reconcile the sheet manually",
			log.FieldIndex, ev.Index)
		return nil
	case amqp.OpReset:
		if err := m.sink.Clear(ctx); err != nil {
			return fmt.Errorf("mirror reset: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown ledger event op %q", ev.Op)
	}
}

func transactionFromPayload(p *amqp.TransactionPayload) (core.Transaction, error) {
	if p == nil {
		return core.Transaction{}, fmt.Errorf("event carries no transaction")
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse amount %q: %w", p.Amount, err)
	}
	date, err := core.ParseDate(p.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse date %q: %w", p.Date, err)
	}
	tx := core.Transaction{
		Amount:   amount,
		Type:     core.TransactionType(p.Type),
		Category: p.Category,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}
