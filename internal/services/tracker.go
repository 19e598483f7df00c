// Package services wires the interpretation engine to the ledger and the
// event stream. The transport layer talks only to the Tracker.
package services

import (
	"context"
	"fmt"

	"trackerd/internal/amqp"
	"trackerd/internal/core"
	"trackerd/internal/interpret"
	"trackerd/internal/ledger"
	"trackerd/internal/log"
)

// EventPublisher is the outbound port for ledger mutation events. A nil
// publisher disables eventing.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, ev *amqp.LedgerEvent) error
}

// Tracker orchestrates interpret → append and the direct ledger operations.
// Event publishing is best-effort: the ledger mutation is the source of
// truth, a failed publish never fails the request.
type Tracker struct {
	interpreter *interpret.Interpreter
	ledger      *ledger.Ledger
	publisher   EventPublisher
	logger      *log.Logger
}

func NewTracker(interpreter *interpret.Interpreter, ldg *ledger.Ledger, publisher EventPublisher, logger *log.Logger) *Tracker {
	return &Tracker{
		interpreter: interpreter,
		ledger:      ldg,
		publisher:   publisher,
		logger:      logger.WithComponent(log.ComponentLedger),
	}
}

// Add interprets a free-form message and appends the resulting transaction.
// Returns the transaction and its ledger position.
func (t *Tracker) Add(ctx context.Context, message string) (core.Transaction, int, error) {
	tx, err := t.interpreter.Interpret(message)
	if err != nil {
		return core.Transaction{}, 0, err
	}

	index, err := t.ledger.Append(ctx, tx)
	if err != nil {
		return core.Transaction{}, 0, fmt.Errorf("record transaction: %w", err)
	}

	t.logger.InfoContext(ctx, "Transaction recorded",
		log.FieldAmount, tx.Amount.String(),
		log.FieldType, string(tx.Type),
		log.FieldCategory, tx.Category,
		log.FieldIndex, index)

	t.publish(ctx, amqp.NewAppendEvent(tx))
	return tx, index, nil
}

// Delete removes the transaction at the given zero-based position and
// returns it.
func (t *Tracker) Delete(ctx context.Context, index int) (core.Transaction, error) {
	removed, err := t.ledger.DeleteAt(ctx, index)
	if err != nil {
		return core.Transaction{}, err
	}

	t.logger.InfoContext(ctx, "Transaction deleted",
		log.FieldIndex, index,
		log.FieldAmount, removed.Amount.String(),
		log.FieldCategory, removed.Category)

	t.publish(ctx, amqp.NewDeleteEvent(index))
	return removed, nil
}

// Reset clears the whole ledger.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.ledger.Reset(ctx); err != nil {
		return err
	}
	t.logger.InfoContext(ctx, "Ledger reset")
	t.publish(ctx, amqp.NewResetEvent())
	return nil
}

// Transactions returns the current ordered ledger contents.
func (t *Tracker) Transactions() []core.Transaction {
	return t.ledger.Snapshot()
}

// Summary recomputes the aggregate view from a fresh snapshot; it is never
// cached, so it always reflects the current ledger.
func (t *Tracker) Summary() core.Summary {
	return ledger.Summarize(t.ledger.Snapshot())
}

func (t *Tracker) publish(ctx context.Context, ev *amqp.LedgerEvent) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.PublishLedgerEvent(ctx, ev); err != nil {
		t.logger.ErrorContext(ctx, "Failed to publish ledger event",
			log.FieldOp, ev.Op,
			log.FieldError, err.Error())
	}
}
