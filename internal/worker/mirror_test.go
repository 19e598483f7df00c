package worker

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"trackerd/internal/amqp"
	"trackerd/internal/core"
	"trackerd/internal/log"
)

type fakeSink struct {
	rows    []core.Transaction
	cleared int
}

func (f *fakeSink) AppendRow(_ context.Context, tx core.Transaction) error {
	f.rows = append(f.rows, tx)
	return nil
}

func (f *fakeSink) Clear(context.Context) error {
	f.cleared++
	f.rows = nil
	return nil
}

func newMirror(sink *fakeSink) *Mirror {
	return NewMirror(sink, log.New(log.Config{Level: slog.LevelError}))
}

func TestHandleAppendEvent(t *testing.T) {
	sink := &fakeSink{}
	m := newMirror(sink)

	tx := core.Transaction{
		Amount:   decimal.RequireFromString("99.95"),
		Type:     core.Expense,
		Category: "Shopping",
		Date:     core.NewDate(2025, 8, 30),
	}
	if err := m.HandleEvent(context.Background(), amqp.NewAppendEvent(tx)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(sink.rows) != 1 {
		t.Fatalf("expected one mirrored row, got %d", len(sink.rows))
	}
	got := sink.rows[0]
	if !got.Amount.Equal(tx.Amount) || got.Category != tx.Category || got.Type != tx.Type || got.Date.String() != tx.Date.String() {
		t.Fatalf("mirrored row = %+v, want %+v", got, tx)
	}
}

func TestHandleResetEvent(t *testing.T) {
	sink := &fakeSink{rows: []core.Transaction{{}}}
	m := newMirror(sink)

	if err := m.HandleEvent(context.Background(), amqp.NewResetEvent()); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if sink.cleared != 1 || len(sink.rows) != 0 {
		t.Fatalf("reset did not clear the sink")
	}
}

func TestHandleDeleteEventIsLoggedOnly(t *testing.T) {
	sink := &fakeSink{}
	m := newMirror(sink)

	if err := m.HandleEvent(context.Background(), amqp.NewDeleteEvent(3)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(sink.rows) != 0 || sink.cleared != 0 {
		t.Fatalf("delete event touched the sink")
	}
}

func TestHandleEventRejectsBadPayloads(t *testing.T) {
	m := newMirror(&fakeSink{})
	ctx := context.Background()

	cases := []*amqp.LedgerEvent{
		{Op: amqp.OpAppend},
		{Op: amqp.OpAppend, Transaction: &amqp.TransactionPayload{Amount: "abc", Category: "x", Type: "Expense", Date: "2025-08-30"}},
		{Op: amqp.OpAppend, Transaction: &amqp.TransactionPayload{Amount: "10", Category: "x", Type: "Loan", Date: "2025-08-30"}},
		{Op: "rename"},
	}
	for _, ev := range cases {
		if err := m.HandleEvent(ctx, ev); err == nil {
			t.Fatalf("expected error for event %+v", ev)
		}
	}
}
