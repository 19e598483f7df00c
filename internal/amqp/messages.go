package amqp

import (
	"encoding/json"
	"time"

	"trackerd/internal/core"
)

// Ledger event operations.
const (
	OpAppend = "append"
	OpDelete = "delete"
	OpReset  = "reset"
)

// TransactionPayload is the wire form of a transaction inside an event.
// Amounts travel as decimal strings so no precision is lost in transit.
type TransactionPayload struct {
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Date     string `json:"date"`
}

// LedgerEvent notifies downstream consumers (the sheets mirror) of a ledger
// mutation. Append events carry the full transaction; delete events carry
// the removed position.
type LedgerEvent struct {
	Op          string              `json:"op"`
	Transaction *TransactionPayload `json:"transaction,omitempty"`
	Index       int                 `json:"index,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
}

// NewAppendEvent builds an append event for a just-recorded transaction.
func NewAppendEvent(tx core.Transaction) *LedgerEvent {
	return &LedgerEvent{
		Op: OpAppend,
		Transaction: &TransactionPayload{
			Amount:   tx.Amount.String(),
			Category: tx.Category,
			Type:     string(tx.Type),
			Date:     tx.Date.String(),
		},
		Timestamp: time.Now(),
	}
}

// NewDeleteEvent builds a delete event for the given ledger position.
func NewDeleteEvent(index int) *LedgerEvent {
	return &LedgerEvent{Op: OpDelete, Index: index, Timestamp: time.Now()}
}

// NewResetEvent builds a reset event.
func NewResetEvent() *LedgerEvent {
	return &LedgerEvent{Op: OpReset, Timestamp: time.Now()}
}

// ToJSON converts the event to JSON bytes.
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON decodes an event from JSON bytes.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var ev LedgerEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
