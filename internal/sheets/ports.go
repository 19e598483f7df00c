// Package sheets defines the outbound port for the spreadsheet mirror of
// the ledger.
package sheets

import (
	"context"

	"trackerd/internal/core"
)

// LedgerMirror is an append-only copy of the ledger kept outside the
// service, for people who want their numbers in a spreadsheet.
type LedgerMirror interface {
	// AppendRow adds one transaction row after the header.
	AppendRow(ctx context.Context, tx core.Transaction) error
	// Clear removes all transaction rows, keeping the header.
	Clear(ctx context.Context) error
}
