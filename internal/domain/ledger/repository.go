package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) ([]Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, int64, error)
	// SumOutstandingByTenantID sums balance_due over the tenant's open payments.
	// At most one open row should exist under correct use, but the sum must
	// tolerate any that do.
	SumOutstandingByTenantID(ctx context.Context, tenantID uuid.UUID) (decimal.Decimal, error)
	// CountCompletedCyclesByTenantID counts prior Full/zero-balance payments,
	// which is how renewals are detected.
	CountCompletedCyclesByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error)
	// SumOutstandingAll sums balance_due over every open payment (dashboard).
	SumOutstandingAll(ctx context.Context) (decimal.Decimal, error)
	// CloseOpenBalances zeroes other open rows for the tenant after a
	// completing payment, keeping at most one logical open balance.
	CloseOpenBalances(ctx context.Context, tenantID uuid.UUID, excludeID uuid.UUID) error
	// Save persists changes to an existing payment row
	Save(ctx context.Context, payment *Payment) error
}

// LedgerEntryRepository defines persistence operations for landlord ledger
// entries. The ledger is append-only: there is no update or delete.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *LedgerEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)
	FindByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]LedgerEntry, error)
	SumByLandlordIDAndType(ctx context.Context, landlordID uuid.UUID, entryType EntryType) (decimal.Decimal, error)
}

// StatementFilter narrows which rows participate in a landlord statement.
// The running balance of a filtered view is recomputed from only the
// filtered rows in date order.
type StatementFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

// StatementReader is the read model feeding the statement builder
type StatementReader interface {
	// PaymentLines returns one credit line per payment on the landlord's
	// properties, already narrowed by the filter.
	PaymentLines(ctx context.Context, landlordID uuid.UUID, filter StatementFilter) ([]StatementLine, error)
	// ManualLines returns one line per ledger entry for the landlord,
	// already narrowed by the filter.
	ManualLines(ctx context.Context, landlordID uuid.UUID, filter StatementFilter) ([]StatementLine, error)
	// SumPaymentsByLandlordID totals payment amounts across the landlord's
	// properties (general balance).
	SumPaymentsByLandlordID(ctx context.Context, landlordID uuid.UUID) (decimal.Decimal, error)
}
