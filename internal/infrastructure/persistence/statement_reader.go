package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStatementReader implements the statement read model with joined queries
// across payments, tenants, properties and ledger entries.
type GormStatementReader struct {
	db *gorm.DB
}

// NewGormStatementReader creates a new GormStatementReader
func NewGormStatementReader(db *gorm.DB) *GormStatementReader {
	return &GormStatementReader{db: db}
}

// paymentLineRow is the scan target for the payment-line join
type paymentLineRow struct {
	ID            uuid.UUID
	PaymentDate   time.Time
	Amount        decimal.Decimal
	Method        string
	Description   string
	TenantName    string
	PropertyTitle string
	CreatedAt     time.Time
}

// PaymentLines returns one credit line per payment on the landlord's
// properties. The credit is always the full payment amount.
func (r *GormStatementReader) PaymentLines(ctx context.Context, landlordID uuid.UUID, filter ledger.StatementFilter) ([]ledger.StatementLine, error) {
	query := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.id, payments.payment_date, payments.amount, payments.method, payments.description, payments.created_at, tenants.full_name AS tenant_name, properties.title AS property_title").
		Joins("JOIN properties ON properties.id = payments.property_id").
		Joins("JOIN tenants ON tenants.id = payments.tenant_id").
		Where("properties.landlord_id = ?", landlordID)

	if filter.DateFrom != nil {
		query = query.Where("payments.payment_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("payments.payment_date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("tenants.full_name ILIKE ? OR payments.description ILIKE ? OR properties.title ILIKE ?",
			pattern, pattern, pattern)
	}

	var rows []paymentLineRow
	if err := query.Order("payments.payment_date ASC, payments.created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]ledger.StatementLine, 0, len(rows))
	for _, row := range rows {
		narration := row.Description
		if narration == "" {
			narration = "Rent payment - " + row.TenantName
		}
		lines = append(lines, ledger.StatementLine{
			Date:      row.PaymentDate,
			Narration: narration,
			Method:    row.Method,
			Credit:    row.Amount,
			Debit:     decimal.Zero,
			Source:    ledger.StatementSourcePayment,
			SourceID:  row.ID.String(),
			Tenant:    row.TenantName,
			Property:  row.PropertyTitle,
			Seq:       row.CreatedAt.UnixNano(),
		})
	}
	return lines, nil
}

// ManualLines returns one line per ledger entry for the landlord
func (r *GormStatementReader) ManualLines(ctx context.Context, landlordID uuid.UUID, filter ledger.StatementFilter) ([]ledger.StatementLine, error) {
	query := r.db.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Where("landlord_id = ?", landlordID)

	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.Search != "" {
		query = query.Where("narration ILIKE ?", "%"+filter.Search+"%")
	}

	var entryModels []models.LedgerEntryModel
	if err := query.Order("date ASC, created_at ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	lines := make([]ledger.StatementLine, 0, len(entryModels))
	for _, model := range entryModels {
		entry := model.ToDomain()
		line := ledger.StatementLine{
			Date:      entry.Date,
			Narration: entry.Narration,
			Method:    entry.Method,
			Credit:    decimal.Zero,
			Debit:     decimal.Zero,
			Source:    ledger.StatementSourceManual,
			SourceID:  entry.ID.String(),
			Seq:       entry.CreatedAt.UnixNano(),
		}
		if entry.Type == ledger.EntryTypeCredit {
			line.Credit = entry.Amount
		} else {
			line.Debit = entry.Amount
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// SumPaymentsByLandlordID totals payment amounts across the landlord's properties
func (r *GormStatementReader) SumPaymentsByLandlordID(ctx context.Context, landlordID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.WithContext(ctx).
		Table("payments").
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN properties ON properties.id = payments.property_id").
		Where("properties.landlord_id = ?", landlordID).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// Ensure GormStatementReader implements StatementReader
var _ ledger.StatementReader = (*GormStatementReader)(nil)
