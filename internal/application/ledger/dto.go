package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest carries the inputs of a rent payment
type RecordPaymentRequest struct {
	TenantID    uuid.UUID `json:"tenant_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Method      string    `json:"method" binding:"required"`
	PaymentDate time.Time `json:"payment_date"`
	Description string    `json:"description"`
}

// RecordPaymentResponse reports how the payment was classified
type RecordPaymentResponse struct {
	PaymentID   uuid.UUID       `json:"payment_id"`
	PaymentType string          `json:"payment_type"`
	BalanceDue  decimal.Decimal `json:"balance_due"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Message     string          `json:"message"`
}

// RenewLeaseRequest carries the inputs of a lease renewal with payment
type RenewLeaseRequest struct {
	TenantID    uuid.UUID `json:"tenant_id" binding:"required"`
	LeaseStart  time.Time `json:"lease_start" binding:"required"`
	LeaseEnd    time.Time `json:"lease_end" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Method      string    `json:"method" binding:"required"`
	PaymentType string    `json:"payment_type" binding:"required,oneof=FULL PARTIAL"`
	PaymentDate time.Time `json:"payment_date"`
	Description string    `json:"description"`
}

// RenewLeaseResponse reports the landlord's net position after renewal
type RenewLeaseResponse struct {
	PaymentID         uuid.UUID       `json:"payment_id"`
	PaymentType       string          `json:"payment_type"`
	BalanceDue        decimal.Decimal `json:"balance_due"`
	LandlordNetAmount decimal.Decimal `json:"landlord_net_amount"`
	Message           string          `json:"message"`
}

// AddLedgerEntryRequest carries a manual landlord credit or debit
type AddLedgerEntryRequest struct {
	LandlordID uuid.UUID `json:"landlord_id" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Narration  string    `json:"narration" binding:"required"`
	Type       string    `json:"type" binding:"required"`
	Amount     float64   `json:"amount" binding:"required,gt=0"`
	Method     string    `json:"method"`
}

// LedgerEntryResponse represents a ledger entry in API responses
type LedgerEntryResponse struct {
	ID         uuid.UUID       `json:"id"`
	LandlordID uuid.UUID       `json:"landlord_id"`
	Date       time.Time       `json:"date"`
	Narration  string          `json:"narration"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	UnitID      *uuid.UUID      `json:"unit_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	BalanceDue  decimal.Decimal `json:"balance_due"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToPaymentResponse converts a payment to its API representation
func ToPaymentResponse(p *ledger.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		PropertyID:  p.PropertyID,
		UnitID:      p.UnitID,
		Amount:      p.Amount,
		Type:        p.Type.String(),
		Method:      p.Method.String(),
		PaymentDate: p.PaymentDate,
		BalanceDue:  p.BalanceDue,
		Credit:      p.Credit,
		Debit:       p.Debit,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// ToLedgerEntryResponse converts a ledger entry to its API representation
func ToLedgerEntryResponse(e *ledger.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:         e.ID,
		LandlordID: e.LandlordID,
		Date:       e.Date,
		Narration:  e.Narration,
		Type:       e.Type.String(),
		Amount:     e.Amount,
		Method:     e.Method,
		CreatedAt:  e.CreatedAt,
	}
}
