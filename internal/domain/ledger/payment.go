package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentType represents how a payment relates to its rent cycle
type PaymentType string

const (
	// PaymentTypeFull means the payment closed its rent cycle
	PaymentTypeFull PaymentType = "FULL"
	// PaymentTypePartial means the payment left an outstanding balance
	PaymentTypePartial PaymentType = "PARTIAL"
)

// String returns the string representation of PaymentType
func (t PaymentType) String() string {
	return string(t)
}

// IsValid returns true if the payment type is valid
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypePartial:
		return true
	}
	return false
}

// PaymentMethod represents how money changed hands
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodPOS          PaymentMethod = "POS"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid returns true if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodPOS, PaymentMethodOther:
		return true
	}
	return false
}

// Payment represents one rent payment made by a tenant. Rows are created once
// and never deleted; only BalanceDue and Type may later be normalized when a
// completing payment closes the cycle. Credit and Debit record this payment's
// landlord/fee split at classification time.
type Payment struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	PropertyID  uuid.UUID
	UnitID      *uuid.UUID
	Amount      decimal.Decimal
	Type        PaymentType
	Method      PaymentMethod
	PaymentDate time.Time
	BalanceDue  decimal.Decimal
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Description string
}

// NewPayment creates a classified payment row
func NewPayment(
	tenantID, propertyID uuid.UUID,
	amount decimal.Decimal,
	paymentType PaymentType,
	method PaymentMethod,
	paymentDate time.Time,
) (*Payment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Invalid payment type")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method")
	}

	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		PropertyID:  propertyID,
		Amount:      amount,
		Type:        paymentType,
		Method:      method,
		PaymentDate: paymentDate,
		BalanceDue:  decimal.Zero,
		Credit:      decimal.Zero,
		Debit:       decimal.Zero,
	}, nil
}

// WithUnitID attaches the unit the payment was made for
func (p *Payment) WithUnitID(unitID uuid.UUID) *Payment {
	p.UnitID = &unitID
	return p
}

// WithDescription sets the payment narration
func (p *Payment) WithDescription(description string) *Payment {
	p.Description = description
	return p
}

// WithBalanceDue sets the remaining obligation for the cycle
func (p *Payment) WithBalanceDue(balanceDue decimal.Decimal) *Payment {
	p.BalanceDue = balanceDue
	return p
}

// WithSplit sets the landlord credit and management-fee debit
func (p *Payment) WithSplit(credit, debit decimal.Decimal) *Payment {
	p.Credit = credit
	p.Debit = debit
	return p
}

// IsOpen returns true while the payment still tracks an outstanding balance
func (p *Payment) IsOpen() bool {
	return p.BalanceDue.IsPositive()
}

// IsCompletedCycle returns true for payments that closed their rent cycle
func (p *Payment) IsCompletedCycle() bool {
	return p.Type == PaymentTypeFull && p.BalanceDue.IsZero()
}

// Close normalizes a stale open row once a later payment settled the cycle.
// Used by the invariant repair that keeps at most one open balance per tenant.
func (p *Payment) Close() {
	p.BalanceDue = decimal.Zero
	p.Type = PaymentTypeFull
}
