package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryType represents the direction of a ledger entry
type EntryType string

const (
	// EntryTypeCredit increases the landlord's balance
	EntryTypeCredit EntryType = "CREDIT"
	// EntryTypeDebit decreases the landlord's balance
	EntryTypeDebit EntryType = "DEBIT"
)

// String returns the string representation of EntryType
func (t EntryType) String() string {
	return string(t)
}

// IsValid returns true if the entry type is valid
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeCredit, EntryTypeDebit:
		return true
	}
	return false
}

// LedgerEntry represents an immutable credit or debit attributed to a landlord.
// Once created, entries cannot be modified - corrections are made by adding
// offsetting entries, never by editing.
type LedgerEntry struct {
	shared.BaseEntity
	LandlordID uuid.UUID
	Date       time.Time
	Narration  string
	Type       EntryType
	Amount     decimal.Decimal
	Method     string
}

// NewLedgerEntry creates a new ledger entry
func NewLedgerEntry(
	landlordID uuid.UUID,
	date time.Time,
	narration string,
	entryType EntryType,
	amount decimal.Decimal,
	method string,
) (*LedgerEntry, error) {
	if landlordID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LANDLORD", "Landlord ID cannot be empty")
	}
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Transaction type must be credit or debit")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	return &LedgerEntry{
		BaseEntity: shared.NewBaseEntity(),
		LandlordID: landlordID,
		Date:       date,
		Narration:  narration,
		Type:       entryType,
		Amount:     amount,
		Method:     method,
	}, nil
}

// SignedAmount returns the amount with sign based on entry type
func (e *LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Type == EntryTypeDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// NewRenewalCredit creates the credit entry for a renewal payment,
// crediting the landlord with the full amount the tenant paid.
func NewRenewalCredit(landlordID uuid.UUID, date time.Time, narration string, amount decimal.Decimal, method PaymentMethod) (*LedgerEntry, error) {
	return NewLedgerEntry(landlordID, date, narration, EntryTypeCredit, amount, method.String())
}

// NewManagementFeeDebit creates the debit entry deducting the management fee
// from a renewal payment.
func NewManagementFeeDebit(landlordID uuid.UUID, date time.Time, amount decimal.Decimal) (*LedgerEntry, error) {
	fee := ManagementFee(amount)
	narration := "Management fee deduction (10% of " + amount.StringFixed(2) + ")"
	return NewLedgerEntry(landlordID, date, narration, EntryTypeDebit, fee, "Automatic Deduction")
}
