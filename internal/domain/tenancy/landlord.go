package tenancy

import (
	"strings"

	"github.com/propdesk/backend/internal/domain/shared"
)

// Landlord represents a property owner whose rental income flows through the ledger.
type Landlord struct {
	shared.BaseEntity
	FullName      string
	Phone         string
	Email         string
	Address       string
	BankName      string
	AccountNumber string
}

// NewLandlord creates a new landlord
func NewLandlord(fullName, phone, email string) (*Landlord, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Landlord name cannot be empty")
	}

	return &Landlord{
		BaseEntity: shared.NewBaseEntity(),
		FullName:   fullName,
		Phone:      phone,
		Email:      email,
	}, nil
}

// WithAddress sets the landlord address
func (l *Landlord) WithAddress(address string) *Landlord {
	l.Address = address
	return l
}

// WithBankDetails sets the landlord's payout bank details
func (l *Landlord) WithBankDetails(bankName, accountNumber string) *Landlord {
	l.BankName = bankName
	l.AccountNumber = accountNumber
	return l
}
