package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	BaseModel
	TenantID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	PropertyID  uuid.UUID            `gorm:"type:uuid;not null;index"`
	UnitID      *uuid.UUID           `gorm:"type:uuid;index"`
	Amount      decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Type        ledger.PaymentType   `gorm:"type:varchar(20);not null"`
	Method      ledger.PaymentMethod `gorm:"type:varchar(30);not null"`
	PaymentDate time.Time            `gorm:"not null;index"`
	BalanceDue  decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0;index"`
	Credit      decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Debit       decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Description string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity:  m.BaseModel.ToDomain(),
		TenantID:    m.TenantID,
		PropertyID:  m.PropertyID,
		UnitID:      m.UnitID,
		Amount:      m.Amount,
		Type:        m.Type,
		Method:      m.Method,
		PaymentDate: m.PaymentDate,
		BalanceDue:  m.BalanceDue,
		Credit:      m.Credit,
		Debit:       m.Debit,
		Description: m.Description,
	}
}

// PaymentModelFromDomain creates a persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TenantID = p.TenantID
	m.PropertyID = p.PropertyID
	m.UnitID = p.UnitID
	m.Amount = p.Amount
	m.Type = p.Type
	m.Method = p.Method
	m.PaymentDate = p.PaymentDate
	m.BalanceDue = p.BalanceDue
	m.Credit = p.Credit
	m.Debit = p.Debit
	m.Description = p.Description
	return m
}

// LedgerEntryModel is the persistence model for the LedgerEntry domain entity.
type LedgerEntryModel struct {
	BaseModel
	LandlordID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Date       time.Time        `gorm:"not null;index"`
	Narration  string           `gorm:"type:text;not null"`
	Type       ledger.EntryType `gorm:"type:varchar(10);not null;index"`
	Amount     decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Method     string           `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the persistence model to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToDomain() *ledger.LedgerEntry {
	return &ledger.LedgerEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		LandlordID: m.LandlordID,
		Date:       m.Date,
		Narration:  m.Narration,
		Type:       m.Type,
		Amount:     m.Amount,
		Method:     m.Method,
	}
}

// LedgerEntryModelFromDomain creates a persistence model from a domain LedgerEntry entity.
func LedgerEntryModelFromDomain(e *ledger.LedgerEntry) *LedgerEntryModel {
	m := &LedgerEntryModel{}
	m.FromDomainBaseEntity(e.BaseEntity)
	m.LandlordID = e.LandlordID
	m.Date = e.Date
	m.Narration = e.Narration
	m.Type = e.Type
	m.Amount = e.Amount
	m.Method = e.Method
	return m
}

// AllModels returns every persistence model for schema migration
func AllModels() []any {
	return []any{
		&LandlordModel{},
		&PropertyModel{},
		&UnitModel{},
		&TenantModel{},
		&PaymentModel{},
		&LedgerEntryModel{},
	}
}
