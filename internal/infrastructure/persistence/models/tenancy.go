package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared/valueobject"
	"github.com/propdesk/backend/internal/domain/tenancy"
)

// LandlordModel is the persistence model for the Landlord domain entity.
type LandlordModel struct {
	BaseModel
	FullName      string `gorm:"type:varchar(200);not null"`
	Phone         string `gorm:"type:varchar(50)"`
	Email         string `gorm:"type:varchar(200);index"`
	Address       string `gorm:"type:text"`
	BankName      string `gorm:"type:varchar(100)"`
	AccountNumber string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (LandlordModel) TableName() string {
	return "landlords"
}

// ToDomain converts the persistence model to a domain Landlord entity.
func (m *LandlordModel) ToDomain() *tenancy.Landlord {
	return &tenancy.Landlord{
		BaseEntity:    m.BaseModel.ToDomain(),
		FullName:      m.FullName,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
	}
}

// LandlordModelFromDomain creates a persistence model from a domain Landlord entity.
func LandlordModelFromDomain(l *tenancy.Landlord) *LandlordModel {
	m := &LandlordModel{}
	m.FromDomainBaseEntity(l.BaseEntity)
	m.FullName = l.FullName
	m.Phone = l.Phone
	m.Email = l.Email
	m.Address = l.Address
	m.BankName = l.BankName
	m.AccountNumber = l.AccountNumber
	return m
}

// PropertyModel is the persistence model for the Property domain entity.
type PropertyModel struct {
	BaseModel
	Title       string                  `gorm:"type:varchar(200);not null"`
	Address     string                  `gorm:"type:text"`
	Type        tenancy.PropertyType    `gorm:"type:varchar(20);not null"`
	LandlordID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	Price       valueobject.Money       `gorm:"type:decimal(18,2);not null;default:0"`
	Status      tenancy.OccupancyStatus `gorm:"type:varchar(20);not null;default:'VACANT';index"`
	Description string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property entity.
func (m *PropertyModel) ToDomain() *tenancy.Property {
	return &tenancy.Property{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Address:     m.Address,
		Type:        m.Type,
		LandlordID:  m.LandlordID,
		Price:       m.Price,
		Status:      m.Status,
		Description: m.Description,
	}
}

// PropertyModelFromDomain creates a persistence model from a domain Property entity.
func PropertyModelFromDomain(p *tenancy.Property) *PropertyModel {
	m := &PropertyModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Title = p.Title
	m.Address = p.Address
	m.Type = p.Type
	m.LandlordID = p.LandlordID
	m.Price = p.Price
	m.Status = p.Status
	m.Description = p.Description
	return m
}

// UnitModel is the persistence model for the Unit domain entity.
type UnitModel struct {
	BaseModel
	PropertyID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Name       string                  `gorm:"type:varchar(100);not null"`
	Price      valueobject.Money       `gorm:"type:decimal(18,2);not null"`
	Status     tenancy.OccupancyStatus `gorm:"type:varchar(20);not null;default:'VACANT';index"`
	TenantID   *uuid.UUID              `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit entity.
func (m *UnitModel) ToDomain() *tenancy.Unit {
	return &tenancy.Unit{
		BaseEntity: m.BaseModel.ToDomain(),
		PropertyID: m.PropertyID,
		Name:       m.Name,
		Price:      m.Price,
		Status:     m.Status,
		TenantID:   m.TenantID,
	}
}

// UnitModelFromDomain creates a persistence model from a domain Unit entity.
func UnitModelFromDomain(u *tenancy.Unit) *UnitModel {
	m := &UnitModel{}
	m.FromDomainBaseEntity(u.BaseEntity)
	m.PropertyID = u.PropertyID
	m.Name = u.Name
	m.Price = u.Price
	m.Status = u.Status
	m.TenantID = u.TenantID
	return m
}

// TenantModel is the persistence model for the Tenant domain entity.
type TenantModel struct {
	BaseModel
	FullName   string     `gorm:"type:varchar(200);not null"`
	Phone      string     `gorm:"type:varchar(50)"`
	Email      string     `gorm:"type:varchar(200);index"`
	IDNumber   string     `gorm:"type:varchar(50)"`
	PropertyID *uuid.UUID `gorm:"type:uuid;index"`
	UnitID     *uuid.UUID `gorm:"type:uuid;index"`
	LeaseStart *time.Time
	LeaseEnd   *time.Time `gorm:"index"`
	Active     bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant entity.
func (m *TenantModel) ToDomain() *tenancy.Tenant {
	return &tenancy.Tenant{
		BaseEntity: m.BaseModel.ToDomain(),
		FullName:   m.FullName,
		Phone:      m.Phone,
		Email:      m.Email,
		IDNumber:   m.IDNumber,
		PropertyID: m.PropertyID,
		UnitID:     m.UnitID,
		LeaseStart: m.LeaseStart,
		LeaseEnd:   m.LeaseEnd,
		Active:     m.Active,
	}
}

// TenantModelFromDomain creates a persistence model from a domain Tenant entity.
func TenantModelFromDomain(t *tenancy.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomainBaseEntity(t.BaseEntity)
	m.FullName = t.FullName
	m.Phone = t.Phone
	m.Email = t.Email
	m.IDNumber = t.IDNumber
	m.PropertyID = t.PropertyID
	m.UnitID = t.UnitID
	m.LeaseStart = t.LeaseStart
	m.LeaseEnd = t.LeaseEnd
	m.Active = t.Active
	return m
}
