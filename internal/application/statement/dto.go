package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// BuildStatementRequest narrows a landlord statement
type BuildStatementRequest struct {
	LandlordID uuid.UUID  `json:"landlord_id"`
	DateFrom   *time.Time `form:"date_from" json:"date_from"`
	DateTo     *time.Time `form:"date_to" json:"date_to"`
	Search     string     `form:"search" json:"search"`
}

// StatementResponse is a landlord's statement of account
type StatementResponse struct {
	LandlordID   uuid.UUID             `json:"landlord_id"`
	LandlordName string                `json:"landlord_name"`
	Lines        []ledger.NumberedLine `json:"lines"`
	Balance      decimal.Decimal       `json:"balance"`
}

// LandlordBalance is one landlord's net position
type LandlordBalance struct {
	LandlordID   uuid.UUID       `json:"landlord_id"`
	LandlordName string          `json:"landlord_name"`
	Payments     decimal.Decimal `json:"payments"`
	Credits      decimal.Decimal `json:"credits"`
	Debits       decimal.Decimal `json:"debits"`
	Balance      decimal.Decimal `json:"balance"`
}

// GeneralBalanceResponse aggregates every landlord's balance
type GeneralBalanceResponse struct {
	Landlords []LandlordBalance `json:"landlords"`
	Total     decimal.Decimal   `json:"total"`
}

// ExpectedRenewal is a tenant whose lease ends in the requested month and who
// has completed at least one rent cycle.
type ExpectedRenewal struct {
	TenantID        uuid.UUID       `json:"tenant_id"`
	TenantName      string          `json:"tenant_name"`
	LeaseEnd        time.Time       `json:"lease_end"`
	RentDue         decimal.Decimal `json:"rent_due"`
	ExpectedEarning decimal.Decimal `json:"expected_earning"`
}

// DashboardSummaryResponse is the back-office landing page aggregate
type DashboardSummaryResponse struct {
	PropertyCount    int64             `json:"property_count"`
	TenantCount      int64             `json:"tenant_count"`
	LandlordCount    int64             `json:"landlord_count"`
	TotalOutstanding decimal.Decimal   `json:"total_outstanding"`
	GeneralBalance   decimal.Decimal   `json:"general_balance"`
	Renewals         []ExpectedRenewal `json:"renewals"`
	ExpectedEarnings decimal.Decimal   `json:"expected_earnings"`
}
