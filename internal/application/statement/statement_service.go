package statement

import (
	"context"
	"time"

	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
)

// StatementService builds landlord statements and dashboard aggregates.
// All operations are read-only and run outside a transaction scope.
type StatementService struct {
	reader       ledger.StatementReader
	entryRepo    ledger.LedgerEntryRepository
	paymentRepo  ledger.PaymentRepository
	landlordRepo tenancy.LandlordRepository
	propertyRepo tenancy.PropertyRepository
	unitRepo     tenancy.UnitRepository
	tenantRepo   tenancy.TenantRepository
}

// NewStatementService creates a new StatementService
func NewStatementService(
	reader ledger.StatementReader,
	entryRepo ledger.LedgerEntryRepository,
	paymentRepo ledger.PaymentRepository,
	landlordRepo tenancy.LandlordRepository,
	propertyRepo tenancy.PropertyRepository,
	unitRepo tenancy.UnitRepository,
	tenantRepo tenancy.TenantRepository,
) *StatementService {
	return &StatementService{
		reader:       reader,
		entryRepo:    entryRepo,
		paymentRepo:  paymentRepo,
		landlordRepo: landlordRepo,
		propertyRepo: propertyRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
	}
}

// BuildStatement merges the landlord's payment and ledger lines into one
// chronological statement with a running balance. Filters narrow the rows
// first; the balance is computed over the filtered rows only.
func (s *StatementService) BuildStatement(ctx context.Context, req BuildStatementRequest) (*StatementResponse, error) {
	landlord, err := s.landlordRepo.FindByID(ctx, req.LandlordID)
	if err != nil {
		return nil, err
	}
	if landlord == nil {
		return nil, shared.ErrNotFound
	}

	filter := ledger.StatementFilter{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Search:   req.Search,
	}
	paymentLines, err := s.reader.PaymentLines(ctx, req.LandlordID, filter)
	if err != nil {
		return nil, err
	}
	manualLines, err := s.reader.ManualLines(ctx, req.LandlordID, filter)
	if err != nil {
		return nil, err
	}

	stmt := ledger.BuildStatement(append(paymentLines, manualLines...))
	return &StatementResponse{
		LandlordID:   landlord.ID,
		LandlordName: landlord.FullName,
		Lines:        stmt.Lines,
		Balance:      stmt.Balance,
	}, nil
}

// landlordBalance computes one landlord's net position: payments on their
// properties plus manual credits minus manual debits.
func (s *StatementService) landlordBalance(ctx context.Context, landlord *tenancy.Landlord) (LandlordBalance, error) {
	payments, err := s.reader.SumPaymentsByLandlordID(ctx, landlord.ID)
	if err != nil {
		return LandlordBalance{}, err
	}
	credits, err := s.entryRepo.SumByLandlordIDAndType(ctx, landlord.ID, ledger.EntryTypeCredit)
	if err != nil {
		return LandlordBalance{}, err
	}
	debits, err := s.entryRepo.SumByLandlordIDAndType(ctx, landlord.ID, ledger.EntryTypeDebit)
	if err != nil {
		return LandlordBalance{}, err
	}

	return LandlordBalance{
		LandlordID:   landlord.ID,
		LandlordName: landlord.FullName,
		Payments:     payments,
		Credits:      credits,
		Debits:       debits,
		Balance:      payments.Add(credits).Sub(debits),
	}, nil
}

// GeneralBalance sums every landlord's net position. Landlords are read
// page by page until the reported total is exhausted.
func (s *StatementService) GeneralBalance(ctx context.Context) (*GeneralBalanceResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 100

	resp := &GeneralBalanceResponse{
		Landlords: make([]LandlordBalance, 0),
		Total:     decimal.Zero,
	}
	for {
		landlords, total, err := s.landlordRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		for i := range landlords {
			balance, err := s.landlordBalance(ctx, &landlords[i])
			if err != nil {
				return nil, err
			}
			resp.Landlords = append(resp.Landlords, balance)
			resp.Total = resp.Total.Add(balance.Balance)
		}
		if len(landlords) == 0 || int64(filter.Page*filter.PageSize) >= total {
			break
		}
		filter.Page++
	}
	return resp, nil
}

// rentDueFor resolves the rent a tenant owes per cycle
func (s *StatementService) rentDueFor(ctx context.Context, tenant *tenancy.Tenant) (decimal.Decimal, error) {
	if tenant.UnitID != nil {
		unit, err := s.unitRepo.FindByID(ctx, *tenant.UnitID)
		if err != nil {
			return decimal.Zero, err
		}
		if unit != nil {
			return unit.Price.Amount(), nil
		}
	}
	if tenant.PropertyID != nil {
		property, err := s.propertyRepo.FindByID(ctx, *tenant.PropertyID)
		if err != nil {
			return decimal.Zero, err
		}
		if property != nil {
			return property.Price.Amount(), nil
		}
	}
	return decimal.Zero, nil
}

// ExpectedRenewals lists tenants whose lease ends in the given month and who
// have completed at least one rent cycle, with the 10% fee the renewal would
// earn.
func (s *StatementService) ExpectedRenewals(ctx context.Context, year int, month time.Month) ([]ExpectedRenewal, decimal.Decimal, error) {
	tenants, err := s.tenantRepo.FindWithLeaseEndingIn(ctx, year, int(month))
	if err != nil {
		return nil, decimal.Zero, err
	}

	renewals := make([]ExpectedRenewal, 0, len(tenants))
	total := decimal.Zero
	for i := range tenants {
		tenant := &tenants[i]
		completed, err := s.paymentRepo.CountCompletedCyclesByTenantID(ctx, tenant.ID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if completed == 0 || tenant.LeaseEnd == nil {
			continue
		}

		rentDue, err := s.rentDueFor(ctx, tenant)
		if err != nil {
			return nil, decimal.Zero, err
		}
		earning := ledger.ManagementFee(rentDue)
		renewals = append(renewals, ExpectedRenewal{
			TenantID:        tenant.ID,
			TenantName:      tenant.FullName,
			LeaseEnd:        *tenant.LeaseEnd,
			RentDue:         rentDue,
			ExpectedEarning: earning,
		})
		total = total.Add(earning)
	}
	return renewals, total, nil
}

// DashboardSummary aggregates the landing-page numbers for a month
func (s *StatementService) DashboardSummary(ctx context.Context, year int, month time.Month) (*DashboardSummaryResponse, error) {
	countFilter := shared.DefaultFilter()
	countFilter.PageSize = 1

	_, propertyCount, err := s.propertyRepo.FindAll(ctx, countFilter)
	if err != nil {
		return nil, err
	}
	_, tenantCount, err := s.tenantRepo.FindAll(ctx, countFilter)
	if err != nil {
		return nil, err
	}
	_, landlordCount, err := s.landlordRepo.FindAll(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.paymentRepo.SumOutstandingAll(ctx)
	if err != nil {
		return nil, err
	}

	general, err := s.GeneralBalance(ctx)
	if err != nil {
		return nil, err
	}

	renewals, expected, err := s.ExpectedRenewals(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return &DashboardSummaryResponse{
		PropertyCount:    propertyCount,
		TenantCount:      tenantCount,
		LandlordCount:    landlordCount,
		TotalOutstanding: outstanding,
		GeneralBalance:   general.Total,
		Renewals:         renewals,
		ExpectedEarnings: expected,
	}, nil
}
