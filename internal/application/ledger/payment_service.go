package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/ledger"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/propdesk/backend/internal/domain/tenancy"
	"github.com/shopspring/decimal"
)

// PaymentService handles rent payments, lease renewals with payment, and
// manual landlord ledger entries.
type PaymentService struct {
	scope TransactionScope
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope TransactionScope) *PaymentService {
	return &PaymentService{scope: scope}
}

// rentContext is the resolved pricing for an assigned tenant
type rentContext struct {
	tenant     *tenancy.Tenant
	propertyID uuid.UUID
	landlordID uuid.UUID
	unitID     *uuid.UUID
	rentDue    decimal.Decimal
}

// resolveRent loads the tenant and the price of whatever they occupy.
// Unit price wins over property price when the tenant holds a unit.
func resolveRent(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID) (*rentContext, error) {
	tenant, err := repos.TenantRepo().FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, shared.ErrNotFound
	}
	if tenant.PropertyID == nil {
		return nil, shared.NewDomainError("TENANT_NOT_ASSIGNED", "Tenant is not assigned to a property")
	}

	property, err := repos.PropertyRepo().FindByID(ctx, *tenant.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, shared.ErrNotFound
	}

	rc := &rentContext{
		tenant:     tenant,
		propertyID: property.ID,
		landlordID: property.LandlordID,
		unitID:     tenant.UnitID,
		rentDue:    property.Price.Amount(),
	}

	if tenant.UnitID != nil {
		unit, err := repos.UnitRepo().FindByID(ctx, *tenant.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, shared.ErrNotFound
		}
		rc.rentDue = unit.Price.Amount()
	}

	if !rc.rentDue.IsPositive() {
		return nil, shared.NewDomainError("INVALID_RENT", "No rent price configured for the tenant's property")
	}
	return rc, nil
}

// RecordPayment classifies and persists a rent payment for an assigned tenant.
// A payment against an open balance must not exceed it; a payment opening a
// new cycle must not exceed the rent due. The landlord/fee split is stored on
// the payment row only when the payment closes its cycle, and the fee applies
// only when a renewal cycle is both opened and closed by the same payment.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*RecordPaymentResponse, error) {
	method := ledger.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method")
	}
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	amount := decimal.NewFromFloat(req.Amount)

	var resp *RecordPaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rc, err := resolveRent(ctx, repos, req.TenantID)
		if err != nil {
			return err
		}

		outstanding, err := repos.PaymentRepo().SumOutstandingByTenantID(ctx, req.TenantID)
		if err != nil {
			return err
		}
		completed, err := repos.PaymentRepo().CountCompletedCyclesByTenantID(ctx, req.TenantID)
		if err != nil {
			return err
		}
		isRenewal := completed > 0

		classification, err := ledger.ClassifyPayment(rc.rentDue, outstanding, amount, isRenewal)
		if err != nil {
			return err
		}

		payment, err := ledger.NewPayment(req.TenantID, rc.propertyID, amount, classification.Type, method, paymentDate)
		if err != nil {
			return err
		}
		payment.WithBalanceDue(classification.BalanceDue).
			WithSplit(classification.Credit, classification.Debit).
			WithDescription(req.Description)
		if rc.unitID != nil {
			payment.WithUnitID(*rc.unitID)
		}

		if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
			return err
		}

		// A completing payment settles any rows still marked open for the
		// tenant, keeping at most one open balance on record.
		if classification.CompletesCycle() && outstanding.IsPositive() {
			if err := repos.PaymentRepo().CloseOpenBalances(ctx, req.TenantID, payment.ID); err != nil {
				return err
			}
		}

		message := "Full payment recorded"
		if classification.Type == ledger.PaymentTypePartial {
			message = fmt.Sprintf("Partial payment recorded. Outstanding balance: %s", classification.BalanceDue.StringFixed(2))
		}

		resp = &RecordPaymentResponse{
			PaymentID:   payment.ID,
			PaymentType: classification.Type.String(),
			BalanceDue:  classification.BalanceDue,
			Credit:      classification.Credit,
			Debit:       classification.Debit,
			Message:     message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RenewLease updates the tenant's lease period and records the accompanying
// payment. When the tenant already completed a rent cycle the renewal posts
// two ledger entries for the landlord, the full credit and the 10% management
// fee debit, regardless of whether the payment itself is full or partial. A
// first-time payment posts a single credit entry.
func (s *PaymentService) RenewLease(ctx context.Context, req RenewLeaseRequest) (*RenewLeaseResponse, error) {
	method := ledger.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method")
	}
	paymentType := ledger.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Invalid payment type")
	}
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	amount := decimal.NewFromFloat(req.Amount)
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	var resp *RenewLeaseResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rc, err := resolveRent(ctx, repos, req.TenantID)
		if err != nil {
			return err
		}

		if err := rc.tenant.RenewLease(req.LeaseStart, req.LeaseEnd); err != nil {
			return err
		}
		if err := repos.TenantRepo().Save(ctx, rc.tenant); err != nil {
			return err
		}

		completed, err := repos.PaymentRepo().CountCompletedCyclesByTenantID(ctx, req.TenantID)
		if err != nil {
			return err
		}
		isRenewal := completed > 0

		// Overpayment is accepted on renewal; a partial hint never leaves a
		// negative obligation.
		balanceDue := decimal.Zero
		if paymentType == ledger.PaymentTypePartial {
			balanceDue = decimal.Max(decimal.Zero, rc.rentDue.Sub(amount))
		}

		netAmount := amount
		fee := decimal.Zero
		if isRenewal {
			fee = ledger.ManagementFee(amount)
			netAmount = amount.Sub(fee)
		}

		// The landlord/fee split lives in the ledger entries below; the
		// payment row itself stays unsplit.
		payment, err := ledger.NewPayment(req.TenantID, rc.propertyID, amount, paymentType, method, paymentDate)
		if err != nil {
			return err
		}
		payment.WithBalanceDue(balanceDue).
			WithDescription(req.Description)
		if rc.unitID != nil {
			payment.WithUnitID(*rc.unitID)
		}
		if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
			return err
		}

		if isRenewal {
			narration := req.Description
			if narration == "" {
				narration = fmt.Sprintf("Lease renewal payment - %s", rc.tenant.FullName)
			}
			creditEntry, err := ledger.NewRenewalCredit(rc.landlordID, paymentDate, narration, amount, method)
			if err != nil {
				return err
			}
			if err := repos.LedgerEntryRepo().Create(ctx, creditEntry); err != nil {
				return err
			}
			feeEntry, err := ledger.NewManagementFeeDebit(rc.landlordID, paymentDate, amount)
			if err != nil {
				return err
			}
			if err := repos.LedgerEntryRepo().Create(ctx, feeEntry); err != nil {
				return err
			}
		} else {
			narration := req.Description
			if narration == "" {
				narration = fmt.Sprintf("Lease payment - %s", rc.tenant.FullName)
			}
			entry, err := ledger.NewLedgerEntry(rc.landlordID, paymentDate, narration, ledger.EntryTypeCredit, amount, method.String())
			if err != nil {
				return err
			}
			if err := repos.LedgerEntryRepo().Create(ctx, entry); err != nil {
				return err
			}
		}

		message := "Lease renewed and full payment recorded"
		if paymentType == ledger.PaymentTypePartial {
			message = fmt.Sprintf("Lease renewed. Outstanding balance: %s", balanceDue.StringFixed(2))
		}

		resp = &RenewLeaseResponse{
			PaymentID:         payment.ID,
			PaymentType:       paymentType.String(),
			BalanceDue:        balanceDue,
			LandlordNetAmount: netAmount,
			Message:           message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AddLedgerEntry records a manual credit or debit against a landlord
func (s *PaymentService) AddLedgerEntry(ctx context.Context, req AddLedgerEntryRequest) (*LedgerEntryResponse, error) {
	var resp *LedgerEntryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		landlord, err := repos.LandlordRepo().FindByID(ctx, req.LandlordID)
		if err != nil {
			return err
		}
		if landlord == nil {
			return shared.ErrNotFound
		}

		entry, err := ledger.NewLedgerEntry(
			req.LandlordID,
			req.Date,
			req.Narration,
			ledger.EntryType(req.Type),
			decimal.NewFromFloat(req.Amount),
			req.Method,
		)
		if err != nil {
			return err
		}
		if err := repos.LedgerEntryRepo().Create(ctx, entry); err != nil {
			return err
		}

		r := ToLedgerEntryResponse(entry)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPaymentsByTenant returns a tenant's payment history
func (s *PaymentService) ListPaymentsByTenant(ctx context.Context, tenantID uuid.UUID) ([]PaymentResponse, error) {
	var resp []PaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payments, err := repos.PaymentRepo().FindByTenantID(ctx, tenantID)
		if err != nil {
			return err
		}
		resp = make([]PaymentResponse, 0, len(payments))
		for i := range payments {
			resp = append(resp, ToPaymentResponse(&payments[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
