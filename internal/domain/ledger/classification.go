package ledger

import (
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ManagementFeeRate is the fraction of a renewal payment retained as the
// operator's management fee.
var ManagementFeeRate = decimal.NewFromFloat(0.10)

// Business rule violations raised during payment classification
var (
	ErrAmountExceedsOutstanding = shared.NewDomainError("AMOUNT_EXCEEDS_OUTSTANDING", "Payment amount exceeds outstanding balance")
	ErrAmountExceedsRent        = shared.NewDomainError("AMOUNT_EXCEEDS_RENT", "Payment amount exceeds rent amount")
)

// ManagementFee returns the fee portion of a renewal amount
func ManagementFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(ManagementFeeRate)
}

// Classification is the outcome of classifying a payment against the
// tenant's rent cycle state.
type Classification struct {
	Type       PaymentType
	BalanceDue decimal.Decimal
	Credit     decimal.Decimal
	Debit      decimal.Decimal
}

// CompletesCycle returns true if the classified payment settles its rent cycle
func (c Classification) CompletesCycle() bool {
	return c.BalanceDue.IsZero()
}

// ClassifyPayment applies the rent-cycle rules to a payment.
//
// When an outstanding balance exists the payment completes (or continues) the
// open cycle and must not exceed it. Otherwise the payment opens a new cycle
// against the rent due and must not exceed it. The landlord/fee split is only
// computed once a cycle closes: a payment that both starts and closes a
// renewal cycle carries the 10% management fee; first cycles and payments
// that merely settle a previously-partial cycle credit the full amount.
// Payments that leave a balance carry no split until the cycle closes.
func ClassifyPayment(rentDue, totalOutstanding, amount decimal.Decimal, isRenewal bool) (Classification, error) {
	if !amount.IsPositive() {
		return Classification{}, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	var c Classification
	if totalOutstanding.IsPositive() {
		if amount.GreaterThan(totalOutstanding) {
			return Classification{}, ErrAmountExceedsOutstanding
		}
		if amount.GreaterThanOrEqual(totalOutstanding) {
			c.Type = PaymentTypeFull
			c.BalanceDue = decimal.Zero
		} else {
			c.Type = PaymentTypePartial
			c.BalanceDue = totalOutstanding.Sub(amount)
		}
	} else {
		if amount.GreaterThan(rentDue) {
			return Classification{}, ErrAmountExceedsRent
		}
		if amount.GreaterThanOrEqual(rentDue) {
			c.Type = PaymentTypeFull
			c.BalanceDue = decimal.Zero
		} else {
			c.Type = PaymentTypePartial
			c.BalanceDue = rentDue.Sub(amount)
		}
	}

	if c.BalanceDue.IsZero() {
		if isRenewal && !totalOutstanding.IsPositive() {
			fee := ManagementFee(amount)
			c.Credit = amount.Sub(fee)
			c.Debit = fee
		} else {
			c.Credit = amount
			c.Debit = decimal.Zero
		}
	} else {
		c.Credit = decimal.Zero
		c.Debit = decimal.Zero
	}

	return c, nil
}
