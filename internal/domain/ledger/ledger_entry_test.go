package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryType(t *testing.T) {
	t.Run("IsValid returns true for valid types", func(t *testing.T) {
		assert.True(t, EntryTypeCredit.IsValid())
		assert.True(t, EntryTypeDebit.IsValid())
	})

	t.Run("IsValid returns false for invalid type", func(t *testing.T) {
		assert.False(t, EntryType("TRANSFER").IsValid())
	})

	t.Run("String returns correct value", func(t *testing.T) {
		assert.Equal(t, "CREDIT", EntryTypeCredit.String())
		assert.Equal(t, "DEBIT", EntryTypeDebit.String())
	})
}

func TestNewLedgerEntry(t *testing.T) {
	landlordID := uuid.New()
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates valid entry", func(t *testing.T) {
		entry, err := NewLedgerEntry(landlordID, date, "Rent remittance", EntryTypeCredit, decimal.NewFromInt(2000), "Bank Transfer")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, landlordID, entry.LandlordID)
		assert.Equal(t, EntryTypeCredit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(2000)))
	})

	t.Run("fails with empty landlord ID", func(t *testing.T) {
		_, err := NewLedgerEntry(uuid.Nil, date, "x", EntryTypeCredit, decimal.NewFromInt(100), "Cash")
		assert.Error(t, err)
	})

	t.Run("fails with invalid entry type", func(t *testing.T) {
		_, err := NewLedgerEntry(landlordID, date, "x", EntryType("BOTH"), decimal.NewFromInt(100), "Cash")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "credit or debit")
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		_, err := NewLedgerEntry(landlordID, date, "x", EntryTypeDebit, decimal.Zero, "Cash")
		assert.Error(t, err)
	})

	t.Run("SignedAmount negates debits", func(t *testing.T) {
		credit, err := NewLedgerEntry(landlordID, date, "c", EntryTypeCredit, decimal.NewFromInt(100), "Cash")
		require.NoError(t, err)
		debit, err := NewLedgerEntry(landlordID, date, "d", EntryTypeDebit, decimal.NewFromInt(100), "Cash")
		require.NoError(t, err)

		assert.True(t, credit.SignedAmount().Equal(decimal.NewFromInt(100)))
		assert.True(t, debit.SignedAmount().Equal(decimal.NewFromInt(-100)))
	})
}

func TestRenewalEntries(t *testing.T) {
	landlordID := uuid.New()
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("renewal credit carries the full amount", func(t *testing.T) {
		entry, err := NewRenewalCredit(landlordID, date, "Lease renewal - John Doe", decimal.NewFromInt(2000), PaymentMethodBankTransfer)

		require.NoError(t, err)
		assert.Equal(t, EntryTypeCredit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(2000)))
		assert.Equal(t, "BANK_TRANSFER", entry.Method)
	})

	t.Run("management fee debit is ten percent of the amount", func(t *testing.T) {
		entry, err := NewManagementFeeDebit(landlordID, date, decimal.NewFromInt(2000))

		require.NoError(t, err)
		assert.Equal(t, EntryTypeDebit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(200)))
		assert.Contains(t, entry.Narration, "Management fee deduction")
		assert.Contains(t, entry.Narration, "2000.00")
		assert.Equal(t, "Automatic Deduction", entry.Method)
	})

	t.Run("credit and fee debit net to ninety percent", func(t *testing.T) {
		amount := decimal.NewFromFloat(3333.33)
		credit, err := NewRenewalCredit(landlordID, date, "renewal", amount, PaymentMethodCash)
		require.NoError(t, err)
		debit, err := NewManagementFeeDebit(landlordID, date, amount)
		require.NoError(t, err)

		net := credit.Amount.Sub(debit.Amount)
		assert.True(t, net.Equal(amount.Sub(ManagementFee(amount))))
	})
}
