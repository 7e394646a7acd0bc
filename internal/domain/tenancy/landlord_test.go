package tenancy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLandlord(t *testing.T) {
	t.Run("creates valid landlord", func(t *testing.T) {
		landlord, err := NewLandlord("Jane Smith", "08020000000", "jane@example.com")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, landlord.ID)
		assert.Equal(t, "Jane Smith", landlord.FullName)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewLandlord("  ", "", "")
		assert.Error(t, err)
	})

	t.Run("builder methods set address and bank details", func(t *testing.T) {
		landlord, err := NewLandlord("Jane Smith", "", "")
		require.NoError(t, err)

		landlord.WithAddress("7 Broad St").WithBankDetails("First Bank", "0123456789")

		assert.Equal(t, "7 Broad St", landlord.Address)
		assert.Equal(t, "First Bank", landlord.BankName)
		assert.Equal(t, "0123456789", landlord.AccountNumber)
	})
}
