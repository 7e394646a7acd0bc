package tenancy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propdesk/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	t.Run("creates active unassigned tenant", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "08030000000", "john@example.com")

		require.NoError(t, err)
		assert.True(t, tenant.Active)
		assert.False(t, tenant.IsAssigned())
		assert.Nil(t, tenant.PropertyID)
		assert.Nil(t, tenant.UnitID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewTenant("   ", "", "")
		assert.Error(t, err)
	})

	t.Run("builder methods set identity and lease", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)

		tenant.WithIDNumber("A1234567").WithLease(start, end)

		assert.Equal(t, "A1234567", tenant.IDNumber)
		require.NotNil(t, tenant.LeaseStart)
		require.NotNil(t, tenant.LeaseEnd)
		assert.Equal(t, start, *tenant.LeaseStart)
		assert.Equal(t, end, *tenant.LeaseEnd)
	})
}

func TestTenantAssignment(t *testing.T) {
	t.Run("assign to property", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		propertyID := uuid.New()

		require.NoError(t, tenant.AssignToProperty(propertyID))

		assert.True(t, tenant.IsAssigned())
		assert.Equal(t, propertyID, *tenant.PropertyID)
		assert.Nil(t, tenant.UnitID)
	})

	t.Run("assign to unit records both links", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		propertyID := uuid.New()
		unitID := uuid.New()

		require.NoError(t, tenant.AssignToUnit(propertyID, unitID))

		assert.Equal(t, propertyID, *tenant.PropertyID)
		assert.Equal(t, unitID, *tenant.UnitID)
	})

	t.Run("double assignment is rejected", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		require.NoError(t, tenant.AssignToProperty(uuid.New()))

		err = tenant.AssignToUnit(uuid.New(), uuid.New())

		assert.ErrorIs(t, err, shared.ErrAlreadyAssigned)
	})
}

func TestTenantLease(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	t.Run("renew updates dates and reactivates", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		tenant.Active = false

		require.NoError(t, tenant.RenewLease(start, end))

		assert.True(t, tenant.Active)
		assert.Equal(t, start, *tenant.LeaseStart)
		assert.Equal(t, end, *tenant.LeaseEnd)
	})

	t.Run("renew rejects end before start", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)

		err = tenant.RenewLease(end, start)

		assert.Error(t, err)
	})

	t.Run("end lease clears links and deactivates", func(t *testing.T) {
		tenant, err := NewTenant("John Doe", "", "")
		require.NoError(t, err)
		require.NoError(t, tenant.AssignToUnit(uuid.New(), uuid.New()))

		tenant.EndLease()

		assert.False(t, tenant.Active)
		assert.False(t, tenant.IsAssigned())
		assert.Nil(t, tenant.PropertyID)
		assert.Nil(t, tenant.UnitID)
	})
}
