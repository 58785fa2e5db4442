package vehicle_test

import (
	"testing"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vehicle"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates_vehicle", func(t *testing.T) {
		// When
		v, err := vehicle.NewVehicle(mustNewID(t, 1), "Ford", "Transit", "AB-123-CD", mustNewID(t, 2))

		// Then
		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "Ford", v.Make())
		assert.Equal(t, "Transit", v.Model())
		assert.Equal(t, "AB-123-CD", v.LicensePlate())
		assert.True(t, v.WarehouseID().IsEqual(mustNewID(t, 2)))
	})

	t.Run("requires_make_model_and_plate", func(t *testing.T) {
		_, err := vehicle.NewVehicle(mustNewID(t, 1), "", "", "", mustNewID(t, 2))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_warehouse_id", func(t *testing.T) {
		_, err := vehicle.NewVehicle(mustNewID(t, 1), "Ford", "Transit", "AB-123-CD", kernel.ID{})
		require.Error(t, err)
	})
}

func TestVehicle_Details(t *testing.T) {
	// Given
	v, err := vehicle.NewVehicle(mustNewID(t, 1), "Ford", "Transit", "AB-123-CD", mustNewID(t, 2))
	require.NoError(t, err)

	// Then
	assert.Equal(t, "Ford Transit (AB-123-CD)", v.Details())
}
