package vacancy_test

import (
	"testing"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vacancy"
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

func TestNewVacancy(t *testing.T) {
	t.Run("creates_vacancy", func(t *testing.T) {
		// When
		vac, err := vacancy.NewVacancy(mustNewID(t, 1), "Night Shift Driver", "Deliveries after 22:00", mustNewID(t, 2))

		// Then
		require.NoError(t, err)
		require.NoError(t, vac.Validate())
		assert.True(t, vac.ID().IsEqual(mustNewID(t, 1)))
		assert.Equal(t, "Night Shift Driver", vac.Title())
		assert.Equal(t, "Deliveries after 22:00", vac.Description())
		assert.True(t, vac.WarehouseID().IsEqual(mustNewID(t, 2)))
	})

	t.Run("allows_empty_description", func(t *testing.T) {
		vac, err := vacancy.NewVacancy(mustNewID(t, 1), "Night Shift Driver", "", mustNewID(t, 2))
		require.NoError(t, err)
		assert.Empty(t, vac.Description())
	})

	t.Run("requires_title", func(t *testing.T) {
		_, err := vacancy.NewVacancy(mustNewID(t, 1), "", "", mustNewID(t, 2))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, vacancy.ErrTitleIsRequired)
	})

	t.Run("requires_valid_warehouse_id", func(t *testing.T) {
		_, err := vacancy.NewVacancy(mustNewID(t, 1), "Night Shift Driver", "", kernel.ID{})
		require.Error(t, err)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := vacancy.NewVacancy(kernel.ID{}, "Night Shift Driver", "", mustNewID(t, 2))
		require.Error(t, err)
	})
}

func TestVacancy_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var vac vacancy.Vacancy
		require.ErrorIs(t, vac.Validate(), vacancy.ErrVacancyIsNotConstructed)
	})

	t.Run("nil_fails_validation", func(t *testing.T) {
		var vac *vacancy.Vacancy
		require.ErrorIs(t, vac.Validate(), vacancy.ErrVacancyIsNotConstructed)
	})
}

func TestVacancy_IsEqual(t *testing.T) {
	vac1, err := vacancy.NewVacancy(mustNewID(t, 1), "Night Shift Driver", "", mustNewID(t, 2))
	require.NoError(t, err)
	vac2, err := vacancy.NewVacancy(mustNewID(t, 1), "Day Shift Driver", "", mustNewID(t, 3))
	require.NoError(t, err)
	vac3, err := vacancy.NewVacancy(mustNewID(t, 2), "Night Shift Driver", "", mustNewID(t, 2))
	require.NoError(t, err)

	assert.True(t, vac1.IsEqual(vac2), "Vacancies with the same ID should be equal")
	assert.False(t, vac1.IsEqual(vac3), "Vacancies with different IDs should not be equal")
	assert.False(t, vac1.IsEqual(nil))
}
