package queries_test

import (
	"testing"

	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverRosterQuery_Valid(t *testing.T) {
	query := queries.NewGetDriverRosterQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetDriverRosterQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDriverRosterQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDriverRosterQueryIsNotConstructed)
}

func TestNewGetApplicationsQuery_Valid(t *testing.T) {
	query := queries.NewGetApplicationsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetApplicationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetApplicationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetApplicationsQueryIsNotConstructed)
}

func TestNewGetUnreadNotificationsQuery_Valid(t *testing.T) {
	userID, err := kernel.NewID(2)
	require.NoError(t, err)

	query, err := queries.NewGetUnreadNotificationsQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(userID))
}

func TestNewGetUnreadNotificationsQuery_ZeroUserID(t *testing.T) {
	_, err := queries.NewGetUnreadNotificationsQuery(kernel.ID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetUnreadNotificationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnreadNotificationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnreadNotificationsQueryIsNotConstructed)
}

func TestNewGetRecentActivityQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRecentActivityQuery(50)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 50, query.Limit())
}

func TestNewGetRecentActivityQuery_LimitOutOfRange(t *testing.T) {
	_, err := queries.NewGetRecentActivityQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetRecentActivityQuery(queries.MaxRecentActivityLimit + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetRecentActivityQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRecentActivityQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRecentActivityQueryIsNotConstructed)
}
