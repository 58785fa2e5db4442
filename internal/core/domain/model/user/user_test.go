package user_test

import (
	"testing"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/user"
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

func TestNewUser(t *testing.T) {
	t.Run("creates_user", func(t *testing.T) {
		// When
		u, err := user.NewUser(mustNewID(t, 1), "John", "Smith", "john@example.com", "secret", "555-0100", "1 Main St")

		// Then
		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "John", u.FirstName())
		assert.Equal(t, "Smith", u.LastName())
		assert.Equal(t, "john@example.com", u.Email())
		assert.Equal(t, "555-0100", u.ContactNumber())
		assert.Equal(t, "1 Main St", u.Address())
	})

	t.Run("contact_number_and_address_are_optional", func(t *testing.T) {
		// When
		u, err := user.NewUser(mustNewID(t, 1), "John", "Smith", "john@example.com", "secret", "", "")

		// Then
		require.NoError(t, err)
		assert.Empty(t, u.ContactNumber())
		assert.Empty(t, u.Address())
	})

	t.Run("requires_names_email_and_password", func(t *testing.T) {
		_, err := user.NewUser(mustNewID(t, 1), "", "", "", "", "", "")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		_, err := user.NewUser(mustNewID(t, 1), "John", "Smith", "not-an-email", "secret", "", "")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_FullName(t *testing.T) {
	// Given
	u, err := user.NewUser(mustNewID(t, 1), "John", "Smith", "john@example.com", "secret", "", "")
	require.NoError(t, err)

	// Then
	assert.Equal(t, "John Smith", u.FullName())
}
