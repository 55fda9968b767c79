package account_test

import (
	"testing"

	"courieraccounts/internal/core/domain/model/account"
	"courieraccounts/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidAccount(t *testing.T) *account.Account {
	t.Helper()
	credentials, err := account.NewCredentials("ninja", "1234")
	require.NoError(t, err)

	a, err := account.NewAccount(credentials, "saske")
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("should create account with valid credentials", func(t *testing.T) {
		credentials, err := account.NewCredentials("ninja", "1234")
		require.NoError(t, err)

		a, err := account.NewAccount(credentials, "saske")

		require.NoError(t, err)
		assert.NotNil(t, a)
		require.NoError(t, a.Validate())
		assert.Equal(t, "ninja", a.Login())
		assert.Equal(t, "saske", a.FirstName())
		assert.Equal(t, account.ID(0), a.ID())
	})

	t.Run("should hash the password and never retain plaintext", func(t *testing.T) {
		a := createValidAccount(t)

		assert.NotEmpty(t, a.PasswordHash())
		assert.NotEqual(t, "1234", a.PasswordHash())
		assert.True(t, a.VerifyPassword("1234"))
		assert.False(t, a.VerifyPassword("4321"))
	})

	t.Run("first name is optional", func(t *testing.T) {
		credentials, err := account.NewCredentials("ninja", "1234")
		require.NoError(t, err)

		a, err := account.NewAccount(credentials, "")

		require.NoError(t, err)
		assert.Empty(t, a.FirstName())
	})

	t.Run("should reject zero value credentials", func(t *testing.T) {
		var credentials account.Credentials

		a, err := account.NewAccount(credentials, "saske")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Equal(t, account.ErrCredentialsAreNotConstructed, err)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should restore account from persisted state", func(t *testing.T) {
		original := createValidAccount(t)

		restored, err := account.RestoreAccount(7, original.Login(), original.PasswordHash(), original.FirstName())

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, account.ID(7), restored.ID())
		assert.Equal(t, original.Login(), restored.Login())
		assert.True(t, restored.VerifyPassword("1234"))
	})

	t.Run("should return error for invalid id", func(t *testing.T) {
		testCases := []struct {
			name string
			id   account.ID
		}{
			{"zero id", 0},
			{"negative id", -5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				restored, err := account.RestoreAccount(tc.id, "ninja", "hash", "")

				require.Error(t, err)
				assert.Nil(t, restored)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should return error for empty login", func(t *testing.T) {
		restored, err := account.RestoreAccount(7, "", "hash", "")

		require.Error(t, err)
		assert.Nil(t, restored)
		require.ErrorIs(t, err, account.ErrLoginIsRequired)
	})

	t.Run("should return error for empty password hash", func(t *testing.T) {
		restored, err := account.RestoreAccount(7, "ninja", "", "")

		require.Error(t, err)
		assert.Nil(t, restored)
		require.ErrorIs(t, err, account.ErrPasswordIsRequired)
	})
}

func TestAccount_AssignID(t *testing.T) {
	t.Run("should assign store-issued id once", func(t *testing.T) {
		a := createValidAccount(t)

		require.NoError(t, a.AssignID(42))
		assert.Equal(t, account.ID(42), a.ID())
	})

	t.Run("should reject reassignment", func(t *testing.T) {
		a := createValidAccount(t)
		require.NoError(t, a.AssignID(42))

		err := a.AssignID(43)

		require.Error(t, err)
		assert.Equal(t, account.ErrIDAlreadyAssigned, err)
		assert.Equal(t, account.ID(42), a.ID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		a := createValidAccount(t)

		err := a.AssignID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero value account is invalid", func(t *testing.T) {
		var a account.Account

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAccountIsNotConstructed, err)
	})

	t.Run("nil account is invalid", func(t *testing.T) {
		var a *account.Account

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAccountIsNotConstructed, err)
	})
}
