package account_test

import (
	"testing"

	"courieraccounts/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("should create credentials with login and password", func(t *testing.T) {
		credentials, err := account.NewCredentials("ninja", "1234")

		require.NoError(t, err)
		require.NoError(t, credentials.Validate())
		assert.Equal(t, "ninja", credentials.Login())
		assert.Equal(t, "1234", credentials.Password())
	})

	t.Run("should return error for missing login", func(t *testing.T) {
		credentials, err := account.NewCredentials("", "1234")

		require.Error(t, err)
		require.ErrorIs(t, err, account.ErrLoginIsRequired)
		assert.Equal(t, account.Credentials{}, credentials)
	})

	t.Run("should return error for missing password", func(t *testing.T) {
		credentials, err := account.NewCredentials("ninja", "")

		require.Error(t, err)
		require.ErrorIs(t, err, account.ErrPasswordIsRequired)
		assert.Equal(t, account.Credentials{}, credentials)
	})

	t.Run("should report both errors when login and password are missing", func(t *testing.T) {
		_, err := account.NewCredentials("", "")

		require.Error(t, err)
		require.ErrorIs(t, err, account.ErrLoginIsRequired)
		require.ErrorIs(t, err, account.ErrPasswordIsRequired)
	})
}

func TestCredentials_Validate(t *testing.T) {
	t.Run("zero value credentials are invalid", func(t *testing.T) {
		var credentials account.Credentials

		err := credentials.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrCredentialsAreNotConstructed, err)
	})
}
