package queries_test

import (
	"testing"

	"courieraccounts/internal/core/application/usecases/queries"
	"courieraccounts/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginQuery(t *testing.T) {
	t.Run("should create query with login and password", func(t *testing.T) {
		query, err := queries.NewLoginQuery("ninja", "1234")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "ninja", query.Credentials().Login())
		assert.Equal(t, "1234", query.Credentials().Password())
	})

	t.Run("should return error for missing login", func(t *testing.T) {
		_, err := queries.NewLoginQuery("", "1234")

		require.ErrorIs(t, err, account.ErrLoginIsRequired)
	})

	t.Run("should return error for missing password", func(t *testing.T) {
		_, err := queries.NewLoginQuery("ninja", "")

		require.ErrorIs(t, err, account.ErrPasswordIsRequired)
	})
}

func TestLoginQuery_Validate(t *testing.T) {
	t.Run("zero value query is invalid", func(t *testing.T) {
		var query queries.LoginQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrLoginQueryIsNotConstructed, err)
	})
}

func TestGetActiveAccountsCountQuery_Validate(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		query := queries.NewGetActiveAccountsCountQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero value query is invalid", func(t *testing.T) {
		var query queries.GetActiveAccountsCountQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetActiveAccountsCountQueryIsNotConstructed, err)
	})
}
