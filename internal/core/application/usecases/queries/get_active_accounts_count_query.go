package queries

import (
	"errors"

	"courieraccounts/internal/pkg/guard"
)

var ErrGetActiveAccountsCountQueryIsNotConstructed = errors.New(
	"GetActiveAccountsCountQuery must be created via NewGetActiveAccountsCountQuery constructor",
)

// GetActiveAccountsCountQuery retrieves the number of active courier accounts.
// Used by the stats job for operational visibility.
type GetActiveAccountsCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveAccountsCountQuery creates a query for the active account count.
// This is a parameterless query.
func NewGetActiveAccountsCountQuery() GetActiveAccountsCountQuery {
	return GetActiveAccountsCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveAccountsCountQueryIsNotConstructed if validation fails.
func (q GetActiveAccountsCountQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAccountsCountQueryIsNotConstructed)
}
