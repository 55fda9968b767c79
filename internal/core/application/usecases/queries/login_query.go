// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"courieraccounts/internal/core/domain/model/account"
	"courieraccounts/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery resolves a credential pair to the numeric identifier of the
// matching active account. The identifier is a stable record handle used for
// subsequent deletion, not a token with expiry.
//
// Example:
//
//	query, err := NewLoginQuery("ninja", "1234")
//	if err != nil {
//	    return fmt.Errorf("invalid credentials: %w", err)
//	}
//
//	handler := NewLoginQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("logged in as %d\n", response.ID)
type LoginQuery struct { //nolint:recvcheck //using for validation
	credentials account.Credentials

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a query to authenticate by login and password.
// Both fields are mandatory; missing either yields the corresponding
// required-value error before any store access.
func NewLoginQuery(login string, password string) (LoginQuery, error) {
	credentials, err := account.NewCredentials(login, password)
	if err != nil {
		return LoginQuery{}, err
	}

	return LoginQuery{
		credentials: credentials,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginQueryIsNotConstructed if validation fails.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Credentials returns the credential pair from the query.
func (q LoginQuery) Credentials() account.Credentials {
	return q.credentials
}

// LoginQueryResponse carries the identifier issued for a successful login.
type LoginQueryResponse struct {
	ID account.ID
}
