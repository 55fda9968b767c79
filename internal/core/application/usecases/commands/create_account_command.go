package commands

import (
	"errors"

	"courieraccounts/internal/core/domain/model/account"
	"courieraccounts/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand represents a request to register a new courier account.
// Encapsulates the mandatory credential pair and the optional first name.
// Construction is the validation gate: a command missing login or password
// cannot be built, so invalid candidates never reach the identity store.
//
// Example:
//
//	cmd, err := NewCreateAccountCommand("ninja", "1234", "saske")
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewCreateAccountCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create account: %w", err)
//	}
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	credentials account.Credentials
	firstName   string

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new courier account.
// Validates that login and password are present; the first name may be empty.
// Missing mandatory fields yield account.ErrLoginIsRequired and/or
// account.ErrPasswordIsRequired.
func NewCreateAccountCommand(login string, password string, firstName string) (CreateAccountCommand, error) {
	credentials, err := account.NewCredentials(login, password)
	if err != nil {
		return CreateAccountCommand{}, err
	}

	return CreateAccountCommand{
		credentials: credentials,
		firstName:   firstName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAccountCommandIsNotConstructed if validation fails.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// Credentials returns the validated credential pair from the command.
func (c CreateAccountCommand) Credentials() account.Credentials {
	return c.credentials
}

// FirstName returns the optional first name from the command.
func (c CreateAccountCommand) FirstName() string {
	return c.firstName
}
