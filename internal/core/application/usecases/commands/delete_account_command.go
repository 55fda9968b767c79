package commands

import (
	"errors"

	"courieraccounts/internal/core/domain/model/account"
	"courieraccounts/internal/pkg/guard"
)

var (
	ErrDeleteAccountCommandIsNotConstructed = errors.New(
		"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
	)
	ErrAccountIDIsRequired = errors.New("account id must be greater than 0")
)

// DeleteAccountCommand represents a request to remove a courier account by its
// store-assigned identifier. Deletion is idempotent at the caller level:
// issuing the command for an id that was never assigned, or was already
// deleted, is an expected outcome, not a fault.
type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID account.ID

	guard guard.ConstructorGuard
}

// NewDeleteAccountCommand creates a command to delete an account by id.
// The id must be positive; it does not have to belong to an active account.
func NewDeleteAccountCommand(accountID account.ID) (DeleteAccountCommand, error) {
	if accountID <= 0 {
		return DeleteAccountCommand{}, ErrAccountIDIsRequired
	}

	return DeleteAccountCommand{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAccountCommandIsNotConstructed if validation fails.
func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

// AccountID returns the deletion target from the command.
func (c DeleteAccountCommand) AccountID() account.ID {
	return c.accountID
}
