package commands

import (
	"context"

	"courieraccounts/internal/core/domain/model/account"
)

// DeleteAccountCommandHandler handles the business logic for account deletion.
// Removes the account record by its store-assigned identifier within a
// transaction. After a successful delete the login becomes free for reuse;
// the id does not.
type DeleteAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewDeleteAccountCommandHandler creates a handler for account deletion.
// Requires an AccountUoWFactory for transactional persistence operations.
func NewDeleteAccountCommandHandler(uowFactory AccountUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account deletion command.
// Returns account.ErrAccountNotFound when the target is absent, which callers
// treat as a benign outcome; repeat deletes of the same id report the same.
func (h *DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.AccountRepository().RemoveByID(ctx, cmd.AccountID())
	if err != nil {
		return err
	}
	if !removed {
		return account.ErrAccountNotFound
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
