package commands

import (
	"context"

	"courieraccounts/internal/core/domain/model/account"
)

// CreateAccountCommandHandler handles the business logic for account registration.
// Drives the creation flow through its gates: the command constructor has
// already validated the candidate, so the handler checks login uniqueness and
// persists the new account, all within a single transaction.
//
// Outcomes:
//   - nil: the account was persisted and holds its store-assigned id
//   - account.ErrLoginAlreadyUsed: the login is taken by an active account
//     (regardless of whether the rest of the record matches)
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence operations.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account creation command.
// Checks uniqueness and persists the account within one transaction; the
// store's unique login index is the final arbiter, so a concurrent creation
// racing past the exists check still resolves to ErrLoginAlreadyUsed for
// exactly one of the two requests. No retries are attempted.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
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

	accountRepo := uow.AccountRepository()

	exists, err := accountRepo.ExistsByLogin(ctx, cmd.Credentials().Login())
	if err != nil {
		return err
	}
	if exists {
		return account.ErrLoginAlreadyUsed
	}

	accountEntity, err := account.NewAccount(cmd.Credentials(), cmd.FirstName())
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, accountEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
