// Package ports defines repository interfaces for the account domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"courieraccounts/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for account aggregates.
// It is the identity store: the single owner of all account records, keyed by
// login, with uniqueness enforced at the storage level.
type AccountRepository interface {
	// Add persists a new account aggregate and assigns its store-issued
	// identifier back onto the aggregate. Callers must check ExistsByLogin
	// first; a concurrent duplicate surfaces as gorm.ErrDuplicatedKey.
	Add(ctx context.Context, account *account.Account) error

	// ExistsByLogin reports whether any active account has the given login.
	ExistsByLogin(ctx context.Context, login string) (bool, error)

	// GetByLogin retrieves the active account with the given login.
	// Returns errs.ObjectNotFoundError when no such account exists.
	GetByLogin(ctx context.Context, login string) (*account.Account, error)

	// RemoveByID removes an active account by its identifier.
	// Returns true if a record existed and was removed, false otherwise;
	// repeat calls on the same id are benign no-ops.
	RemoveByID(ctx context.Context, id account.ID) (bool, error)
}
