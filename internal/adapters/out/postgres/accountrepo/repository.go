package accountrepo

import (
	"context"
	"errors"

	"courieraccounts/internal/core/domain/model/account"
	"courieraccounts/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id account.ID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database and assigns the generated identifier
// back onto the aggregate. The unique index on login makes the insert the
// atomic uniqueness gate: when two creations race past the exists check, the
// loser gets gorm.ErrDuplicatedKey here, surfaced as ErrLoginAlreadyUsed.
// Requires the connection to be opened with gorm.Config{TranslateError: true}.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrLoginAlreadyUsed
		}
		return err
	}

	if err := aggregate.AssignID(account.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsByLogin reports whether an active account with the given login exists.
func (r *GormAccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("login = ?", login).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByLogin retrieves an account by its login.
func (r *GormAccountRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("login", login)
		}
		return nil, err
	}

	return toDomain(dto)
}

// RemoveByID deletes an account by its identifier.
// Returns true when a record was removed; a repeat call for the same id finds
// nothing and returns false without error.
func (r *GormAccountRepository) RemoveByID(ctx context.Context, id account.ID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, int64(id))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
