package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveAccountsCountQueryHandler counts active accounts with a direct SQL read.
type GetActiveAccountsCountQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAccountsCountQueryHandler creates a handler for account count queries.
// Requires a GORM database connection for query execution.
func NewGetActiveAccountsCountQueryHandler(db *gorm.DB) GetActiveAccountsCountQueryHandler {
	return GetActiveAccountsCountQueryHandler{db: db}
}

// Handle executes the query and returns the number of active accounts.
func (h GetActiveAccountsCountQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAccountsCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM accounts`).Scan(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
