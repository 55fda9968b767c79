package queries

import (
	"context"
	"database/sql"
	"errors"

	"courieraccounts/internal/core/domain/model/account"

	"gorm.io/gorm"
)

// LoginQueryHandler authenticates credential pairs against the accounts table.
// Uses a direct SQL read for the lookup; the bcrypt comparison itself happens
// on the restored domain aggregate, never inside the database.
//
// Unknown login and wrong password both resolve to
// account.ErrInvalidCredentials, so the response does not reveal which
// accounts exist.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for login queries.
// Requires a GORM database connection for query execution.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the login query.
// Returns the identifier of the unique active account whose login and
// password both match, or account.ErrInvalidCredentials when there is none.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var (
		id           int64
		passwordHash string
		firstName    string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			first_name
		FROM accounts
		WHERE login = ?
	`, query.Credentials().Login()).Row()

	if err := row.Scan(&id, &passwordHash, &firstName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginQueryResponse{}, account.ErrInvalidCredentials
		}
		return LoginQueryResponse{}, err
	}

	restored, err := account.RestoreAccount(account.ID(id), query.Credentials().Login(), passwordHash, firstName)
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if !restored.VerifyPassword(query.Credentials().Password()) {
		return LoginQueryResponse{}, account.ErrInvalidCredentials
	}

	return LoginQueryResponse{ID: restored.ID()}, nil
}
