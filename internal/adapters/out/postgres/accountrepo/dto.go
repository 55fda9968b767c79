// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. It implements the repository pattern for the account
// aggregate, handling the conversion between domain entities and database rows.
package accountrepo

import (
	"courieraccounts/internal/core/domain/model/account"
)

// AccountDTO represents the database structure for persisting account aggregates.
// The id is generated by the database; the unique index on login is the
// storage-level enforcement of the login-uniqueness invariant.
type AccountDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Login        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "accounts" instead of "account_dtos".
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
// A zero ID lets the database assign the identifier on insert.
func fromDomain(account *account.Account) AccountDTO {
	return AccountDTO{
		ID:           int64(account.ID()),
		Login:        account.Login(),
		PasswordHash: account.PasswordHash(),
		FirstName:    account.FirstName(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(account.ID(dto.ID), dto.Login, dto.PasswordHash, dto.FirstName)
}
