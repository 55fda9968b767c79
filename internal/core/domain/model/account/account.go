package account

import (
	"errors"

	"courieraccounts/internal/pkg/errs"
	"courieraccounts/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for account operations.
var (
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New(
		"Account must be created via NewAccount or RestoreAccount constructor",
	)
	// ErrLoginAlreadyUsed is returned when the login is taken by an active account.
	ErrLoginAlreadyUsed = errors.New("login is already used by an active account")
	// ErrInvalidCredentials is returned when no active account matches a login/password pair.
	// Unknown login and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("no active account matches the supplied credentials")
	// ErrAccountNotFound is returned when the deletion target is absent.
	ErrAccountNotFound = errors.New("account not found")
	// ErrIDAlreadyAssigned is returned when attempting to reassign a store-issued identifier.
	ErrIDAlreadyAssigned = errors.New("account ID is assigned once, at creation")
)

// ID is the numeric identifier the identity store assigns to an account at
// creation. It is immutable, never reused, and doubles as the login-session
// handle and the deletion key.
type ID int64

// Account represents a courier account in the system.
// It is an aggregate root holding the courier's identity: a unique login, an
// opaque password hash, an optional first name, and the store-assigned
// numeric identifier.
//
// Business rules:
//   - Login and password are mandatory and validated before construction
//   - The password is hashed with bcrypt at construction and never exposed as plaintext
//   - The ID starts unassigned and is set exactly once by the identity store
//   - An account exists in exactly two lifecycle states: Active (persisted) or Absent
type Account struct {
	// id is the store-assigned identifier; zero until the account is persisted
	id ID
	// login uniquely identifies the account among active records
	login string
	// passwordHash is the bcrypt hash of the account password
	passwordHash string
	// firstName is optional and descriptive only
	firstName string
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount creates a new Account from validated credentials.
// The plaintext password is hashed with bcrypt immediately; the aggregate
// never retains it. The identifier stays unassigned until the identity store
// persists the account and calls AssignID.
func NewAccount(credentials Credentials, firstName string) (*Account, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Account{
		login:        credentials.Login(),
		passwordHash: string(passwordHash),
		firstName:    firstName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
// Unlike NewAccount it takes the already-computed password hash and the
// store-assigned identifier, restoring the account to its persisted state.
func RestoreAccount(id ID, login string, passwordHash string, firstName string) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setLogin(login),
		account.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	account.firstName = firstName
	return account, nil
}

// Validate checks if the Account was properly constructed via a constructor.
// The zero value of Account is invalid and will fail this validation.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the store-assigned identifier, or zero if the account
// has not been persisted yet.
func (a *Account) ID() ID {
	return a.id
}

// Login returns the unique login of the account.
func (a *Account) Login() string {
	return a.login
}

// PasswordHash returns the bcrypt hash of the account password.
// The plaintext password is not recoverable from it.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// FirstName returns the optional first name of the account.
func (a *Account) FirstName() string {
	return a.firstName
}

// AssignID records the identifier issued by the identity store at creation.
// The ID is assigned exactly once; a second assignment is a programming error
// and returns ErrIDAlreadyAssigned.
func (a *Account) AssignID(id ID) error {
	if a.id != 0 {
		return ErrIDAlreadyAssigned
	}
	return a.setID(id)
}

// VerifyPassword reports whether the supplied plaintext password matches the
// stored bcrypt hash. It never reveals which part of the credential pair was
// wrong.
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

func (a *Account) setID(id ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}

	a.id = id
	return nil
}

func (a *Account) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	a.login = login
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordIsRequired
	}

	a.passwordHash = passwordHash
	return nil
}
