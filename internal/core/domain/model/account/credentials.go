package account

import (
	"errors"

	"courieraccounts/internal/pkg/errs"
	"courieraccounts/internal/pkg/guard"
)

// Domain errors for credential validation.
var (
	// ErrLoginIsRequired is returned when the mandatory login field is missing.
	ErrLoginIsRequired = errs.NewValueIsRequiredError("login")
	// ErrPasswordIsRequired is returned when the mandatory password field is missing.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
	// ErrCredentialsAreNotConstructed is returned when using improperly initialized Credentials.
	ErrCredentialsAreNotConstructed = errors.New(
		"Credentials must be created via NewCredentials constructor",
	)
)

// Credentials is a value object holding the mandatory login/password pair.
// It is the validation gate for account creation and login: a candidate missing
// either field never reaches the identity store. Credentials carry the
// plaintext password only for the duration of a single operation; persistence
// always goes through the bcrypt hash on the Account aggregate.
type Credentials struct { //nolint:recvcheck //using for validation
	login    string
	password string

	guard guard.ConstructorGuard
}

// NewCredentials creates a validated credential pair.
// Both login and password are mandatory; missing either yields the
// corresponding required-value error. The check is a pure function of the
// input and performs no store access.
func NewCredentials(login string, password string) (Credentials, error) {
	credentials := Credentials{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		credentials.setLogin(login),
		credentials.setPassword(password),
	); err != nil {
		return Credentials{}, err
	}

	return credentials, nil
}

// Validate ensures the credentials were created through the constructor.
// Returns ErrCredentialsAreNotConstructed if validation fails.
func (c Credentials) Validate() error {
	return c.guard.Validate(ErrCredentialsAreNotConstructed)
}

// Login returns the login from the credential pair.
func (c Credentials) Login() string {
	return c.login
}

// Password returns the plaintext password from the credential pair.
// It is consumed by Account construction (hashing) and login verification only.
func (c Credentials) Password() string {
	return c.password
}

func (c *Credentials) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *Credentials) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
