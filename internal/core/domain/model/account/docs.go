// Package account provides domain entities and business logic for courier
// account management. It implements the Account aggregate root together with
// the Credentials value object used to gate account creation and login.
//
// The package includes:
//   - Account: The aggregate root holding login, password hash, and identifier
//   - Credentials: A value object enforcing the mandatory login/password pair
//
// Key business rules:
//   - Login and password are mandatory; the first name is optional
//   - The login is the natural key and must be unique among active accounts
//   - Passwords are stored only as bcrypt hashes and are never echoed back
//   - The numeric identifier is assigned exactly once, by the store, at creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package account
