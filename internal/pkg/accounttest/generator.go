// Package accounttest generates random account data for tests.
// Unique logins keep tests independent of each other and of leftover state in
// a shared database.
package accounttest

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomLogin returns a unique courier login.
func RandomLogin() string {
	return fmt.Sprintf("courier-%s", uuid.NewString()[:8])
}

// RandomPassword returns a random password.
func RandomPassword() string {
	return uuid.NewString()[:12]
}

// RandomFirstName returns a random first name.
func RandomFirstName() string {
	return fmt.Sprintf("name-%s", uuid.NewString()[:6])
}
