package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of user roles. Admins administer accounts but are
// deliberately excluded from task authorship (separation of duties).
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleTester    Role = "tester"
	RoleDeveloper Role = "developer"
)

// ParseRole maps a wire string to a Role. Unknown values are rejected rather
// than defaulted.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleTester, RoleDeveloper:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// User models an account in the system. PasswordHash is write-only: it never
// leaves the service layer and is excluded from JSON output.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller extracted from a verified token.
// It is threaded as an explicit argument into every authorization-checked
// operation, never stored as ambient state.
type Identity struct {
	UserID   string
	Username string
	Role     Role
}
