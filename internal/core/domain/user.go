package domain

import (
	"errors"
	"time"
)

// Role is the single role assigned to a user account.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Status represents the account state of a user.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAuthenticationFailed = errors.New("invalid or expired token")
var ErrInvalidInput = errors.New("invalid input")

// User models an employee account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	ManagerID    *int64    `json:"manager_id,omitempty"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate enforces the persistence invariants: email and password hash are
// never empty, role and status are known enum values.
func (u *User) Validate() error {
	if u.Email == "" || u.PasswordHash == "" {
		return ErrInvalidInput
	}
	if !u.Role.Valid() || !u.Status.Valid() {
		return ErrInvalidInput
	}
	return nil
}
