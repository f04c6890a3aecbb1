package entities

import (
	"fmt"
	"strings"
	"time"
)

const MinPasswordLength = 7

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
}

type User struct {
	Email        string
	Run          string
	FirstName    string
	LastName     string
	PasswordHash string
	Address      string
	Phone        string
	Role         Role
	CreatedAt    time.Time
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	Email string
	Role  Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (u User) Principal() Principal {
	return Principal{Email: u.Email, Role: u.Role}
}

// ProfilePatch holds optional profile changes; nil fields are left untouched.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
	Run       *string
}

// Apply copies non-nil fields into u. Names and RUN are only replaced by non-blank values,
// address and phone may be cleared.
func (p ProfilePatch) Apply(u *User) {
	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) != "" {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil && strings.TrimSpace(*p.LastName) != "" {
		u.LastName = *p.LastName
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Run != nil && strings.TrimSpace(*p.Run) != "" {
		u.Run = *p.Run
	}
}

// Registration is the data required to create an account.
type Registration struct {
	Email     string
	Password  string
	Run       string
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
