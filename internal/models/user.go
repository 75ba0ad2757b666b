package models

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection handed to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// UserPatch carries optional replacements; nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Role     *Role
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func NormalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func ValidEmail(email string) bool { return emailRe.MatchString(email) }
