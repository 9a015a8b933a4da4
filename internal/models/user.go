package models

import "time"

const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
)

// ValidRole reports whether role is one of the account types Glint knows.
func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleEmployer
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
