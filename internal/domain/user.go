package domain

import "time"

type UserRole string

const (
	UserRoleVolunteer UserRole = "VOLUNTEER"
	UserRoleCharity   UserRole = "CHARITY"
	UserRoleModerator UserRole = "MODERATOR"
)

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
