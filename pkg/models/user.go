package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Accounts start anonymous and can later be linked to
// email/password credentials in place, keeping the same id and owned rows.
// The password hash is never serialized to API responses.
type User struct {
	ID                 uuid.UUID `json:"id"`
	Email              *string   `json:"email"`
	PasswordHash       *string   `json:"-"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// IsAnonymous reports whether the user has no linked credentials.
func (u *User) IsAnonymous() bool {
	return u.Email == nil
}
