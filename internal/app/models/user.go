package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Every account is a
// teacher; admins are teachers with the is_admin flag set.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FullName  string    `json:"fullName" db:"full_name" example:"Jane Doe"`               // Teacher's full name
	Email     string    `json:"email" db:"email" example:"jane.doe@campus-space.app"`     // User's email address, unique
	Password  string    `json:"-" db:"password"`                                          // Bcrypt hash, excluded from JSON
	IsAdmin   bool      `json:"isAdmin" db:"is_admin" example:"false"`                    // Whether the user can manage other teachers
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// ClearPassword blanks the stored hash so it can never leak into a response.
func (u *User) ClearPassword() {
	u.Password = ""
}
