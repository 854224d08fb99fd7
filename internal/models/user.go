package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	Username     string    `json:"username" db:"user_name"`    // Primary key
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash of the password
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
