package models

import (
	"time"
)

// User defines a staff account (counsellor, teacher or admin) based on
// the 'users' table.
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	Username    string    `json:"username" db:"username" example:"ramesh"`                  // Unique username, alphabetic only
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"9876543210"`       // Unique 10-digit phone number
	Email       string    `json:"email" db:"email" example:"ramesh@krmu.edu.in"`            // Unique institutional email address
	Password    string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role        Role      `json:"role" db:"role" example:"counsellor"`                      // Account role (counsellor, teacher or admin)
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
}

// CounsellorRef is a lightweight reference to a counsellor account,
// embedded in student responses.
type CounsellorRef struct {
	Username string `json:"username" example:"ramesh"`
	Email    string `json:"email" example:"ramesh@krmu.edu.in"`
}
