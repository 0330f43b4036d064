package dto

import "github.com/krmu/admissions/internal/app/models"

// RegisterRequest represents a staff account registration request
type RegisterRequest struct {
	Username        string      `json:"username" binding:"required"`
	PhoneNumber     string      `json:"phoneNumber" binding:"required"`
	Email           string      `json:"email" binding:"required"`
	Password        string      `json:"password" binding:"required"`
	ConfirmPassword string      `json:"confirmPassword" binding:"required"`
	Role            models.Role `json:"role"`
}

// LoginRequest represents login credentials. Presence is checked in the
// service so missing fields surface as authentication failures.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData wraps the account in auth responses
type AuthData struct {
	User *models.User `json:"user"`
}

// TeacherListData wraps the teacher listing
type TeacherListData struct {
	Teachers []*models.User `json:"teachers"`
}
