package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/auth"
	"github.com/krmu/admissions/internal/pkg/logger"
	"github.com/krmu/admissions/internal/pkg/validation"
)

// AuthService handles staff account registration, login and lookups
type AuthService struct {
	userStore         UserStore
	jwtService        *auth.JWTService
	emailDomainSuffix string
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, emailDomainSuffix string) *AuthService {
	return &AuthService{
		userStore:         userStore,
		jwtService:        jwtService,
		emailDomainSuffix: emailDomainSuffix,
	}
}

func (s *AuthService) domainError() error {
	return apperrors.NewValidationError(
		fmt.Sprintf("Please use your university email (%s)", s.emailDomainSuffix))
}

// Register creates a new staff account and issues a token for it.
// Checks run in a fixed order and the first failure wins: password
// mismatch, email domain, email uniqueness, username uniqueness, phone
// uniqueness, then field format constraints.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	req.Email = strings.ToLower(req.Email)

	if req.Password != req.ConfirmPassword {
		return nil, "", apperrors.NewValidationError("Passwords do not match")
	}
	if !validation.HasDomainSuffix(req.Email, s.emailDomainSuffix) {
		return nil, "", s.domainError()
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.NewValidationError("Email already exists")
	}

	exists, err = s.userStore.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.NewValidationError("Username already exists")
	}

	exists, err = s.userStore.PhoneExists(ctx, req.PhoneNumber)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.NewValidationError("Phone number already exists")
	}

	if !validation.IsAlphabetic(req.Username) {
		return nil, "", apperrors.NewValidationError("Username must contain only letters")
	}
	if !validation.IsEmail(req.Email) {
		return nil, "", apperrors.NewValidationError("Please provide a valid email address")
	}
	if !validation.IsPhoneNumber(req.PhoneNumber) {
		return nil, "", apperrors.NewValidationError("Phone number must be exactly 10 digits")
	}
	if !validation.IsStrongPassword(req.Password) {
		return nil, "", apperrors.NewValidationError("Password must be at least 8 characters and contain letters and numbers")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCounsellor
	}
	if role != models.RoleCounsellor && role != models.RoleTeacher {
		return nil, "", apperrors.NewValidationError(fmt.Sprintf("Invalid role: %s", role))
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        role,
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.ID = id

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("Staff account registered")
	return user, token, nil
}

// Login verifies credentials and issues a token. Every failure mode is
// reported as an authentication error; the domain suffix is checked
// after the credentials so a bad password never reveals which rule
// tripped first.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperrors.NewUnauthorizedError("Please provide email and password")
	}

	user, err := s.userStore.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, "", apperrors.NewUnauthorizedError("Incorrect email or password")
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.NewUnauthorizedError("Incorrect email or password")
	}

	if !validation.HasDomainSuffix(user.Email, s.emailDomainSuffix) {
		return nil, "", apperrors.NewUnauthorizedError(
			fmt.Sprintf("Please use your university email (%s)", s.emailDomainSuffix))
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("user_id", user.ID).Msg("User logged in")
	return user, token, nil
}

// Me returns the account for the authenticated caller
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

// ListTeachers returns all teacher accounts sorted by username.
// Only admins and counsellors may call it.
func (s *AuthService) ListTeachers(ctx context.Context, callerRole models.Role) ([]*models.User, error) {
	if callerRole != models.RoleAdmin && callerRole != models.RoleCounsellor {
		return nil, apperrors.NewForbiddenError("You do not have permission to perform this action")
	}
	return s.userStore.ListByRole(ctx, models.RoleTeacher)
}
