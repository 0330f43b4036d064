package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/dberrors"
)

// UserRepository is the account store backed by the 'users' table
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new account and returns its id. Unique violations on
// username, email or phone surface as the matching apperrors sentinel.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, phone_number, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		user.Username, user.PhoneNumber, user.Email, user.Password, user.Role).Scan(&id, &user.CreatedAt)

	if err != nil {
		switch dberrors.UniqueViolationConstraint(err) {
		case "users_email_key":
			return 0, apperrors.ErrEmailAlreadyExists
		case "users_username_key":
			return 0, apperrors.ErrUsernameAlreadyExists
		case "users_phone_number_key":
			return 0, apperrors.ErrPhoneAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves an account by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, phone_number, email, password, role, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Username, &user.PhoneNumber, &user.Email,
		&user.Password, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves an account by email, including the password hash
// for credential verification.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, phone_number, email, password, role, created_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Username, &user.PhoneNumber, &user.Email,
		&user.Password, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// PhoneExists checks if a phone number is already registered
func (r *UserRepository) PhoneExists(ctx context.Context, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1)`,
		phoneNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking phone number: %w", err)
	}

	return exists, nil
}

// ListByRole retrieves all accounts with the given role, sorted
// ascending by username.
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, phone_number, email, role, created_at
		FROM users
		WHERE role = $1
		ORDER BY username ASC`,
		role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.PhoneNumber, &user.Email,
			&user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
