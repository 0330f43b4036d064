package services

import (
	"context"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/repositories"
	"github.com/krmu/admissions/internal/pkg/auth"
	"github.com/krmu/admissions/internal/pkg/email"
)

// UserStore is the account persistence surface the services depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	PhoneExists(ctx context.Context, phoneNumber string) (bool, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
}

// StudentStore is the applicant persistence surface the services depend on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListByCounsellor(ctx context.Context, counsellorID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	DashboardCounts(ctx context.Context) (*models.DashboardStats, error)
}

// Services holds all service instances
type Services struct {
	Auth    *AuthService
	Student *StudentService
}

// NewServices creates and initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	emailDomainSuffix string,
) *Services {
	return &Services{
		Auth:    NewAuthService(repos.UserRepository, jwtService, emailDomainSuffix),
		Student: NewStudentService(repos.StudentRepository, repos.UserRepository, emailService),
	}
}
