package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all data stores built on the shared pool
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
