package services

import (
	"context"
	"errors"
	"sort"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/pkg/apperrors"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserStore) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
		f.nextID++
	} else if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.add(user)
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) PhoneExists(ctx context.Context, phoneNumber string) (bool, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phoneNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	result := make([]*models.User, 0)
	for _, u := range f.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

// fakeStudentStore is an in-memory StudentStore for service tests.
type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	lastID := ""
	for _, s := range f.students {
		if s.StudentID != models.TempStudentID && s.StudentID > lastID {
			lastID = s.StudentID
		}
	}
	nextID, err := models.NextStudentID(lastID)
	if err != nil {
		return err
	}
	student.StudentID = nextID
	student.ID = f.nextID
	f.nextID++
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) ListAll(ctx context.Context) ([]*models.Student, error) {
	result := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeStudentStore) ListByCounsellor(ctx context.Context, counsellorID int64) ([]*models.Student, error) {
	all, _ := f.ListAll(ctx)
	result := make([]*models.Student, 0)
	for _, s := range all {
		if s.AssignedCounsellorID == counsellorID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) DashboardCounts(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	for _, s := range f.students {
		stats.Enrolled++
		if s.Status == models.StatusPending {
			stats.WaitingForInterview++
		}
	}
	return stats, nil
}

// fakeEmailService records notification sends.
type fakeEmailService struct {
	acceptances []string
	rejections  []string
	failWith    error
}

func (f *fakeEmailService) SendAcceptanceEmail(toEmail, studentName string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.acceptances = append(f.acceptances, toEmail)
	return nil
}

func (f *fakeEmailService) SendRejectionEmail(toEmail, studentName string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.rejections = append(f.rejections, toEmail)
	return nil
}

var errSMTPDown = errors.New("smtp connection refused")
