package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/email"
	"github.com/krmu/admissions/internal/pkg/logger"
	"github.com/krmu/admissions/internal/pkg/validation"
)

// StudentService handles applicant records and the admissions workflow
type StudentService struct {
	studentStore StudentStore
	userStore    UserStore
	emailService email.EmailService
}

// NewStudentService creates a new StudentService
func NewStudentService(studentStore StudentStore, userStore UserStore, emailService email.EmailService) *StudentService {
	return &StudentService{
		studentStore: studentStore,
		userStore:    userStore,
		emailService: emailService,
	}
}

// Create validates the intake form, assigns a counsellor uniformly at
// random and persists the applicant with every status at Pending.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	req.Email = strings.ToLower(req.Email)

	if req.SelectDate == "" || req.SelectTime == "" {
		return nil, apperrors.NewValidationError("Interview date and time are required")
	}

	interviewDate, err := time.Parse("2006-01-02", req.SelectDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid interview date: %s", req.SelectDate))
	}

	if !validation.IsAlphabetic(req.FirstName) {
		return nil, apperrors.NewValidationError("First name must contain only letters")
	}
	if req.LastName != "" && !validation.IsAlphabetic(req.LastName) {
		return nil, apperrors.NewValidationError("Last name must contain only letters")
	}
	if !validation.IsEmail(req.Email) {
		return nil, apperrors.NewValidationError("Please provide a valid email address")
	}
	if !validation.IsPhoneNumber(req.ContactNumber) {
		return nil, apperrors.NewValidationError("Contact number must be exactly 10 digits")
	}
	gender := models.Gender(req.Gender)
	if !gender.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid gender: %s", req.Gender))
	}

	counsellors, err := s.userStore.ListByRole(ctx, models.RoleCounsellor)
	if err != nil {
		return nil, err
	}
	if len(counsellors) == 0 {
		return nil, apperrors.NewValidationError("No counsellors available")
	}
	counsellor := counsellors[rand.IntN(len(counsellors))]

	student := &models.Student{
		StudentID:            models.TempStudentID,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		ContactNumber:        req.ContactNumber,
		FathersName:          req.FathersName,
		Gender:               gender,
		CourseName:           req.CourseName,
		SchoolName:           req.SchoolName,
		State:                req.State,
		City:                 req.City,
		InterviewDate:        interviewDate,
		InterviewTime:        req.SelectTime,
		AssignedCounsellorID: counsellor.ID,
		GeneralStatus:        models.StatusPending,
		TechnicalStatus:      models.StatusPending,
		EmailStatus:          models.EmailStatusPending,
		Status:               models.StatusPending,
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}
	student.AssignedCounsellor = &models.CounsellorRef{
		Username: counsellor.Username,
		Email:    counsellor.Email,
	}

	logger.Info().
		Str("student_id", student.StudentID).
		Int64("counsellor_id", counsellor.ID).
		Msg("Student created")
	return student, nil
}

// Get retrieves a single student by id
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentStore.GetByID(ctx, id)
}

// List returns the role-shaped student listing for the caller.
// Counsellors see only their own students split by overall status,
// teachers see every student split by which track names them, and any
// other role sees the flat list. Only the flat list carries a result
// count; the partitioned shapes return a nil count.
func (s *StudentService) List(ctx context.Context, caller *models.User) (interface{}, *int, error) {
	switch caller.Role {
	case models.RoleCounsellor:
		students, err := s.studentStore.ListByCounsellor(ctx, caller.ID)
		if err != nil {
			return nil, nil, err
		}
		return PartitionForCounsellor(students), nil, nil
	case models.RoleTeacher:
		students, err := s.studentStore.ListAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return PartitionForTeacher(students, caller.Username), nil, nil
	default:
		students, err := s.studentStore.ListAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		count := len(students)
		return &dto.StudentListData{Students: students}, &count, nil
	}
}

// PartitionForCounsellor splits a counsellor's students by overall
// status: Pending records are still waiting for their interview,
// anything decided has been interviewed.
func PartitionForCounsellor(students []*models.Student) *dto.CounsellorStudentList {
	list := &dto.CounsellorStudentList{
		WaitingForInterview:   make([]*models.Student, 0),
		InterviewedCandidates: make([]*models.Student, 0),
	}
	for _, student := range students {
		if student.Status == models.StatusPending {
			list.WaitingForInterview = append(list.WaitingForInterview, student)
		} else {
			list.InterviewedCandidates = append(list.InterviewedCandidates, student)
		}
	}
	return list
}

// PartitionForTeacher splits students by which evaluation track names
// the caller as its teacher. A student can appear in both partitions.
func PartitionForTeacher(students []*models.Student, username string) *dto.TeacherStudentList {
	list := &dto.TeacherStudentList{
		TechnicalCandidates: make([]*models.Student, 0),
		GeneralCandidates:   make([]*models.Student, 0),
	}
	for _, student := range students {
		if student.TechnicalTeacher == username {
			list.TechnicalCandidates = append(list.TechnicalCandidates, student)
		}
		if student.GeneralTeacher == username {
			list.GeneralCandidates = append(list.GeneralCandidates, student)
		}
	}
	return list
}

// Update applies a partial update to a student, recomputing the
// overall status when a sub-status is patched, and returns the merged
// record.
func (s *StudentService) Update(ctx context.Context, id int64, patch *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ApplyPatch(student, patch); err != nil {
		return nil, err
	}

	if err := s.studentStore.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student permanently
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.studentStore.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("id", id).Msg("Student deleted")
	return nil
}

// DashboardStats returns the aggregate counts for the dashboard
func (s *StudentService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.studentStore.DashboardCounts(ctx)
}

// SendAcceptanceEmail sends the acceptance notification to a student.
// A delivery failure is logged, not surfaced to the caller.
func (s *StudentService) SendAcceptanceEmail(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.emailService.SendAcceptanceEmail(student.Email, student.FullName()); err != nil {
		logger.Warn().Err(err).Int64("id", id).Msg("Failed to send acceptance email")
	}
	return student, nil
}

// SendRejectionEmail sends the rejection notification to a student.
// A delivery failure is logged, not surfaced to the caller.
func (s *StudentService) SendRejectionEmail(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.emailService.SendRejectionEmail(student.Email, student.FullName()); err != nil {
		logger.Warn().Err(err).Int64("id", id).Msg("Failed to send rejection email")
	}
	return student, nil
}
