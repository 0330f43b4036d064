package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
)

func newTestStudentService() (*StudentService, *fakeStudentStore, *fakeUserStore, *fakeEmailService) {
	students := newFakeStudentStore()
	users := newFakeUserStore()
	emails := &fakeEmailService{}
	return NewStudentService(students, users, emails), students, users, emails
}

func seedCounsellor(users *fakeUserStore, username string) *models.User {
	return users.add(&models.User{
		Username: username,
		Email:    username + "@krmu.edu.in",
		Role:     models.RoleCounsellor,
	})
}

func validCreateRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:     "Asha",
		LastName:      "Verma",
		Email:         "asha.verma@example.com",
		ContactNumber: "9001002003",
		FathersName:   "Mohan Verma",
		Gender:        "female",
		CourseName:    "B.Tech CSE",
		SchoolName:    "SOET",
		State:         "Haryana",
		City:          "Gurugram",
		SelectDate:    "2026-09-15",
		SelectTime:    "10:30 AM",
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns counsellor, sequential ID and pending statuses", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		counsellor := seedCounsellor(users, "ramesh")

		student, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "KRMU0000001", student.StudentID)
		assert.Equal(t, counsellor.ID, student.AssignedCounsellorID)
		require.NotNil(t, student.AssignedCounsellor)
		assert.Equal(t, "ramesh", student.AssignedCounsellor.Username)
		assert.Equal(t, models.StatusPending, student.Status)
		assert.Equal(t, models.StatusPending, student.TechnicalStatus)
		assert.Equal(t, models.StatusPending, student.GeneralStatus)
		assert.Equal(t, models.EmailStatusPending, student.EmailStatus)
	})

	t.Run("sequential IDs across creations", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		seedCounsellor(users, "ramesh")

		first, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		second := validCreateRequest()
		second.Email = "second@example.com"
		created, err := svc.Create(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, "KRMU0000001", first.StudentID)
		assert.Equal(t, "KRMU0000002", created.StudentID)
	})

	t.Run("fails without counsellors and persists nothing", func(t *testing.T) {
		svc, students, _, _ := newTestStudentService()

		_, err := svc.Create(ctx, validCreateRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "No counsellors available")
		assert.Empty(t, students.students)
	})

	t.Run("fails without interview date or time", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		seedCounsellor(users, "ramesh")

		req := validCreateRequest()
		req.SelectDate = ""
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Interview date and time are required")

		req = validCreateRequest()
		req.SelectTime = ""
		_, err = svc.Create(ctx, req)
		assert.Error(t, err)
	})

	t.Run("lowercases the applicant email", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		seedCounsellor(users, "ramesh")

		req := validCreateRequest()
		req.Email = "Asha.Verma@Example.COM"
		student, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "asha.verma@example.com", student.Email)
	})

	t.Run("rejects invalid contact number", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		seedCounsellor(users, "ramesh")

		req := validCreateRequest()
		req.ContactNumber = "12345"
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _, users, _ := newTestStudentService()
		seedCounsellor(users, "ramesh")

		_, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.Create(ctx, validCreateRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	})
}

func TestListStudentsRoleShapes(t *testing.T) {
	ctx := context.Background()
	svc, students, users, _ := newTestStudentService()

	counsellorA := seedCounsellor(users, "ramesh")
	counsellorB := seedCounsellor(users, "sunita")
	teacher := users.add(&models.User{Username: "zoya", Email: "zoya@krmu.edu.in", Role: models.RoleTeacher})
	admin := users.add(&models.User{Username: "admin", Email: "admin@krmu.edu.in", Role: models.RoleAdmin})

	seed := []*models.Student{
		{Email: "a@example.com", AssignedCounsellorID: counsellorA.ID, Status: models.StatusPending, TechnicalTeacher: "zoya"},
		{Email: "b@example.com", AssignedCounsellorID: counsellorA.ID, Status: models.StatusPass, GeneralTeacher: "zoya"},
		{Email: "c@example.com", AssignedCounsellorID: counsellorB.ID, Status: models.StatusFail},
	}
	for _, s := range seed {
		require.NoError(t, students.Create(ctx, s))
	}

	t.Run("counsellor sees own students split by status", func(t *testing.T) {
		data, count, err := svc.List(ctx, counsellorA)
		require.NoError(t, err)
		assert.Nil(t, count)

		list, ok := data.(*dto.CounsellorStudentList)
		require.True(t, ok)
		require.Len(t, list.WaitingForInterview, 1)
		require.Len(t, list.InterviewedCandidates, 1)
		assert.Equal(t, "a@example.com", list.WaitingForInterview[0].Email)
		assert.Equal(t, "b@example.com", list.InterviewedCandidates[0].Email)
	})

	t.Run("teacher sees all students split by track assignment", func(t *testing.T) {
		data, count, err := svc.List(ctx, teacher)
		require.NoError(t, err)
		assert.Nil(t, count)

		list, ok := data.(*dto.TeacherStudentList)
		require.True(t, ok)
		require.Len(t, list.TechnicalCandidates, 1)
		require.Len(t, list.GeneralCandidates, 1)
		assert.Equal(t, "a@example.com", list.TechnicalCandidates[0].Email)
		assert.Equal(t, "b@example.com", list.GeneralCandidates[0].Email)
	})

	t.Run("admin gets the flat list with a count", func(t *testing.T) {
		data, count, err := svc.List(ctx, admin)
		require.NoError(t, err)
		require.NotNil(t, count)
		assert.Equal(t, 3, *count)

		list, ok := data.(*dto.StudentListData)
		require.True(t, ok)
		assert.Len(t, list.Students, 3)
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	svc, students, _, _ := newTestStudentService()

	base := &models.Student{
		Email:           "a@example.com",
		Status:          models.StatusPending,
		TechnicalStatus: models.StatusPending,
		GeneralStatus:   models.StatusPass,
	}
	require.NoError(t, students.Create(ctx, base))

	t.Run("recomputes status and persists", func(t *testing.T) {
		updated, err := svc.Update(ctx, base.ID, &dto.UpdateStudentRequest{TechnicalStatus: strPtr("Fail")})
		require.NoError(t, err)
		assert.Equal(t, models.StatusFail, updated.Status)

		stored, err := students.GetByID(ctx, base.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFail, stored.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, &dto.UpdateStudentRequest{FirstName: strPtr("Meera")})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("invalid patch leaves record untouched", func(t *testing.T) {
		before, err := students.GetByID(ctx, base.ID)
		require.NoError(t, err)

		_, err = svc.Update(ctx, base.ID, &dto.UpdateStudentRequest{Gender: strPtr("unknown")})
		require.Error(t, err)

		after, err := students.GetByID(ctx, base.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Gender, after.Gender)
	})

	t.Run("malformed email and contact are rejected, not persisted", func(t *testing.T) {
		before, err := students.GetByID(ctx, base.ID)
		require.NoError(t, err)

		_, err = svc.Update(ctx, base.ID, &dto.UpdateStudentRequest{
			Email:         strPtr("not-an-email"),
			ContactNumber: strPtr("12345"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStudentPatch)

		after, err := students.GetByID(ctx, base.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Email, after.Email)
		assert.Equal(t, before.ContactNumber, after.ContactNumber)
	})
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	svc, students, _, _ := newTestStudentService()

	student := &models.Student{Email: "a@example.com", Status: models.StatusPending}
	require.NoError(t, students.Create(ctx, student))

	require.NoError(t, svc.Delete(ctx, student.ID))

	err := svc.Delete(ctx, student.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	svc, students, _, _ := newTestStudentService()

	t.Run("empty store yields zeros", func(t *testing.T) {
		stats, err := svc.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.Enrolled)
		assert.Equal(t, int64(0), stats.WaitingForInterview)
	})

	t.Run("counts pending students", func(t *testing.T) {
		require.NoError(t, students.Create(ctx, &models.Student{Email: "a@example.com", Status: models.StatusPending}))
		require.NoError(t, students.Create(ctx, &models.Student{Email: "b@example.com", Status: models.StatusPass}))

		stats, err := svc.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Enrolled)
		assert.Equal(t, int64(1), stats.WaitingForInterview)
		assert.Equal(t, int64(0), stats.InInterview)
		assert.Equal(t, int64(0), stats.Accepted)
		assert.Equal(t, int64(0), stats.Rejected)
	})
}

func TestNotificationEmails(t *testing.T) {
	ctx := context.Background()

	t.Run("sends acceptance and rejection emails", func(t *testing.T) {
		svc, students, _, emails := newTestStudentService()
		student := &models.Student{Email: "asha@example.com", FirstName: "Asha", Status: models.StatusPass}
		require.NoError(t, students.Create(ctx, student))

		_, err := svc.SendAcceptanceEmail(ctx, student.ID)
		require.NoError(t, err)
		_, err = svc.SendRejectionEmail(ctx, student.ID)
		require.NoError(t, err)

		assert.Equal(t, []string{"asha@example.com"}, emails.acceptances)
		assert.Equal(t, []string{"asha@example.com"}, emails.rejections)
	})

	t.Run("unknown student is not found", func(t *testing.T) {
		svc, _, _, _ := newTestStudentService()
		_, err := svc.SendAcceptanceEmail(ctx, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("delivery failure is not surfaced", func(t *testing.T) {
		svc, students, _, emails := newTestStudentService()
		emails.failWith = errSMTPDown
		student := &models.Student{Email: "asha@example.com", Status: models.StatusPass}
		require.NoError(t, students.Create(ctx, student))

		_, err := svc.SendAcceptanceEmail(ctx, student.ID)
		assert.NoError(t, err)
	})
}
