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

// StudentRepository is the applicant store backed by the 'students' table
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	s.id, s.student_id, s.first_name, s.last_name, s.email, s.contact_number,
	s.fathers_name, s.gender, s.course_name, s.school_name, s.state, s.city,
	s.interview_date, s.interview_time, s.assigned_counsellor, s.mcq_score,
	s.zoom_link, s.general_teacher, s.technical_teacher, s.general_status,
	s.technical_status, s.email_status, s.status, s.created_at, s.updated_at,
	u.username, u.email`

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	ref := &models.CounsellorRef{}
	err := row.Scan(
		&s.ID, &s.StudentID, &s.FirstName, &s.LastName, &s.Email, &s.ContactNumber,
		&s.FathersName, &s.Gender, &s.CourseName, &s.SchoolName, &s.State, &s.City,
		&s.InterviewDate, &s.InterviewTime, &s.AssignedCounsellorID, &s.McqScore,
		&s.ZoomLink, &s.GeneralTeacher, &s.TechnicalTeacher, &s.GeneralStatus,
		&s.TechnicalStatus, &s.EmailStatus, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&ref.Username, &ref.Email)
	if err != nil {
		return nil, err
	}
	s.AssignedCounsellor = ref
	return s, nil
}

// maxAssignedStudentID returns the current maximum non-sentinel
// studentId, or "" when none has been assigned yet.
func (r *StudentRepository) maxAssignedStudentID(ctx context.Context) (string, error) {
	var lastID string
	err := r.db.QueryRow(ctx, `
		SELECT student_id FROM students
		WHERE student_id <> $1
		ORDER BY student_id DESC
		LIMIT 1`,
		models.TempStudentID).Scan(&lastID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error finding last student ID: %w", err)
	}
	return lastID, nil
}

// Create assigns the next sequential studentId and inserts the record.
// The ID is read and incremented without a lock spanning the insert, so
// two concurrent creations can observe the same maximum; that write then
// fails on the student_id unique constraint rather than storing a
// duplicate.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.StudentID == "" || student.StudentID == models.TempStudentID {
		lastID, err := r.maxAssignedStudentID(ctx)
		if err != nil {
			return err
		}
		nextID, err := models.NextStudentID(lastID)
		if err != nil {
			return apperrors.NewCustomError(apperrors.ErrMalformedStudentID, err.Error())
		}
		student.StudentID = nextID
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO students (
			student_id, first_name, last_name, email, contact_number,
			fathers_name, gender, course_name, school_name, state, city,
			interview_date, interview_time, assigned_counsellor, mcq_score,
			zoom_link, general_teacher, technical_teacher, general_status,
			technical_status, email_status, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING id, created_at, updated_at`,
		student.StudentID, student.FirstName, student.LastName, student.Email,
		student.ContactNumber, student.FathersName, student.Gender,
		student.CourseName, student.SchoolName, student.State, student.City,
		student.InterviewDate, student.InterviewTime, student.AssignedCounsellorID,
		student.McqScore, student.ZoomLink, student.GeneralTeacher,
		student.TechnicalTeacher, student.GeneralStatus, student.TechnicalStatus,
		student.EmailStatus, student.Status,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student with its counsellor reference resolved
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students s
		JOIN users u ON u.id = s.assigned_counsellor
		WHERE s.id = $1`,
		id)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// ListAll retrieves every student with counsellor references resolved
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students s
		JOIN users u ON u.id = s.assigned_counsellor
		ORDER BY s.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListByCounsellor retrieves the students assigned to one counsellor
func (r *StudentRepository) ListByCounsellor(ctx context.Context, counsellorID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students s
		JOIN users u ON u.id = s.assigned_counsellor
		WHERE s.assigned_counsellor = $1
		ORDER BY s.id ASC`,
		counsellorID)
	if err != nil {
		return nil, fmt.Errorf("error listing students by counsellor: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Update persists a merged student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		UPDATE students SET
			first_name = $2, last_name = $3, email = $4, contact_number = $5,
			fathers_name = $6, gender = $7, course_name = $8, school_name = $9,
			state = $10, city = $11, interview_date = $12, interview_time = $13,
			mcq_score = $14, zoom_link = $15, general_teacher = $16,
			technical_teacher = $17, general_status = $18, technical_status = $19,
			email_status = $20, status = $21, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`,
		student.ID, student.FirstName, student.LastName, student.Email,
		student.ContactNumber, student.FathersName, student.Gender,
		student.CourseName, student.SchoolName, student.State, student.City,
		student.InterviewDate, student.InterviewTime, student.McqScore,
		student.ZoomLink, student.GeneralTeacher, student.TechnicalTeacher,
		student.GeneralStatus, student.TechnicalStatus, student.EmailStatus,
		student.Status,
	).Scan(&student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes a student permanently
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DashboardCounts computes the dashboard aggregates in one query. The
// Interviewed/Accepted/Rejected labels are legacy vocabulary never
// written by the current status set, so those buckets stay at zero.
func (r *StudentRepository) DashboardCounts(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Interviewed'),
			COUNT(*) FILTER (WHERE status = 'Accepted'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM students`).Scan(
		&stats.Enrolled, &stats.WaitingForInterview, &stats.InInterview,
		&stats.Accepted, &stats.Rejected)

	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	return stats, nil
}
