package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Student ID assignment constants. A freshly created record carries the
// sentinel until the store assigns the real sequential ID at write time.
const (
	StudentIDPrefix = "KRMU"
	TempStudentID   = "TEMP_ID"
)

// Student defines an applicant record based on the 'students' table.
type Student struct {
	ID                   int64          `json:"id" db:"id"`
	StudentID            string         `json:"studentId" db:"student_id" example:"KRMU0000001"`
	FirstName            string         `json:"firstName" db:"first_name"`
	LastName             string         `json:"lastName,omitempty" db:"last_name"`
	Email                string         `json:"email" db:"email"`
	ContactNumber        string         `json:"contactNumber" db:"contact_number"`
	FathersName          string         `json:"fathersName" db:"fathers_name"`
	Gender               Gender         `json:"gender" db:"gender"`
	CourseName           string         `json:"courseName" db:"course_name"`
	SchoolName           string         `json:"schoolName" db:"school_name"`
	State                string         `json:"state" db:"state"`
	City                 string         `json:"city" db:"city"`
	InterviewDate        time.Time      `json:"interviewDate" db:"interview_date"`
	InterviewTime        string         `json:"interviewTime" db:"interview_time"`
	AssignedCounsellorID int64          `json:"-" db:"assigned_counsellor"`
	AssignedCounsellor   *CounsellorRef `json:"assignedCounsellor,omitempty"` // Relation, no db tag
	McqScore             float64        `json:"mcqScore" db:"mcq_score"`
	ZoomLink             string         `json:"zoomLink" db:"zoom_link"`
	GeneralTeacher       string         `json:"generalTeacher" db:"general_teacher"`
	TechnicalTeacher     string         `json:"technicalTeacher" db:"technical_teacher"`
	GeneralStatus        Status         `json:"generalStatus" db:"general_status"`
	TechnicalStatus      Status         `json:"technicalStatus" db:"technical_status"`
	EmailStatus          EmailStatus    `json:"emailStatus" db:"email_status"`
	Status               Status         `json:"status" db:"status"` // Overall decision, derived from the sub-statuses
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" db:"updated_at"`
}

// FullName returns the student's display name for notifications.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// NextStudentID computes the ID following lastID, where lastID is the
// current maximum assigned studentId ("" when none exist yet). IDs are
// the fixed prefix plus a 7-digit zero-padded counter starting at 1.
func NextStudentID(lastID string) (string, error) {
	next := 1
	if lastID != "" && lastID != TempStudentID {
		suffix := strings.TrimPrefix(lastID, StudentIDPrefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("malformed student ID %q: %w", lastID, err)
		}
		next = n + 1
	}
	return fmt.Sprintf("%s%07d", StudentIDPrefix, next), nil
}

// DashboardStats holds the aggregate counts shown on the admissions
// dashboard. The inInterview/accepted/rejected buckets count legacy
// status labels that the current Pending/Pass/Fail vocabulary never
// writes, so they stay at zero; they are kept for API compatibility.
type DashboardStats struct {
	Enrolled            int64 `json:"enrolled"`
	WaitingForInterview int64 `json:"waitingForInterview"`
	InInterview         int64 `json:"inInterview"`
	Accepted            int64 `json:"accepted"`
	Rejected            int64 `json:"rejected"`
}
