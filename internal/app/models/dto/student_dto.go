package dto

import "github.com/krmu/admissions/internal/app/models"

// CreateStudentRequest represents the intake form submission
type CreateStudentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName"`
	Email         string `json:"email" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	FathersName   string `json:"fathersName" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	CourseName    string `json:"courseName" binding:"required"`
	SchoolName    string `json:"schoolName" binding:"required"`
	State         string `json:"state" binding:"required"`
	City          string `json:"city" binding:"required"`
	SelectDate    string `json:"selectDate"` // Interview date, "2006-01-02"
	SelectTime    string `json:"selectTime"` // Interview time, free-form
}

// UpdateStudentRequest is the explicit partial-update structure: only
// fields present in the JSON body are applied. The overall status is
// never taken from the patch; it is recomputed from the sub-statuses.
type UpdateStudentRequest struct {
	FirstName        *string  `json:"firstName"`
	LastName         *string  `json:"lastName"`
	Email            *string  `json:"email"`
	ContactNumber    *string  `json:"contactNumber"`
	FathersName      *string  `json:"fathersName"`
	Gender           *string  `json:"gender"`
	CourseName       *string  `json:"courseName"`
	SchoolName       *string  `json:"schoolName"`
	State            *string  `json:"state"`
	City             *string  `json:"city"`
	InterviewDate    *string  `json:"interviewDate"` // "2006-01-02"
	InterviewTime    *string  `json:"interviewTime"`
	McqScore         *float64 `json:"mcqScore"`
	ZoomLink         *string  `json:"zoomLink"`
	GeneralTeacher   *string  `json:"generalTeacher"`
	TechnicalTeacher *string  `json:"technicalTeacher"`
	GeneralStatus    *string  `json:"generalStatus"`
	TechnicalStatus  *string  `json:"technicalStatus"`
	EmailStatus      *string  `json:"emailStatus"`
}

// TouchesSubStatus reports whether the patch includes either sub-status,
// which is what triggers the overall status recomputation.
func (r *UpdateStudentRequest) TouchesSubStatus() bool {
	return r.GeneralStatus != nil || r.TechnicalStatus != nil
}

// StudentData wraps a single student in responses
type StudentData struct {
	Student *models.Student `json:"student"`
}

// StudentListData is the flat list shape returned to admins
type StudentListData struct {
	Students []*models.Student `json:"students"`
}

// CounsellorStudentList is the role-scoped shape for counsellors:
// their own students partitioned by overall status.
type CounsellorStudentList struct {
	WaitingForInterview   []*models.Student `json:"waitingForInterview"`
	InterviewedCandidates []*models.Student `json:"interviewedCandidates"`
}

// TeacherStudentList is the role-scoped shape for teachers: all
// students partitioned by which track names the caller as its teacher.
type TeacherStudentList struct {
	TechnicalCandidates []*models.Student `json:"technicalCandidates"`
	GeneralCandidates   []*models.Student `json:"generalCandidates"`
}
