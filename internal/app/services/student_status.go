package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/validation"
)

func invalidPatch(message string) error {
	return apperrors.NewCustomError(apperrors.ErrInvalidStudentPatch, message)
}

// ReconcileStatus recomputes the overall admission status from the
// post-merge sub-statuses. Once both evaluation tracks have concluded
// the technical result decides the overall outcome; reopening either
// track after a decision forces the overall status back to Pending.
func ReconcileStatus(current, technical, general models.Status) models.Status {
	if technical != models.StatusPending && general != models.StatusPending {
		return technical
	}
	if current != models.StatusPending {
		return models.StatusPending
	}
	return current
}

// ApplyPatch merges an update request onto a student record in place.
// Fields absent from the patch are untouched, present fields are
// re-checked against the data model constraints. The overall status is
// never taken from the patch; when the patch includes either
// sub-status it is recomputed via ReconcileStatus, otherwise it keeps
// its stored value.
func ApplyPatch(student *models.Student, patch *dto.UpdateStudentRequest) error {
	if patch.FirstName != nil {
		if !validation.IsAlphabetic(*patch.FirstName) {
			return invalidPatch("First name must contain only letters")
		}
		student.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		if *patch.LastName != "" && !validation.IsAlphabetic(*patch.LastName) {
			return invalidPatch("Last name must contain only letters")
		}
		student.LastName = *patch.LastName
	}
	if patch.Email != nil {
		email := strings.ToLower(*patch.Email)
		if !validation.IsEmail(email) {
			return invalidPatch("Please provide a valid email address")
		}
		student.Email = email
	}
	if patch.ContactNumber != nil {
		if !validation.IsPhoneNumber(*patch.ContactNumber) {
			return invalidPatch("Contact number must be exactly 10 digits")
		}
		student.ContactNumber = *patch.ContactNumber
	}
	if patch.FathersName != nil {
		student.FathersName = *patch.FathersName
	}
	if patch.Gender != nil {
		gender := models.Gender(*patch.Gender)
		if !gender.IsValid() {
			return invalidPatch(fmt.Sprintf("Invalid gender: %s", *patch.Gender))
		}
		student.Gender = gender
	}
	if patch.CourseName != nil {
		student.CourseName = *patch.CourseName
	}
	if patch.SchoolName != nil {
		student.SchoolName = *patch.SchoolName
	}
	if patch.State != nil {
		student.State = *patch.State
	}
	if patch.City != nil {
		student.City = *patch.City
	}
	if patch.InterviewDate != nil {
		date, err := time.Parse("2006-01-02", *patch.InterviewDate)
		if err != nil {
			return invalidPatch(fmt.Sprintf("Invalid interview date: %s", *patch.InterviewDate))
		}
		student.InterviewDate = date
	}
	if patch.InterviewTime != nil {
		student.InterviewTime = *patch.InterviewTime
	}
	if patch.McqScore != nil {
		student.McqScore = *patch.McqScore
	}
	if patch.ZoomLink != nil {
		student.ZoomLink = *patch.ZoomLink
	}
	if patch.GeneralTeacher != nil {
		student.GeneralTeacher = *patch.GeneralTeacher
	}
	if patch.TechnicalTeacher != nil {
		student.TechnicalTeacher = *patch.TechnicalTeacher
	}
	if patch.EmailStatus != nil {
		emailStatus := models.EmailStatus(*patch.EmailStatus)
		if !emailStatus.IsValid() {
			return invalidPatch(fmt.Sprintf("Invalid email status: %s", *patch.EmailStatus))
		}
		student.EmailStatus = emailStatus
	}

	if !patch.TouchesSubStatus() {
		return nil
	}

	if patch.GeneralStatus != nil {
		generalStatus := models.Status(*patch.GeneralStatus)
		if !generalStatus.IsValid() {
			return invalidPatch(fmt.Sprintf("Invalid general status: %s", *patch.GeneralStatus))
		}
		student.GeneralStatus = generalStatus
	}
	if patch.TechnicalStatus != nil {
		technicalStatus := models.Status(*patch.TechnicalStatus)
		if !technicalStatus.IsValid() {
			return invalidPatch(fmt.Sprintf("Invalid technical status: %s", *patch.TechnicalStatus))
		}
		student.TechnicalStatus = technicalStatus
	}

	student.Status = ReconcileStatus(student.Status, student.TechnicalStatus, student.GeneralStatus)
	return nil
}
