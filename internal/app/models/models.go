package models

// Role defines a staff account role
type Role string

const (
	RoleCounsellor Role = "counsellor"
	RoleTeacher    Role = "teacher"
	RoleAdmin      Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleCounsellor, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Status is an evaluation outcome for a student, used for both the
// independent sub-tracks (technical/general) and the overall decision.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPass    Status = "Pass"
	StatusFail    Status = "Fail"
)

// IsValid reports whether the status is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPass, StatusFail:
		return true
	}
	return false
}

// EmailStatus tracks whether a student's email has been added to the
// interview mailing queue.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "Pending"
	EmailStatusAdded   EmailStatus = "Added"
)

// IsValid reports whether the email status is one of the known values.
func (s EmailStatus) IsValid() bool {
	return s == EmailStatusPending || s == EmailStatusAdded
}

// Gender of a student applicant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

// IsValid reports whether the gender is one of the known values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}
