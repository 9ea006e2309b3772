package client

import (
	"github.com/volatiletech/null/v8"

	"github.com/campuspulse/aews/core"
)

type (
	// Message is the generic {"message": ...} acknowledgement body.
	Message struct {
		Message string `json:"message"`
	}

	SignupInput struct {
		Name          string    `json:"name" validate:"required"`
		Email         string    `json:"email" validate:"required,email"`
		Password      string    `json:"password" validate:"required"`
		ContactNumber string    `json:"contact_number"`
		Department    string    `json:"department"`
		Role          core.Role `json:"role" validate:"required"`
	}

	LoginInput struct {
		Email    string    `json:"email" validate:"required,email"`
		Password string    `json:"password" validate:"required"`
		Role     core.Role `json:"role" validate:"required"`
	}

	ResetPasswordInput struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required"`
	}

	Class struct {
		ID           string `json:"id"`
		SubjectCode  string `json:"subject_code"`
		SubjectName  string `json:"subject_name"`
		InstructorID string `json:"instructor_id"`
		StudentCount int    `json:"student_count"`
		AtRiskCount  int    `json:"at_risk_count"`
	}

	CreateClassInput struct {
		InstructorID string `json:"instructor_id" validate:"required"`
		SubjectCode  string `json:"subject_code" validate:"required"`
		SubjectName  string `json:"subject_name" validate:"required"`
	}

	// Enrollment is one student row in a class, with whichever academic
	// indicators the backend has recorded.
	Enrollment struct {
		StudentEmail        string       `json:"student_email"`
		Risk                string       `json:"risk,omitempty"`
		GPA                 null.Float64 `json:"gpa,omitempty"`
		Attendance          null.Float64 `json:"attendance,omitempty"`
		LMSActivity         null.Float64 `json:"lms_activity,omitempty"`
		FlaggedForMentoring null.Bool    `json:"flagged_for_mentoring,omitempty"`
	}

	// UpdateEnrollmentInput patches academic indicators and risk for a
	// student in a class. Only the set fields go over the wire.
	UpdateEnrollmentInput struct {
		GPA                 null.Float64
		Attendance          null.Float64
		LMSActivity         null.Float64
		Risk                null.String
		FlaggedForMentoring null.Bool
	}

	RiskAlert struct {
		StudentEmail string `json:"student_email"`
		Risk         string `json:"risk"`
		ClassID      string `json:"class_id"`
		SubjectCode  string `json:"subject_code"`
		SubjectName  string `json:"subject_name"`
	}

	RiskSummary struct {
		Total      int             `json:"total"`
		HighRisk   int             `json:"high_risk"`
		MediumRisk int             `json:"medium_risk"`
		LowRisk    int             `json:"low_risk"`
		AtRiskList []AtRiskStudent `json:"at_risk_list"`
	}

	AtRiskStudent struct {
		StudentEmail string `json:"student_email"`
		Risk         string `json:"risk"`
	}

	BatchAddResult struct {
		Message string `json:"message"`
		Added   int    `json:"added"`
		Skipped int    `json:"skipped"`
	}

	Intervention struct {
		ID         string `json:"id"`
		Student    string `json:"student"`
		Department string `json:"department"`
		Course     string `json:"course"`
		Type       string `json:"type"`
		Status     string `json:"status"`
		Instructor string `json:"instructor"`
		Due        string `json:"due,omitempty"`
		Completed  string `json:"completed,omitempty"`
	}

	PendingAccount struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		Department string `json:"department"`
		Status     string `json:"status"`
	}
)

// payload builds the PATCH body with only the set fields, so unset fields
// are absent rather than explicit nulls.
func (in UpdateEnrollmentInput) payload() map[string]interface{} {
	body := make(map[string]interface{})
	if in.GPA.Valid {
		body["gpa"] = in.GPA.Float64
	}
	if in.Attendance.Valid {
		body["attendance"] = in.Attendance.Float64
	}
	if in.LMSActivity.Valid {
		body["lms_activity"] = in.LMSActivity.Float64
	}
	if in.Risk.Valid {
		body["risk"] = in.Risk.String
	}
	if in.FlaggedForMentoring.Valid {
		body["flagged_for_mentoring"] = in.FlaggedForMentoring.Bool
	}
	return body
}
