package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/campuspulse/aews/core"
)

// Classes lists an instructor's classes with student and at-risk counts.
func (c *Client) Classes(ctx context.Context, instructorID string) ([]Class, error) {
	query := url.Values{"instructor_id": {instructorID}}
	var classes []Class
	if err := c.do(ctx, http.MethodGet, "/api/classes", query, nil, &classes, "Failed to load classes"); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []Class{}
	}
	return classes, nil
}

func (c *Client) CreateClass(ctx context.Context, in CreateClassInput) (Class, error) {
	in.InstructorID = core.CleanString(in.InstructorID)
	in.SubjectCode = core.CleanString(in.SubjectCode)
	in.SubjectName = core.CleanString(in.SubjectName)
	var class Class
	if err := validate(in); err != nil {
		return class, err
	}
	err := c.do(ctx, http.MethodPost, "/api/classes", nil, in, &class, "Failed to create class")
	return class, err
}

func (c *Client) Class(ctx context.Context, classID string) (Class, error) {
	var class Class
	err := c.do(ctx, http.MethodGet, "/api/classes/"+url.PathEscape(classID), nil, nil, &class, "Failed to load class")
	return class, err
}

// ClassStudents lists enrollments with whatever indicators are recorded.
func (c *Client) ClassStudents(ctx context.Context, classID string) ([]Enrollment, error) {
	var rows []Enrollment
	path := "/api/classes/" + url.PathEscape(classID) + "/students"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &rows, "Failed to load students"); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Enrollment{}
	}
	return rows, nil
}

func (c *Client) AddStudent(ctx context.Context, classID, email string) (Message, error) {
	in := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: core.CleanString(email)}
	var msg Message
	if err := validate(in); err != nil {
		return msg, err
	}
	path := "/api/classes/" + url.PathEscape(classID) + "/students"
	err := c.do(ctx, http.MethodPost, path, nil, in, &msg, "Failed to add student")
	return msg, err
}

// BatchAddStudents enrolls a list of emails. Blank entries are dropped; an
// effectively empty list fails locally before any network call.
func (c *Client) BatchAddStudents(ctx context.Context, classID string, emails []string) (BatchAddResult, error) {
	var res BatchAddResult
	cleaned := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = core.CleanString(e); e != "" {
			cleaned = append(cleaned, e)
		}
	}
	if len(cleaned) == 0 {
		err := errors.New("no emails provided")
		return res, core.NewValidationError(err, core.FieldError{Field: "emails", Error: err.Error()})
	}
	body := map[string]interface{}{"emails": cleaned}
	path := "/api/classes/" + url.PathEscape(classID) + "/students/batch"
	err := c.do(ctx, http.MethodPost, path, nil, body, &res, "Failed to add students")
	return res, err
}

func (c *Client) ClassRiskSummary(ctx context.Context, classID string) (RiskSummary, error) {
	var summary RiskSummary
	path := "/api/classes/" + url.PathEscape(classID) + "/risk-summary"
	err := c.do(ctx, http.MethodGet, path, nil, nil, &summary, "Failed to load risk summary")
	return summary, err
}

// UpdateEnrollment patches academic indicators for a student in a class.
func (c *Client) UpdateEnrollment(ctx context.Context, classID, studentEmail string, in UpdateEnrollmentInput) (Enrollment, error) {
	var row Enrollment
	path := "/api/classes/" + url.PathEscape(classID) + "/students/" + url.PathEscape(studentEmail)
	err := c.do(ctx, http.MethodPatch, path, nil, in.payload(), &row, "Failed to update")
	return row, err
}

// RiskAlerts lists medium/high risk students across the instructor's classes.
func (c *Client) RiskAlerts(ctx context.Context, instructorID string) ([]RiskAlert, error) {
	query := url.Values{"instructor_id": {instructorID}}
	var alerts []RiskAlert
	if err := c.do(ctx, http.MethodGet, "/api/classes/risk-alerts", query, nil, &alerts, "Failed to load risk alerts"); err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []RiskAlert{}
	}
	return alerts, nil
}

// InstructorStudents lists every enrollment across the instructor's classes.
func (c *Client) InstructorStudents(ctx context.Context, instructorID string) ([]map[string]interface{}, error) {
	query := url.Values{"instructor_id": {instructorID}}
	var rows []map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/api/classes/instructor-students", query, nil, &rows, "Failed to load student list"); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	return rows, nil
}
