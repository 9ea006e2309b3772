package client

import (
	"context"
	"net/http"
	"net/url"
)

// deptQuery builds the shared department filter. "all" (or "") means no
// filter, matching the dashboards' default tab.
func deptQuery(department string) url.Values {
	query := url.Values{}
	if department != "" && department != "all" {
		query.Set("department", department)
	}
	return query
}

// doAdminList wraps the list endpoints whose row shapes are backend-defined
// and only ever rendered; rows pass through as raw objects.
func (c *Client) doAdminList(ctx context.Context, path string, query url.Values, defaultMsg string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &rows, defaultMsg); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	return rows, nil
}

// InstructorDepartments lists departments drawn from instructor accounts
// only (not admin/amu-staff).
func (c *Client) InstructorDepartments(ctx context.Context) ([]string, error) {
	var depts []string
	if err := c.do(ctx, http.MethodGet, "/api/admin/departments", nil, nil, &depts, "Failed to load departments"); err != nil {
		return nil, err
	}
	if depts == nil {
		depts = []string{}
	}
	return depts, nil
}

// Overview returns the system-overview KPIs, optionally scoped to one
// instructor department.
func (c *Client) Overview(ctx context.Context, department string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	err := c.do(ctx, http.MethodGet, "/api/admin/overview", deptQuery(department), nil, &out, "Failed to load overview")
	return out, err
}

func (c *Client) StudentsAtRisk(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/overview/students-at-risk", deptQuery(department), "Failed to load students at risk")
}

func (c *Client) DepartmentStats(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/overview/departments", deptQuery(department), "Failed to load department stats")
}

func (c *Client) OverviewInstructors(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/overview/instructors", deptQuery(department), "Failed to load instructors")
}

func (c *Client) OverviewTrends(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/overview/trends", deptQuery(department), "Failed to load trends")
}

func (c *Client) AnalyticsDepartmentChart(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/analytics/department-chart", deptQuery(department), "Failed to load department chart")
}

func (c *Client) AnalyticsRiskDistribution(ctx context.Context, department string) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/analytics/risk-distribution", deptQuery(department), "Failed to load risk distribution")
}

// AnalyticsAccuracy returns model accuracy over time; empty until the AI
// pipeline stores history.
func (c *Client) AnalyticsAccuracy(ctx context.Context) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/analytics/accuracy", nil, "Failed to load accuracy")
}

func (c *Client) Reports(ctx context.Context) ([]map[string]interface{}, error) {
	return c.doAdminList(ctx, "/api/admin/reports", nil, "Failed to load reports")
}

// ReportDownloadURL builds the CSV download link for a report; the download
// itself is handed to the caller (browser tab, curl, ...).
func (c *Client) ReportDownloadURL(reportID string) string {
	return c.baseURL + "/api/admin/reports/" + url.PathEscape(reportID) + "/download"
}

// StudentByEmail returns an enrollment summary; the id shown on the
// students-at-risk page is the email.
func (c *Client) StudentByEmail(ctx context.Context, studentEmail string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	path := "/api/admin/students/" + url.PathEscape(studentEmail)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out, "Student not found")
	return out, err
}

// PendingAccounts lists instructor and AMU-staff signups awaiting approval.
func (c *Client) PendingAccounts(ctx context.Context) ([]PendingAccount, error) {
	var accounts []PendingAccount
	if err := c.do(ctx, http.MethodGet, "/api/admin/pending-accounts", nil, nil, &accounts, "Failed to load pending accounts"); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []PendingAccount{}
	}
	return accounts, nil
}

// ApprovePendingAccount activates a pending account; the backend emails the
// owner.
func (c *Client) ApprovePendingAccount(ctx context.Context, userID string) (Message, error) {
	var msg Message
	path := "/api/admin/pending-accounts/" + url.PathEscape(userID) + "/approve"
	err := c.do(ctx, http.MethodPost, path, nil, nil, &msg, "Failed to approve")
	return msg, err
}

func (c *Client) DeclinePendingAccount(ctx context.Context, userID string) (Message, error) {
	var msg Message
	path := "/api/admin/pending-accounts/" + url.PathEscape(userID) + "/decline"
	err := c.do(ctx, http.MethodPost, path, nil, nil, &msg, "Failed to decline")
	return msg, err
}
