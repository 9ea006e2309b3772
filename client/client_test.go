package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/campuspulse/aews/core"
)

var ctx = context.Background()

func TestFormatDetail(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{name: "absent", detail: "", want: ""},
		{name: "null", detail: "null", want: ""},
		{name: "string", detail: `"Incorrect password"`, want: "Incorrect password"},
		{name: "validation list", detail: `[{"msg":"field required","loc":["body","email"]}]`, want: "field required"},
		{name: "validation list without msg", detail: `[{"loc":["body","email"]}]`, want: "body.email: invalid"},
		{
			name:   "validation list joins entries",
			detail: `[{"msg":"field required","loc":["body","email"]},{"loc":["body","role"]}]`,
			want:   "field required. body.role: invalid",
		},
		{name: "object with message", detail: `{"message":"Account pending approval"}`, want: "Account pending approval"},
		{name: "object without message", detail: `{"code":42}`, want: ""},
		{name: "number", detail: `42`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDetail(json.RawMessage(tt.detail))
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, srv.Client(), nil), srv
}

func TestClient_ErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{name: "detail string wins", status: 401, body: `{"detail":"Incorrect password"}`, wantMsg: "Incorrect password", wantStatus: 401},
		{name: "empty body falls back to status text", status: 404, body: "", wantMsg: "Not Found", wantStatus: 404},
		{name: "unparseable body falls back to status text", status: 500, body: "<html>boom</html>", wantMsg: "Internal Server Error", wantStatus: 500},
		// 599 has no registered status text, so the endpoint default applies
		{name: "unknown status falls back to default message", status: 599, body: "", wantMsg: "Login failed", wantStatus: 599},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := c.Login(ctx, LoginInput{Email: "a@b.edu", Password: "secret", Role: core.RoleInstructor})

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "want *APIError, got %T", err)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

func TestClient_LoginSuccess(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Write([]byte(`{
			"user": {"id": "64f1", "name": "Dr. Sarah Johnson", "email": "sarah.johnson@amu.edu", "role": "instructor"},
			"role": "instructor"
		}`))
	}))
	defer srv.Close()

	sess, err := c.Login(ctx, LoginInput{Email: "sarah.johnson@amu.edu", Password: "secret", Role: core.RoleInstructor})

	require.NoError(t, err)
	require.True(t, sess.Present())
	assert.Equal(t, "Dr. Sarah Johnson", sess.User.Name)
	assert.Equal(t, core.RoleInstructor, sess.Role)
}

func TestClient_LocalValidationSkipsNetwork(t *testing.T) {
	var hits int
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "login without email",
			call: func() error {
				_, err := c.Login(ctx, LoginInput{Password: "secret", Role: core.RoleInstructor})
				return err
			},
		},
		{
			name: "login with bad email",
			call: func() error {
				_, err := c.Login(ctx, LoginInput{Email: "nope", Password: "secret", Role: core.RoleInstructor})
				return err
			},
		},
		{
			name: "add student with bad email",
			call: func() error {
				_, err := c.AddStudent(ctx, "c1", "not-an-email")
				return err
			},
		},
		{
			name: "batch add with only blank emails",
			call: func() error {
				_, err := c.BatchAddStudents(ctx, "c1", []string{"", "  ", ""})
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok, "want *core.ValidationError, got %T", err)
			assert.NotEmpty(t, vErr.Fields)
			assert.Zero(t, hits, "no request should reach the server")
		})
	}
}

func TestClient_ListCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object body", body: `{}`},
		{name: "null body", body: `null`},
		{name: "empty body", body: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			list, err := c.Interventions(ctx, "all")

			require.NoError(t, err)
			require.NotNil(t, list)
			assert.Len(t, list, 0)
		})
	}
}

func TestClient_Interventions_StatusFilter(t *testing.T) {
	var gotStatus string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := c.Interventions(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", gotStatus)

	_, err = c.Interventions(ctx, "all")
	require.NoError(t, err)
	assert.Empty(t, gotStatus, `"all" must not be sent as a filter`)
}

func TestClient_BatchAddStudents_CleansInput(t *testing.T) {
	var gotBody map[string][]string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message": "Batch processed", "added": 2, "skipped": 0}`))
	}))
	defer srv.Close()

	res, err := c.BatchAddStudents(ctx, "c1", []string{" a@amu.edu ", "", "b@amu.edu"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a@amu.edu", "b@amu.edu"}, gotBody["emails"])
	assert.Equal(t, 2, res.Added)
}

func TestClient_UpdateEnrollment_PatchesOnlySetFields(t *testing.T) {
	var gotBody map[string]interface{}
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/classes/c1/students/a@amu.edu", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"student_email": "a@amu.edu", "gpa": 1.8, "risk": "high"}`))
	}))
	defer srv.Close()

	row, err := c.UpdateEnrollment(ctx, "c1", "a@amu.edu", UpdateEnrollmentInput{
		GPA:  null.Float64From(1.8),
		Risk: null.StringFrom("high"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"gpa": 1.8, "risk": "high"}, gotBody)
	assert.Equal(t, "a@amu.edu", row.StudentEmail)
	assert.Equal(t, 1.8, row.GPA.Float64)
}

func TestClient_SuccessBodyShapeMismatch(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"unexpected"`))
	}))
	defer srv.Close()

	msg, err := c.VerifyEmail(ctx, "tok")

	require.NoError(t, err)
	assert.Empty(t, msg.Message)
}

func TestClient_ReportDownloadURL(t *testing.T) {
	c := New("http://api.local/", nil, nil)

	assert.Equal(t, "http://api.local/api/admin/reports/r-1/download", c.ReportDownloadURL("r-1"))
}
