package notification

import "github.com/campuspulse/aews/core"

// Kind classifies an inbox entry for display purposes.
type Kind string

const (
	KindAlert   Kind = "alert"
	KindSuccess Kind = "success"
	KindClass   Kind = "class"
	KindReport  Kind = "report"
	KindSystem  Kind = "system"
	KindCase    Kind = "case"
)

// Notification is a single inbox entry for a role-scoped feed. IDs are only
// unique within one role's list. Time is a display-only string, not a
// machine timestamp.
type Notification struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  Kind   `json:"type"`
	Time  string `json:"time"`
	Read  bool   `json:"read"`
}

// Seed returns the fixed per-role feeds. Content is set once at startup;
// there is no backing fetch, entries are never added or removed at runtime.
func Seed() map[core.Role][]Notification {
	return map[core.Role][]Notification{
		core.RoleInstructor: {
			{ID: 1, Title: "New at-risk alerts in CS 201", Body: "3 students are showing early warning signs. Review class and consider interventions.", Kind: KindAlert, Time: "2 hours ago", Read: false},
			{ID: 2, Title: "Intervention completed", Body: "Jordan Lee (CS 202) — 1:1 meeting logged. Status updated to improved.", Kind: KindSuccess, Time: "5 hours ago", Read: true},
			{ID: 3, Title: "CS 201 section roster updated", Body: "2 students added to Section A. Sync your risk view.", Kind: KindClass, Time: "1 day ago", Read: true},
			{ID: 4, Title: "Weekly class summary ready", Body: "CS 201, CS 202, CS 301 — at-risk counts and attendance summary available.", Kind: KindReport, Time: "1 day ago", Read: false},
			{ID: 5, Title: "Reminder: Pending interventions", Body: "You have 4 pending interventions due this week.", Kind: KindAlert, Time: "2 days ago", Read: true},
		},
		core.RoleAdmin: {
			{ID: 1, Title: "8 new at-risk alerts", Body: "Students require immediate intervention based on AI predictions.", Kind: KindAlert, Time: "2 hours ago", Read: false},
			{ID: 2, Title: "Intervention completed", Body: "Jordan Lee (CS 202) — status updated to improved after 1:1 meeting.", Kind: KindSuccess, Time: "5 hours ago", Read: true},
			{ID: 3, Title: "Model retrain completed", Body: "XGBoost early warning model retrained successfully. Accuracy: 87.3%.", Kind: KindSystem, Time: "1 day ago", Read: true},
			{ID: 4, Title: "Weekly report ready", Body: "Semester At-Risk Summary report is ready for download.", Kind: KindReport, Time: "1 day ago", Read: false},
			{ID: 5, Title: "New instructor onboarded", Body: "Dr. Emily Davis has been added to the Mathematics department.", Kind: KindSystem, Time: "2 days ago", Read: true},
		},
		core.RoleAMUStaff: {
			{ID: 1, Title: "New referral: Alex Chen", Body: "Referred by Dr. Sarah Johnson (CS 201). High risk. Assign case or review.", Kind: KindAlert, Time: "2 hours ago", Read: false},
			{ID: 2, Title: "Case completed", Body: "Jordan Lee — Study skills workshop marked complete. Outcome logged.", Kind: KindSuccess, Time: "5 hours ago", Read: true},
			{ID: 3, Title: "Case due tomorrow", Body: "Sam Rivera — 1:1 academic coaching due Feb 5. Reminder.", Kind: KindCase, Time: "1 day ago", Read: false},
			{ID: 4, Title: "Weekly referral summary", Body: "12 new referrals this week. 8 assigned, 4 pending assignment.", Kind: KindReport, Time: "1 day ago", Read: true},
			{ID: 5, Title: "Taylor Brooks — Tutoring confirmed", Body: "Tutoring center confirmed session for Feb 4.", Kind: KindSuccess, Time: "2 days ago", Read: true},
		},
	}
}
