package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/volatiletech/null/v8"
	"golang.org/x/term"

	"github.com/campuspulse/aews/client"
	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/notification"
	"github.com/campuspulse/aews/core/session"
	"github.com/campuspulse/aews/core/tutorial"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp         = errors.New("help provided")
	errNotLoggedIn  = errors.New("not logged in")
	errRoleRequired = errors.New("a valid role is required (instructor, admin or amu-staff)")
)

type commandLine struct {
	conf     *core.Config
	api      *client.Client
	sessions *session.Store
	notifs   *notification.Store
	tutorial *tutorial.Store
	stdout   io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  signup -name NAME -email EMAIL -role ROLE [-department DEPT] [-contact NUM] - request an account (password prompted)")
	fmt.Fprintln(cli.stdout, "  login -email EMAIL -role ROLE                                               - sign in (password prompted)")
	fmt.Fprintln(cli.stdout, "  logout                                                                      - sign out and clear the saved session")
	fmt.Fprintln(cli.stdout, "  whoami                                                                      - show the current session")
	fmt.Fprintln(cli.stdout, "  update-profile [-name NAME] [-department DEPT] [-contact NUM]               - patch profile fields")
	fmt.Fprintln(cli.stdout, "  notifications [-unread]                                                     - list this role's notifications")
	fmt.Fprintln(cli.stdout, "  mark-read -id ID                                                            - mark one notification read")
	fmt.Fprintln(cli.stdout, "  mark-all-read                                                               - mark all notifications read")
	fmt.Fprintln(cli.stdout, "  tutorial [-replay] [-dismiss] [-every-login=true|false]                     - tutorial preferences")
	fmt.Fprintln(cli.stdout, "  classes                                                                     - list your classes")
	fmt.Fprintln(cli.stdout, "  alerts                                                                      - list your at-risk alerts")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "signup":
		cmd := flag.NewFlagSet("signup", flag.ExitOnError)
		name := cmd.String("name", "", "Full name")
		email := cmd.String("email", "", "Email address")
		role := cmd.String("role", string(core.RoleInstructor), "Role: instructor, admin or amu-staff")
		department := cmd.String("department", "", "Department (e.g. Information Technology)")
		contact := cmd.String("contact", "", "Contact number")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *name == "" || *email == "" {
			cmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.signup(ctx, *name, *email, *role, *department, *contact, pwd)

	case "login":
		cmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := cmd.String("email", "", "Email address")
		role := cmd.String("role", "", "Role: instructor, admin or amu-staff")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *email == "" || *role == "" {
			cmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.login(ctx, *email, *role, pwd)

	case "logout":
		cli.sessions.Logout()
		fmt.Fprintln(cli.stdout, "Signed out.")
		return nil

	case "whoami":
		return cli.whoami()

	case "update-profile":
		cmd := flag.NewFlagSet("update-profile", flag.ExitOnError)
		name := cmd.String("name", "", "Full name")
		department := cmd.String("department", "", "Department")
		contact := cmd.String("contact", "", "Contact number")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.updateProfile(ctx, *name, *department, *contact)

	case "notifications":
		cmd := flag.NewFlagSet("notifications", flag.ExitOnError)
		unread := cmd.Bool("unread", false, "Only unread notifications")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listNotifications(*unread)

	case "mark-read":
		cmd := flag.NewFlagSet("mark-read", flag.ExitOnError)
		id := cmd.Int("id", 0, "Notification id")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *id == 0 {
			cmd.Usage()
			return errHelp
		}
		return cli.markRead(*id)

	case "mark-all-read":
		snap := cli.sessions.Snapshot()
		if !snap.IsAuthenticated {
			return errNotLoggedIn
		}
		cli.notifs.MarkAllRead(snap.Role)
		fmt.Fprintln(cli.stdout, "All notifications marked read.")
		return nil

	case "tutorial":
		cmd := flag.NewFlagSet("tutorial", flag.ExitOnError)
		replay := cmd.Bool("replay", false, "Request an explicit replay")
		dismiss := cmd.Bool("dismiss", false, "Dismiss the tutorial")
		everyLogin := cmd.String("every-login", "", "Set play-every-login: true or false")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.tutorialCmd(*replay, *dismiss, *everyLogin)

	case "classes":
		return cli.listClasses(ctx)

	case "alerts":
		return cli.listAlerts(ctx)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.stdout, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.stdout)
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) signup(ctx context.Context, name, email, role, department, contact, pwd string) error {
	r, err := core.ParseRole(role)
	if err != nil {
		return errRoleRequired
	}
	msg, err := cli.api.Signup(ctx, client.SignupInput{
		Name:          name,
		Email:         email,
		Password:      pwd,
		ContactNumber: contact,
		Department:    department,
		Role:          r,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.stdout, msg.Message)
	return nil
}

func (cli *commandLine) login(ctx context.Context, email, role, pwd string) error {
	r, err := core.ParseRole(role)
	if err != nil {
		return errRoleRequired
	}
	sess, err := cli.api.Login(ctx, client.LoginInput{Email: email, Password: pwd, Role: r})
	if err != nil {
		return err
	}
	cli.sessions.Login(sess)
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errors.New("login response was incomplete")
	}
	fmt.Fprintf(cli.stdout, "Signed in as %s (%s).\n", snap.User.Name, snap.Role)
	return nil
}

func (cli *commandLine) whoami() error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(cli.stdout, "Not logged in.")
		return nil
	}
	fmt.Fprintf(cli.stdout, "%s <%s>\n", snap.User.Name, snap.User.Email)
	fmt.Fprintf(cli.stdout, "role: %s\n", snap.Role)
	if snap.User.Department != "" {
		fmt.Fprintf(cli.stdout, "department: %s\n", snap.User.Department)
	}
	return nil
}

func (cli *commandLine) updateProfile(ctx context.Context, name, department, contact string) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}

	var uu session.UpdateUser
	if name != "" {
		uu.Name = null.StringFrom(name)
	}
	if department != "" {
		uu.Department = null.StringFrom(department)
	}
	if contact != "" {
		uu.ContactNumber = null.StringFrom(contact)
	}
	if uu.IsZero() {
		fmt.Fprintln(cli.stdout, "Nothing to update.")
		return nil
	}

	if _, err := cli.api.UpdateUser(ctx, snap.User.ID, uu); err != nil {
		return err
	}
	cli.sessions.Update(uu)
	fmt.Fprintln(cli.stdout, "Profile updated.")
	return nil
}

func (cli *commandLine) listNotifications(unreadOnly bool) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}

	list := cli.notifs.Notifications(snap.Role)
	fmt.Fprintf(cli.stdout, "%d unread of %d\n", cli.notifs.UnreadCount(snap.Role), len(list))
	for _, n := range list {
		if unreadOnly && n.Read {
			continue
		}
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(cli.stdout, "%s [%d] (%s) %s — %s\n", marker, n.ID, n.Kind, n.Title, n.Time)
	}
	return nil
}

func (cli *commandLine) markRead(id int) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}
	cli.notifs.MarkRead(snap.Role, id)
	fmt.Fprintf(cli.stdout, "Notification %d marked read.\n", id)
	return nil
}

func (cli *commandLine) tutorialCmd(replay, dismiss bool, everyLogin string) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}
	userID := snap.User.ID

	switch everyLogin {
	case "":
	case "true":
		cli.tutorial.SetPlayEveryLogin(userID, true)
		fmt.Fprintln(cli.stdout, "Tutorial will play every login.")
	case "false":
		cli.tutorial.SetPlayEveryLogin(userID, false)
		fmt.Fprintln(cli.stdout, "Tutorial will not replay every login.")
	default:
		return errors.New("-every-login must be true or false")
	}

	if dismiss {
		cli.tutorial.Dismiss(userID)
		fmt.Fprintln(cli.stdout, "Tutorial dismissed.")
		return nil
	}

	if cli.tutorial.ShouldShow(userID, replay) {
		fmt.Fprintln(cli.stdout, "Tutorial would show on next dashboard visit.")
	} else {
		fmt.Fprintln(cli.stdout, "Tutorial would not show.")
	}
	return nil
}

func (cli *commandLine) listClasses(ctx context.Context) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}
	classes, err := cli.api.Classes(ctx, snap.User.ID)
	if err != nil {
		return err
	}
	for _, c := range classes {
		fmt.Fprintf(cli.stdout, "%s %s — %d students, %d at risk\n", c.SubjectCode, c.SubjectName, c.StudentCount, c.AtRiskCount)
	}
	return nil
}

func (cli *commandLine) listAlerts(ctx context.Context) error {
	snap := cli.sessions.Snapshot()
	if !snap.IsAuthenticated {
		return errNotLoggedIn
	}
	alerts, err := cli.api.RiskAlerts(ctx, snap.User.ID)
	if err != nil {
		return err
	}
	for _, a := range alerts {
		fmt.Fprintf(cli.stdout, "%s: %s (%s %s)\n", a.Risk, a.StudentEmail, a.SubjectCode, a.SubjectName)
	}
	return nil
}
