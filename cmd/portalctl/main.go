// portalctl is a command-line front-end for the alumni portal API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"alumni-portal/client"
	"alumni-portal/models"
)

// dashboardTitles is the role-to-view dispatch table; every role has an
// entry and unknown roles fall back to the alumni view.
var dashboardTitles = map[models.Role]string{
	models.RoleAdmin:     "Admin Dashboard",
	models.RoleAlumni:    "Alumni Dashboard",
	models.RoleStudent:   "Student Dashboard",
	models.RoleRecruiter: "Recruiter Dashboard",
}

func main() {
	baseURL := flag.String("base", client.DefaultBaseURL, "API base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	api := client.New(*baseURL)
	sessions := client.NewFileSessionStore(sessionPath())
	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "events":
		err = runEvents(ctx, api, flag.Args()[1:])
	case "create":
		err = runCreate(ctx, api, flag.Args()[1:])
	case "stats":
		err = runStats(ctx, api)
	case "activities":
		err = runActivities(ctx, api)
	case "login":
		err = runLogin(ctx, api, sessions, flag.Args()[1:])
	case "logout":
		err = sessions.Clear()
	case "whoami":
		err = runWhoami(sessions)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: portalctl [-base URL] <command>

commands:
  events [-upcoming] [-search term] [-type category]
  create -title T -date YYYY-MM-DD [-attendees N]
  stats
  activities
  login -email E -password P
  logout
  whoami`)
}

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "."+client.SessionKey+".json")
}

func runEvents(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	upcoming := fs.Bool("upcoming", false, "only future events, earliest first")
	search := fs.String("search", "", "search term")
	category := fs.String("type", "", "event type filter")
	fs.Parse(args)

	events, err := api.GetEvents(ctx, *upcoming)
	if err != nil {
		return err
	}
	events = client.FilterEvents(events, *search, *category)
	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tLOCATION\tPRICE\tORGANIZER")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Date.Format("2006-01-02"),
			e.Type.Label(),
			e.Title,
			e.Location,
			e.PriceLabel(),
			e.DisplayOrganizer(),
		)
	}
	return w.Flush()
}

func runCreate(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "event title (required)")
	date := fs.String("date", "", "event date (required)")
	attendees := fs.String("attendees", "", "initial attendee count")
	fs.Parse(args)

	form := client.NewCreateEventForm(api)
	form.SetTitle(*title)
	form.SetDate(*date)
	form.SetAttendees(*attendees)

	event, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Created event %q (%s)\n", event.Title, event.ID.Hex())
	return nil
}

func runStats(ctx context.Context, api *client.API) error {
	stats, err := api.GetStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Alumni: %d\nEvents: %d (upcoming: %d)\n",
		stats.TotalAlumni, stats.TotalEvents, stats.UpcomingEvents)
	return nil
}

func runActivities(ctx context.Context, api *client.API) error {
	activities, err := api.GetActivities(ctx)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Println("No recent activity.")
		return nil
	}
	for _, a := range activities {
		fmt.Printf("%s  %s\n", a.Timestamp.Format("2006-01-02 15:04"), a.Message)
	}
	return nil
}

func runLogin(ctx context.Context, api *client.API, sessions client.SessionStore, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	result, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := sessions.Set(&result.User); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", result.User.Name, result.User.Role)
	return nil
}

func runWhoami(sessions client.SessionStore) error {
	user, err := sessions.Get()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	title, ok := dashboardTitles[user.Role]
	if !ok {
		title = dashboardTitles[models.RoleAlumni]
	}
	fmt.Printf("%s <%s>\n%s\n", user.Name, user.Email, title)
	return nil
}
