// Command mdipctl is an operator console for the record store. It talks to
// the SQLite file directly, so it must not run against a database that a
// live server holds open for writing.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/service"
	"github.com/openintel/mdip/internal/platform/store/sqlite"
)

// Color definitions using fatih/color package for better cross-platform support
var (
	colorRed     = color.New(color.FgRed).SprintFunc()
	colorYellow  = color.New(color.FgYellow).SprintFunc()
	colorBlue    = color.New(color.FgBlue).SprintFunc()
	colorMagenta = color.New(color.FgMagenta).SprintFunc()
	colorWhite   = color.New(color.FgWhite).SprintFunc()
	colorBold    = color.New(color.Bold).SprintFunc()
)

func severityColorFunc(severity string) func(a ...interface{}) string {
	switch strings.ToLower(severity) {
	case "critical":
		return colorRed
	case "high":
		return colorMagenta
	case "medium":
		return colorYellow
	case "low":
		return colorBlue
	default:
		return colorWhite
	}
}

func usage() {
	fmt.Println("Usage: mdipctl <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  incidents                     - List cybersecurity incidents")
	fmt.Println("  datasets                      - List dataset metadata records")
	fmt.Println("  tickets                       - List IT support tickets")
	fmt.Println("  report                        - Show incident summary counts")
	fmt.Println("  register <user> <pass> [role] - Register a user account")
	fmt.Println()
	fmt.Println("The database file is taken from MDIP_DATABASE_FILE (default: mdip.db)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	dbFile := os.Getenv("MDIP_DATABASE_FILE")
	if dbFile == "" {
		dbFile = "mdip.db"
	}

	db := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile))
	if err := db.Connect(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", colorRed("Error"), err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: migrations: %v\n", colorRed("Error"), err)
		os.Exit(1)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "incidents":
		err = showIncidents(ctx, db)
	case "datasets":
		err = showDatasets(ctx, db)
	case "tickets":
		err = showTickets(ctx, db)
	case "report":
		err = showReport(ctx, db)
	case "register":
		err = registerUser(ctx, db, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command: %s\n", colorRed("Error"), os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", colorRed("Error"), err)
		os.Exit(1)
	}
}

func showIncidents(ctx context.Context, db *sqlite.Store) error {
	svc := &service.IncidentService{Store: db}
	incidents, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(incidents) == 0 {
		fmt.Println("No incidents found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Time", "Severity", "Category", "Status", "Description", "Reported By"})

	for _, in := range incidents {
		sevColor := severityColorFunc(in.Severity)
		table.Append([]string{
			strconv.FormatInt(in.ID, 10),
			in.Timestamp.Format("2006-01-02 15:04:05"),
			sevColor(in.Severity),
			in.Category,
			in.Status,
			in.Description,
			in.ReportedBy,
		})
	}
	table.Render()
	return nil
}

func showDatasets(ctx context.Context, db *sqlite.Store) error {
	svc := &service.DatasetService{Store: db}
	datasets, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		fmt.Println("No datasets found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Rows", "Columns", "Uploaded By", "Upload Date"})

	for _, d := range datasets {
		table.Append([]string{
			strconv.FormatInt(d.ID, 10),
			d.Name,
			strconv.FormatInt(d.Rows, 10),
			strconv.FormatInt(d.Columns, 10),
			d.UploadedBy,
			d.UploadDate.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
	return nil
}

func showTickets(ctx context.Context, db *sqlite.Store) error {
	svc := &service.TicketService{Store: db}
	tickets, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		fmt.Println("No tickets found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Created", "Priority", "Status", "Description", "Assigned To", "Hours"})

	for _, t := range tickets {
		prioColor := severityColorFunc(t.Priority)
		table.Append([]string{
			strconv.FormatInt(t.ID, 10),
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			prioColor(t.Priority),
			t.Status,
			t.Description,
			t.AssignedTo,
			fmt.Sprintf("%.1f", t.ResolutionTimeHours),
		})
	}
	table.Render()
	return nil
}

func showReport(ctx context.Context, db *sqlite.Store) error {
	svc := &service.ReportService{Store: db}

	byCategory, err := svc.IncidentCountsByCategory(ctx)
	if err != nil {
		return err
	}
	highSeverity, err := svc.HighSeverityByStatus(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", colorBold("Incidents by Category:"))
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Count"})
	for _, kc := range byCategory {
		table.Append([]string{kc.Key, strconv.FormatInt(kc.Count, 10)})
	}
	table.Render()

	fmt.Printf("\n%s\n", colorBold("High Severity Incidents by Status:"))
	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Status", "Count"})
	for _, kc := range highSeverity {
		table.Append([]string{kc.Key, strconv.FormatInt(kc.Count, 10)})
	}
	table.Render()
	return nil
}

func registerUser(ctx context.Context, db *sqlite.Store, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mdipctl register <username> <password> [role]")
	}

	role := domain.DefaultRole
	if len(args) > 2 {
		role = args[2]
	}

	svc := &service.AuthService{Store: db}
	ok, message, err := svc.Register(ctx, args[0], args[1], role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s", message)
	}

	fmt.Println(message)
	return nil
}
