package domain

import "time"

// Ticket priorities.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Ticket statuses.
const (
	TicketOpen       = "Open"
	TicketInProgress = "In Progress"
	TicketResolved   = "Resolved"
	TicketWaiting    = "Waiting for User"
)

// Ticket is an IT operations support ticket.
type Ticket struct {
	ID                  int64
	Priority            string
	Description         string
	Status              string
	AssignedTo          string
	CreatedAt           time.Time
	ResolutionTimeHours float64
	ReportedBy          string // optional; empty means unreported
}

// FindTicket locates a ticket by id within an already-loaded snapshot.
// A malformed id and a missing id both report not-found.
func FindTicket(tickets []Ticket, idText string) (int, bool) {
	id, ok := parseID(idText)
	if !ok {
		return 0, false
	}
	for i, ticket := range tickets {
		if ticket.ID == id {
			return i, true
		}
	}
	return 0, false
}
