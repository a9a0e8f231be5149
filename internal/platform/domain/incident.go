package domain

import (
	"strings"
	"time"
)

// Severity levels for cyber incidents.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Incident categories.
const (
	CategoryDDoS             = "DDoS"
	CategoryMalware          = "Malware"
	CategoryMisconfiguration = "Misconfiguration"
	CategoryPhishing         = "Phishing"
	CategoryUnauthorized     = "Unauthorized Access"
)

// Incident statuses.
const (
	IncidentOpen          = "Open"
	IncidentInvestigating = "Investigating"
	IncidentClosed        = "Closed"
)

// Incident is a cybersecurity incident record. The ID is assigned by the
// store on insert and is zero for a not-yet-persisted incident.
type Incident struct {
	ID          int64
	Timestamp   time.Time
	Severity    string
	Category    string
	Status      string
	Description string
	ReportedBy  string // optional; empty means unreported
}

// SeverityLevel maps the severity to an integer rank, unknown values rank 0.
func (i Incident) SeverityLevel() int {
	switch strings.ToLower(i.Severity) {
	case "low":
		return 1
	case "medium":
		return 2
	case "high":
		return 3
	case "critical":
		return 4
	}
	return 0
}

// FindIncident locates an incident by id within an already-loaded snapshot.
// The id arrives as text; a malformed id and a missing id both report
// not-found rather than an error.
func FindIncident(incidents []Incident, idText string) (int, bool) {
	id, ok := parseID(idText)
	if !ok {
		return 0, false
	}
	for i, incident := range incidents {
		if incident.ID == id {
			return i, true
		}
	}
	return 0, false
}
