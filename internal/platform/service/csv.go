package service

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/openintel/mdip/internal/platform/domain"
)

// The assistant forwards table snapshots as plain CSV text, one header row
// followed by one row per record, matching the column order of the store.

func IncidentsCSV(incidents []domain.Incident) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write([]string{"incident_id", "timestamp", "severity", "category", "status", "description", "reported_by"})
	for _, in := range incidents {
		_ = w.Write([]string{
			strconv.FormatInt(in.ID, 10),
			in.Timestamp.Format("2006-01-02 15:04:05"),
			in.Severity,
			in.Category,
			in.Status,
			in.Description,
			in.ReportedBy,
		})
	}
	w.Flush()
	return sb.String()
}

func DatasetsCSV(datasets []domain.Dataset) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write([]string{"dataset_id", "name", "rows", "columns", "uploaded_by", "upload_date", "reported_by"})
	for _, d := range datasets {
		_ = w.Write([]string{
			strconv.FormatInt(d.ID, 10),
			d.Name,
			strconv.FormatInt(d.Rows, 10),
			strconv.FormatInt(d.Columns, 10),
			d.UploadedBy,
			d.UploadDate.Format("2006-01-02 15:04:05"),
			d.ReportedBy,
		})
	}
	w.Flush()
	return sb.String()
}

func TicketsCSV(tickets []domain.Ticket) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write([]string{"ticket_id", "priority", "description", "status", "assigned_to", "created_at", "resolution_time_hours", "reported_by"})
	for _, t := range tickets {
		_ = w.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Priority,
			t.Description,
			t.Status,
			t.AssignedTo,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(t.ResolutionTimeHours, 'f', -1, 64),
			t.ReportedBy,
		})
	}
	w.Flush()
	return sb.String()
}
