package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestIncidentsCSV(t *testing.T) {
	csvText := IncidentsCSV([]domain.Incident{
		{
			ID:          4,
			Timestamp:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
			Severity:    domain.SeverityHigh,
			Category:    domain.CategoryMalware,
			Status:      domain.IncidentOpen,
			Description: "ransomware, lateral movement",
			ReportedBy:  "alice",
		},
	})

	lines := strings.Split(strings.TrimRight(csvText, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "incident_id,timestamp,severity,category,status,description,reported_by", lines[0])
	// The comma in the description forces quoting.
	require.Contains(t, lines[1], `"ransomware, lateral movement"`)
	require.True(t, strings.HasPrefix(lines[1], "4,2026-03-01 08:00:00,High,Malware,Open"))
}

func TestDatasetsCSV_Empty(t *testing.T) {
	csvText := DatasetsCSV(nil)
	require.Equal(t, "dataset_id,name,rows,columns,uploaded_by,upload_date,reported_by\n", csvText)
}

func TestAssistantClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotReq struct {
		SystemInstruction struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"system_instruction"`
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Two incidents are open."}]}}]}`))
	}))
	defer srv.Close()

	client := NewAssistantClient(srv.URL, "test-key", "gemini-2.5-flash")

	reply, err := client.SendMessage(context.Background(),
		"How many incidents are open?", DomainCybersecurity, "incident_id,status\n1,Open\n")
	require.NoError(t, err)
	require.Equal(t, "Two incidents are open.", reply)

	require.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	require.Equal(t, "You are an Cybersecurity data analyst. Your name is Gem.",
		gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 2)
	require.Equal(t, "How many incidents are open?", gotReq.Contents[0].Parts[0].Text)
	require.True(t, strings.HasPrefix(gotReq.Contents[1].Parts[0].Text, "Here is the Cybersecurity table:\n"))

	// Both turns are remembered for follow-ups.
	history := client.History()
	require.Len(t, history, 2)
	require.Equal(t, "user", history[0].Role)
	require.Equal(t, "model", history[1].Role)

	client.ClearHistory()
	require.Empty(t, client.History())
}

func TestAssistantClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewAssistantClient(srv.URL, "test-key", "gemini-2.5-flash")

	_, err := client.SendMessage(context.Background(), "hello", DomainITOperations, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
	require.Empty(t, client.History(), "failed turns are not remembered")
}

func TestAssistantService_Ask(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Tickets().Insert(ctx, domain.Ticket{
		Priority:   domain.PriorityHigh,
		Status:     domain.TicketOpen,
		AssignedTo: "carol",
	})
	require.NoError(t, err)

	var sawTable string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req genRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		sawTable = req.Contents[len(req.Contents)-1].Parts[0].Text
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	svc := &AssistantService{
		Store:  st,
		Client: NewAssistantClient(srv.URL, "k", "gemini-2.5-flash"),
	}

	reply, err := svc.Ask(ctx, "summarize", DomainITOperations)
	require.NoError(t, err)
	require.Equal(t, "ok", reply)
	require.Contains(t, sawTable, "ticket_id,priority,description,status")
	require.Contains(t, sawTable, "carol")

	t.Run("unknown domain rejected", func(t *testing.T) {
		_, err := svc.Ask(ctx, "summarize", "Astrology")
		require.Error(t, err)
	})
}
