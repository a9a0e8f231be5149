package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIncident(t *testing.T) {
	snapshot := []Incident{
		{ID: 1, Severity: SeverityLow, Category: CategoryPhishing, Status: IncidentOpen},
		{ID: 7, Severity: SeverityHigh, Category: CategoryMalware, Status: IncidentInvestigating},
		{ID: 12, Severity: SeverityMedium, Category: CategoryDDoS, Status: IncidentClosed},
	}

	t.Run("finds by position", func(t *testing.T) {
		idx, ok := FindIncident(snapshot, "7")
		require.True(t, ok)
		require.Equal(t, 1, idx)
	})

	t.Run("absent id reports not found", func(t *testing.T) {
		_, ok := FindIncident(snapshot, "99")
		require.False(t, ok)
	})

	t.Run("malformed id reports not found", func(t *testing.T) {
		for _, idText := range []string{"", "abc", "7.5", "-1", "7a"} {
			_, ok := FindIncident(snapshot, idText)
			require.False(t, ok, "idText=%q", idText)
		}
	})

	t.Run("empty snapshot", func(t *testing.T) {
		_, ok := FindIncident(nil, "1")
		require.False(t, ok)
	})
}

func TestFindDataset(t *testing.T) {
	snapshot := []Dataset{{ID: 3, Name: "telemetry"}, {ID: 5, Name: "flows"}}

	idx, ok := FindDataset(snapshot, "5")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = FindDataset(snapshot, "four")
	require.False(t, ok)

	_, ok = FindDataset(snapshot, "8")
	require.False(t, ok)
}

func TestFindTicket(t *testing.T) {
	snapshot := []Ticket{{ID: 2, Priority: PriorityCritical, Status: TicketOpen}}

	idx, ok := FindTicket(snapshot, "2")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	_, ok = FindTicket(snapshot, "02x")
	require.False(t, ok)
}

func TestIncidentSeverityLevel(t *testing.T) {
	tests := []struct {
		severity string
		level    int
	}{
		{SeverityLow, 1},
		{SeverityMedium, 2},
		{SeverityHigh, 3},
		{"critical", 4},
		{"HIGH", 3},
		{"unknown", 0},
		{"", 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.level, Incident{Severity: tt.severity}.SeverityLevel(),
			"severity=%q", tt.severity)
	}
}
