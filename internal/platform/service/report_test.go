package service

import (
	"testing"

	"github.com/openintel/mdip/internal/platform/store"
	"github.com/stretchr/testify/require"
)

func TestPivot(t *testing.T) {
	t.Run("fills missing cells with zero", func(t *testing.T) {
		p := pivot([]store.MonthlyCount{
			{Month: "2026-01", Key: "Malware", Count: 3},
			{Month: "2026-02", Key: "Phishing", Count: 1},
			{Month: "2026-02", Key: "Malware", Count: 2},
		})

		require.Equal(t, []string{"2026-01", "2026-02"}, p.Months)
		require.Equal(t, []string{"Malware", "Phishing"}, p.Keys)
		require.EqualValues(t, 3, p.Cells["2026-01"]["Malware"])
		require.EqualValues(t, 0, p.Cells["2026-01"]["Phishing"])
		require.EqualValues(t, 2, p.Cells["2026-02"]["Malware"])
		require.EqualValues(t, 1, p.Cells["2026-02"]["Phishing"])
	})

	t.Run("empty input yields empty pivot", func(t *testing.T) {
		p := pivot(nil)
		require.Empty(t, p.Months)
		require.Empty(t, p.Keys)
		require.Empty(t, p.Cells)
	})
}
