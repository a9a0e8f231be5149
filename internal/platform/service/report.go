package service

import (
	"context"
	"sort"

	"github.com/openintel/mdip/internal/platform/store"
)

// Pivot is a month-by-key table ready for charting: one row per month, one
// column per key, missing cells zero.
type Pivot struct {
	Months []string                    `json:"months"`
	Keys   []string                    `json:"keys"`
	Cells  map[string]map[string]int64 `json:"cells"` // month -> key -> count
}

// ReportService produces the dashboard aggregates.
type ReportService struct {
	Store store.Store
}

func (s *ReportService) IncidentsByMonth(ctx context.Context) (Pivot, error) {
	buckets, err := s.Store.Reports().IncidentsByMonth(ctx)
	if err != nil {
		return Pivot{}, err
	}
	return pivot(buckets), nil
}

func (s *ReportService) DatasetsByMonth(ctx context.Context) (Pivot, error) {
	buckets, err := s.Store.Reports().DatasetsByMonth(ctx)
	if err != nil {
		return Pivot{}, err
	}
	return pivot(buckets), nil
}

func (s *ReportService) TicketsByMonth(ctx context.Context) (Pivot, error) {
	buckets, err := s.Store.Reports().TicketsByMonth(ctx)
	if err != nil {
		return Pivot{}, err
	}
	return pivot(buckets), nil
}

func (s *ReportService) IncidentCountsByCategory(ctx context.Context) ([]store.KeyCount, error) {
	return s.Store.Reports().IncidentCountsByCategory(ctx)
}

func (s *ReportService) HighSeverityByStatus(ctx context.Context) ([]store.KeyCount, error) {
	return s.Store.Reports().HighSeverityByStatus(ctx)
}

func (s *ReportService) CategoriesWithManyCases(ctx context.Context, minCount int64) ([]store.KeyCount, error) {
	return s.Store.Reports().CategoriesWithManyCases(ctx, minCount)
}

// pivot spreads flat month/key/count buckets into a rectangular table,
// filling absent combinations with zero.
func pivot(buckets []store.MonthlyCount) Pivot {
	p := Pivot{Cells: make(map[string]map[string]int64)}

	monthSeen := make(map[string]bool)
	keySeen := make(map[string]bool)
	for _, b := range buckets {
		if !monthSeen[b.Month] {
			monthSeen[b.Month] = true
			p.Months = append(p.Months, b.Month)
		}
		if !keySeen[b.Key] {
			keySeen[b.Key] = true
			p.Keys = append(p.Keys, b.Key)
		}
		if p.Cells[b.Month] == nil {
			p.Cells[b.Month] = make(map[string]int64)
		}
		p.Cells[b.Month][b.Key] = b.Count
	}

	sort.Strings(p.Months)
	sort.Strings(p.Keys)

	for _, month := range p.Months {
		if p.Cells[month] == nil {
			p.Cells[month] = make(map[string]int64)
		}
		for _, key := range p.Keys {
			if _, ok := p.Cells[month][key]; !ok {
				p.Cells[month][key] = 0
			}
		}
	}

	return p
}
