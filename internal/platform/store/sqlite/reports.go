package sqlite

import (
	"context"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/store"
)

// reportsRepo holds the dashboard aggregation queries. These are read-only
// GROUP BY rollups over the same tables the record repos own.
type reportsRepo struct {
	gw *Store
}

func (r *reportsRepo) IncidentsByMonth(ctx context.Context) ([]store.MonthlyCount, error) {
	return r.monthly(ctx,
		`SELECT strftime('%Y-%m', timestamp) AS month, category, COUNT(*) AS count
		 FROM cyber_incidents
		 GROUP BY month, category
		 ORDER BY month, category`)
}

func (r *reportsRepo) DatasetsByMonth(ctx context.Context) ([]store.MonthlyCount, error) {
	return r.monthly(ctx,
		`SELECT strftime('%Y-%m', upload_date) AS month, uploaded_by, COUNT(*) AS count
		 FROM datasets_metadata
		 GROUP BY month, uploaded_by
		 ORDER BY month, uploaded_by`)
}

func (r *reportsRepo) TicketsByMonth(ctx context.Context) ([]store.MonthlyCount, error) {
	return r.monthly(ctx,
		`SELECT strftime('%Y-%m', created_at) AS month, status, COUNT(*) AS count
		 FROM it_tickets
		 GROUP BY month, status
		 ORDER BY month, status`)
}

func (r *reportsRepo) IncidentCountsByCategory(ctx context.Context) ([]store.KeyCount, error) {
	return r.counts(ctx,
		`SELECT category, COUNT(*) AS count
		 FROM cyber_incidents
		 GROUP BY category
		 ORDER BY count DESC`)
}

func (r *reportsRepo) HighSeverityByStatus(ctx context.Context) ([]store.KeyCount, error) {
	return r.counts(ctx,
		`SELECT status, COUNT(*) AS count
		 FROM cyber_incidents
		 WHERE severity = ?
		 GROUP BY status
		 ORDER BY count DESC`, domain.SeverityHigh)
}

func (r *reportsRepo) CategoriesWithManyCases(ctx context.Context, minCount int64) ([]store.KeyCount, error) {
	return r.counts(ctx,
		`SELECT category, COUNT(*) AS count
		 FROM cyber_incidents
		 GROUP BY category
		 HAVING COUNT(*) >= ?
		 ORDER BY count DESC`, minCount)
}

func (r *reportsRepo) monthly(ctx context.Context, stmt string, args ...any) ([]store.MonthlyCount, error) {
	rows, err := r.gw.FetchAll(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []store.MonthlyCount
	for rows.Next() {
		var mc store.MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Key, &mc.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, mc)
	}
	return buckets, rows.Err()
}

func (r *reportsRepo) counts(ctx context.Context, stmt string, args ...any) ([]store.KeyCount, error) {
	rows, err := r.gw.FetchAll(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []store.KeyCount
	for rows.Next() {
		var kc store.KeyCount
		if err := rows.Scan(&kc.Key, &kc.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, kc)
	}
	return buckets, rows.Err()
}
