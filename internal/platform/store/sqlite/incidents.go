package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
)

type incidentsRepo struct {
	gw *Store
}

func (r *incidentsRepo) Insert(ctx context.Context, in domain.Incident) (int64, error) {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	id, _, err := r.gw.Execute(ctx,
		`INSERT INTO cyber_incidents (timestamp, severity, category, status, description, reported_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fmtTime(ts), in.Severity, in.Category, in.Status, in.Description,
		mapStringNull(in.ReportedBy))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *incidentsRepo) GetByID(ctx context.Context, id int64) (domain.Incident, error) {
	row, err := r.gw.FetchOne(ctx,
		`SELECT incident_id, timestamp, severity, category, status, description, reported_by
		 FROM cyber_incidents WHERE incident_id = ?`, id)
	if err != nil {
		return domain.Incident{}, err
	}
	return scanIncident(row.Scan)
}

func (r *incidentsRepo) List(ctx context.Context) ([]domain.Incident, error) {
	rows, err := r.gw.FetchAll(ctx,
		`SELECT incident_id, timestamp, severity, category, status, description, reported_by
		 FROM cyber_incidents ORDER BY incident_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []domain.Incident
	for rows.Next() {
		in, err := scanIncident(rows.Scan)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, in)
	}
	return incidents, rows.Err()
}

func (r *incidentsRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	_, affected, err := r.gw.Execute(ctx,
		`UPDATE cyber_incidents SET status = ? WHERE incident_id = ?`, status, id)
	return affected, err
}

func (r *incidentsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	_, affected, err := r.gw.Execute(ctx,
		`DELETE FROM cyber_incidents WHERE incident_id = ?`, id)
	return affected, err
}

func scanIncident(scan func(...any) error) (domain.Incident, error) {
	var (
		in       domain.Incident
		ts       string
		desc     sql.NullString
		reporter sql.NullString
	)
	if err := scan(&in.ID, &ts, &in.Severity, &in.Category, &in.Status, &desc, &reporter); err != nil {
		return domain.Incident{}, mapNotFound(err)
	}
	in.Timestamp = parseTime(ts)
	in.Description = mapNullString(desc)
	in.ReportedBy = mapNullString(reporter)
	return in, nil
}
