package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
)

type ticketsRepo struct {
	gw *Store
}

func (r *ticketsRepo) Insert(ctx context.Context, t domain.Ticket) (int64, error) {
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	id, _, err := r.gw.Execute(ctx,
		`INSERT INTO it_tickets (priority, description, status, assigned_to, created_at, resolution_time_hours, reported_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Priority, t.Description, t.Status, t.AssignedTo, fmtTime(created),
		t.ResolutionTimeHours, mapStringNull(t.ReportedBy))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ticketsRepo) GetByID(ctx context.Context, id int64) (domain.Ticket, error) {
	row, err := r.gw.FetchOne(ctx,
		`SELECT ticket_id, priority, description, status, assigned_to, created_at, resolution_time_hours, reported_by
		 FROM it_tickets WHERE ticket_id = ?`, id)
	if err != nil {
		return domain.Ticket{}, err
	}
	return scanTicket(row.Scan)
}

func (r *ticketsRepo) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.gw.FetchAll(ctx,
		`SELECT ticket_id, priority, description, status, assigned_to, created_at, resolution_time_hours, reported_by
		 FROM it_tickets ORDER BY ticket_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *ticketsRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	_, affected, err := r.gw.Execute(ctx,
		`UPDATE it_tickets SET status = ? WHERE ticket_id = ?`, status, id)
	return affected, err
}

func (r *ticketsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	_, affected, err := r.gw.Execute(ctx,
		`DELETE FROM it_tickets WHERE ticket_id = ?`, id)
	return affected, err
}

func scanTicket(scan func(...any) error) (domain.Ticket, error) {
	var (
		t          domain.Ticket
		created    string
		resolution sql.NullFloat64
		reporter   sql.NullString
	)
	if err := scan(&t.ID, &t.Priority, &t.Description, &t.Status, &t.AssignedTo,
		&created, &resolution, &reporter); err != nil {
		return domain.Ticket{}, mapNotFound(err)
	}
	t.CreatedAt = parseTime(created)
	if resolution.Valid {
		t.ResolutionTimeHours = resolution.Float64
	}
	t.ReportedBy = mapNullString(reporter)
	return t, nil
}
