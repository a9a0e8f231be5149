package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
)

type datasetsRepo struct {
	gw *Store
}

func (r *datasetsRepo) Insert(ctx context.Context, d domain.Dataset) (int64, error) {
	uploaded := d.UploadDate
	if uploaded.IsZero() {
		uploaded = time.Now()
	}

	id, _, err := r.gw.Execute(ctx,
		`INSERT INTO datasets_metadata (name, rows, columns, uploaded_by, upload_date, reported_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.Rows, d.Columns, d.UploadedBy, fmtTime(uploaded),
		mapStringNull(d.ReportedBy))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *datasetsRepo) GetByID(ctx context.Context, id int64) (domain.Dataset, error) {
	row, err := r.gw.FetchOne(ctx,
		`SELECT dataset_id, name, rows, columns, uploaded_by, upload_date, reported_by
		 FROM datasets_metadata WHERE dataset_id = ?`, id)
	if err != nil {
		return domain.Dataset{}, err
	}
	return scanDataset(row.Scan)
}

func (r *datasetsRepo) List(ctx context.Context) ([]domain.Dataset, error) {
	rows, err := r.gw.FetchAll(ctx,
		`SELECT dataset_id, name, rows, columns, uploaded_by, upload_date, reported_by
		 FROM datasets_metadata ORDER BY dataset_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []domain.Dataset
	for rows.Next() {
		d, err := scanDataset(rows.Scan)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

func (r *datasetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	_, affected, err := r.gw.Execute(ctx,
		`DELETE FROM datasets_metadata WHERE dataset_id = ?`, id)
	return affected, err
}

func scanDataset(scan func(...any) error) (domain.Dataset, error) {
	var (
		d        domain.Dataset
		uploaded string
		uploader sql.NullString
		reporter sql.NullString
	)
	if err := scan(&d.ID, &d.Name, &d.Rows, &d.Columns, &uploader, &uploaded, &reporter); err != nil {
		return domain.Dataset{}, mapNotFound(err)
	}
	d.UploadedBy = mapNullString(uploader)
	d.UploadDate = parseTime(uploaded)
	d.ReportedBy = mapNullString(reporter)
	return d, nil
}
