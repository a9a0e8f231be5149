package sqlite

import (
	"context"
	"time"

	"github.com/openintel/mdip/internal/platform/domain"
)

type usersRepo struct {
	gw *Store
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.gw.FetchOne(ctx,
		`SELECT id, username, password_hash, role, created_at
		 FROM users WHERE username = ?`, username)
	if err != nil {
		return domain.User{}, err
	}

	var (
		u       domain.User
		created string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &created); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = parseTime(created)
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (int64, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id, _, err := r.gw.Execute(ctx,
		`INSERT INTO users (username, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role, fmtTime(createdAt))
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	row, err := r.gw.FetchOne(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
