package store

import (
	"context"
	"errors"

	"github.com/openintel/mdip/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. The sqlite driver implements it.
// Every operation is a single auto-committed statement; there are no
// multi-statement transactions anywhere in the data layer.
type Store interface {
	Users() Users
	Incidents() Incidents
	Datasets() Datasets
	Tickets() Tickets
	Reports() Reports

	ApplyMigrations() error

	// Close releases the underlying connection. Safe to call more than once.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetByUsername is used during login and duplicate checks.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Create inserts a new user and returns the store-assigned id.
	// A duplicate username yields ErrAlreadyExists.
	Create(ctx context.Context, u domain.User) (int64, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

type Incidents interface {
	// Insert adds an incident and returns the store-assigned id.
	Insert(ctx context.Context, in domain.Incident) (int64, error)

	// GetByID returns a single incident, ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (domain.Incident, error)

	// List returns all incidents ordered by id.
	List(ctx context.Context) ([]domain.Incident, error)

	// UpdateStatus writes a new status and returns the affected row count.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes the incident and returns the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)
}

type Datasets interface {
	// Insert adds a dataset and returns the store-assigned id.
	Insert(ctx context.Context, d domain.Dataset) (int64, error)

	// GetByID returns a single dataset, ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (domain.Dataset, error)

	// List returns all datasets ordered by id.
	List(ctx context.Context) ([]domain.Dataset, error)

	// Delete removes the dataset and returns the affected row count.
	// Datasets have no update path; they are only added and removed.
	Delete(ctx context.Context, id int64) (int64, error)
}

type Tickets interface {
	// Insert adds a ticket and returns the store-assigned id.
	Insert(ctx context.Context, t domain.Ticket) (int64, error)

	// GetByID returns a single ticket, ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (domain.Ticket, error)

	// List returns all tickets ordered by id.
	List(ctx context.Context) ([]domain.Ticket, error)

	// UpdateStatus writes a new status and returns the affected row count.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes the ticket and returns the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)
}

// MonthlyCount is one bucket of a month-grouped aggregate, keyed by a
// secondary dimension (category, uploader or status depending on the query).
type MonthlyCount struct {
	Month string // formatted YYYY-MM
	Key   string
	Count int64
}

// KeyCount is one bucket of a flat grouped count.
type KeyCount struct {
	Key   string
	Count int64
}

type Reports interface {
	// IncidentsByMonth counts incidents per month and category.
	IncidentsByMonth(ctx context.Context) ([]MonthlyCount, error)

	// DatasetsByMonth counts dataset uploads per month and uploader.
	DatasetsByMonth(ctx context.Context) ([]MonthlyCount, error)

	// TicketsByMonth counts tickets per month and status.
	TicketsByMonth(ctx context.Context) ([]MonthlyCount, error)

	// IncidentCountsByCategory counts incidents per category, busiest first.
	IncidentCountsByCategory(ctx context.Context) ([]KeyCount, error)

	// HighSeverityByStatus counts High severity incidents per status.
	HighSeverityByStatus(ctx context.Context) ([]KeyCount, error)

	// CategoriesWithManyCases returns categories with at least minCount incidents.
	CategoriesWithManyCases(ctx context.Context, minCount int64) ([]KeyCount, error)
}
