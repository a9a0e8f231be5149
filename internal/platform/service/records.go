package service

import (
	"context"

	"github.com/openintel/mdip/internal/platform/domain"
	"github.com/openintel/mdip/internal/platform/store"
)

// IncidentService exposes the cybersecurity record operations.
type IncidentService struct {
	Store store.Store
}

func (s *IncidentService) Add(ctx context.Context, in domain.Incident) (int64, error) {
	return s.Store.Incidents().Insert(ctx, in)
}

func (s *IncidentService) Get(ctx context.Context, id int64) (domain.Incident, error) {
	return s.Store.Incidents().GetByID(ctx, id)
}

func (s *IncidentService) List(ctx context.Context) ([]domain.Incident, error) {
	return s.Store.Incidents().List(ctx)
}

func (s *IncidentService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	return s.Store.Incidents().UpdateStatus(ctx, id, status)
}

func (s *IncidentService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Store.Incidents().Delete(ctx, id)
}

// DatasetService exposes the data-science record operations. Datasets are
// only added and removed; there is deliberately no update path.
type DatasetService struct {
	Store store.Store
}

func (s *DatasetService) Add(ctx context.Context, d domain.Dataset) (int64, error) {
	return s.Store.Datasets().Insert(ctx, d)
}

func (s *DatasetService) Get(ctx context.Context, id int64) (domain.Dataset, error) {
	return s.Store.Datasets().GetByID(ctx, id)
}

func (s *DatasetService) List(ctx context.Context) ([]domain.Dataset, error) {
	return s.Store.Datasets().List(ctx)
}

func (s *DatasetService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Store.Datasets().Delete(ctx, id)
}

// TicketService exposes the IT operations record operations.
type TicketService struct {
	Store store.Store
}

func (s *TicketService) Add(ctx context.Context, t domain.Ticket) (int64, error) {
	return s.Store.Tickets().Insert(ctx, t)
}

func (s *TicketService) Get(ctx context.Context, id int64) (domain.Ticket, error) {
	return s.Store.Tickets().GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.Store.Tickets().List(ctx)
}

func (s *TicketService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	return s.Store.Tickets().UpdateStatus(ctx, id, status)
}

func (s *TicketService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.Store.Tickets().Delete(ctx, id)
}
