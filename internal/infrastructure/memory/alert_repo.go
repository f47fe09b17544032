package memory

import (
	"context"

	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
)

type AlertRepository struct {
	store *Store
}

func NewAlertRepository(store *Store) *AlertRepository {
	return &AlertRepository{store: store}
}

func (r *AlertRepository) GetByID(_ context.Context, id string) (*entities.Alert, error) {
	a, ok := r.store.alerts.find(func(a *entities.Alert) bool { return a.ID == id })
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return a, nil
}

func (r *AlertRepository) List(_ context.Context, filter entities.AlertFilter) ([]*entities.Alert, error) {
	return r.store.alerts.snapshot(filter.Matches), nil
}

func (r *AlertRepository) UpdateStatus(_ context.Context, id string, status entities.AlertStatus) (*entities.Alert, error) {
	a, ok := r.store.alerts.update(
		func(a *entities.Alert) bool { return a.ID == id },
		func(a *entities.Alert) { a.Status = status },
	)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return a, nil
}

type SettlementRepository struct {
	store *Store
}

func NewSettlementRepository(store *Store) *SettlementRepository {
	return &SettlementRepository{store: store}
}

func (r *SettlementRepository) List(_ context.Context, filter entities.SettlementFilter) ([]*entities.Settlement, error) {
	return r.store.settlements.snapshot(filter.Matches), nil
}
