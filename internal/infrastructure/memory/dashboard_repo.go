package memory

import (
	"context"

	"subversepay.backend/internal/domain/entities"
)

// DashboardRepository serves the static dashboard blocks. The blocks are
// never mutated after NewStore, so they are returned without locking.
type DashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) *DashboardRepository {
	return &DashboardRepository{store: store}
}

func (r *DashboardRepository) SystemHealth(context.Context) (*entities.SystemHealth, error) {
	v := r.store.dashboard.SystemHealth
	return &v, nil
}

func (r *DashboardRepository) Collections(context.Context) (*entities.CollectionsSummary, error) {
	v := r.store.dashboard.Collections
	return &v, nil
}

func (r *DashboardRepository) RetryAnalytics(context.Context) (*entities.RetryAnalytics, error) {
	v := r.store.dashboard.RetryAnalytics
	return &v, nil
}

func (r *DashboardRepository) LCOPerformance(context.Context) ([]entities.LCOPerformance, error) {
	return append([]entities.LCOPerformance(nil), r.store.dashboard.LCOPerformance...), nil
}

func (r *DashboardRepository) ReminderEffectiveness(context.Context) (*entities.ReminderEffectiveness, error) {
	v := r.store.dashboard.ReminderEffectiveness
	return &v, nil
}

func (r *DashboardRepository) RevenueForecast(context.Context) (*entities.RevenueForecast, error) {
	v := r.store.dashboard.RevenueForecast
	return &v, nil
}

func (r *DashboardRepository) OperatorCollections(context.Context) (*entities.OperatorCollections, error) {
	v := r.store.dashboard.OperatorCollections
	return &v, nil
}

func (r *DashboardRepository) OperatorSettlements(context.Context) (*entities.OperatorSettlements, error) {
	v := r.store.dashboard.OperatorSettlements
	return &v, nil
}

func (r *DashboardRepository) CustomerProfile(context.Context) (*entities.CustomerProfile, error) {
	v := r.store.dashboard.CustomerProfile
	return &v, nil
}

func (r *DashboardRepository) CustomerPayments(context.Context) ([]entities.CustomerPayment, error) {
	return append([]entities.CustomerPayment(nil), r.store.dashboard.CustomerPayments...), nil
}

func (r *DashboardRepository) CustomerReminders(context.Context) ([]entities.CustomerReminder, error) {
	return append([]entities.CustomerReminder(nil), r.store.dashboard.CustomerReminders...), nil
}
