package repositories

import (
	"context"

	"subversepay.backend/internal/domain/entities"
)

// DashboardRepository serves the read-only dashboard blocks of every role
type DashboardRepository interface {
	SystemHealth(ctx context.Context) (*entities.SystemHealth, error)

	Collections(ctx context.Context) (*entities.CollectionsSummary, error)
	RetryAnalytics(ctx context.Context) (*entities.RetryAnalytics, error)
	LCOPerformance(ctx context.Context) ([]entities.LCOPerformance, error)
	ReminderEffectiveness(ctx context.Context) (*entities.ReminderEffectiveness, error)
	RevenueForecast(ctx context.Context) (*entities.RevenueForecast, error)

	OperatorCollections(ctx context.Context) (*entities.OperatorCollections, error)
	OperatorSettlements(ctx context.Context) (*entities.OperatorSettlements, error)

	CustomerProfile(ctx context.Context) (*entities.CustomerProfile, error)
	CustomerPayments(ctx context.Context) ([]entities.CustomerPayment, error)
	CustomerReminders(ctx context.Context) ([]entities.CustomerReminder, error)
}
