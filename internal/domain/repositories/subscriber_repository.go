package repositories

import (
	"context"

	"subversepay.backend/internal/domain/entities"
)

// SubscriberRepository defines operator subscriber data operations
type SubscriberRepository interface {
	List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error)
}

// ChurnPredictionRepository defines churn prediction data operations
type ChurnPredictionRepository interface {
	List(ctx context.Context, filter entities.ChurnPredictionFilter) ([]*entities.ChurnPrediction, error)
}
