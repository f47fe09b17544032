package memory

import (
	"context"

	"subversepay.backend/internal/domain/entities"
)

type SubscriberRepository struct {
	store *Store
}

func NewSubscriberRepository(store *Store) *SubscriberRepository {
	return &SubscriberRepository{store: store}
}

func (r *SubscriberRepository) List(_ context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	return r.store.subscribers.snapshot(filter.Matches), nil
}

type ChurnPredictionRepository struct {
	store *Store
}

func NewChurnPredictionRepository(store *Store) *ChurnPredictionRepository {
	return &ChurnPredictionRepository{store: store}
}

func (r *ChurnPredictionRepository) List(_ context.Context, filter entities.ChurnPredictionFilter) ([]*entities.ChurnPrediction, error) {
	return r.store.churnPredictions.snapshot(filter.Matches), nil
}
