// Package memory is the default store driver: process-local collections that
// reset to the seed dataset on every restart.
package memory

import (
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/infrastructure/seed"
)

// Store owns one collection per entity type plus the static dashboard blocks.
type Store struct {
	merchants        *collection[entities.Merchant]
	alerts           *collection[entities.Alert]
	settlements      *collection[entities.Settlement]
	subscribers      *collection[entities.Subscriber]
	churnPredictions *collection[entities.ChurnPrediction]
	dashboard        *seed.Dataset
}

// NewStore copies data into fresh collections; data may be reused afterwards.
func NewStore(data *seed.Dataset) *Store {
	return &Store{
		merchants:        newCollection(data.Merchants, nil),
		alerts:           newCollection(data.Alerts, nil),
		settlements:      newCollection(data.Settlements, nil),
		subscribers:      newCollection(data.Subscribers, nil),
		churnPredictions: newCollection(data.ChurnPredictions, cloneChurnPrediction),
		dashboard:        data,
	}
}

func cloneChurnPrediction(p *entities.ChurnPrediction) *entities.ChurnPrediction {
	cp := *p
	cp.Factors = append([]string(nil), p.Factors...)
	return &cp
}
