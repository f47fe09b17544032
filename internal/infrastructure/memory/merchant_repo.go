package memory

import (
	"context"

	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
)

// MerchantRepository implements merchant data operations over the store
type MerchantRepository struct {
	store *Store
}

func NewMerchantRepository(store *Store) *MerchantRepository {
	return &MerchantRepository{store: store}
}

func (r *MerchantRepository) Create(_ context.Context, merchant *entities.Merchant) error {
	r.store.merchants.append(merchant)
	return nil
}

func (r *MerchantRepository) GetByID(_ context.Context, id string) (*entities.Merchant, error) {
	m, ok := r.store.merchants.find(func(m *entities.Merchant) bool { return m.ID == id })
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return m, nil
}

func (r *MerchantRepository) List(_ context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	return r.store.merchants.snapshot(filter.Matches), nil
}

func (r *MerchantRepository) UpdateKYCStatus(_ context.Context, id string, status entities.KYCStatus) (*entities.Merchant, error) {
	m, ok := r.store.merchants.update(
		func(m *entities.Merchant) bool { return m.ID == id },
		func(m *entities.Merchant) { m.KYCStatus = status },
	)
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return m, nil
}
