package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"subversepay.backend/internal/domain/entities"
)

// Mock MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id string) (*entities.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) List(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) UpdateKYCStatus(ctx context.Context, id string, status entities.KYCStatus) (*entities.Merchant, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

// Mock AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id string) (*entities.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Alert), args.Error(1)
}

func (m *MockAlertRepository) List(ctx context.Context, filter entities.AlertFilter) ([]*entities.Alert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Alert), args.Error(1)
}

func (m *MockAlertRepository) UpdateStatus(ctx context.Context, id string, status entities.AlertStatus) (*entities.Alert, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Alert), args.Error(1)
}

// Mock IDGenerator
type MockIDGenerator struct {
	mock.Mock
}

func (m *MockIDGenerator) NewID() string {
	args := m.Called()
	return args.String(0)
}
