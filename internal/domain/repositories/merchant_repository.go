package repositories

import (
	"context"

	"subversepay.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id string) (*entities.Merchant, error)
	List(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error)
	UpdateKYCStatus(ctx context.Context, id string, status entities.KYCStatus) (*entities.Merchant, error)
}

// AlertRepository defines alert data operations
type AlertRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Alert, error)
	List(ctx context.Context, filter entities.AlertFilter) ([]*entities.Alert, error)
	UpdateStatus(ctx context.Context, id string, status entities.AlertStatus) (*entities.Alert, error)
}

// SettlementRepository defines settlement data operations
type SettlementRepository interface {
	List(ctx context.Context, filter entities.SettlementFilter) ([]*entities.Settlement, error)
}
