package usecases

import (
	"context"
	"errors"

	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/domain/repositories"
)

// AlertUsecase handles platform alerts
type AlertUsecase struct {
	alertRepo repositories.AlertRepository
}

func NewAlertUsecase(alertRepo repositories.AlertRepository) *AlertUsecase {
	return &AlertUsecase{alertRepo: alertRepo}
}

func (u *AlertUsecase) List(ctx context.Context, filter entities.AlertFilter) ([]*entities.Alert, error) {
	return u.alertRepo.List(ctx, filter)
}

// UpdateStatus resolves or reopens an alert.
func (u *AlertUsecase) UpdateStatus(ctx context.Context, id string, status entities.AlertStatus) (*entities.Alert, error) {
	if !status.IsValid() {
		return nil, domainerrors.InvalidStatus("status must be one of active, resolved")
	}
	a, err := u.alertRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Alert not found")
		}
		return nil, err
	}
	return a, nil
}

// SettlementUsecase lists merchant payouts
type SettlementUsecase struct {
	settlementRepo repositories.SettlementRepository
}

func NewSettlementUsecase(settlementRepo repositories.SettlementRepository) *SettlementUsecase {
	return &SettlementUsecase{settlementRepo: settlementRepo}
}

func (u *SettlementUsecase) List(ctx context.Context, filter entities.SettlementFilter) ([]*entities.Settlement, error) {
	return u.settlementRepo.List(ctx, filter)
}
