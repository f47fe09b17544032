package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/infrastructure/models"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*entities.Alert, error) {
	var m models.Alert
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return alertToEntity(&m), nil
}

func (r *AlertRepository) List(ctx context.Context, filter entities.AlertFilter) ([]*entities.Alert, error) {
	query := GetDB(ctx, r.db).Model(&models.Alert{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}

	var ms []models.Alert
	if err := query.Order("seq ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Alert, 0, len(ms))
	for i := range ms {
		items = append(items, alertToEntity(&ms[i]))
	}
	return items, nil
}

func (r *AlertRepository) UpdateStatus(ctx context.Context, id string, status entities.AlertStatus) (*entities.Alert, error) {
	result := GetDB(ctx, r.db).
		Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func alertToEntity(m *models.Alert) *entities.Alert {
	return &entities.Alert{
		ID:           m.ID,
		Type:         entities.AlertType(m.Type),
		Severity:     entities.AlertSeverity(m.Severity),
		MerchantID:   m.MerchantID,
		MerchantName: m.MerchantName,
		Message:      m.Message,
		CreatedAt:    m.CreatedAt.UTC(),
		Status:       entities.AlertStatus(m.Status),
	}
}

func alertToModel(e *entities.Alert) *models.Alert {
	return &models.Alert{
		ID:           e.ID,
		Type:         string(e.Type),
		Severity:     string(e.Severity),
		MerchantID:   e.MerchantID,
		MerchantName: e.MerchantName,
		Message:      e.Message,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
	}
}

type SettlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) List(ctx context.Context, filter entities.SettlementFilter) ([]*entities.Settlement, error) {
	query := GetDB(ctx, r.db).Model(&models.Settlement{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var ms []models.Settlement
	if err := query.Order("seq ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Settlement, 0, len(ms))
	for i := range ms {
		items = append(items, settlementToEntity(&ms[i]))
	}
	return items, nil
}

func settlementToEntity(m *models.Settlement) *entities.Settlement {
	return &entities.Settlement{
		ID:               m.ID,
		MerchantID:       m.MerchantID,
		MerchantName:     m.MerchantName,
		Amount:           m.Amount,
		Status:           entities.SettlementStatus(m.Status),
		PayoutDate:       m.PayoutDate,
		TransactionCount: m.TransactionCount,
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

func settlementToModel(e *entities.Settlement) *models.Settlement {
	return &models.Settlement{
		ID:               e.ID,
		MerchantID:       e.MerchantID,
		MerchantName:     e.MerchantName,
		Amount:           e.Amount,
		Status:           string(e.Status),
		PayoutDate:       e.PayoutDate,
		TransactionCount: e.TransactionCount,
		CreatedAt:        e.CreatedAt,
	}
}
