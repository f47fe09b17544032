package repositories

import (
	"context"

	"gorm.io/gorm"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/infrastructure/models"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	query := GetDB(ctx, r.db).Model(&models.Subscriber{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RiskLevel != "" {
		query = query.Where("risk_level = ?", filter.RiskLevel)
	}

	var ms []models.Subscriber
	if err := query.Order("seq ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Subscriber, 0, len(ms))
	for i := range ms {
		items = append(items, subscriberToEntity(&ms[i]))
	}
	return items, nil
}

func subscriberToEntity(m *models.Subscriber) *entities.Subscriber {
	return &entities.Subscriber{
		ID:              m.ID,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		Plan:            m.Plan,
		Status:          entities.SubscriberStatus(m.Status),
		ExpiryDate:      m.ExpiryDate,
		LastPayment:     m.LastPayment,
		PaymentMethod:   m.PaymentMethod,
		RiskLevel:       entities.RiskLevel(m.RiskLevel),
		DaysUntilExpiry: m.DaysUntilExpiry,
	}
}

func subscriberToModel(e *entities.Subscriber) *models.Subscriber {
	return &models.Subscriber{
		ID:              e.ID,
		Name:            e.Name,
		Phone:           e.Phone,
		Email:           e.Email,
		Plan:            e.Plan,
		Status:          string(e.Status),
		ExpiryDate:      e.ExpiryDate,
		LastPayment:     e.LastPayment,
		PaymentMethod:   e.PaymentMethod,
		RiskLevel:       string(e.RiskLevel),
		DaysUntilExpiry: e.DaysUntilExpiry,
	}
}

type ChurnPredictionRepository struct {
	db *gorm.DB
}

func NewChurnPredictionRepository(db *gorm.DB) *ChurnPredictionRepository {
	return &ChurnPredictionRepository{db: db}
}

func (r *ChurnPredictionRepository) List(ctx context.Context, filter entities.ChurnPredictionFilter) ([]*entities.ChurnPrediction, error) {
	query := GetDB(ctx, r.db).Model(&models.ChurnPrediction{})
	if filter.RiskLevel != "" {
		query = query.Where("risk_level = ?", filter.RiskLevel)
	}

	var ms []models.ChurnPrediction
	if err := query.Order("seq ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ChurnPrediction, 0, len(ms))
	for i := range ms {
		items = append(items, churnPredictionToEntity(&ms[i]))
	}
	return items, nil
}

func churnPredictionToEntity(m *models.ChurnPrediction) *entities.ChurnPrediction {
	factors := m.Factors
	if factors == nil {
		factors = []string{}
	}
	return &entities.ChurnPrediction{
		ID:                 m.ID,
		SubscriberName:     m.SubscriberName,
		SubscriberID:       m.SubscriberID,
		PlanAmount:         m.PlanAmount,
		RiskScore:          m.RiskScore,
		RiskLevel:          entities.RiskLevel(m.RiskLevel),
		Factors:            factors,
		PredictedChurnDate: m.PredictedChurnDate,
		RecommendedAction:  m.RecommendedAction,
	}
}

func churnPredictionToModel(e *entities.ChurnPrediction) *models.ChurnPrediction {
	return &models.ChurnPrediction{
		ID:                 e.ID,
		SubscriberID:       e.SubscriberID,
		SubscriberName:     e.SubscriberName,
		PlanAmount:         e.PlanAmount,
		RiskScore:          e.RiskScore,
		RiskLevel:          string(e.RiskLevel),
		Factors:            e.Factors,
		PredictedChurnDate: e.PredictedChurnDate,
		RecommendedAction:  e.RecommendedAction,
	}
}
