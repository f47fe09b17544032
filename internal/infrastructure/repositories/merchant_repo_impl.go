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

type MerchantRepository struct {
	db  *gorm.DB
	uow *UnitOfWorkImpl
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db, uow: &UnitOfWorkImpl{db: db}}
}

func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	m := merchantToModel(merchant)
	m.Seq = nextSeq()
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *MerchantRepository) GetByID(ctx context.Context, id string) (*entities.Merchant, error) {
	return r.getByID(GetDB(ctx, r.db), id)
}

func (r *MerchantRepository) List(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	query := GetDB(ctx, r.db).Model(&models.Merchant{})
	if filter.KYCStatus != "" {
		query = query.Where("kyc_status = ?", filter.KYCStatus)
	}
	if filter.Vertical != "" {
		query = query.Where("vertical = ?", filter.Vertical)
	}

	var ms []models.Merchant
	if err := query.Order("seq ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		items = append(items, merchantToEntity(&ms[i]))
	}
	return items, nil
}

func (r *MerchantRepository) UpdateKYCStatus(ctx context.Context, id string, status entities.KYCStatus) (*entities.Merchant, error) {
	var updated *entities.Merchant
	err := r.uow.Do(ctx, func(ctx context.Context) error {
		db := GetDB(r.uow.WithLock(ctx), r.db)
		if _, err := r.getByID(db, id); err != nil {
			return err
		}
		if err := GetDB(ctx, r.db).Model(&models.Merchant{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"kyc_status": string(status), "updated_at": time.Now()}).Error; err != nil {
			return err
		}
		m, err := r.getByID(GetDB(ctx, r.db), id)
		if err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *MerchantRepository) getByID(db *gorm.DB, id string) (*entities.Merchant, error) {
	var m models.Merchant
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return merchantToEntity(&m), nil
}

func merchantToEntity(m *models.Merchant) *entities.Merchant {
	return &entities.Merchant{
		ID:                m.ID,
		Name:              m.Name,
		Vertical:          m.Vertical,
		KYCStatus:         entities.KYCStatus(m.KYCStatus),
		ActiveSubscribers: m.ActiveSubscribers,
		TPV:               m.TPV,
		ChurnRate:         m.ChurnRate,
		MonthlyGrowth:     m.MonthlyGrowth,
		AvgARPU:           m.AvgARPU,
		CreatedAt:         m.CreatedAt.UTC(),
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
	}
}

func merchantToModel(e *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:                e.ID,
		Name:              e.Name,
		Vertical:          e.Vertical,
		KYCStatus:         string(e.KYCStatus),
		ActiveSubscribers: e.ActiveSubscribers,
		TPV:               e.TPV,
		ChurnRate:         e.ChurnRate,
		MonthlyGrowth:     e.MonthlyGrowth,
		AvgARPU:           e.AvgARPU,
		ContactEmail:      e.ContactEmail,
		ContactPhone:      e.ContactPhone,
		CreatedAt:         e.CreatedAt,
	}
}
