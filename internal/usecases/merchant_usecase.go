package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant onboarding and KYC decisions
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	idGen        repositories.IDGenerator
	now          func() time.Time
}

// NewMerchantUsecase creates a new merchant usecase. A nil now defaults to time.Now.
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	idGen repositories.IDGenerator,
	now func() time.Time,
) *MerchantUsecase {
	if now == nil {
		now = time.Now
	}
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		idGen:        idGen,
		now:          now,
	}
}

// List returns merchants matching filter in store order.
func (u *MerchantUsecase) List(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx, filter)
}

// Get returns a single merchant.
func (u *MerchantUsecase) Get(ctx context.Context, id string) (*entities.Merchant, error) {
	m, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, merchantLookupError(err)
	}
	return m, nil
}

// Create onboards a merchant. The record always starts pending with zero metrics.
func (u *MerchantUsecase) Create(ctx context.Context, input *entities.CreateMerchantInput) (*entities.Merchant, error) {
	input.Normalize()
	if input.Name == "" || input.Vertical == "" {
		return nil, domainerrors.BadRequest("name and vertical are required")
	}

	merchant := &entities.Merchant{
		ID:           u.idGen.NewID(),
		Name:         input.Name,
		Vertical:     input.Vertical,
		KYCStatus:    entities.KYCStatusPending,
		CreatedAt:    u.now().UTC(),
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}
	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// UpdateKYCStatus records a KYC decision and returns the updated merchant.
func (u *MerchantUsecase) UpdateKYCStatus(ctx context.Context, id string, status entities.KYCStatus) (*entities.Merchant, error) {
	if !status.IsValid() {
		return nil, domainerrors.InvalidStatus("status must be one of " + joinStatuses(entities.KYCStatuses))
	}
	m, err := u.merchantRepo.UpdateKYCStatus(ctx, id, status)
	if err != nil {
		return nil, merchantLookupError(err)
	}
	return m, nil
}

// KYCMessage is the acknowledgment returned after a KYC decision.
func KYCMessage(status entities.KYCStatus) string {
	return "KYC " + string(status) + " successfully"
}

func merchantLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Merchant not found")
	}
	return err
}

func joinStatuses[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}
