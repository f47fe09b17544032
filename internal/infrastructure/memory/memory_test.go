package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/infrastructure/seed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(seed.Load(time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)))
}

func TestMerchantRepository_ListFilters(t *testing.T) {
	repo := NewMerchantRepository(newTestStore(t))
	ctx := context.Background()

	all, err := repo.List(ctx, entities.MerchantFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "5", all[4].ID)

	isp, err := repo.List(ctx, entities.MerchantFilter{Vertical: "ISP"})
	require.NoError(t, err)
	require.Len(t, isp, 2)
	assert.Equal(t, "FiberLink ISP", isp[0].Name)
	assert.Equal(t, "SpeedNet ISP", isp[1].Name)

	rejectedCable, err := repo.List(ctx, entities.MerchantFilter{KYCStatus: "rejected", Vertical: "Cable/DTH"})
	require.NoError(t, err)
	require.Len(t, rejectedCable, 1)
	assert.Equal(t, "4", rejectedCable[0].ID)

	none, err := repo.List(ctx, entities.MerchantFilter{Vertical: "Unknown"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMerchantRepository_GetByID(t *testing.T) {
	repo := NewMerchantRepository(newTestStore(t))

	m, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "PowerFit Gyms", m.Name)

	_, err = repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_ReturnsCopies(t *testing.T) {
	repo := NewMerchantRepository(newTestStore(t))
	ctx := context.Background()

	m, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	m.Name = "mutated"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "VisionNet Cable", again.Name)
}

func TestMerchantRepository_CreateAndUpdate(t *testing.T) {
	store := newTestStore(t)
	repo := NewMerchantRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Merchant{ID: "6", Name: "New Co", Vertical: "OTT", KYCStatus: entities.KYCStatusPending}))
	assert.Equal(t, 6, store.merchants.len())

	got, err := repo.GetByID(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, entities.KYCStatusPending, got.KYCStatus)

	updated, err := repo.UpdateKYCStatus(ctx, "6", entities.KYCStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.KYCStatusApproved, updated.KYCStatus)

	approved, err := repo.List(ctx, entities.MerchantFilter{KYCStatus: "approved"})
	require.NoError(t, err)
	assert.Len(t, approved, 5)

	_, err = repo.UpdateKYCStatus(ctx, "999", entities.KYCStatusApproved)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_ConcurrentWrites(t *testing.T) {
	store := newTestStore(t)
	repo := NewMerchantRepository(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := entities.KYCStatusApproved
			if i%2 == 0 {
				status = entities.KYCStatusPending
			}
			_, _ = repo.UpdateKYCStatus(ctx, "2", status)
			_ = repo.Create(ctx, &entities.Merchant{ID: fmt.Sprintf("c-%d", i), Name: "n", Vertical: "v"})
			_, _ = repo.List(ctx, entities.MerchantFilter{})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 55, store.merchants.len())
	m, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, m.KYCStatus.IsValid())
}

func TestAlertRepository(t *testing.T) {
	repo := NewAlertRepository(newTestStore(t))
	ctx := context.Background()

	active, err := repo.List(ctx, entities.AlertFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, active, 3)

	high, err := repo.List(ctx, entities.AlertFilter{Severity: "high"})
	require.NoError(t, err)
	assert.Len(t, high, 2)

	a, err := repo.UpdateStatus(ctx, "1", entities.AlertStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entities.AlertStatusResolved, a.Status)

	active, err = repo.List(ctx, entities.AlertFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	_, err = repo.GetByID(ctx, "42")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.UpdateStatus(ctx, "42", entities.AlertStatusActive)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSettlementRepository(t *testing.T) {
	repo := NewSettlementRepository(newTestStore(t))

	completed, err := repo.List(context.Background(), entities.SettlementFilter{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.Equal(t, "VisionNet Cable", completed[0].MerchantName)
	assert.Equal(t, "PowerFit Gyms", completed[1].MerchantName)
}

func TestSubscriberAndChurnRepositories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	subs, err := NewSubscriberRepository(store).List(ctx, entities.SubscriberFilter{Status: "active", RiskLevel: "high"})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "SUB-001", subs[0].ID)

	churn := NewChurnPredictionRepository(store)
	preds, err := churn.List(ctx, entities.ChurnPredictionFilter{RiskLevel: "medium"})
	require.NoError(t, err)
	require.Len(t, preds, 2)

	preds[0].Factors[0] = "mutated"
	again, err := churn.List(ctx, entities.ChurnPredictionFilter{RiskLevel: "medium"})
	require.NoError(t, err)
	assert.Equal(t, "1 failed payment", again[0].Factors[0])
}

func TestDashboardRepository(t *testing.T) {
	repo := NewDashboardRepository(newTestStore(t))
	ctx := context.Background()

	health, err := repo.SystemHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-06T12:00:00Z", health.LastUpdated)
	assert.Equal(t, "operational", health.RazorpayStatus)

	lco, err := repo.LCOPerformance(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, lco)

	payments, err := repo.CustomerPayments(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, payments)

	reminders, err := repo.CustomerReminders(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, reminders)

	profile, err := repo.CustomerProfile(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.SubscriberID)
}
