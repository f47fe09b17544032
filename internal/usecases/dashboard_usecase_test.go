package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/infrastructure/memory"
	"subversepay.backend/internal/infrastructure/seed"
	"subversepay.backend/internal/usecases"
)

func newDashboardStore() *memory.Store {
	return memory.NewStore(seed.Load(fixedNow))
}

func TestSystemHealthUsecase_Get(t *testing.T) {
	uc := usecases.NewSystemHealthUsecase(memory.NewDashboardRepository(newDashboardStore()))

	health, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 99.98, health.APIUptime)
	assert.Equal(t, "2024-06-06T12:00:00Z", health.LastUpdated)
}

func TestMerchantAdminUsecase_Blocks(t *testing.T) {
	store := newDashboardStore()
	uc := usecases.NewMerchantAdminUsecase(memory.NewDashboardRepository(store), memory.NewChurnPredictionRepository(store))
	ctx := context.Background()

	collections, err := uc.Collections(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, collections.MonthlyTrend)

	retry, err := uc.RetryAnalytics(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, retry.FailureReasons)

	lco, err := uc.LCOPerformance(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, lco)

	reminders, err := uc.Reminders(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, reminders.ByChannel)

	forecast, err := uc.RevenueForecast(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, forecast.MonthlyForecast)

	high, err := uc.ChurnPredictions(ctx, entities.ChurnPredictionFilter{RiskLevel: "high"})
	require.NoError(t, err)
	assert.Len(t, high, 2)
}

func TestOperatorUsecase_SubscribersAndBlocks(t *testing.T) {
	store := newDashboardStore()
	uc := usecases.NewOperatorUsecase(memory.NewDashboardRepository(store), memory.NewSubscriberRepository(store))
	ctx := context.Background()

	active, err := uc.Subscribers(ctx, entities.SubscriberFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, active, 4)

	collections, err := uc.Collections(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, collections.DailyBreakdown)

	settlements, err := uc.Settlements(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settlements.SettlementHistory)
}

func TestOperatorUsecase_QuickAction(t *testing.T) {
	store := newDashboardStore()
	uc := usecases.NewOperatorUsecase(memory.NewDashboardRepository(store), memory.NewSubscriberRepository(store))
	ctx := context.Background()
	input := &entities.SubscriberActionInput{SubscriberID: "SUB-001", SubscriberName: "Rajesh Kumar"}

	cases := map[entities.OperatorAction]string{
		entities.OperatorActionSendReminder: "Reminder sent to Rajesh Kumar",
		entities.OperatorActionTriggerRetry: "Retry triggered for Rajesh Kumar",
		entities.OperatorActionPauseService: "Service paused for Rajesh Kumar",
	}
	for action, want := range cases {
		msg, err := uc.QuickAction(ctx, action, input)
		require.NoError(t, err)
		assert.Equal(t, want, msg)
	}

	msg, err := uc.QuickAction(ctx, entities.OperatorActionSendReminder, &entities.SubscriberActionInput{SubscriberID: "SUB-002"})
	require.NoError(t, err)
	assert.Equal(t, "Reminder sent to SUB-002", msg)

	_, err = uc.QuickAction(ctx, entities.OperatorActionSendReminder, &entities.SubscriberActionInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.QuickAction(ctx, entities.OperatorAction("reboot"), input)
	appErr, ok := domainerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	subs, err := uc.Subscribers(ctx, entities.SubscriberFilter{})
	require.NoError(t, err)
	assert.Len(t, subs, 5, "quick actions never change state")
}

func TestCustomerUsecase(t *testing.T) {
	uc := usecases.NewCustomerUsecase(memory.NewDashboardRepository(newDashboardStore()), clock())
	ctx := context.Background()

	profile, err := uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SUB-VN-12345", profile.SubscriberID)

	payments, err := uc.Payments(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, payments)

	reminders, err := uc.Reminders(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, reminders)

	order := uc.MakePayment(ctx, &entities.MakePaymentInput{Amount: 599})
	assert.Equal(t, "ORDER_1717675200000", order.OrderID)
	assert.Equal(t, 599.0, order.Amount)
	assert.Equal(t, usecases.PaymentLinkBase, order.PaymentLink)

	state, msg := uc.ToggleAutopay(ctx, &entities.ToggleAutopayInput{Enabled: true})
	assert.True(t, state.AutoPayEnabled)
	assert.Equal(t, "AutoPay enabled", msg)

	state, msg = uc.ToggleAutopay(ctx, &entities.ToggleAutopayInput{Enabled: false})
	assert.False(t, state.AutoPayEnabled)
	assert.Equal(t, "AutoPay disabled", msg)
}
