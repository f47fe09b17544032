package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"subversepay.backend/internal/domain/entities"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/domain/repositories"
)

// PaymentLinkBase is the hosted checkout link handed out with every order.
const PaymentLinkBase = "https://razorpay.com/pay/..."

// SystemHealthUsecase serves the platform status snapshot
type SystemHealthUsecase struct {
	dashboardRepo repositories.DashboardRepository
}

func NewSystemHealthUsecase(dashboardRepo repositories.DashboardRepository) *SystemHealthUsecase {
	return &SystemHealthUsecase{dashboardRepo: dashboardRepo}
}

func (u *SystemHealthUsecase) Get(ctx context.Context) (*entities.SystemHealth, error) {
	return u.dashboardRepo.SystemHealth(ctx)
}

// MerchantAdminUsecase serves the merchant admin dashboard
type MerchantAdminUsecase struct {
	dashboardRepo repositories.DashboardRepository
	churnRepo     repositories.ChurnPredictionRepository
}

func NewMerchantAdminUsecase(
	dashboardRepo repositories.DashboardRepository,
	churnRepo repositories.ChurnPredictionRepository,
) *MerchantAdminUsecase {
	return &MerchantAdminUsecase{dashboardRepo: dashboardRepo, churnRepo: churnRepo}
}

func (u *MerchantAdminUsecase) Collections(ctx context.Context) (*entities.CollectionsSummary, error) {
	return u.dashboardRepo.Collections(ctx)
}

func (u *MerchantAdminUsecase) RetryAnalytics(ctx context.Context) (*entities.RetryAnalytics, error) {
	return u.dashboardRepo.RetryAnalytics(ctx)
}

func (u *MerchantAdminUsecase) ChurnPredictions(ctx context.Context, filter entities.ChurnPredictionFilter) ([]*entities.ChurnPrediction, error) {
	return u.churnRepo.List(ctx, filter)
}

func (u *MerchantAdminUsecase) LCOPerformance(ctx context.Context) ([]entities.LCOPerformance, error) {
	return u.dashboardRepo.LCOPerformance(ctx)
}

func (u *MerchantAdminUsecase) Reminders(ctx context.Context) (*entities.ReminderEffectiveness, error) {
	return u.dashboardRepo.ReminderEffectiveness(ctx)
}

func (u *MerchantAdminUsecase) RevenueForecast(ctx context.Context) (*entities.RevenueForecast, error) {
	return u.dashboardRepo.RevenueForecast(ctx)
}

// OperatorUsecase serves the local cable operator dashboard
type OperatorUsecase struct {
	dashboardRepo  repositories.DashboardRepository
	subscriberRepo repositories.SubscriberRepository
}

func NewOperatorUsecase(
	dashboardRepo repositories.DashboardRepository,
	subscriberRepo repositories.SubscriberRepository,
) *OperatorUsecase {
	return &OperatorUsecase{dashboardRepo: dashboardRepo, subscriberRepo: subscriberRepo}
}

func (u *OperatorUsecase) Subscribers(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	return u.subscriberRepo.List(ctx, filter)
}

func (u *OperatorUsecase) Collections(ctx context.Context) (*entities.OperatorCollections, error) {
	return u.dashboardRepo.OperatorCollections(ctx)
}

func (u *OperatorUsecase) Settlements(ctx context.Context) (*entities.OperatorSettlements, error) {
	return u.dashboardRepo.OperatorSettlements(ctx)
}

// QuickAction acknowledges an operator action on a subscriber. Nothing is
// persisted; the returned message names the subscriber.
func (u *OperatorUsecase) QuickAction(_ context.Context, action entities.OperatorAction, input *entities.SubscriberActionInput) (string, error) {
	target := strings.TrimSpace(input.SubscriberName)
	if target == "" {
		target = strings.TrimSpace(input.SubscriberID)
	}
	if target == "" {
		return "", domainerrors.BadRequest("subscriber_name is required")
	}

	switch action {
	case entities.OperatorActionSendReminder:
		return "Reminder sent to " + target, nil
	case entities.OperatorActionTriggerRetry:
		return "Retry triggered for " + target, nil
	case entities.OperatorActionPauseService:
		return "Service paused for " + target, nil
	}
	return "", domainerrors.EndpointNotFound()
}

// CustomerUsecase serves the subscriber self-service portal
type CustomerUsecase struct {
	dashboardRepo repositories.DashboardRepository
	now           func() time.Time
}

// NewCustomerUsecase creates a customer usecase. A nil now defaults to time.Now.
func NewCustomerUsecase(dashboardRepo repositories.DashboardRepository, now func() time.Time) *CustomerUsecase {
	if now == nil {
		now = time.Now
	}
	return &CustomerUsecase{dashboardRepo: dashboardRepo, now: now}
}

func (u *CustomerUsecase) Profile(ctx context.Context) (*entities.CustomerProfile, error) {
	return u.dashboardRepo.CustomerProfile(ctx)
}

func (u *CustomerUsecase) Payments(ctx context.Context) ([]entities.CustomerPayment, error) {
	return u.dashboardRepo.CustomerPayments(ctx)
}

func (u *CustomerUsecase) Reminders(ctx context.Context) ([]entities.CustomerReminder, error) {
	return u.dashboardRepo.CustomerReminders(ctx)
}

// MakePayment issues a synthetic order for the requested amount.
func (u *CustomerUsecase) MakePayment(_ context.Context, input *entities.MakePaymentInput) *entities.PaymentOrder {
	return &entities.PaymentOrder{
		OrderID:     "ORDER_" + strconv.FormatInt(u.now().UnixMilli(), 10),
		Amount:      input.Amount,
		PaymentLink: PaymentLinkBase,
	}
}

// ToggleAutopay echoes the requested AutoPay state with its acknowledgment.
func (u *CustomerUsecase) ToggleAutopay(_ context.Context, input *entities.ToggleAutopayInput) (*entities.AutopayState, string) {
	msg := "AutoPay disabled"
	if input.Enabled {
		msg = "AutoPay enabled"
	}
	return &entities.AutopayState{AutoPayEnabled: input.Enabled}, msg
}
