// Package seed holds the demo dataset every store driver starts from.
package seed

import (
	"time"

	"github.com/volatiletech/null/v8"
	"subversepay.backend/internal/domain/entities"
)

// Dataset is a complete, independently mutable copy of the demo data.
type Dataset struct {
	Merchants        []*entities.Merchant
	Alerts           []*entities.Alert
	Settlements      []*entities.Settlement
	Subscribers      []*entities.Subscriber
	ChurnPredictions []*entities.ChurnPrediction

	SystemHealth          entities.SystemHealth
	Collections           entities.CollectionsSummary
	RetryAnalytics        entities.RetryAnalytics
	LCOPerformance        []entities.LCOPerformance
	ReminderEffectiveness entities.ReminderEffectiveness
	RevenueForecast       entities.RevenueForecast
	OperatorCollections   entities.OperatorCollections
	OperatorSettlements   entities.OperatorSettlements
	CustomerProfile       entities.CustomerProfile
	CustomerPayments      []entities.CustomerPayment
	CustomerReminders     []entities.CustomerReminder
}

// Load builds a fresh dataset. Alert timestamps and the health snapshot are
// relative to now.
func Load(now time.Time) *Dataset {
	return &Dataset{
		Merchants:        Merchants(),
		Alerts:           Alerts(now),
		Settlements:      Settlements(),
		Subscribers:      Subscribers(),
		ChurnPredictions: ChurnPredictions(),

		SystemHealth: entities.SystemHealth{
			APIUptime:           99.98,
			RazorpayStatus:      "operational",
			SupabaseStatus:      "operational",
			AvgResponseTime:     145,
			TotalRequestsToday:  45678,
			FailedRequestsToday: 23,
			LastUpdated:         now.UTC().Format(time.RFC3339),
		},
		Collections:           collections(),
		RetryAnalytics:        retryAnalytics(),
		LCOPerformance:        lcoPerformance(),
		ReminderEffectiveness: reminderEffectiveness(),
		RevenueForecast:       revenueForecast(),
		OperatorCollections:   operatorCollections(),
		OperatorSettlements:   operatorSettlements(),
		CustomerProfile:       customerProfile(),
		CustomerPayments:      customerPayments(),
		CustomerReminders:     customerReminders(),
	}
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Merchants() []*entities.Merchant {
	return []*entities.Merchant{
		{
			ID: "1", Name: "VisionNet Cable", Vertical: "Cable/DTH", KYCStatus: entities.KYCStatusApproved,
			ActiveSubscribers: 12500, TPV: 4250000, ChurnRate: 8.5, MonthlyGrowth: 12.3, AvgARPU: 340,
			CreatedAt: date("2024-01-15"), ContactEmail: "admin@visionnet.com", ContactPhone: "+91 9876543210",
		},
		{
			ID: "2", Name: "FiberLink ISP", Vertical: "ISP", KYCStatus: entities.KYCStatusApproved,
			ActiveSubscribers: 8900, TPV: 5340000, ChurnRate: 5.2, MonthlyGrowth: 18.7, AvgARPU: 600,
			CreatedAt: date("2024-02-20"), ContactEmail: "ops@fiberlink.com", ContactPhone: "+91 9876543211",
		},
		{
			ID: "3", Name: "PowerFit Gyms", Vertical: "Gym/Fitness", KYCStatus: entities.KYCStatusApproved,
			ActiveSubscribers: 3400, TPV: 1360000, ChurnRate: 15.8, MonthlyGrowth: 8.5, AvgARPU: 400,
			CreatedAt: date("2024-05-10"), ContactEmail: "hello@powerfit.com", ContactPhone: "+91 9876543212",
		},
		{
			ID: "4", Name: "MetroWave Cable", Vertical: "Cable/DTH", KYCStatus: entities.KYCStatusRejected,
			CreatedAt: date("2024-05-25"), ContactEmail: "info@metrowave.com", ContactPhone: "+91 9876543213",
		},
		{
			ID: "5", Name: "SpeedNet ISP", Vertical: "ISP", KYCStatus: entities.KYCStatusApproved,
			ActiveSubscribers: 15600, TPV: 9360000, ChurnRate: 6.8, MonthlyGrowth: 15.2, AvgARPU: 600,
			CreatedAt: date("2024-03-05"), ContactEmail: "admin@speednet.com", ContactPhone: "+91 9876543214",
		},
	}
}

func Alerts(now time.Time) []*entities.Alert {
	return []*entities.Alert{
		{
			ID: "1", Type: entities.AlertTypeFraud, Severity: entities.AlertSeverityHigh,
			MerchantID: "1", MerchantName: "VisionNet Cable",
			Message:   "Unusual payment pattern detected: 15 failed payments from same IP",
			CreatedAt: now, Status: entities.AlertStatusActive,
		},
		{
			ID: "2", Type: entities.AlertTypeChurn, Severity: entities.AlertSeverityMedium,
			MerchantID: "3", MerchantName: "PowerFit Gyms",
			Message:   "Churn rate increased by 23% in last 7 days",
			CreatedAt: now.Add(-2 * time.Hour), Status: entities.AlertStatusActive,
		},
		{
			ID: "3", Type: entities.AlertTypeSettlement, Severity: entities.AlertSeverityLow,
			MerchantID: "2", MerchantName: "FiberLink ISP",
			Message:   "Settlement delayed by 2 hours due to bank processing",
			CreatedAt: now.Add(-5 * time.Hour), Status: entities.AlertStatusResolved,
		},
		{
			ID: "4", Type: entities.AlertTypeRisk, Severity: entities.AlertSeverityHigh,
			MerchantID: "1", MerchantName: "VisionNet Cable",
			Message:   "High value transaction (₹2.5L) flagged for manual review",
			CreatedAt: now.Add(-1 * time.Hour), Status: entities.AlertStatusActive,
		},
	}
}

func Settlements() []*entities.Settlement {
	return []*entities.Settlement{
		{
			ID: "1", MerchantID: "1", MerchantName: "VisionNet Cable", Amount: 425000,
			Status: entities.SettlementStatusCompleted, PayoutDate: "2024-06-01", TransactionCount: 1250,
			CreatedAt: timestamp("2024-06-01T10:30:00Z"),
		},
		{
			ID: "2", MerchantID: "2", MerchantName: "FiberLink ISP", Amount: 534000,
			Status: entities.SettlementStatusProcessing, PayoutDate: "2024-06-02", TransactionCount: 890,
			CreatedAt: timestamp("2024-06-02T08:15:00Z"),
		},
		{
			ID: "3", MerchantID: "5", MerchantName: "SpeedNet ISP", Amount: 936000,
			Status: entities.SettlementStatusPending, PayoutDate: "2024-06-03", TransactionCount: 1560,
			CreatedAt: timestamp("2024-06-03T09:00:00Z"),
		},
		{
			ID: "4", MerchantID: "3", MerchantName: "PowerFit Gyms", Amount: 136000,
			Status: entities.SettlementStatusCompleted, PayoutDate: "2024-06-01", TransactionCount: 340,
			CreatedAt: timestamp("2024-06-01T11:45:00Z"),
		},
	}
}

func Subscribers() []*entities.Subscriber {
	return []*entities.Subscriber{
		{
			ID: "SUB-001", Name: "Rajesh Kumar", Phone: "+91 9876543210", Email: "rajesh@example.com",
			Plan: "Premium Cable - ₹599/month", Status: entities.SubscriberStatusActive,
			ExpiryDate: "2024-06-20", LastPayment: "2024-05-20", PaymentMethod: "UPI AutoPay",
			RiskLevel: entities.RiskLevelHigh, DaysUntilExpiry: 14,
		},
		{
			ID: "SUB-002", Name: "Priya Sharma", Phone: "+91 9876543211", Email: "priya@example.com",
			Plan: "Basic Cable - ₹399/month", Status: entities.SubscriberStatusActive,
			ExpiryDate: "2024-06-25", LastPayment: "2024-05-25", PaymentMethod: "Manual UPI",
			RiskLevel: entities.RiskLevelHigh, DaysUntilExpiry: 19,
		},
		{
			ID: "SUB-003", Name: "Amit Patel", Phone: "+91 9876543212", Email: "amit@example.com",
			Plan: "Standard Cable - ₹299/month", Status: entities.SubscriberStatusExpired,
			ExpiryDate: "2024-06-01", LastPayment: "2024-05-01", PaymentMethod: "Cash",
			RiskLevel: entities.RiskLevelMedium, DaysUntilExpiry: -5,
		},
		{
			ID: "SUB-004", Name: "Sneha Reddy", Phone: "+91 9876543213", Email: "sneha@example.com",
			Plan: "Premium Plus - ₹799/month", Status: entities.SubscriberStatusActive,
			ExpiryDate: "2024-07-10", LastPayment: "2024-06-10", PaymentMethod: "UPI AutoPay",
			RiskLevel: entities.RiskLevelLow, DaysUntilExpiry: 34,
		},
		{
			ID: "SUB-005", Name: "Vikram Singh", Phone: "+91 9876543214", Email: "vikram@example.com",
			Plan: "Basic Cable - ₹349/month", Status: entities.SubscriberStatusActive,
			ExpiryDate: "2024-06-28", LastPayment: "2024-05-28", PaymentMethod: "Card",
			RiskLevel: entities.RiskLevelLow, DaysUntilExpiry: 22,
		},
	}
}

func ChurnPredictions() []*entities.ChurnPrediction {
	return []*entities.ChurnPrediction{
		{
			ID: "1", SubscriberName: "Rajesh Kumar", SubscriberID: "SUB-001", PlanAmount: 599,
			RiskScore: 85, RiskLevel: entities.RiskLevelHigh,
			Factors:            []string{"3 failed payments", "No payment in 15 days", "Declining usage"},
			PredictedChurnDate: null.StringFrom("2024-06-15"),
			RecommendedAction:  "Send personalized offer + manual call",
		},
		{
			ID: "2", SubscriberName: "Priya Sharma", SubscriberID: "SUB-002", PlanAmount: 399,
			RiskScore: 72, RiskLevel: entities.RiskLevelHigh,
			Factors:            []string{"2 failed payments", "Usage dropped 40%"},
			PredictedChurnDate: null.StringFrom("2024-06-18"),
			RecommendedAction:  "Offer flexible payment plan",
		},
		{
			ID: "3", SubscriberName: "Amit Patel", SubscriberID: "SUB-003", PlanAmount: 299,
			RiskScore: 58, RiskLevel: entities.RiskLevelMedium,
			Factors:            []string{"1 failed payment", "Late payment history"},
			PredictedChurnDate: null.StringFrom("2024-06-25"),
			RecommendedAction:  "Send reminder with grace period",
		},
		{
			ID: "4", SubscriberName: "Sneha Reddy", SubscriberID: "SUB-004", PlanAmount: 499,
			RiskScore: 42, RiskLevel: entities.RiskLevelMedium,
			Factors:            []string{"Occasional late payments"},
			PredictedChurnDate: null.StringFrom("2024-07-02"),
			RecommendedAction:  "Enable AutoPay with incentive",
		},
		{
			ID: "5", SubscriberName: "Vikram Singh", SubscriberID: "SUB-005", PlanAmount: 349,
			RiskScore: 28, RiskLevel: entities.RiskLevelLow,
			Factors:           []string{"Consistent payment history"},
			RecommendedAction: "Maintain current engagement",
		},
	}
}
