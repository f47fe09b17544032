package seed

import (
	"github.com/volatiletech/null/v8"
	"subversepay.backend/internal/domain/entities"
)

func collections() entities.CollectionsSummary {
	return entities.CollectionsSummary{
		TotalDue:         2850000,
		TotalCollected:   2425000,
		TotalFailed:      425000,
		TotalRecovered:   168000,
		CollectionRate:   85.1,
		RecoveryRate:     39.5,
		PendingAmount:    425000,
		TodayCollections: 145000,
		MonthlyTrend: []entities.MonthlyCollection{
			{Month: "Jan", Collected: 1850000, Failed: 245000, Recovered: 95000},
			{Month: "Feb", Collected: 2100000, Failed: 320000, Recovered: 125000},
			{Month: "Mar", Collected: 2350000, Failed: 285000, Recovered: 142000},
			{Month: "Apr", Collected: 2150000, Failed: 380000, Recovered: 158000},
			{Month: "May", Collected: 2425000, Failed: 425000, Recovered: 168000},
			{Month: "Jun", Collected: 2650000, Failed: 390000, Recovered: 175000},
		},
	}
}

func retryAnalytics() entities.RetryAnalytics {
	return entities.RetryAnalytics{
		TotalRetries:      3420,
		SuccessfulRetries: 1352,
		SuccessRate:       39.5,
		AvgRetryTime:      4.2,
		FailureReasons: []entities.FailureReason{
			{Reason: "Insufficient Funds", Count: 1845, Percentage: 54, RecoveryRate: 42},
			{Reason: "Bank Downtime", Count: 685, Percentage: 20, RecoveryRate: 68},
			{Reason: "Mandate Revoked", Count: 478, Percentage: 14, RecoveryRate: 12},
			{Reason: "Technical Error", Count: 275, Percentage: 8, RecoveryRate: 85},
			{Reason: "Others", Count: 137, Percentage: 4, RecoveryRate: 35},
		},
		RetryTiming: []entities.RetryTiming{
			{Hour: "9 AM", SuccessRate: 45, Attempts: 420},
			{Hour: "12 PM", SuccessRate: 52, Attempts: 580},
			{Hour: "3 PM", SuccessRate: 38, Attempts: 360},
			{Hour: "6 PM", SuccessRate: 48, Attempts: 520},
			{Hour: "9 PM", SuccessRate: 35, Attempts: 290},
		},
	}
}

func lcoPerformance() []entities.LCOPerformance {
	return []entities.LCOPerformance{
		{ID: "1", Name: "Ramesh LCO", Area: "Jayanagar", TotalSubscribers: 450, ActiveSubscribers: 425, CollectionRate: 94.4, AvgCollectionTime: 2.1, MonthlyRevenue: 178000, ChurnRate: 5.5, Rank: 1},
		{ID: "2", Name: "Suresh Cable", Area: "Koramangala", TotalSubscribers: 380, ActiveSubscribers: 352, CollectionRate: 92.6, AvgCollectionTime: 2.8, MonthlyRevenue: 145000, ChurnRate: 7.4, Rank: 2},
		{ID: "3", Name: "Kumar Networks", Area: "Indiranagar", TotalSubscribers: 520, ActiveSubscribers: 468, CollectionRate: 90.0, AvgCollectionTime: 3.2, MonthlyRevenue: 195000, ChurnRate: 10.0, Rank: 3},
		{ID: "4", Name: "Prakash TV", Area: "Whitefield", TotalSubscribers: 290, ActiveSubscribers: 255, CollectionRate: 87.9, AvgCollectionTime: 4.1, MonthlyRevenue: 98000, ChurnRate: 12.1, Rank: 4},
		{ID: "5", Name: "Venkat Cable", Area: "Electronic City", TotalSubscribers: 410, ActiveSubscribers: 348, CollectionRate: 84.9, AvgCollectionTime: 4.8, MonthlyRevenue: 142000, ChurnRate: 15.1, Rank: 5},
	}
}

func reminderEffectiveness() entities.ReminderEffectiveness {
	return entities.ReminderEffectiveness{
		TotalRemindersSent:   8450,
		TotalConversions:     3285,
		OverallEffectiveness: 38.9,
		ByChannel: []entities.ChannelEffectiveness{
			{Channel: "SMS", Sent: 3500, Conversions: 1575, Rate: 45.0, CostPerConversion: 2.5},
			{Channel: "WhatsApp", Sent: 2800, Conversions: 1120, Rate: 40.0, CostPerConversion: 3.2},
			{Channel: "Email", Sent: 1450, Conversions: 348, Rate: 24.0, CostPerConversion: 1.8},
			{Channel: "Push Notification", Sent: 700, Conversions: 242, Rate: 34.6, CostPerConversion: 0.5},
		},
		ByTiming: []entities.TimingEffectiveness{
			{Time: "Morning (9-11 AM)", Sent: 2100, Conversions: 945, Rate: 45.0},
			{Time: "Afternoon (12-2 PM)", Sent: 1850, Conversions: 685, Rate: 37.0},
			{Time: "Evening (5-7 PM)", Sent: 2900, Conversions: 1160, Rate: 40.0},
			{Time: "Night (8-10 PM)", Sent: 1600, Conversions: 495, Rate: 30.9},
		},
	}
}

func revenueForecast() entities.RevenueForecast {
	return entities.RevenueForecast{
		CurrentMonthActual:   2425000,
		CurrentMonthForecast: 2650000,
		NextMonthForecast:    2785000,
		ForecastConfidence:   87.5,
		MonthlyForecast: []entities.ForecastPoint{
			{Month: "Jan", Actual: null.Float64From(1850000), Forecast: 1820000},
			{Month: "Feb", Actual: null.Float64From(2100000), Forecast: 2080000},
			{Month: "Mar", Actual: null.Float64From(2350000), Forecast: 2340000},
			{Month: "Apr", Actual: null.Float64From(2150000), Forecast: 2200000},
			{Month: "May", Actual: null.Float64From(2425000), Forecast: 2450000},
			{Month: "Jun", Forecast: 2650000},
			{Month: "Jul", Forecast: 2785000},
			{Month: "Aug", Forecast: 2920000},
		},
		Factors: []entities.ForecastFactor{
			{Factor: "Subscriber Growth", Impact: "+8.5%", Confidence: 92},
			{Factor: "Churn Reduction", Impact: "+3.2%", Confidence: 85},
			{Factor: "ARPU Increase", Impact: "+2.1%", Confidence: 78},
			{Factor: "Seasonal Trends", Impact: "-1.8%", Confidence: 88},
		},
	}
}

func operatorCollections() entities.OperatorCollections {
	return entities.OperatorCollections{
		Today: entities.CollectionWindow{Collected: 45000, Pending: 28000, Target: 65000, CollectionRate: 69.2},
		Week:  entities.CollectionWindow{Collected: 285000, Pending: 95000, Target: 380000, CollectionRate: 75.0},
		Month: entities.CollectionWindow{Collected: 1245000, Pending: 325000, Target: 1570000, CollectionRate: 79.3},
		DailyBreakdown: []entities.DailyCollection{
			{Day: "Mon", Collected: 38000, Pending: 15000},
			{Day: "Tue", Collected: 42000, Pending: 18000},
			{Day: "Wed", Collected: 45000, Pending: 12000},
			{Day: "Thu", Collected: 48000, Pending: 20000},
			{Day: "Fri", Collected: 52000, Pending: 16000},
			{Day: "Sat", Collected: 35000, Pending: 8000},
			{Day: "Sun", Collected: 25000, Pending: 6000},
		},
	}
}

func operatorSettlements() entities.OperatorSettlements {
	return entities.OperatorSettlements{
		PendingSettlement:  285000,
		LastSettlement:     245000,
		LastSettlementDate: "2024-06-01",
		NextSettlementDate: "2024-06-08",
		CommissionRate:     12,
		CommissionEarned:   34200,
		SettlementHistory: []entities.SettlementHistoryEntry{
			{Date: "2024-06-01", Amount: 245000, Commission: 29400, Status: "completed"},
			{Date: "2024-05-25", Amount: 268000, Commission: 32160, Status: "completed"},
			{Date: "2024-05-18", Amount: 232000, Commission: 27840, Status: "completed"},
			{Date: "2024-05-11", Amount: 255000, Commission: 30600, Status: "completed"},
		},
	}
}

func customerProfile() entities.CustomerProfile {
	return entities.CustomerProfile{
		ID:           "CUST-001",
		Name:         "Rajesh Kumar",
		Email:        "rajesh@example.com",
		Phone:        "+91 9876543210",
		SubscriberID: "SUB-VN-12345",
		Plan: entities.CustomerPlan{
			Name:         "Premium Cable HD",
			Amount:       599,
			BillingCycle: "monthly",
			Features:     []string{"200+ Channels", "HD Quality", "Sports Pack", "Movie Channels"},
		},
		Status:          "active",
		ExpiryDate:      "2024-06-20",
		DaysRemaining:   14,
		AutoPayEnabled:  true,
		NextBillingDate: "2024-06-20",
		AmountDue:       599,
	}
}

func customerPayments() []entities.CustomerPayment {
	const description = "Monthly subscription - Premium Cable HD"
	return []entities.CustomerPayment{
		{ID: "PAY-001", Date: "2024-05-20", Amount: 599, Status: "success", Method: "UPI AutoPay", TransactionID: "TXN123456789", Description: description},
		{ID: "PAY-002", Date: "2024-04-20", Amount: 599, Status: "success", Method: "UPI", TransactionID: "TXN123456788", Description: description},
		{
			ID: "PAY-003", Date: "2024-03-20", Amount: 599, Status: "failed", Method: "UPI AutoPay", TransactionID: "TXN123456787",
			FailureReason: null.StringFrom("Insufficient funds"),
			RetryStatus:   null.StringFrom("Retried successfully on 2024-03-22"),
			Description:   description,
		},
		{ID: "PAY-004", Date: "2024-02-20", Amount: 599, Status: "success", Method: "Card", TransactionID: "TXN123456786", Description: description},
		{ID: "PAY-005", Date: "2024-01-20", Amount: 599, Status: "success", Method: "UPI", TransactionID: "TXN123456785", Description: description},
	}
}

func customerReminders() []entities.CustomerReminder {
	return []entities.CustomerReminder{
		{ID: "REM-001", Type: "upcoming_payment", Message: "Your subscription expires in 3 days. Renew now to avoid service interruption.", Date: "2024-06-17", Status: "sent", Channel: "SMS"},
		{ID: "REM-002", Type: "payment_due", Message: "Payment of ₹599 is due today. Pay now to continue enjoying your service.", Date: "2024-06-20", Status: "pending", Channel: "WhatsApp"},
		{ID: "REM-003", Type: "retry_scheduled", Message: "Your AutoPay retry is scheduled for tomorrow at 9 AM.", Date: "2024-06-21", Status: "scheduled", Channel: "Push Notification"},
	}
}
