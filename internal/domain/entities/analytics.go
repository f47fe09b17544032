package entities

// PlatformOverview is the super admin headline summary
type PlatformOverview struct {
	TotalMerchants   int     `json:"total_merchants"`
	ActiveMerchants  int     `json:"active_merchants"`
	PendingKYC       int     `json:"pending_kyc"`
	TotalSubscribers int     `json:"total_subscribers"`
	TotalTPV         float64 `json:"total_tpv"`
	AvgChurnRate     string  `json:"avg_churn_rate"`
	ActiveAlerts     int     `json:"active_alerts"`
	MonthlyGrowth    float64 `json:"monthly_growth"`
}

// VerticalAnalytics aggregates approved merchants of one vertical
type VerticalAnalytics struct {
	Name        string  `json:"name"`
	Merchants   int     `json:"merchants"`
	Subscribers int     `json:"subscribers"`
	TPV         float64 `json:"tpv"`
	AvgChurn    string  `json:"avg_churn"`
	AvgGrowth   string  `json:"avg_growth"`
}

// MerchantPerformance is a merchant projection used by the performance ranking
type MerchantPerformance struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Vertical          string  `json:"vertical"`
	ActiveSubscribers int     `json:"active_subscribers"`
	TPV               float64 `json:"tpv"`
	ChurnRate         float64 `json:"churn_rate"`
	MonthlyGrowth     float64 `json:"monthly_growth"`
	AvgARPU           float64 `json:"avg_arpu"`
	HealthScore       float64 `json:"health_score"`
}

// SystemHealth is the platform status snapshot
type SystemHealth struct {
	APIUptime           float64 `json:"api_uptime"`
	RazorpayStatus      string  `json:"razorpay_status"`
	SupabaseStatus      string  `json:"supabase_status"`
	AvgResponseTime     int     `json:"avg_response_time"`
	TotalRequestsToday  int     `json:"total_requests_today"`
	FailedRequestsToday int     `json:"failed_requests_today"`
	LastUpdated         string  `json:"last_updated"`
}
