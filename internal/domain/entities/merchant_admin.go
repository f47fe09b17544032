package entities

import "github.com/volatiletech/null/v8"

type MonthlyCollection struct {
	Month     string  `json:"month"`
	Collected float64 `json:"collected"`
	Failed    float64 `json:"failed"`
	Recovered float64 `json:"recovered"`
}

// CollectionsSummary is the merchant admin collections dashboard block
type CollectionsSummary struct {
	TotalDue         float64             `json:"total_due"`
	TotalCollected   float64             `json:"total_collected"`
	TotalFailed      float64             `json:"total_failed"`
	TotalRecovered   float64             `json:"total_recovered"`
	CollectionRate   float64             `json:"collection_rate"`
	RecoveryRate     float64             `json:"recovery_rate"`
	PendingAmount    float64             `json:"pending_amount"`
	TodayCollections float64             `json:"today_collections"`
	MonthlyTrend     []MonthlyCollection `json:"monthly_trend"`
}

type FailureReason struct {
	Reason       string  `json:"reason"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
	RecoveryRate float64 `json:"recovery_rate"`
}

type RetryTiming struct {
	Hour        string  `json:"hour"`
	SuccessRate float64 `json:"success_rate"`
	Attempts    int     `json:"attempts"`
}

// RetryAnalytics summarizes failed-payment retries
type RetryAnalytics struct {
	TotalRetries      int             `json:"total_retries"`
	SuccessfulRetries int             `json:"successful_retries"`
	SuccessRate       float64         `json:"success_rate"`
	AvgRetryTime      float64         `json:"avg_retry_time"`
	FailureReasons    []FailureReason `json:"failure_reasons"`
	RetryTiming       []RetryTiming   `json:"retry_timing"`
}

// LCOPerformance ranks a local cable operator
type LCOPerformance struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Area              string  `json:"area"`
	TotalSubscribers  int     `json:"total_subscribers"`
	ActiveSubscribers int     `json:"active_subscribers"`
	CollectionRate    float64 `json:"collection_rate"`
	AvgCollectionTime float64 `json:"avg_collection_time"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	ChurnRate         float64 `json:"churn_rate"`
	Rank              int     `json:"rank"`
}

type ChannelEffectiveness struct {
	Channel           string  `json:"channel"`
	Sent              int     `json:"sent"`
	Conversions       int     `json:"conversions"`
	Rate              float64 `json:"rate"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

type TimingEffectiveness struct {
	Time        string  `json:"time"`
	Sent        int     `json:"sent"`
	Conversions int     `json:"conversions"`
	Rate        float64 `json:"rate"`
}

// ReminderEffectiveness reports reminder conversions by channel and time slot
type ReminderEffectiveness struct {
	TotalRemindersSent   int                    `json:"total_reminders_sent"`
	TotalConversions     int                    `json:"total_conversions"`
	OverallEffectiveness float64                `json:"overall_effectiveness"`
	ByChannel            []ChannelEffectiveness `json:"by_channel"`
	ByTiming             []TimingEffectiveness  `json:"by_timing"`
}

// ForecastPoint carries the actual figure only for closed months.
type ForecastPoint struct {
	Month    string       `json:"month"`
	Actual   null.Float64 `json:"actual"`
	Forecast float64      `json:"forecast"`
}

type ForecastFactor struct {
	Factor     string `json:"factor"`
	Impact     string `json:"impact"`
	Confidence int    `json:"confidence"`
}

// RevenueForecast is the merchant admin revenue projection
type RevenueForecast struct {
	CurrentMonthActual   float64          `json:"current_month_actual"`
	CurrentMonthForecast float64          `json:"current_month_forecast"`
	NextMonthForecast    float64          `json:"next_month_forecast"`
	ForecastConfidence   float64          `json:"forecast_confidence"`
	MonthlyForecast      []ForecastPoint  `json:"monthly_forecast"`
	Factors              []ForecastFactor `json:"factors"`
}
