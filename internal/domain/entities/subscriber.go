package entities

import "github.com/volatiletech/null/v8"

// RiskLevel represents the churn risk bucket of a subscriber
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// SubscriberStatus represents subscription state
type SubscriberStatus string

const (
	SubscriberStatusActive  SubscriberStatus = "active"
	SubscriberStatusExpired SubscriberStatus = "expired"
)

// Subscriber represents an end customer managed by an operator
type Subscriber struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Plan            string           `json:"plan"`
	Status          SubscriberStatus `json:"status"`
	ExpiryDate      string           `json:"expiry_date"`
	LastPayment     string           `json:"last_payment"`
	PaymentMethod   string           `json:"payment_method"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	DaysUntilExpiry int              `json:"days_until_expiry"`
}

// SubscriberFilter holds the recognized subscriber list query parameters
type SubscriberFilter struct {
	Status    string `form:"status"`
	RiskLevel string `form:"risk_level"`
}

func (f SubscriberFilter) Matches(s *Subscriber) bool {
	if f.Status != "" && string(s.Status) != f.Status {
		return false
	}
	if f.RiskLevel != "" && string(s.RiskLevel) != f.RiskLevel {
		return false
	}
	return true
}

// ChurnPrediction represents the model output for one subscriber
type ChurnPrediction struct {
	ID                 string      `json:"id"`
	SubscriberName     string      `json:"subscriber_name"`
	SubscriberID       string      `json:"subscriber_id"`
	PlanAmount         float64     `json:"plan_amount"`
	RiskScore          int         `json:"risk_score"`
	RiskLevel          RiskLevel   `json:"risk_level"`
	Factors            []string    `json:"factors"`
	PredictedChurnDate null.String `json:"predicted_churn_date"`
	RecommendedAction  string      `json:"recommended_action"`
}

// ChurnPredictionFilter holds the recognized churn prediction query parameters
type ChurnPredictionFilter struct {
	RiskLevel string `form:"risk_level"`
}

func (f ChurnPredictionFilter) Matches(p *ChurnPrediction) bool {
	return f.RiskLevel == "" || string(p.RiskLevel) == f.RiskLevel
}
