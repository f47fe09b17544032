package entities

import "time"

// AlertType represents the alert category
type AlertType string

const (
	AlertTypeFraud      AlertType = "fraud"
	AlertTypeChurn      AlertType = "churn"
	AlertTypeSettlement AlertType = "settlement"
	AlertTypeRisk       AlertType = "risk"
)

// AlertSeverity represents alert severity
type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "high"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityLow    AlertSeverity = "low"
)

// AlertStatus represents alert lifecycle status
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)

// IsValid reports whether s is a known alert status.
func (s AlertStatus) IsValid() bool {
	return s == AlertStatusActive || s == AlertStatusResolved
}

// Alert represents a platform alert raised against a merchant
type Alert struct {
	ID           string        `json:"id"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	MerchantID   string        `json:"merchant_id"`
	MerchantName string        `json:"merchant_name"`
	Message      string        `json:"message"`
	CreatedAt    time.Time     `json:"created_at"`
	Status       AlertStatus   `json:"status"`
}

// AlertFilter holds the recognized alert list query parameters
type AlertFilter struct {
	Status   string `form:"status"`
	Severity string `form:"severity"`
}

func (f AlertFilter) Matches(a *Alert) bool {
	if f.Status != "" && string(a.Status) != f.Status {
		return false
	}
	if f.Severity != "" && string(a.Severity) != f.Severity {
		return false
	}
	return true
}

// UpdateAlertInput represents an alert status change
type UpdateAlertInput struct {
	Status AlertStatus `json:"status" binding:"required,oneof=active resolved"`
}
