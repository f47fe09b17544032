package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// KYCStatus represents merchant verification status
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// KYCStatuses lists every accepted KYC status in display order.
var KYCStatuses = []KYCStatus{KYCStatusPending, KYCStatusApproved, KYCStatusRejected}

// IsValid reports whether s is one of the known KYC statuses.
func (s KYCStatus) IsValid() bool {
	switch s {
	case KYCStatusPending, KYCStatusApproved, KYCStatusRejected:
		return true
	}
	return false
}

// Merchant represents a merchant onboarded on the platform
type Merchant struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Vertical          string    `json:"vertical"`
	KYCStatus         KYCStatus `json:"kyc_status"`
	ActiveSubscribers int       `json:"active_subscribers"`
	TPV               float64   `json:"tpv"`
	ChurnRate         float64   `json:"churn_rate"`
	MonthlyGrowth     float64   `json:"monthly_growth"`
	AvgARPU           float64   `json:"avg_arpu"`
	CreatedAt         time.Time `json:"created_at"`
	ContactEmail      string    `json:"contact_email"`
	ContactPhone      string    `json:"contact_phone"`
}

// IsApproved reports whether the merchant participates in analytics rollups.
func (m *Merchant) IsApproved() bool {
	return m.KYCStatus == KYCStatusApproved
}

// HealthScore is 100 - 2*churn + 0.5*growth, bounded to [0, 100].
func (m *Merchant) HealthScore() float64 {
	return HealthScore(m.ChurnRate, m.MonthlyGrowth)
}

var (
	healthCeiling = decimal.NewFromInt(100)
	churnWeight   = decimal.NewFromInt(2)
	growthWeight  = decimal.RequireFromString("0.5")
)

// HealthScore computes the composite merchant health metric in decimal so
// scores such as 89.15 serialize exactly.
func HealthScore(churnRate, monthlyGrowth float64) float64 {
	score := healthCeiling.
		Sub(decimal.NewFromFloat(churnRate).Mul(churnWeight)).
		Add(decimal.NewFromFloat(monthlyGrowth).Mul(growthWeight))
	if score.IsNegative() {
		return 0
	}
	if score.GreaterThan(healthCeiling) {
		return 100
	}
	return score.InexactFloat64()
}

// MerchantFilter holds the recognized merchant list query parameters
type MerchantFilter struct {
	KYCStatus string `form:"kyc_status"`
	Vertical  string `form:"vertical"`
}

// Matches reports whether m satisfies every non-empty filter field.
func (f MerchantFilter) Matches(m *Merchant) bool {
	if f.KYCStatus != "" && string(m.KYCStatus) != f.KYCStatus {
		return false
	}
	if f.Vertical != "" && m.Vertical != f.Vertical {
		return false
	}
	return true
}

// CreateMerchantInput represents the merchant onboarding payload
type CreateMerchantInput struct {
	Name         string `json:"name" binding:"required"`
	Vertical     string `json:"vertical" binding:"required"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

// Normalize trims surrounding whitespace from every field.
func (in *CreateMerchantInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Vertical = strings.TrimSpace(in.Vertical)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
}

// UpdateKYCInput represents a KYC decision
type UpdateKYCInput struct {
	Status KYCStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}
