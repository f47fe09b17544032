package entities

import "time"

// SettlementStatus represents payout progress
type SettlementStatus string

const (
	SettlementStatusPending    SettlementStatus = "pending"
	SettlementStatusProcessing SettlementStatus = "processing"
	SettlementStatusCompleted  SettlementStatus = "completed"
)

// Settlement represents a merchant payout batch
type Settlement struct {
	ID               string           `json:"id"`
	MerchantID       string           `json:"merchant_id"`
	MerchantName     string           `json:"merchant_name"`
	Amount           float64          `json:"amount"`
	Status           SettlementStatus `json:"status"`
	PayoutDate       string           `json:"payout_date"`
	TransactionCount int              `json:"transaction_count"`
	CreatedAt        time.Time        `json:"created_at"`
}

// SettlementFilter holds the recognized settlement list query parameters
type SettlementFilter struct {
	Status string `form:"status"`
}

func (f SettlementFilter) Matches(s *Settlement) bool {
	return f.Status == "" || string(s.Status) == f.Status
}
