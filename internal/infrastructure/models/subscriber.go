package models

import "github.com/volatiletech/null/v8"

type Subscriber struct {
	ID              string `gorm:"type:varchar(64);primaryKey"`
	Seq             int64  `gorm:"not null;index"`
	Name            string `gorm:"type:varchar(255);not null"`
	Phone           string `gorm:"type:varchar(50)"`
	Email           string `gorm:"type:varchar(255)"`
	Plan            string `gorm:"type:varchar(255)"`
	Status          string `gorm:"type:varchar(20);not null;index"`
	ExpiryDate      string `gorm:"type:varchar(10)"`
	LastPayment     string `gorm:"type:varchar(10)"`
	PaymentMethod   string `gorm:"type:varchar(50)"`
	RiskLevel       string `gorm:"type:varchar(20);not null;index"`
	DaysUntilExpiry int    `gorm:"not null;default:0"`
}

type ChurnPrediction struct {
	ID                 string      `gorm:"type:varchar(64);primaryKey"`
	Seq                int64       `gorm:"not null;index"`
	SubscriberID       string      `gorm:"type:varchar(64);not null;index"`
	SubscriberName     string      `gorm:"type:varchar(255);not null"`
	PlanAmount         float64     `gorm:"not null"`
	RiskScore          int         `gorm:"not null"`
	RiskLevel          string      `gorm:"type:varchar(20);not null;index"`
	Factors            []string    `gorm:"type:text;serializer:json"`
	PredictedChurnDate null.String `gorm:"type:varchar(10)"`
	RecommendedAction  string      `gorm:"type:text"`
}
