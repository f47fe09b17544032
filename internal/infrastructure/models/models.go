// Package models holds the gorm row types of the relational store driver.
package models

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Merchant{},
		&Alert{},
		&Settlement{},
		&Subscriber{},
		&ChurnPrediction{},
	}
}

func (Merchant) TableName() string        { return "merchants" }
func (Alert) TableName() string           { return "alerts" }
func (Settlement) TableName() string      { return "settlements" }
func (Subscriber) TableName() string      { return "subscribers" }
func (ChurnPrediction) TableName() string { return "churn_predictions" }
