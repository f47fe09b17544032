package entities

import "github.com/volatiletech/null/v8"

type CustomerPlan struct {
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	BillingCycle string   `json:"billing_cycle"`
	Features     []string `json:"features"`
}

// CustomerProfile is the self-service view of a subscriber account
type CustomerProfile struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	SubscriberID    string       `json:"subscriber_id"`
	Plan            CustomerPlan `json:"plan"`
	Status          string       `json:"status"`
	ExpiryDate      string       `json:"expiry_date"`
	DaysRemaining   int          `json:"days_remaining"`
	AutoPayEnabled  bool         `json:"auto_pay_enabled"`
	NextBillingDate string       `json:"next_billing_date"`
	AmountDue       float64      `json:"amount_due"`
}

// CustomerPayment is one entry of the customer's payment history
type CustomerPayment struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	Amount        float64     `json:"amount"`
	Status        string      `json:"status"`
	Method        string      `json:"method"`
	TransactionID string      `json:"transaction_id"`
	FailureReason null.String `json:"failure_reason"`
	RetryStatus   null.String `json:"retry_status"`
	Description   string      `json:"description"`
}

type CustomerReminder struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Channel string `json:"channel"`
}

// MakePaymentInput starts a one-off customer payment
type MakePaymentInput struct {
	Amount float64 `json:"amount"`
}

// PaymentOrder is the synthetic order handed back to the customer
type PaymentOrder struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PaymentLink string  `json:"payment_link"`
}

// ToggleAutopayInput flips the customer's AutoPay mandate
type ToggleAutopayInput struct {
	Enabled bool `json:"enabled"`
}

// AutopayState echoes the requested AutoPay state
type AutopayState struct {
	AutoPayEnabled bool `json:"auto_pay_enabled"`
}
