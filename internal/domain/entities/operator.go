package entities

type CollectionWindow struct {
	Collected      float64 `json:"collected"`
	Pending        float64 `json:"pending"`
	Target         float64 `json:"target"`
	CollectionRate float64 `json:"collection_rate"`
}

type DailyCollection struct {
	Day       string  `json:"day"`
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

// OperatorCollections is the LCO collections dashboard block
type OperatorCollections struct {
	Today          CollectionWindow  `json:"today"`
	Week           CollectionWindow  `json:"week"`
	Month          CollectionWindow  `json:"month"`
	DailyBreakdown []DailyCollection `json:"daily_breakdown"`
}

type SettlementHistoryEntry struct {
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Commission float64 `json:"commission"`
	Status     string  `json:"status"`
}

// OperatorSettlements is the LCO payout and commission summary
type OperatorSettlements struct {
	PendingSettlement  float64                  `json:"pending_settlement"`
	LastSettlement     float64                  `json:"last_settlement"`
	LastSettlementDate string                   `json:"last_settlement_date"`
	NextSettlementDate string                   `json:"next_settlement_date"`
	CommissionRate     float64                  `json:"commission_rate"`
	CommissionEarned   float64                  `json:"commission_earned"`
	SettlementHistory  []SettlementHistoryEntry `json:"settlement_history"`
}

// OperatorAction enumerates the quick actions an operator can take on a subscriber
type OperatorAction string

const (
	OperatorActionSendReminder OperatorAction = "send-reminder"
	OperatorActionTriggerRetry OperatorAction = "trigger-retry"
	OperatorActionPauseService OperatorAction = "pause-service"
)

// SubscriberActionInput identifies the subscriber an operator action targets
type SubscriberActionInput struct {
	SubscriberID   string `json:"subscriber_id"`
	SubscriberName string `json:"subscriber_name"`
}
