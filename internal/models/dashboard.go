package models

// DashboardStats is the summary shown on the monitoring dashboard.
type DashboardStats struct {
	TotalTransactions        int          `json:"total_transactions"`
	FraudCount               int          `json:"fraud_count"`
	TotalVolume              float64      `json:"total_volume"`
	FraudVolume              float64      `json:"fraud_volume"`
	AverageTransactionAmount float64      `json:"average_transaction_amount"`
	UnreadAlerts             int          `json:"unread_alerts"`
	Daily                    []DailyPoint `json:"daily"`
}

// DailyPoint is one day of the volume chart. Name is the short weekday.
type DailyPoint struct {
	Name         string  `json:"name"`
	Date         string  `json:"date"`
	Transactions float64 `json:"transactions"`
	Fraud        float64 `json:"fraud"`
}
