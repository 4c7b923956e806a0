package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time record of the overall totals, written by the
// scheduler so the balance history survives deletions.
type Snapshot struct {
	ID               string          `json:"id"`
	TakenAt          time.Time       `json:"takenAt"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}
