package request

import "github.com/shopspring/decimal"

// CreateTransactionRequest is the body of POST /api/transactions.
type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        string          `json:"date,omitempty"`
}
