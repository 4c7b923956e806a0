package request

import "github.com/shopspring/decimal"

// UpdateGoalRequest is the body of PUT /api/goal.
type UpdateGoalRequest struct {
	Target        *decimal.Decimal `json:"target"`
	HorizonMonths *int             `json:"horizonMonths,omitempty"`
}
