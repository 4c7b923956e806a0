package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 200

// maxAmountDecimals is the number of decimal places a currency amount may carry.
const maxAmountDecimals = 2

// ValidateCreateTransaction validates a transaction creation request.
// Invalid requests never reach the store or the engine.
//
// Required fields:
//   - description: non-blank, at most MaxDescriptionLength characters
//   - amount: strictly positive, at most two decimal places
//   - type: income or expense (legacy entrada/saida accepted)
//
// Optional fields:
//   - date: YYYY-MM-DD or RFC3339; defaults to today when omitted
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		errors["description"] = "description is required"
	} else if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		errors["description"] = fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength)
	}

	switch {
	case !req.Amount.IsPositive():
		errors["amount"] = "amount must be positive"
	case !req.Amount.Equal(req.Amount.Truncate(maxAmountDecimals)):
		errors["amount"] = fmt.Sprintf("amount must have at most %d decimal places", maxAmountDecimals)
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if _, err := model.ParseKind(req.Type); err != nil {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if strings.TrimSpace(req.Date) != "" {
		if _, err := model.ParseDate(strings.TrimSpace(req.Date)); err != nil {
			errors["date"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
