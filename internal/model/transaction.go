package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, matching what the web client expects.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind is the direction of a transaction. It is a closed set: every switch
// over Kind must handle both values.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// legacyKinds maps the wire values of the first version of the tracker.
var legacyKinds = map[string]Kind{
	"entrada": KindIncome,
	"saida":   KindExpense,
	"saída":   KindExpense,
}

// ParseKind converts a wire value to a Kind. Both the current values
// ("income", "expense") and the legacy ones ("entrada", "saida") are accepted.
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch Kind(v) {
	case KindIncome, KindExpense:
		return Kind(v), nil
	}
	if k, ok := legacyKinds[v]; ok {
		return k, nil
	}
	return "", fmt.Errorf("invalid transaction type: %q", s)
}

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Sign returns +1 for income and -1 for expense.
// It panics on any other value; callers validate input before it gets here.
func (k Kind) Sign() int64 {
	switch k {
	case KindIncome:
		return 1
	case KindExpense:
		return -1
	default:
		panic(fmt.Sprintf("model: unknown transaction kind %q", string(k)))
	}
}

// UnmarshalJSON normalises legacy values. Unknown values are kept verbatim so
// request validation can report them per field.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if parsed, err := ParseKind(s); err == nil {
		*k = parsed
		return nil
	}
	*k = Kind(s)
	return nil
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Kind            `json:"type"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
}

// Signed returns the amount with the sign implied by the transaction kind.
func (t Transaction) Signed() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(t.Type.Sign()))
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type      Kind      // empty means both kinds
	StartDate time.Time // inclusive, zero means unbounded
	EndDate   time.Time // inclusive, zero means unbounded
}
