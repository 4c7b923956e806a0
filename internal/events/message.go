package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/model"
)

// Event names double as AMQP routing keys.
const (
	TransactionCreated = "transaction.created"
	TransactionDeleted = "transaction.deleted"
)

// TransactionEvent is the body published for every change to the
// transaction store.
type TransactionEvent struct {
	Event         string          `json:"event"`
	TransactionID string          `json:"transactionId"`
	Kind          model.Kind      `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NewTransactionEvent builds an event of the given name for t.
func NewTransactionEvent(name string, t model.Transaction) TransactionEvent {
	return TransactionEvent{
		Event:         name,
		TransactionID: t.ID,
		Kind:          t.Type,
		Amount:        t.Amount,
		Date:          model.DateKey(t.Date),
		OccurredAt:    time.Now().UTC(),
	}
}

// ToJSON encodes the event body.
func (e TransactionEvent) ToJSON() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return b, nil
}

// TransactionEventFromJSON decodes an event body.
func TransactionEventFromJSON(b []byte) (TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(b, &e); err != nil {
		return TransactionEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return e, nil
}
