// Package events announces changes to the transaction store on a message
// broker so other tools can follow the ledger.
package events

import (
	"context"
	"sync"
)

// Publisher delivers transaction events.
type Publisher interface {
	Publish(ctx context.Context, e TransactionEvent) error
	Close() error
}

// NoopPublisher discards every event. It is used when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TransactionEvent) error { return nil }
func (NoopPublisher) Close() error                                    { return nil }

// Recorder keeps published events in memory. Tests use it to assert what
// a service announced.
type Recorder struct {
	mu     sync.Mutex
	events []TransactionEvent
	Err    error // returned by Publish when set
}

func (r *Recorder) Publish(_ context.Context, e TransactionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []TransactionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TransactionEvent, len(r.events))
	copy(out, r.events)
	return out
}
