package entity

import "time"

type CounterStrategy string

const (
	CounterStrategyAtomic   CounterStrategy = "atomic"
	CounterStrategyFallback CounterStrategy = "fallback"
)

// ItemOutcome records what happened to one order item's download counter.
type ItemOutcome struct {
	PackID        string          `json:"pack_id"`
	Strategy      CounterStrategy `json:"strategy,omitempty"`
	Incremented   bool            `json:"incremented"`
	EventRecorded bool            `json:"event_recorded"`
	AtomicError   string          `json:"atomic_error,omitempty"`
	Error         string          `json:"error,omitempty"`
	EventError    string          `json:"event_error,omitempty"`
}

type FulfillmentReport struct {
	OrderID       string        `json:"order_id"`
	PaypalOrderID string        `json:"paypal_order_id"`
	Items         []ItemOutcome `json:"items"`
	CompletedAt   time.Time     `json:"completed_at"`
}

// FailedPackIDs lists packs whose counter was not incremented.
func (r *FulfillmentReport) FailedPackIDs() []string {
	var ids []string
	for _, item := range r.Items {
		if !item.Incremented {
			ids = append(ids, item.PackID)
		}
	}
	return ids
}

func (r *FulfillmentReport) Complete() bool {
	for _, item := range r.Items {
		if !item.Incremented || !item.EventRecorded {
			return false
		}
	}
	return true
}
