package broker

import (
	"context"

	"pin-packs/pkg/queue"
	"pin-packs/services/checkout/internal/entity"
)

const (
	completeReportPriority = 1
	driftReportPriority    = 8
)

// JSONPublisher is satisfied by *queue.Client.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload interface{}, priority int) error
}

type ReportPublisher struct {
	publisher JSONPublisher
}

func NewReportPublisher(publisher JSONPublisher) *ReportPublisher {
	return &ReportPublisher{publisher: publisher}
}

// PublishReport sends reports with missing counters or events at a higher
// priority.
func (p *ReportPublisher) PublishReport(ctx context.Context, report *entity.FulfillmentReport) error {
	priority := completeReportPriority
	if !report.Complete() {
		priority = driftReportPriority
	}
	return p.publisher.PublishJSON(ctx, queue.RoutingKeyOrderFulfilled, report, priority)
}
