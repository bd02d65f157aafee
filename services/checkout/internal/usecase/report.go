package usecase

import (
	"context"
	"errors"

	"pin-packs/services/checkout/internal/entity"
)

// ReportPublisher receives the per-item outcomes of a fulfillment. Reports
// never reach the HTTP caller.
type ReportPublisher interface {
	PublishReport(ctx context.Context, report *entity.FulfillmentReport) error
}

type multiReportPublisher struct {
	publishers []ReportPublisher
}

// NewMultiReportPublisher skips nil publishers and delivers to every other
// one even when an earlier one fails.
func NewMultiReportPublisher(publishers ...ReportPublisher) ReportPublisher {
	m := &multiReportPublisher{}
	for _, p := range publishers {
		if p != nil {
			m.publishers = append(m.publishers, p)
		}
	}
	return m
}

func (m *multiReportPublisher) PublishReport(ctx context.Context, report *entity.FulfillmentReport) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.PublishReport(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ConfirmationSender notifies the customer after a fulfillment.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, order *entity.Order, packIDs []string) error
}
