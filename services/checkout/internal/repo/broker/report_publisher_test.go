package broker

import (
	"context"
	"errors"
	"testing"

	"pin-packs/pkg/queue"
	"pin-packs/services/checkout/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJSONPublisher struct {
	mock.Mock
}

func (m *MockJSONPublisher) PublishJSON(ctx context.Context, routingKey string, payload interface{}, priority int) error {
	args := m.Called(ctx, routingKey, payload, priority)
	return args.Error(0)
}

func TestPublishReport_Priority(t *testing.T) {
	complete := &entity.FulfillmentReport{
		OrderID: "o1",
		Items:   []entity.ItemOutcome{{PackID: "P1", Incremented: true, EventRecorded: true}},
	}
	drifted := &entity.FulfillmentReport{
		OrderID: "o2",
		Items:   []entity.ItemOutcome{{PackID: "P1", Incremented: false}},
	}

	publisher := new(MockJSONPublisher)
	publisher.On("PublishJSON", mock.Anything, queue.RoutingKeyOrderFulfilled, complete, completeReportPriority).Return(nil)
	publisher.On("PublishJSON", mock.Anything, queue.RoutingKeyOrderFulfilled, drifted, driftReportPriority).Return(errors.New("channel closed"))

	p := NewReportPublisher(publisher)

	assert.NoError(t, p.PublishReport(context.Background(), complete))
	assert.EqualError(t, p.PublishReport(context.Background(), drifted), "channel closed")
	publisher.AssertExpectations(t)
}
