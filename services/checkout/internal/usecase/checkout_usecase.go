package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pin-packs/pkg/logger"
	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/repo/persistent"
)

type FulfillOrderInput struct {
	OrderID         string          `json:"orderId"`
	PaypalOrderID   string          `json:"paypalOrderId"`
	PaypalPayerID   string          `json:"paypalPayerId"`
	PaypalPaymentID string          `json:"paypalPaymentId"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerName    string          `json:"customerName"`
	PaymentDetails  json.RawMessage `json:"paymentDetails" swaggertype:"object"`
}

type CheckoutUseCase interface {
	FulfillOrder(ctx context.Context, input FulfillOrderInput) (*entity.Order, error)
}

type checkoutUseCase struct {
	orderRepo  persistent.OrderRepository
	reconciler *CounterReconciler
	reports    ReportPublisher
	mailer     ConfirmationSender
	logger     *logger.Logger
	now        func() time.Time
}

// NewCheckoutUseCase accepts nil reports and mailer.
func NewCheckoutUseCase(
	orderRepo persistent.OrderRepository,
	reconciler *CounterReconciler,
	reports ReportPublisher,
	mailer ConfirmationSender,
	logger *logger.Logger,
) CheckoutUseCase {
	return &checkoutUseCase{
		orderRepo:  orderRepo,
		reconciler: reconciler,
		reports:    reports,
		mailer:     mailer,
		logger:     logger,
		now:        time.Now,
	}
}

// FulfillOrder completes the order and then reconciles the download counter
// of every purchased pack. Once the order row is completed the call succeeds,
// however many counters could be updated.
func (uc *checkoutUseCase) FulfillOrder(ctx context.Context, input FulfillOrderInput) (*entity.Order, error) {
	orderID := strings.TrimSpace(input.OrderID)
	paypalOrderID := strings.TrimSpace(input.PaypalOrderID)
	if orderID == "" || paypalOrderID == "" {
		return nil, newFulfillmentError(CodeMissingRequiredField, "Missing required fields: orderId and paypalOrderId", nil)
	}

	completedAt := uc.now().UTC()
	order, err := uc.orderRepo.CompleteOrder(ctx, &entity.OrderCompletion{
		OrderID:         orderID,
		PaypalOrderID:   paypalOrderID,
		PaypalPayerID:   strings.TrimSpace(input.PaypalPayerID),
		PaypalPaymentID: strings.TrimSpace(input.PaypalPaymentID),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		PaymentDetails:  input.PaymentDetails,
		CompletedAt:     completedAt,
	})
	if err != nil {
		uc.logger.Error("Failed to complete order %s: %v", orderID, err)
		return nil, newFulfillmentError(CodeOrderUpdateFailed, "Failed to update order", err)
	}

	log := uc.logger.WithFields(map[string]interface{}{
		"order_id":        order.ID,
		"paypal_order_id": paypalOrderID,
	})

	packIDs, err := uc.orderRepo.GetOrderItemPackIDs(ctx, order.ID)
	if err != nil {
		log.Error("Order completed but items could not be read, download counts not updated: %v", err)
		return nil, newFulfillmentError(CodeOrderItemsReadFailed, "Failed to fetch order items", err)
	}

	report := &entity.FulfillmentReport{
		OrderID:       order.ID,
		PaypalOrderID: paypalOrderID,
		Items:         make([]entity.ItemOutcome, 0, len(packIDs)),
		CompletedAt:   completedAt,
	}
	for _, packID := range packIDs {
		report.Items = append(report.Items, uc.reconciler.Reconcile(ctx, packID))
	}

	if failed := report.FailedPackIDs(); len(failed) > 0 {
		log.Warn("Order completed with %d of %d download counts not updated: %v", len(failed), len(packIDs), failed)
	} else {
		log.Info("Order completed, %d download counts updated", len(packIDs))
	}

	if uc.reports != nil {
		if err := uc.reports.PublishReport(ctx, report); err != nil {
			log.Warn("Failed to publish fulfillment report: %v", err)
		}
	}

	if uc.mailer != nil && order.CustomerEmail != "" {
		if err := uc.mailer.SendConfirmation(ctx, order, packIDs); err != nil {
			log.Warn("Failed to send confirmation to %s: %v", order.CustomerEmail, err)
		}
	}

	return order, nil
}
