package persistent

import (
	"encoding/json"

	"pin-packs/services/checkout/internal/entity"
	"pin-packs/services/checkout/internal/model"
)

func ToOrderEntity(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	order := &entity.Order{
		ID:              m.ID,
		Status:          entity.OrderStatus(m.Status),
		PaypalOrderID:   m.PaypalOrderID,
		PaypalPayerID:   m.PaypalPayerID,
		PaypalPaymentID: m.PaypalPaymentID,
		CustomerEmail:   m.CustomerEmail,
		CustomerName:    m.CustomerName,
		TotalAmount:     m.TotalAmount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CompletedAt:     m.CompletedAt,
	}
	if m.PaymentDetails != nil && json.Valid([]byte(*m.PaymentDetails)) {
		order.PaymentDetails = json.RawMessage(*m.PaymentDetails)
	}

	return order
}

// completionUpdates builds the column map for the completion UPDATE. Optional
// fields that were not supplied are written as empty strings since the
// columns are NOT NULL.
func completionUpdates(c *entity.OrderCompletion) map[string]interface{} {
	updates := map[string]interface{}{
		"status":            string(entity.OrderStatusCompleted),
		"paypal_order_id":   c.PaypalOrderID,
		"paypal_payer_id":   c.PaypalPayerID,
		"paypal_payment_id": c.PaypalPaymentID,
		"customer_email":    c.CustomerEmail,
		"customer_name":     c.CustomerName,
		"completed_at":      c.CompletedAt,
		"updated_at":        c.CompletedAt,
	}
	if len(c.PaymentDetails) > 0 && json.Valid(c.PaymentDetails) {
		updates["payment_details"] = string(c.PaymentDetails)
	}
	return updates
}
