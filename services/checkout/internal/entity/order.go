package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

type DownloadType string

const (
	DownloadTypePurchase DownloadType = "purchase"
)

type Order struct {
	ID              string          `json:"id"`
	Status          OrderStatus     `json:"status"`
	PaypalOrderID   string          `json:"paypal_order_id"`
	PaypalPayerID   string          `json:"paypal_payer_id,omitempty"`
	PaypalPaymentID string          `json:"paypal_payment_id,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	PaymentDetails  json.RawMessage `json:"payment_details,omitempty" swaggertype:"object"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
}

// OrderCompletion carries everything written to the order row when the
// payment provider confirms it.
type OrderCompletion struct {
	OrderID         string
	PaypalOrderID   string
	PaypalPayerID   string
	PaypalPaymentID string
	CustomerEmail   string
	CustomerName    string
	PaymentDetails  json.RawMessage
	CompletedAt     time.Time
}
